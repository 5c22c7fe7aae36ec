package geminiclient

import (
	"context"
	"errors"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/protrack-api/internal/config"
	"golang.org/x/time/rate"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrMissingAPIKey indica que GEMINI_API_KEY não foi configurada
var ErrMissingAPIKey = errors.New("API Key is missing. Please ensure it is configured.")

type Client interface {
	GenerateContent(ctx context.Context, req GenerateContentRequest) (*GenerateContentResponse, error)
}

type GeminiClient struct {
	httpClient *http.Client
	config     config.Gemini
	limiter    *rate.Limiter
}

// NewClient cria o cliente HTTP da API generateContent.
// O timeout vale por requisição e o limiter espalha as chamadas ao longo do minuto.
func NewClient(cfg config.Gemini) Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	limit := rate.Inf
	if cfg.RequestsPerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(cfg.RequestsPerMinute))
	}

	cfg.Timeout = timeout

	return &GeminiClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config:  cfg,
		limiter: rate.NewLimiter(limit, 1),
	}
}
