package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/vfg2006/protrack-api/infrastructure/integrator/gemini/geminiclient"
	"github.com/vfg2006/protrack-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrEmptyResponse indica uma resposta sem texto no primeiro candidato
var ErrEmptyResponse = errors.New("Empty response from AI")

const promptTemplate = `Analyze the following production data for the month of %s.
Data: [%s]

Provide an executive summary of performance, identify any obvious trends or outliers,
and suggest 3-4 actionable recommendations to improve production or maintain quality.
Ensure the output is strictly valid JSON.`

var insightSchema = &geminiclient.Schema{
	Type: geminiclient.TypeObject,
	Properties: map[string]*geminiclient.Schema{
		"summary": {
			Type:        geminiclient.TypeString,
			Description: "A short professional summary of the month's performance.",
		},
		"trendAnalysis": {
			Type:        geminiclient.TypeString,
			Description: "Identification of key trends, strengths, or weaknesses in the data.",
		},
		"recommendations": {
			Type:        geminiclient.TypeArray,
			Items:       &geminiclient.Schema{Type: geminiclient.TypeString},
			Description: "List of actionable improvement suggestions.",
		},
	},
	Required: []string{"summary", "trendAnalysis", "recommendations"},
}

// GeminiIntegrator gera insights pela API generateContent, protegida por circuit breaker
type GeminiIntegrator struct {
	Client  geminiclient.Client
	breaker *gobreaker.CircuitBreaker[*domain.AIInsight]
}

func New(client geminiclient.Client) *GeminiIntegrator {
	return &GeminiIntegrator{
		Client:  client,
		breaker: newCircuitBreaker(),
	}
}

// GenerateInsight envia o prompt do mês e decodifica o JSON devolvido pelo modelo
func (g *GeminiIntegrator) GenerateInsight(ctx context.Context, req domain.InsightRequest) (*domain.AIInsight, error) {
	return g.breaker.Execute(func() (*domain.AIInsight, error) {
		resp, err := g.Client.GenerateContent(ctx, BuildContentRequest(req))
		if err != nil {
			return nil, err
		}

		return decodeInsight(resp.Text())
	})
}

// BuildContentRequest monta o corpo da chamada com o schema de resposta JSON
func BuildContentRequest(req domain.InsightRequest) geminiclient.GenerateContentRequest {
	return geminiclient.GenerateContentRequest{
		Contents: []geminiclient.Content{
			{
				Role:  "user",
				Parts: []geminiclient.Part{{Text: fmt.Sprintf(promptTemplate, req.MonthLabel, req.RecordsFlattened)}},
			},
		},
		GenerationConfig: &geminiclient.GenerationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   insightSchema,
		},
	}
}

func decodeInsight(text string) (*domain.AIInsight, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyResponse
	}

	var insight domain.AIInsight
	if err := json.Unmarshal([]byte(text), &insight); err != nil {
		return nil, fmt.Errorf("erro ao decodificar o insight: %w", err)
	}

	return &insight, nil
}
