package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/vfg2006/protrack-api/internal/api/handler"
	"github.com/vfg2006/protrack-api/internal/api/handler/router"
	"github.com/vfg2006/protrack-api/internal/config"
	"github.com/vfg2006/protrack-api/internal/scheduler"
	"github.com/vfg2006/protrack-api/internal/usecases/authenticating"
	"github.com/vfg2006/protrack-api/internal/usecases/insighting"
	"github.com/vfg2006/protrack-api/internal/usecases/reporting"
	"github.com/vfg2006/protrack-api/pkg/log"
	"github.com/vfg2006/protrack-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	reporter reporting.Reporter,
	insighter insighting.Insighter,
	authenticator authenticating.Authenticator,
	retentionService *scheduler.RetentionService,
) (*Server, error) {
	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, reporter, insighter, authenticator, retentionService),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta o router com a cadeia global de middlewares
func NewHandler(
	config *config.Config,
	reporter reporting.Reporter,
	insighter insighting.Insighter,
	authenticator authenticating.Authenticator,
	retentionService *scheduler.RetentionService,
) http.Handler {
	cronServices := handler.CronJobServices{
		RetentionService: retentionService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(reporter)...),
		router.WithRoutes(handler.Metrics()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Months(reporter)...),
		router.WithRoutes(handler.Selection(reporter)...),
		router.WithRoutes(handler.Insights(reporter, insighter)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.CORS.AllowedOrigins),
		middleware.AuthMiddleware(authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		log.L.WithField("address", s.httpServer.Addr).Info("server: iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.L.WithError(err).Error("server: erro durante a execução")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		log.L.Info("server: sinal de interrupção recebido")
	case <-ctx.Done():
		log.L.Info("server: contexto da aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.L.WithField("timeout", "15s").Info("server: iniciando desligamento gracioso")

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.L.WithError(err).Error("server: erro durante o desligamento")
		return err
	}

	log.L.Info("server: desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
