package main

import (
	"context"
	"io"

	"github.com/vfg2006/protrack-api/infrastructure/database/badger"
	"github.com/vfg2006/protrack-api/infrastructure/database/postgres"
	"github.com/vfg2006/protrack-api/infrastructure/integrator/gemini"
	"github.com/vfg2006/protrack-api/infrastructure/integrator/gemini/geminiclient"
	"github.com/vfg2006/protrack-api/infrastructure/repository"
	"github.com/vfg2006/protrack-api/internal/api"
	"github.com/vfg2006/protrack-api/internal/config"
	"github.com/vfg2006/protrack-api/internal/scheduler"
	"github.com/vfg2006/protrack-api/internal/usecases/authenticating"
	"github.com/vfg2006/protrack-api/internal/usecases/insighting"
	"github.com/vfg2006/protrack-api/internal/usecases/parsing"
	"github.com/vfg2006/protrack-api/internal/usecases/reporting"
	"github.com/vfg2006/protrack-api/pkg/log"
)

func main() {
	log.Configure("info")

	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}

	if !log.Configure(cfg.App.LogLevel) {
		log.L.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	blobs, closer := openStorage(ctx, cfg)
	defer closer.Close()

	store := reporting.NewStore(ctx, repository.NewMonthlyDataRepository(blobs, cfg.Storage.Key))
	reportingService := reporting.NewService(store, parsing.NewParser())

	geminiIntegrator := gemini.New(geminiclient.NewClient(cfg.Gemini))
	insightService := insighting.NewService(geminiIntegrator)

	// Remover um mês invalida o insight guardado dele
	reportingService.OnDelete(insightService.Forget)

	authenticator := authenticating.NewService(cfg.Auth)
	if !authenticator.Enabled() {
		log.L.Warn("auth: AUTH_SECRET não configurado, API aberta")
	}

	retentionService := scheduler.NewRetentionService(reportingService, cfg.Retention)
	if err := retentionService.Start(ctx); err != nil {
		log.L.WithError(err).Error("retention: erro ao iniciar o agendador")
	}

	server, err := api.New(cfg, reportingService, insightService, authenticator, retentionService)
	if err != nil {
		log.L.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		log.L.Error(err)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// openStorage escolhe o backend do blob conforme STORAGE_DRIVER
func openStorage(ctx context.Context, cfg *config.Config) (repository.BlobRepository, io.Closer) {
	logger := log.L.WithField("driver", cfg.Storage.Driver)

	switch cfg.Storage.Driver {
	case config.StorageBadger:
		db, err := badger.Open(cfg.Storage.BadgerPath)
		if err != nil {
			logger.WithError(err).Fatal("storage: erro ao abrir o badger")
		}
		logger.WithField("path", cfg.Storage.BadgerPath).Info("storage: badger aberto")
		return repository.NewBadgerBlobRepository(db), db

	case config.StoragePostgres:
		conn := pgconn(ctx, cfg.Database)
		blobs, err := repository.NewPostgresBlobRepository(ctx, conn)
		if err != nil {
			logger.WithError(err).Fatal("storage: erro ao preparar a tabela app_state")
		}
		return blobs, conn

	default:
		logger.Warn("storage: usando memória, os dados são perdidos ao reiniciar")
		return repository.NewMemoryBlobRepository(), nopCloser{}
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		log.L.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	log.L.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
