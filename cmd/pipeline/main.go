package main

import (
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/finance-insights/infrastructure/database/sqlstore"
	"github.com/vfg2006/finance-insights/infrastructure/loader"
	"github.com/vfg2006/finance-insights/infrastructure/repository"
	"github.com/vfg2006/finance-insights/internal/config"
	"github.com/vfg2006/finance-insights/internal/report"
	"github.com/vfg2006/finance-insights/internal/usecases/analyzing"
	"github.com/vfg2006/finance-insights/internal/usecases/cleaning"
	"github.com/vfg2006/finance-insights/internal/usecases/forecasting"
	"github.com/vfg2006/finance-insights/internal/usecases/pipeline"
	"github.com/vfg2006/finance-insights/internal/usecases/warehousing"
)

// Executável de lote: roda o pipeline uma única vez e termina. A saída
// com código diferente de zero sinaliza falha para o orquestrador que
// agendou a execução.
func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn := dbconn(ctx, cfg.Database)
	defer conn.Close()

	transactionLoader, err := loader.NewTransactionLoader(cfg.Pipeline.TransactionsFile)
	if err != nil {
		logrus.Fatal(err)
	}

	clientLoader, err := loader.NewClientLoader(cfg.Pipeline.ClientsFile)
	if err != nil {
		logrus.Fatal(err)
	}

	transactionRepo := repository.NewTransactionRepository(conn)
	clientRepo := repository.NewClientRepository(conn)
	snapshotRepo := repository.NewSnapshotRepository(conn)

	pipelineService := pipeline.NewService(
		cfg,
		transactionLoader,
		clientLoader,
		cleaning.NewTransactionCleaner(),
		cleaning.NewClientCleaner(),
		warehousing.NewService(conn, transactionRepo, clientRepo),
		analyzing.NewService(cfg.Analysis, transactionRepo, clientRepo),
		forecasting.NewForecaster(cfg.Analysis),
		snapshotRepo,
		report.NewEmitter(cfg.Reports),
	)

	result, err := pipelineService.Run(ctx)
	if err != nil {
		logrus.WithError(err).Error("Execução do pipeline falhou")
		conn.Close()
		os.Exit(1)
	}

	logrus.WithFields(logrus.Fields{
		"run_id":       result.RunID,
		"generated_at": result.GeneratedAt,
	}).Info("Pipeline executado com sucesso")
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// dbconn cria uma conexão com o warehouse
func dbconn(ctx context.Context, dbConfig config.Database) *sqlstore.Connection {
	conn, err := sqlstore.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao warehouse")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com o warehouse")
	}

	logrus.WithField("driver", dbConfig.Driver).Info("Conexão com o warehouse estabelecida com sucesso")
	return conn
}
