// Package pipeline orquestra a execução completa do lote:
// extração → limpeza → carga → análise → previsão → relatório.
// Cada estágio é uma transformação sobre a saída do anterior; nenhum
// estágio volta a mexer no que já passou.
package pipeline

import (
	"context"

	"github.com/pkg/errors"

	"github.com/vfg2006/finance-insights/infrastructure/loader"
	"github.com/vfg2006/finance-insights/infrastructure/repository"
	"github.com/vfg2006/finance-insights/internal/config"
	"github.com/vfg2006/finance-insights/internal/domain"
	"github.com/vfg2006/finance-insights/internal/report"
	"github.com/vfg2006/finance-insights/internal/usecases/analyzing"
	"github.com/vfg2006/finance-insights/internal/usecases/cleaning"
	"github.com/vfg2006/finance-insights/internal/usecases/forecasting"
	"github.com/vfg2006/finance-insights/internal/usecases/warehousing"
	"github.com/vfg2006/finance-insights/pkg/log"
	"github.com/vfg2006/finance-insights/pkg/utils"
)

type Service interface {
	Run(ctx context.Context) (*domain.AnalysisResult, error)
}

type service struct {
	cfg                *config.Config
	transactionLoader  loader.TransactionLoader
	clientLoader       loader.ClientLoader
	transactionCleaner cleaning.TransactionCleaner
	clientCleaner      cleaning.ClientCleaner
	warehouse          warehousing.Service
	analyzer           analyzing.Service
	forecaster         forecasting.Forecaster
	snapshotRepo       repository.SnapshotRepository
	reporter           report.Emitter
}

func NewService(
	cfg *config.Config,
	transactionLoader loader.TransactionLoader,
	clientLoader loader.ClientLoader,
	transactionCleaner cleaning.TransactionCleaner,
	clientCleaner cleaning.ClientCleaner,
	warehouse warehousing.Service,
	analyzer analyzing.Service,
	forecaster forecasting.Forecaster,
	snapshotRepo repository.SnapshotRepository,
	reporter report.Emitter,
) Service {
	return &service{
		cfg:                cfg,
		transactionLoader:  transactionLoader,
		clientLoader:       clientLoader,
		transactionCleaner: transactionCleaner,
		clientCleaner:      clientCleaner,
		warehouse:          warehouse,
		analyzer:           analyzer,
		forecaster:         forecaster,
		snapshotRepo:       snapshotRepo,
		reporter:           reporter,
	}
}

// Run executa o lote inteiro. Erros de arquivo ou de carga abortam a
// execução antes de qualquer mutação visível; rejeições de registro
// nunca abortam, apenas entram na contabilidade do resumo.
func (s *service) Run(ctx context.Context) (*domain.AnalysisResult, error) {
	logger := log.ForContext(ctx)
	logger.Info("Iniciando execução do pipeline")

	rawTransactions, err := s.transactionLoader.Load(s.cfg.Pipeline.TransactionsFile)
	if err != nil {
		return nil, errors.Wrap(err, "erro na extração de transações")
	}

	rawClients, err := s.clientLoader.Load(s.cfg.Pipeline.ClientsFile)
	if err != nil {
		return nil, errors.Wrap(err, "erro na extração de clientes")
	}

	transactionOutcome := s.transactionCleaner.Clean(rawTransactions)
	clientOutcome := s.clientCleaner.Clean(rawClients)

	logger.WithFields(log.Fields{
		"transactions_accepted": transactionOutcome.Summary.Accepted,
		"transactions_rejected": transactionOutcome.Summary.Rejected,
		"clients_accepted":      clientOutcome.Summary.Accepted,
		"clients_rejected":      clientOutcome.Summary.Rejected,
	}).Info("Limpeza concluída")

	loadResult, err := s.warehouse.Load(
		ctx,
		s.cfg.Pipeline.LoadMode,
		transactionOutcome.Accepted,
		clientOutcome.Accepted,
	)
	if err != nil {
		return nil, err
	}

	result, err := s.analyzer.Analyze(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro na análise")
	}

	if log.IsDevelopment() {
		logger.Debug("Resultado da análise: ", utils.PrettyJson(result))
	}

	forecast, err := s.forecaster.Forecast(result.MonthlyRevenue)
	if err != nil {
		return nil, errors.Wrap(err, "erro na previsão")
	}
	result.Forecast = forecast

	result.Load = &domain.LoadSummary{
		Mode:                loadResult.Mode,
		Transactions:        transactionOutcome.Summary,
		Clients:             clientOutcome.Summary,
		OrphanTransactions:  loadResult.OrphanTransactions,
		TransactionsInStore: loadResult.TransactionsInStore,
		ClientsInStore:      loadResult.ClientsInStore,
	}

	err = s.snapshotRepo.Save(result, &repository.AnalysisParameters{
		LoadMode:             s.cfg.Pipeline.LoadMode,
		TopServicesLimit:     s.cfg.Analysis.TopServicesLimit,
		ForecastMonths:       s.cfg.Analysis.ForecastMonths,
		MinMonthsForForecast: s.cfg.Analysis.MinMonthsForForecast,
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao persistir o snapshot")
	}

	if _, err := s.reporter.Emit(result); err != nil {
		// O relatório é um artefato derivado: a execução já está
		// persistida, então a falha aqui não invalida o run
		logger.WithError(err).Warn("Falha ao gravar o relatório em disco")
	}

	logger.WithFields(log.Fields{
		"run_id":       result.RunID,
		"transactions": loadResult.TransactionsInStore,
		"clients":      loadResult.ClientsInStore,
	}).Info("Pipeline concluído")

	return result, nil
}
