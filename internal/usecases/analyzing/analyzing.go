// Package analyzing monta o resultado analítico completo a partir do
// warehouse. Todas as visões são determinísticas: a mesma foto do
// warehouse produz sempre o mesmo resultado, independente da ordem de
// inserção dos registros.
package analyzing

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/finance-insights/infrastructure/repository"
	"github.com/vfg2006/finance-insights/internal/config"
	"github.com/vfg2006/finance-insights/internal/domain"
	"github.com/vfg2006/finance-insights/pkg/log"
	"github.com/vfg2006/finance-insights/pkg/utils"
)

type Service interface {
	Analyze(ctx context.Context) (*domain.AnalysisResult, error)
}

type service struct {
	cfg             config.Analysis
	transactionRepo repository.TransactionRepository
	clientRepo      repository.ClientRepository
}

func NewService(
	cfg config.Analysis,
	transactionRepo repository.TransactionRepository,
	clientRepo repository.ClientRepository,
) Service {
	return &service{
		cfg:             cfg,
		transactionRepo: transactionRepo,
		clientRepo:      clientRepo,
	}
}

// Analyze recalcula todas as visões do zero sobre o conteúdo atual do
// warehouse e devolve o resultado com um run_id novo
func (s *service) Analyze(ctx context.Context) (*domain.AnalysisResult, error) {
	runID, err := utils.GenerateRunID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar o run_id: %w", err)
	}

	result := &domain.AnalysisResult{
		RunID:       runID,
		GeneratedAt: time.Now().UTC().Truncate(time.Second),
	}

	if result.TopServices, err = s.transactionRepo.TopServicesByCount(s.cfg.TopServicesLimit); err != nil {
		return nil, err
	}

	if result.MaxRevenueService, err = s.transactionRepo.ServiceWithMaxRevenue(); err != nil {
		return nil, err
	}

	if result.RevenueByCity, err = s.transactionRepo.RevenueByCity(); err != nil {
		return nil, err
	}

	if result.RevenueByService, err = s.transactionRepo.RevenueByService(); err != nil {
		return nil, err
	}

	if result.RevenueByPaymentMethod, err = s.transactionRepo.RevenueByPaymentMethod(); err != nil {
		return nil, err
	}

	if result.AvgByCity, err = s.transactionRepo.AvgAmountByCity(); err != nil {
		return nil, err
	}

	if result.PaymentDistribution, err = s.transactionRepo.PaymentMethodDistribution(); err != nil {
		return nil, err
	}

	if result.LastMonthRevenue, err = s.transactionRepo.LastMonthRevenue(); err != nil {
		return nil, err
	}

	if result.ServicePerformance, err = s.transactionRepo.ServicePerformance(); err != nil {
		return nil, err
	}

	if result.ClientSegments, err = s.clientRepo.SegmentStats(); err != nil {
		return nil, err
	}

	if result.ClientsWithoutTransactions, err = s.clientRepo.CountWithoutTransactions(); err != nil {
		return nil, err
	}

	observed, err := s.transactionRepo.MonthlyRevenue()
	if err != nil {
		return nil, err
	}

	monthly, err := FillInteriorGaps(observed)
	if err != nil {
		return nil, err
	}
	result.MonthlyRevenue = trimToLastMonths(monthly, s.cfg.MonthlyTrendMonths)

	log.ForContext(ctx).WithFields(log.Fields{
		"run_id": runID,
		"months": len(result.MonthlyRevenue),
	}).Info("Análise concluída")

	return result, nil
}

// FillInteriorGaps preenche com zero os meses sem transações que caem
// estritamente entre dois meses observados, mantendo a série contígua
// para o previsor. Nada é sintetizado antes do primeiro mês nem depois
// do último.
func FillInteriorGaps(observed []domain.MonthlyRevenuePoint) ([]domain.MonthlyRevenuePoint, error) {
	if len(observed) <= 1 {
		return observed, nil
	}

	byPeriod := make(map[string]domain.MonthlyRevenuePoint, len(observed))
	for _, point := range observed {
		byPeriod[point.Period] = point
	}

	first, err := utils.ParsePeriod(observed[0].Period)
	if err != nil {
		return nil, err
	}
	last, err := utils.ParsePeriod(observed[len(observed)-1].Period)
	if err != nil {
		return nil, err
	}

	filled := make([]domain.MonthlyRevenuePoint, 0, len(observed))
	for month := first; !month.After(last); month = month.AddDate(0, 1, 0) {
		period := month.Format("2006-01")
		if point, ok := byPeriod[period]; ok {
			filled = append(filled, point)
			continue
		}
		filled = append(filled, domain.MonthlyRevenuePoint{Period: period})
	}

	return filled, nil
}

// trimToLastMonths limita a série aos últimos n meses quando o limite
// está configurado
func trimToLastMonths(points []domain.MonthlyRevenuePoint, n int) []domain.MonthlyRevenuePoint {
	if n <= 0 || len(points) <= n {
		return points
	}
	return points[len(points)-n:]
}
