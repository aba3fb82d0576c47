// Package forecasting projeta os próximos meses de receita e volume a
// partir da série mensal, por regressão linear sobre o índice do mês.
// O previsor nunca falha por falta de dados: abaixo do histórico mínimo
// ele devolve um resultado estruturado de insuficiência.
package forecasting

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/vfg2006/finance-insights/internal/config"
	"github.com/vfg2006/finance-insights/internal/domain"
	"github.com/vfg2006/finance-insights/pkg/utils"
)

type Forecaster interface {
	Forecast(series []domain.MonthlyRevenuePoint) (*domain.Forecast, error)
}

type forecaster struct {
	cfg config.Analysis
}

func NewForecaster(cfg config.Analysis) Forecaster {
	return &forecaster{cfg: cfg}
}

// Forecast ajusta uma reta sobre o índice do mês e extrapola o
// horizonte configurado. Projeções negativas são truncadas em zero:
// receita e volume não têm sentido abaixo disso.
func (f *forecaster) Forecast(series []domain.MonthlyRevenuePoint) (*domain.Forecast, error) {
	observed := len(series)
	required := f.cfg.MinMonthsForForecast

	if observed < required {
		return &domain.Forecast{
			Available:      false,
			Message:        fmt.Sprintf("histórico insuficiente: necessários %d meses, disponíveis %d", required, observed),
			ObservedMonths: observed,
			RequiredMonths: required,
		}, nil
	}

	lastMonth, err := utils.ParsePeriod(series[observed-1].Period)
	if err != nil {
		return nil, err
	}

	xs := make([]float64, observed)
	revenues := make([]float64, observed)
	counts := make([]float64, observed)
	for i, point := range series {
		xs[i] = float64(i)
		revenues[i] = point.Revenue
		counts[i] = float64(point.TransactionCount)
	}

	revenueAlpha, revenueBeta := stat.LinearRegression(xs, revenues, nil, false)
	countAlpha, countBeta := stat.LinearRegression(xs, counts, nil, false)

	points := make([]domain.ForecastPoint, 0, f.cfg.ForecastMonths)
	for i := 1; i <= f.cfg.ForecastMonths; i++ {
		x := float64(observed - 1 + i)
		points = append(points, domain.ForecastPoint{
			Period:           lastMonth.AddDate(0, i, 0).Format("2006-01"),
			Revenue:          utils.RoundWithTwoDecimalPlace(math.Max(0, revenueAlpha+revenueBeta*x)),
			TransactionCount: int(math.Max(0, math.Round(countAlpha+countBeta*x))),
		})
	}

	return &domain.Forecast{
		Available:      true,
		ObservedMonths: observed,
		RequiredMonths: required,
		Points:         points,
		RevenueTrend:   trendFor(revenueBeta),
		CountTrend:     trendFor(countBeta),
		Metrics: &domain.ForecastMetrics{
			RevenueR2:  stat.RSquared(xs, revenues, nil, revenueAlpha, revenueBeta),
			RevenueMAE: meanAbsoluteError(xs, revenues, revenueAlpha, revenueBeta),
			CountR2:    stat.RSquared(xs, counts, nil, countAlpha, countBeta),
			CountMAE:   meanAbsoluteError(xs, counts, countAlpha, countBeta),
		},
	}, nil
}

func trendFor(beta float64) domain.Trend {
	switch {
	case beta > 0:
		return domain.TrendIncreasing
	case beta < 0:
		return domain.TrendDecreasing
	default:
		return domain.TrendStable
	}
}

func meanAbsoluteError(xs, ys []float64, alpha, beta float64) float64 {
	if len(xs) == 0 {
		return 0
	}

	var sum float64
	for i, x := range xs {
		sum += math.Abs(ys[i] - (alpha + beta*x))
	}
	return sum / float64(len(xs))
}
