package forecasting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/finance-insights/internal/config"
	"github.com/vfg2006/finance-insights/internal/domain"
)

func newForecaster(forecastMonths, minMonths int) Forecaster {
	return NewForecaster(config.Analysis{
		ForecastMonths:       forecastMonths,
		MinMonthsForForecast: minMonths,
	})
}

func TestForecaster_GatesOnInsufficientHistory(t *testing.T) {
	series := []domain.MonthlyRevenuePoint{
		{Period: "2024-01", Revenue: 100, TransactionCount: 1},
		{Period: "2024-02", Revenue: 200, TransactionCount: 2},
	}

	forecast, err := newForecaster(1, 3).Forecast(series)

	require.NoError(t, err)
	assert.False(t, forecast.Available)
	assert.Empty(t, forecast.Points)
	assert.Equal(t, 2, forecast.ObservedMonths)
	assert.Equal(t, 3, forecast.RequiredMonths)
	assert.Contains(t, forecast.Message, "histórico insuficiente")
}

func TestForecaster_ProjectsLinearTrend(t *testing.T) {
	// Série perfeitamente linear: 100, 200, 300 -> próximo ponto 400
	series := []domain.MonthlyRevenuePoint{
		{Period: "2024-01", Revenue: 100, TransactionCount: 10},
		{Period: "2024-02", Revenue: 200, TransactionCount: 20},
		{Period: "2024-03", Revenue: 300, TransactionCount: 30},
	}

	forecast, err := newForecaster(1, 3).Forecast(series)

	require.NoError(t, err)
	require.True(t, forecast.Available)
	require.Len(t, forecast.Points, 1)

	assert.Equal(t, "2024-04", forecast.Points[0].Period)
	assert.InDelta(t, 400, forecast.Points[0].Revenue, 0.01)
	assert.Equal(t, 40, forecast.Points[0].TransactionCount)
	assert.Equal(t, domain.TrendIncreasing, forecast.RevenueTrend)
	assert.Equal(t, domain.TrendIncreasing, forecast.CountTrend)

	require.NotNil(t, forecast.Metrics)
	assert.InDelta(t, 1.0, forecast.Metrics.RevenueR2, 1e-9)
	assert.InDelta(t, 0.0, forecast.Metrics.RevenueMAE, 1e-9)
}

func TestForecaster_NeverEmitsNegativeValues(t *testing.T) {
	// Tendência de queda forte: a reta cruza o zero antes do horizonte
	series := []domain.MonthlyRevenuePoint{
		{Period: "2024-01", Revenue: 300, TransactionCount: 30},
		{Period: "2024-02", Revenue: 150, TransactionCount: 15},
		{Period: "2024-03", Revenue: 10, TransactionCount: 1},
	}

	forecast, err := newForecaster(6, 3).Forecast(series)

	require.NoError(t, err)
	require.True(t, forecast.Available)
	require.Len(t, forecast.Points, 6)

	for _, point := range forecast.Points {
		assert.GreaterOrEqual(t, point.Revenue, 0.0)
		assert.GreaterOrEqual(t, point.TransactionCount, 0)
	}

	assert.Equal(t, domain.TrendDecreasing, forecast.RevenueTrend)
}

func TestForecaster_IsDeterministic(t *testing.T) {
	series := []domain.MonthlyRevenuePoint{
		{Period: "2024-01", Revenue: 120.5, TransactionCount: 7},
		{Period: "2024-02", Revenue: 80.25, TransactionCount: 4},
		{Period: "2024-03", Revenue: 210.75, TransactionCount: 11},
		{Period: "2024-04", Revenue: 190.0, TransactionCount: 9},
	}

	first, err := newForecaster(3, 3).Forecast(series)
	require.NoError(t, err)

	second, err := newForecaster(3, 3).Forecast(series)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestForecaster_FlatSeriesIsStable(t *testing.T) {
	series := []domain.MonthlyRevenuePoint{
		{Period: "2024-01", Revenue: 100, TransactionCount: 5},
		{Period: "2024-02", Revenue: 100, TransactionCount: 5},
		{Period: "2024-03", Revenue: 100, TransactionCount: 5},
	}

	forecast, err := newForecaster(1, 3).Forecast(series)

	require.NoError(t, err)
	require.True(t, forecast.Available)
	assert.Equal(t, domain.TrendStable, forecast.RevenueTrend)
	assert.InDelta(t, 100, forecast.Points[0].Revenue, 0.01)
	assert.Equal(t, 5, forecast.Points[0].TransactionCount)
}

func TestForecaster_HorizonCrossesYearBoundary(t *testing.T) {
	series := []domain.MonthlyRevenuePoint{
		{Period: "2024-09", Revenue: 100, TransactionCount: 1},
		{Period: "2024-10", Revenue: 110, TransactionCount: 2},
		{Period: "2024-11", Revenue: 120, TransactionCount: 3},
	}

	forecast, err := newForecaster(3, 3).Forecast(series)

	require.NoError(t, err)
	require.Len(t, forecast.Points, 3)
	assert.Equal(t, "2024-12", forecast.Points[0].Period)
	assert.Equal(t, "2025-01", forecast.Points[1].Period)
	assert.Equal(t, "2025-02", forecast.Points[2].Period)
}
