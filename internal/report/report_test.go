package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/finance-insights/internal/config"
	"github.com/vfg2006/finance-insights/internal/domain"
)

func sampleResult() *domain.AnalysisResult {
	return &domain.AnalysisResult{
		RunID:       "AbC123xyz0",
		GeneratedAt: time.Date(2024, 6, 15, 12, 3, 1, 0, time.UTC),
		TopServices: []domain.ServiceCount{
			{Service: "Investment Advisory", OrderCount: 12, TotalRevenue: 5400.50},
		},
		MonthlyRevenue: []domain.MonthlyRevenuePoint{
			{Period: "2024-05", Revenue: 2700.25, TransactionCount: 6},
		},
		Forecast: &domain.Forecast{
			Available:      false,
			Message:        "histórico insuficiente: necessários 3 meses, disponíveis 1",
			ObservedMonths: 1,
			RequiredMonths: 3,
		},
		Load: &domain.LoadSummary{
			Mode:         config.LoadModeReplace,
			Transactions: &domain.RejectionSummary{Accepted: 92, Rejected: 8},
			Clients:      &domain.RejectionSummary{Accepted: 10},
		},
	}
}

func TestEmitter_WritesTimestampedFolder(t *testing.T) {
	baseDir := t.TempDir()

	emitter := NewEmitter(config.Reports{Enabled: true, Dir: baseDir})
	dir, err := emitter.Emit(sampleResult())

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(baseDir, "report_20240615_120301"), dir)

	payload, err := os.ReadFile(filepath.Join(dir, "analysis_result.json"))
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"run_id": "AbC123xyz0"`)

	markdown, err := os.ReadFile(filepath.Join(dir, "REPORT.md"))
	require.NoError(t, err)
	assert.Contains(t, string(markdown), "Investment Advisory")
	assert.Contains(t, string(markdown), "92 aceitas, 8 rejeitadas")
	assert.Contains(t, string(markdown), "histórico insuficiente")
}

func TestEmitter_DisabledIsNoOp(t *testing.T) {
	emitter := NewEmitter(config.Reports{Enabled: false, Dir: t.TempDir()})

	dir, err := emitter.Emit(sampleResult())

	require.NoError(t, err)
	assert.Empty(t, dir)
}
