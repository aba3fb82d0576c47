// Package report materializa o resultado de uma execução em disco:
// uma pasta com carimbo de tempo contendo o snapshot JSON completo e
// um resumo legível em Markdown.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/vfg2006/finance-insights/internal/config"
	"github.com/vfg2006/finance-insights/internal/domain"
	"github.com/vfg2006/finance-insights/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Emitter interface {
	Emit(result *domain.AnalysisResult) (string, error)
}

type emitter struct {
	cfg config.Reports
}

func NewEmitter(cfg config.Reports) Emitter {
	return &emitter{cfg: cfg}
}

// Emit grava o relatório da execução e retorna o caminho da pasta.
// Layout:
//
//	reports/
//	└── report_20240615_120301/
//	    ├── REPORT.md
//	    └── analysis_result.json
func (e *emitter) Emit(result *domain.AnalysisResult) (string, error) {
	if !e.cfg.Enabled {
		return "", nil
	}

	stamp := result.GeneratedAt.Format("20060102_150405")
	dir := filepath.Join(e.cfg.Dir, fmt.Sprintf("report_%s", stamp))

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(err, "erro ao criar a pasta do relatório")
	}

	payload, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "erro ao serializar o resultado")
	}

	jsonPath := filepath.Join(dir, "analysis_result.json")
	if err := os.WriteFile(jsonPath, payload, 0o644); err != nil {
		return "", errors.Wrap(err, "erro ao gravar o snapshot JSON")
	}

	mdPath := filepath.Join(dir, "REPORT.md")
	if err := os.WriteFile(mdPath, []byte(renderMarkdown(result)), 0o644); err != nil {
		return "", errors.Wrap(err, "erro ao gravar o relatório Markdown")
	}

	log.L.Infof("Relatório gravado em %s", dir)

	return dir, nil
}

func renderMarkdown(result *domain.AnalysisResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Relatório de análise financeira\n\n")
	fmt.Fprintf(&b, "- **Execução**: `%s`\n", result.RunID)
	fmt.Fprintf(&b, "- **Gerado em**: %s\n", result.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "- **Dados completos**: `analysis_result.json`\n\n")

	if result.Load != nil {
		fmt.Fprintf(&b, "## Carga\n\n")
		fmt.Fprintf(&b, "- Modo: %s\n", result.Load.Mode)
		if result.Load.Transactions != nil {
			fmt.Fprintf(&b, "- Transações: %d aceitas, %d rejeitadas\n",
				result.Load.Transactions.Accepted, result.Load.Transactions.Rejected)
		}
		if result.Load.Clients != nil {
			fmt.Fprintf(&b, "- Clientes: %d aceitos, %d rejeitados\n",
				result.Load.Clients.Accepted, result.Load.Clients.Rejected)
		}
		fmt.Fprintf(&b, "- Transações órfãs: %d\n\n", result.Load.OrphanTransactions)
	}

	if len(result.TopServices) > 0 {
		fmt.Fprintf(&b, "## Serviços mais demandados\n\n")
		fmt.Fprintf(&b, "| Serviço | Pedidos | Receita |\n|---|---|---|\n")
		for _, service := range result.TopServices {
			fmt.Fprintf(&b, "| %s | %d | %.2f |\n", service.Service, service.OrderCount, service.TotalRevenue)
		}
		fmt.Fprintf(&b, "\n")
	}

	if result.MaxRevenueService != nil {
		fmt.Fprintf(&b, "Maior receita: **%s** (%.2f)\n\n",
			result.MaxRevenueService.Service, result.MaxRevenueService.TotalRevenue)
	}

	if len(result.ClientSegments) > 0 {
		fmt.Fprintf(&b, "## Segmentação de clientes\n\n")
		fmt.Fprintf(&b, "| Segmento | Clientes | Transações | Receita | Receita/cliente |\n|---|---|---|---|---|\n")
		for _, segment := range result.ClientSegments {
			fmt.Fprintf(&b, "| %s | %d | %d | %.2f | %.2f |\n",
				segment.Segment, segment.ClientCount, segment.TransactionCount,
				segment.TotalRevenue, segment.AvgRevenuePerClient)
		}
		fmt.Fprintf(&b, "\n")
	}

	if len(result.MonthlyRevenue) > 0 {
		fmt.Fprintf(&b, "## Receita mensal\n\n")
		fmt.Fprintf(&b, "| Mês | Receita | Transações |\n|---|---|---|\n")
		for _, point := range result.MonthlyRevenue {
			fmt.Fprintf(&b, "| %s | %.2f | %d |\n", point.Period, point.Revenue, point.TransactionCount)
		}
		fmt.Fprintf(&b, "\n")
	}

	if result.Forecast != nil {
		fmt.Fprintf(&b, "## Previsão\n\n")
		if !result.Forecast.Available {
			fmt.Fprintf(&b, "%s\n", result.Forecast.Message)
		} else {
			fmt.Fprintf(&b, "Tendência de receita: %s\n\n", result.Forecast.RevenueTrend)
			fmt.Fprintf(&b, "| Mês | Receita prevista | Transações previstas |\n|---|---|---|\n")
			for _, point := range result.Forecast.Points {
				fmt.Fprintf(&b, "| %s | %.2f | %d |\n", point.Period, point.Revenue, point.TransactionCount)
			}
		}
		fmt.Fprintf(&b, "\n")
	}

	return b.String()
}
