package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/finance-insights/internal/scheduler"
	"github.com/vfg2006/finance-insights/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypePipeline = "pipeline"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	PipelineSyncService *scheduler.PipelineSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypePipeline:
			if services.PipelineSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de reexecução do pipeline não disponível", nil)
				return
			}
			// A execução roda em segundo plano e sobrevive à requisição
			services.PipelineSyncService.TriggerManualSync(context.Background())

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: pipeline", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{
			"pipeline": services.PipelineSyncService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
