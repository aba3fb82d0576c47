package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/finance-insights/infrastructure/repository"
	"github.com/vfg2006/finance-insights/pkg/apiErrors"
)

const defaultRunListLimit = 20

// GetLatestAnalysis retorna o snapshot mais recente do pipeline
func GetLatestAnalysis(repo repository.SnapshotRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := repo.GetLatest()
		if err != nil {
			logrus.Error("Erro ao buscar o snapshot mais recente:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar o snapshot de análise", nil)
			return
		}

		if result == nil {
			apiErrors.WriteError(w, apiErrors.ErrSnapshotNotFound, "Nenhuma análise disponível. Execute o pipeline primeiro", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(result)
		if err != nil {
			logrus.Error("Erro ao enviar resposta da análise:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetAnalysisByRunID retorna o snapshot de uma execução específica
func GetAnalysisByRunID(repo repository.SnapshotRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		runID := httprouter.ParamsFromContext(r.Context()).ByName("run_id")
		if runID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador da execução não especificado", nil)
			return
		}

		result, err := repo.GetByRunID(runID)
		if err != nil {
			logrus.Error("Erro ao buscar o snapshot por run_id:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar o snapshot de análise", nil)
			return
		}

		if result == nil {
			apiErrors.WriteError(w, apiErrors.ErrSnapshotNotFound, "Execução não encontrada", map[string]string{"run_id": runID})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(result)
		if err != nil {
			logrus.Error("Erro ao enviar resposta da análise:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// ListAnalysisRuns lista as execuções persistidas, da mais recente para a
// mais antiga
func ListAnalysisRuns(repo repository.SnapshotRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := defaultRunListLimit

		if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
			parsed, err := strconv.Atoi(rawLimit)
			if err != nil || parsed < 1 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "O parâmetro limit deve ser um inteiro positivo", nil)
				return
			}
			limit = parsed
		}

		runs, err := repo.ListRuns(limit)
		if err != nil {
			logrus.Error("Erro ao listar execuções:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar execuções do pipeline", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(map[string]any{"runs": runs})
		if err != nil {
			logrus.Error("Erro ao enviar resposta da listagem:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
