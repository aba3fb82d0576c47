package repository

import (
	"database/sql"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/finance-insights/infrastructure/database/sqlstore"
	"github.com/vfg2006/finance-insights/internal/domain"
)

const snapshotsTable = "analysis_snapshots"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// AnalysisParameters registra com que configuração o snapshot foi
// calculado, para auditoria dos resultados
type AnalysisParameters struct {
	LoadMode             string `json:"load_mode"`
	TopServicesLimit     int    `json:"top_services_limit"`
	ForecastMonths       int    `json:"forecast_months"`
	MinMonthsForForecast int    `json:"min_months_for_forecast"`
}

type SnapshotRepository interface {
	Save(result *domain.AnalysisResult, params *AnalysisParameters) error
	GetLatest() (*domain.AnalysisResult, error)
	GetByRunID(runID string) (*domain.AnalysisResult, error)
	ListRuns(limit int) ([]domain.SnapshotInfo, error)
}

type snapshotRepository struct {
	conn sqlstore.Conn
}

func NewSnapshotRepository(conn sqlstore.Conn) SnapshotRepository {
	return &snapshotRepository{
		conn: conn,
	}
}

// Save persiste o resultado completo da análise como JSON. Snapshots
// nunca são sobrescritos: cada execução gera um run_id novo.
func (r *snapshotRepository) Save(result *domain.AnalysisResult, params *AnalysisParameters) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("erro ao serializar o resultado para JSON: %w", err)
	}

	var paramsJSON []byte
	if params != nil {
		paramsJSON, err = json.Marshal(params)
		if err != nil {
			return fmt.Errorf("erro ao serializar os parâmetros para JSON: %w", err)
		}
	}

	query, args, err := r.conn.Builder().
		Insert(snapshotsTable).
		Columns("run_id", "generated_at", "result_json", "parameters_json").
		Values(
			result.RunID,
			result.GeneratedAt.Format(storedDateLayout),
			string(resultJSON),
			string(paramsJSON),
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao gravar snapshot %s: %w", result.RunID, err)
	}

	return nil
}

func (r *snapshotRepository) GetLatest() (*domain.AnalysisResult, error) {
	query, _, err := r.conn.Builder().
		Select("result_json").
		From(snapshotsTable).
		OrderBy("generated_at DESC", "run_id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.scanResult(r.conn.QueryRow(query))
}

func (r *snapshotRepository) GetByRunID(runID string) (*domain.AnalysisResult, error) {
	query, args, err := r.conn.Builder().
		Select("result_json").
		From(snapshotsTable).
		Where("run_id = ?", runID).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.scanResult(r.conn.QueryRow(query, args...))
}

// ListRuns lista os snapshots mais recentes, sem o corpo do resultado
func (r *snapshotRepository) ListRuns(limit int) ([]domain.SnapshotInfo, error) {
	query, _, err := r.conn.Builder().
		Select("run_id", "generated_at").
		From(snapshotsTable).
		OrderBy("generated_at DESC", "run_id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	runs := make([]domain.SnapshotInfo, 0)
	for rows.Next() {
		var info domain.SnapshotInfo
		var generatedAt string
		if err := rows.Scan(&info.RunID, &generatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshots: %w", err)
		}

		info.GeneratedAt, err = time.Parse(storedDateLayout, generatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao converter data: %w", err)
		}

		runs = append(runs, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return runs, nil
}

func (r *snapshotRepository) scanResult(row *sql.Row) (*domain.AnalysisResult, error) {
	var resultJSON string
	if err := row.Scan(&resultJSON); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	result := &domain.AnalysisResult{}
	if err := json.Unmarshal([]byte(resultJSON), result); err != nil {
		return nil, fmt.Errorf("erro ao deserializar JSON do snapshot: %w", err)
	}

	return result, nil
}
