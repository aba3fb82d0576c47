package handler

import (
	"net/http"

	"github.com/vfg2006/finance-insights/infrastructure/repository"
	"github.com/vfg2006/finance-insights/internal/api/handler/router"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Analysis(repo repository.SnapshotRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/analysis/latest",
			Method:  http.MethodGet,
			Handler: GetLatestAnalysis(repo),
		},
		{
			Path:    "/v1/analysis/runs",
			Method:  http.MethodGet,
			Handler: ListAnalysisRuns(repo),
		},
		{
			Path:    "/v1/analysis/runs/:run_id",
			Method:  http.MethodGet,
			Handler: GetAnalysisByRunID(repo),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
