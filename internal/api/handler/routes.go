package handler

import (
	"net/http"

	"github.com/vfg2006/profitability-api/internal/api/handler/router"
	"github.com/vfg2006/profitability-api/internal/usecases/aggregating"
	"github.com/vfg2006/profitability-api/internal/usecases/authenticating"
	"github.com/vfg2006/profitability-api/internal/usecases/backup"
	"github.com/vfg2006/profitability-api/internal/usecases/configuring"
	"github.com/vfg2006/profitability-api/internal/usecases/contracting"
	"github.com/vfg2006/profitability-api/internal/usecases/importing"
	"github.com/vfg2006/profitability-api/internal/usecases/scoring"
	"github.com/vfg2006/profitability-api/pkg/middleware"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Dashboard(service aggregating.Profitability, healthScorer scoring.HealthScorer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/entries",
			Method:      http.MethodGet,
			Handler:     ListEntries(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: Metrics(service, healthScorer),
		},
	}
}

func Configuration(service configuring.Configurator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/employees",
			Method:      http.MethodGet,
			Handler:     ListEmployees(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/employees",
			Method:      http.MethodPost,
			Handler:     CreateEmployee(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.MasterOnly()},
		},
		{
			Path:        "/v1/employees/:id",
			Method:      http.MethodPut,
			Handler:     UpdateEmployee(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.MasterOnly()},
		},
		{
			Path:        "/v1/clients",
			Method:      http.MethodGet,
			Handler:     ListClients(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/clients",
			Method:      http.MethodPost,
			Handler:     CreateClient(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.MasterOnly()},
		},
		{
			Path:        "/v1/clients/:id",
			Method:      http.MethodPut,
			Handler:     UpdateClient(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.MasterOnly()},
		},
	}
}

func Contracts(service contracting.ContractReader) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/contracts/parse",
			Method:      http.MethodPost,
			Handler:     ParseContract(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/clients/:id/contract",
			Method:      http.MethodPost,
			Handler:     ApplyContract(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.MasterOnly()},
		},
	}
}

func Import(service importing.Importer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/entries/import",
			Method:      http.MethodPost,
			Handler:     ImportEntries(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.MasterOnly()},
		},
	}
}

func Health(service scoring.HealthScorer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/health",
			Method:      http.MethodGet,
			Handler:     ListHealthScores(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/health/preview",
			Method:      http.MethodPost,
			Handler:     PreviewHealth(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/clients/:id/health",
			Method:      http.MethodGet,
			Handler:     GetClientHealth(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/clients/:id/health",
			Method:      http.MethodPut,
			Handler:     SaveClientHealth(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.MasterOnly()},
		},
	}
}

func Backup(service backup.Backuper) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/backup",
			Method:      http.MethodGet,
			Handler:     ExportBackup(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.MasterOnly()},
		},
		{
			Path:        "/v1/backup/restore",
			Method:      http.MethodPost,
			Handler:     RestoreBackup(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.MasterOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.MasterOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.MasterOnly()},
		},
	}
}
