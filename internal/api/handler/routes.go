package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/protrack-api/internal/api/handler/router"
	"github.com/vfg2006/protrack-api/internal/usecases/authenticating"
	"github.com/vfg2006/protrack-api/internal/usecases/insighting"
	"github.com/vfg2006/protrack-api/internal/usecases/reporting"
)

func Healthcheck(service reporting.Reporter) []router.Route {
	months := func() int { return len(service.List()) }

	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(months),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
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
	}
}

func Months(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/months",
			Method:  http.MethodGet,
			Handler: ListMonths(service),
		},
		{
			Path:    "/v1/months",
			Method:  http.MethodPost,
			Handler: UploadMonth(service),
		},
		{
			Path:    "/v1/months/:id",
			Method:  http.MethodGet,
			Handler: GetMonth(service),
		},
		{
			Path:    "/v1/months/:id",
			Method:  http.MethodDelete,
			Handler: DeleteMonth(service),
		},
		{
			Path:    "/v1/months/:id/stats",
			Method:  http.MethodGet,
			Handler: GetMonthStats(service),
		},
		{
			Path:    "/v1/months/:id/dashboard",
			Method:  http.MethodGet,
			Handler: GetMonthDashboard(service),
		},
	}
}

func Selection(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/selection",
			Method:  http.MethodGet,
			Handler: GetSelection(service),
		},
		{
			Path:    "/v1/selection",
			Method:  http.MethodPut,
			Handler: UpdateSelection(service),
		},
	}
}

func Insights(reporter reporting.Reporter, insighter insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/months/:id/insight",
			Method:  http.MethodGet,
			Handler: GetMonthInsight(reporter, insighter),
		},
		{
			Path:    "/v1/months/:id/insight/refresh",
			Method:  http.MethodPost,
			Handler: RefreshMonthInsight(reporter, insighter),
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
