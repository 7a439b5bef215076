package handler

import (
	"net/http"

	"github.com/nat-prohmpiriya/central-marketing-dashboard/internal/api/handler/router"
	"github.com/nat-prohmpiriya/central-marketing-dashboard/internal/usecases/alerting"
	"github.com/nat-prohmpiriya/central-marketing-dashboard/internal/usecases/refreshing"
	"github.com/prometheus/client_golang/prometheus/promhttp"
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

func Alerts(service alerting.ViewService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/alerts/active",
			Method:  http.MethodGet,
			Handler: GetActiveAlerts(service),
		},
		{
			Path:    "/v1/alerts/summary",
			Method:  http.MethodGet,
			Handler: GetAlertSummary(service),
		},
		{
			Path:    "/v1/alerts/trend",
			Method:  http.MethodGet,
			Handler: GetAlertTrend(service),
		},
		{
			Path:    "/v1/platforms/health",
			Method:  http.MethodGet,
			Handler: GetPlatformHealth(service),
		},
	}
}

func Performance(service PerformanceReader) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/performance",
			Method:  http.MethodGet,
			Handler: GetPerformance(service),
		},
	}
}

func MartRefresh(service refreshing.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/mart/refresh",
			Method:  http.MethodPost,
			Handler: TriggerMartRefresh(service),
		},
		{
			Path:    "/v1/mart/refresh/status",
			Method:  http.MethodGet,
			Handler: GetMartRefreshStatus(service),
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
