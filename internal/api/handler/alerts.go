package handler

import (
	"net/http"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/nat-prohmpiriya/central-marketing-dashboard/internal/domain"
	"github.com/nat-prohmpiriya/central-marketing-dashboard/internal/usecases/alerting"
	"github.com/nat-prohmpiriya/central-marketing-dashboard/pkg/apiErrors"
	"github.com/nat-prohmpiriya/central-marketing-dashboard/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GetActiveAlerts lists open alerts, newest and most severe first. Optional
// query filters: severity, type, platform, limit.
func GetActiveAlerts(service alerting.ViewService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := domain.AlertFilter{
			Severity: domain.AlertSeverity(r.URL.Query().Get("severity")),
			Type:     domain.AlertType(r.URL.Query().Get("type")),
			Platform: r.URL.Query().Get("platform"),
		}

		if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
			limit, err := strconv.ParseUint(rawLimit, 10, 32)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit must be a positive integer", nil)
				return
			}
			filter.Limit = limit
		}

		alerts, err := service.Active(r.Context(), filter)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Failed to list active alerts")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to list active alerts", nil)
			return
		}

		writeJSON(w, map[string]any{
			"total":  len(alerts),
			"alerts": alerts,
		})
	}
}

func GetAlertSummary(service alerting.ViewService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.Summarize(r.Context(), time.Now().UTC())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Failed to build alert summary")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to build alert summary", nil)
			return
		}

		writeJSON(w, summary)
	}
}

func GetAlertTrend(service alerting.ViewService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		trend, err := service.Trend(r.Context(), time.Now().UTC())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Failed to load alert trend")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to load alert trend", nil)
			return
		}

		writeJSON(w, map[string]any{
			"trend": trend,
		})
	}
}

func GetPlatformHealth(service alerting.ViewService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		health, err := service.PlatformHealth(r.Context(), time.Now().UTC())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Failed to score platform health")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to score platform health", nil)
			return
		}

		writeJSON(w, map[string]any{
			"platforms": health,
		})
	}
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.L.WithError(err).Error("Failed to encode response")
	}
}
