package handler

import (
	"net/http"

	"github.com/nat-prohmpiriya/central-marketing-dashboard/internal/usecases/refreshing"
	"github.com/nat-prohmpiriya/central-marketing-dashboard/pkg/apiErrors"
	"github.com/nat-prohmpiriya/central-marketing-dashboard/pkg/log"
	"github.com/nat-prohmpiriya/central-marketing-dashboard/pkg/utils"
)

// TriggerMartRefresh runs a refresh synchronously and returns the run summary.
// Optional query parameters: date (YYYY-MM-DD, defaults to yesterday) and
// platform (narrows the entity scope). A run already in flight answers 409.
func TriggerMartRefresh(service refreshing.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		refDate := utils.Yesterday()
		if rawDate := r.URL.Query().Get("date"); rawDate != "" {
			parsed, err := utils.ParseDate(rawDate)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "date must be YYYY-MM-DD", nil)
				return
			}
			refDate = *parsed
		}

		scope := r.URL.Query().Get("platform")

		result, err := service.Refresh(r.Context(), refDate, scope)
		if err != nil {
			if err == refreshing.ErrAlreadyRunning {
				apiErrors.WriteError(w, apiErrors.ErrRefreshRunning, "a mart refresh is already running", nil)
				return
			}

			log.ForContext(r.Context()).WithError(err).Error("Manually triggered mart refresh failed")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "mart refresh failed", nil)
			return
		}

		writeJSON(w, result)
	}
}

func GetMartRefreshStatus(service refreshing.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{
			"running": service.Running(),
		})
	}
}
