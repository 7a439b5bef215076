package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/nat-prohmpiriya/central-marketing-dashboard/internal/domain"
	"github.com/nat-prohmpiriya/central-marketing-dashboard/pkg/apiErrors"
	"github.com/nat-prohmpiriya/central-marketing-dashboard/pkg/log"
	"github.com/nat-prohmpiriya/central-marketing-dashboard/pkg/utils"
)

// PerformanceReader is the slice of the aggregate store the read endpoint
// needs.
type PerformanceReader interface {
	GetByDateAndWindow(ctx context.Context, asOf time.Time, windowDays int) ([]*domain.EntityPerformance, error)
}

// GetPerformance serves the persisted mart rows for one (date, window) pair.
// Defaults to yesterday and the 30 day window.
func GetPerformance(service PerformanceReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		asOf := utils.Yesterday()
		if rawDate := r.URL.Query().Get("date"); rawDate != "" {
			parsed, err := utils.ParseDate(rawDate)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "date must be YYYY-MM-DD", nil)
				return
			}
			asOf = *parsed
		}

		windowDays := 30
		if rawWindow := r.URL.Query().Get("window"); rawWindow != "" {
			parsed, err := strconv.Atoi(rawWindow)
			if err != nil || parsed <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "window must be a positive number of days", nil)
				return
			}
			windowDays = parsed
		}

		rows, err := service.GetByDateAndWindow(r.Context(), asOf, windowDays)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Failed to load mart rows")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to load performance rows", nil)
			return
		}

		writeJSON(w, map[string]any{
			"as_of":       asOf.Format("2006-01-02"),
			"window_days": windowDays,
			"total":       len(rows),
			"rows":        rows,
		})
	}
}
