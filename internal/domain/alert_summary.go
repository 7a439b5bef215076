package domain

import "time"

// AlertCountRow is one (type, severity) bucket of the trailing alert summary.
type AlertCountRow struct {
	Type     AlertType     `json:"alert_type"`
	Severity AlertSeverity `json:"severity"`
	Count    int           `json:"count"`
}

// DailyAlertCount is one (date, type, severity) bucket of the trend view.
type DailyAlertCount struct {
	Date     time.Time     `json:"date"`
	Type     AlertType     `json:"alert_type"`
	Severity AlertSeverity `json:"severity"`
	Count    int           `json:"count"`
}

// PlatformHealth is the derived health of one platform over the trailing
// window.
type PlatformHealth struct {
	Platform      string `json:"platform"`
	Score         int    `json:"health_score"`
	CriticalCount int    `json:"critical_count"`
	WarningCount  int    `json:"warning_count"`
	InfoCount     int    `json:"info_count"`
}

// Health score penalty weights per severity.
const (
	healthPenaltyCritical = 20
	healthPenaltyWarning  = 5
	healthPenaltyInfo     = 1
)

// HealthScore computes max(0, 100 - 20*critical - 5*warning - 1*info).
func HealthScore(critical, warning, info int) int {
	score := 100 - critical*healthPenaltyCritical - warning*healthPenaltyWarning - info*healthPenaltyInfo
	if score < 0 {
		return 0
	}
	return score
}
