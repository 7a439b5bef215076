package utils

import "time"

// ParseDate parses a YYYY-MM-DD string, returning nil for the empty string.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// Yesterday returns yesterday at midnight UTC, the default reference date for
// a scheduled refresh.
func Yesterday() time.Time {
	now := time.Now().UTC()
	y := now.AddDate(0, 0, -1)
	return time.Date(y.Year(), y.Month(), y.Day(), 0, 0, 0, 0, time.UTC)
}
