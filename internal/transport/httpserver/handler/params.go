package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

const dateLayout = "2006-01-02"

// parseTime accepts an RFC 3339 timestamp or a calendar date, which is read
// as midnight in loc.
func parseTime(value string, loc *time.Location) (time.Time, bool, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false, fmt.Errorf("time is required")
	}
	if parsed, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return parsed, false, nil
	}
	parsed, err := time.ParseInLocation(dateLayout, value, loc)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("invalid time %q", value)
	}
	return parsed, true, nil
}

func parseTimeRequired(value string, loc *time.Location) (time.Time, error) {
	parsed, _, err := parseTime(value, loc)
	return parsed, err
}

func parseTimeParam(value string, loc *time.Location) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	parsed, _, err := parseTime(value, loc)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// parseEndParam is parseTimeParam for inclusive upper bounds: a bare date
// covers the whole day.
func parseEndParam(value string, loc *time.Location) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	parsed, dateOnly, err := parseTime(value, loc)
	if err != nil {
		return nil, err
	}
	if dateOnly {
		parsed = parsed.AddDate(0, 0, 1).Add(-time.Microsecond)
	}
	return &parsed, nil
}

// patchTime reads an optional time in a partial update: nil leaves the value,
// an empty string clears it.
func patchTime(value *string, loc *time.Location) (*time.Time, bool, error) {
	if value == nil {
		return nil, false, nil
	}
	if strings.TrimSpace(*value) == "" {
		return nil, true, nil
	}
	parsed, err := parseTimeRequired(*value, loc)
	if err != nil {
		return nil, false, err
	}
	return &parsed, false, nil
}

func pathID(r *http.Request) string {
	return strings.TrimSpace(chi.URLParam(r, "id"))
}

func formatTimePtr(value *time.Time) *string {
	if value == nil {
		return nil
	}
	formatted := value.UTC().Format(time.RFC3339)
	return &formatted
}
