package input

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// dateTimeLayouts are tried in order by ParseDateTime.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.DateTime,
	"2006-01-02 15:04",
	time.DateOnly,
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.ANSIC,
}

// ParseDateTime parses text into an instant.
// It accepts RFC 3339, ISO-like "YYYY-MM-DD[ HH:MM[:SS]]" forms, RFC 1123,
// RFC 850, ANSI C, "@<unix seconds>" and the keywords now, today, tomorrow
// and yesterday. Inputs without a zone are read as UTC.
func ParseDateTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty string", ErrDateTimeFormat)
	}

	now := time.Now().UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	switch strings.ToLower(s) {
	case "now":
		return now, nil
	case "today", "midnight":
		return midnight, nil
	case "tomorrow":
		return midnight.AddDate(0, 0, 1), nil
	case "yesterday":
		return midnight.AddDate(0, 0, -1), nil
	}

	if rest, ok := strings.CutPrefix(s, "@"); ok {
		sec, err := strconv.ParseInt(rest, 10, 64)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q: %v", ErrDateTimeFormat, s, err)
		}
		return time.Unix(sec, 0).UTC(), nil
	}

	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrDateTimeFormat, s)
}
