// Package timezone parses and normalizes the instants exchanged with clients.
// Every instant is stored and served in UTC.
package timezone

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

// naiveLayouts are accepted without an offset and read as UTC.
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

func Now() time.Time {
	return time.Now().UTC()
}

// ParseInstant accepts RFC 3339 (any offset) or a naive ISO-8601 date-time.
func ParseInstant(field, raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, httperr.ErrValidation(field, "is required")
	}

	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t.UTC(), nil
	}

	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return t, nil
		}
	}

	return time.Time{}, httperr.ErrValidation(field, "must be an ISO-8601 date-time")
}

// Instant decodes a JSON string with ParseInstant.
type Instant struct {
	time.Time
}

func (i *Instant) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		i.Time = time.Time{}
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return httperr.ErrValidation("start_time", "must be a string")
	}

	t, err := ParseInstant("start_time", s[1:len(s)-1])
	if err != nil {
		return err
	}
	i.Time = t
	return nil
}
