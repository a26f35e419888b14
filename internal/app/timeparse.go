package app

import (
	"strings"
	"time"
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTimestamp accepts RFC3339, a bare local timestamp or a date. Values
// without an offset are read as UTC. The field name is used in the error.
func ParseTimestamp(field, value string) (time.Time, error) {
	s := strings.TrimSpace(value)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, InvalidArgument("%s %q is not a valid ISO-8601 timestamp", field, value)
}

// ParseOptionalTimestamp treats an empty value as an open bound.
func ParseOptionalTimestamp(field, value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	t, err := ParseTimestamp(field, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
