package markdown

import (
	"strings"
	"time"

	"github.com/aretw0/notedav/pkg/core"
)

// epochISO is the rendering fallback for unrepresentable epoch values.
const epochISO = "1970-01-01T00:00:00Z"

// Layouts tried for offset-aware timestamps, colon and compact offsets,
// with and without fractional seconds.
var offsetLayouts = []string{
	"2006-01-02T15:04:05-07:00",
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999-0700",
}

// Layouts tried for offset-naive timestamps, interpreted as UTC.
var naiveLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999999",
}

// ToISO formats Unix milliseconds as "2006-01-02T15:04:05Z": UTC, second
// precision, no fractional part. Rendering never fails; an epoch value
// outside the four-digit-year range maps to the Unix epoch string.
func ToISO(ms int64) string {
	t := time.UnixMilli(ms).UTC()
	if t.Year() < 1 || t.Year() > 9999 {
		return epochISO
	}
	return t.Format("2006-01-02T15:04:05") + "Z"
}

// FromISO parses an ISO-8601 timestamp to Unix milliseconds. Accepted, in
// order of attempt: offset-aware forms ("+01:00", "+0100", fractional
// variants), the "Z" suffix form, and offset-naive forms read as UTC. A
// space separator is normalized to "T" first. Sub-second precision is
// truncated, matching ToISO.
func FromISO(s string) (int64, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(s), " ", "T")

	for _, layout := range offsetLayouts {
		if t, err := time.Parse(layout, normalized); err == nil {
			return t.UnixMilli(), nil
		}
	}

	// "Z" is not a numeric offset token, so the layouts above reject it.
	// Rewrite it as an explicit zero offset and retry.
	utcNormalized := strings.ReplaceAll(normalized, "Z", "+00:00")
	for _, layout := range offsetLayouts {
		if t, err := time.Parse(layout, utcNormalized); err == nil {
			return t.UnixMilli(), nil
		}
	}

	naive := strings.TrimSuffix(normalized, "Z")
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, naive, time.UTC); err == nil {
			return t.UnixMilli(), nil
		}
	}

	return 0, &core.TimestampError{Value: s}
}
