package markdown

import (
	"errors"
	"math"
	"testing"

	"github.com/aretw0/notedav/pkg/core"
)

// 2026-02-04T10:25:29Z
const sampleMillis = int64(1770200729000)

func TestToISO(t *testing.T) {
	if got := ToISO(sampleMillis); got != "2026-02-04T10:25:29Z" {
		t.Errorf("ToISO = %q, want %q", got, "2026-02-04T10:25:29Z")
	}
}

func TestToISOTruncatesMilliseconds(t *testing.T) {
	if got := ToISO(sampleMillis + 186); got != "2026-02-04T10:25:29Z" {
		t.Errorf("ToISO = %q, want sub-second part truncated", got)
	}
}

func TestToISONeverFails(t *testing.T) {
	tests := []struct {
		name string
		ms   int64
		want string
	}{
		{"zero", 0, "1970-01-01T00:00:00Z"},
		{"negative", -86400000, "1969-12-31T00:00:00Z"},
		{"max int64", math.MaxInt64, "1970-01-01T00:00:00Z"},
		{"min int64", math.MinInt64, "1970-01-01T00:00:00Z"},
		{"far future", 400000000000000000, "1970-01-01T00:00:00Z"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ToISO(tc.ms); got != tc.want {
				t.Errorf("ToISO(%d) = %q, want %q", tc.ms, got, tc.want)
			}
		})
	}
}

func TestFromISOFormats(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"2026-02-04T10:25:29Z", sampleMillis},
		{"2026-02-04T10:25:29+01:00", sampleMillis - 3600000},
		{"2026-02-04T10:25:29+0100", sampleMillis - 3600000},
		{"2026-02-04T10:25:29.123Z", sampleMillis + 123},
		{"2026-02-04T10:25:29.123+01:00", sampleMillis - 3600000 + 123},
		{"2026-02-04 10:25:29", sampleMillis},
		{"2026-02-04T10:25:29", sampleMillis},
		{"2026-02-04T10:25:29.500", sampleMillis + 500},
		{"  2026-02-04T10:25:29Z  ", sampleMillis},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := FromISO(tc.in)
			if err != nil {
				t.Fatalf("FromISO(%q) failed: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("FromISO(%q) = %d, want %d", tc.in, got, tc.want)
			}
		})
	}
}

func TestFromISOInvalid(t *testing.T) {
	for _, in := range []string{"", "not-a-date", "2026-13-99", "10:25:29"} {
		_, err := FromISO(in)
		if err == nil {
			t.Errorf("FromISO(%q) succeeded, want error", in)
			continue
		}
		var tsErr *core.TimestampError
		if !errors.As(err, &tsErr) {
			t.Errorf("FromISO(%q) error type %T, want *core.TimestampError", in, err)
		} else if tsErr.Value != in {
			t.Errorf("TimestampError.Value = %q, want %q", tsErr.Value, in)
		}
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	// Whole-second values must survive ToISO -> FromISO exactly.
	values := []int64{0, 1000, sampleMillis, -86400000, 253402300799000}
	for _, ms := range values {
		iso := ToISO(ms)
		back, err := FromISO(iso)
		if err != nil {
			t.Fatalf("FromISO(%q) failed: %v", iso, err)
		}
		if back != ms {
			t.Errorf("round trip %d -> %q -> %d", ms, iso, back)
		}
	}
}
