package core

import (
	"encoding/json"
	"strconv"
	"testing"
	"time"
)

func TestUnixMillisecondsToTime_AcceptsNumericShapes(t *testing.T) {
	expected := time.Date(2026, 2, 13, 12, 0, 0, 500000000, time.UTC)
	milliseconds := expected.UnixMilli()
	rendered := strconv.FormatInt(milliseconds, 10)

	for name, value := range map[string]any{
		"int64":       milliseconds,
		"int":         int(milliseconds),
		"float64":     float64(milliseconds),
		"json number": json.Number(rendered),
		"string":      rendered,
	} {
		got, err := UnixMillisecondsToTime(value, "grafana")
		if err != nil {
			t.Fatalf("%s: convert: %v", name, err)
		}
		if !got.Equal(expected) {
			t.Fatalf("%s: expected %v, got %v", name, expected, got)
		}
		if got.Location() != time.UTC {
			t.Fatalf("%s: expected UTC time", name)
		}
	}
}

func TestUnixMillisecondsToTime_RejectsNonNumeric(t *testing.T) {
	for name, value := range map[string]any{
		"string":  "next tuesday",
		"nil":     nil,
		"bool":    true,
		"mapping": map[string]any{"ms": 1},
	} {
		_, err := UnixMillisecondsToTime(value, "grafana")
		if err == nil {
			t.Fatalf("%s: expected malformed-timestamp error", name)
		}
		if !IsMalformedTimestamp(err) {
			t.Fatalf("%s: expected malformed-timestamp classification, got %v", name, err)
		}
	}
}
