package core

import "testing"

func TestRedactSensitiveMap_RedactsSecretBearingKeys(t *testing.T) {
	fields := map[string]any{
		"webhook_secret": "hunter2",
		"signature":      "sha256=abc",
		"event_type":     "push",
		"nested": map[string]any{
			"api_key": "k",
			"channel": "alerts",
		},
		"list": []any{
			map[string]any{"authorization": "Bearer x", "topic": "builds"},
		},
	}

	redacted := RedactSensitiveMap(fields)
	if redacted["webhook_secret"] != RedactedValue {
		t.Fatalf("expected secret redaction, got %v", redacted["webhook_secret"])
	}
	if redacted["signature"] != RedactedValue {
		t.Fatalf("expected signature redaction")
	}
	if redacted["event_type"] != "push" {
		t.Fatalf("expected event_type untouched")
	}
	nested := redacted["nested"].(map[string]any)
	if nested["api_key"] != RedactedValue || nested["channel"] != "alerts" {
		t.Fatalf("unexpected nested redaction: %#v", nested)
	}
	item := redacted["list"].([]any)[0].(map[string]any)
	if item["authorization"] != RedactedValue || item["topic"] != "builds" {
		t.Fatalf("unexpected list redaction: %#v", item)
	}

	if fields["webhook_secret"] != "hunter2" {
		t.Fatalf("expected source map untouched")
	}
}

func TestRedactSensitiveMap_EmptyInput(t *testing.T) {
	if got := RedactSensitiveMap(nil); len(got) != 0 {
		t.Fatalf("expected empty map, got %#v", got)
	}
}
