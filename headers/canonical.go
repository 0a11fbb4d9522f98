package headers

import (
	"fmt"
	"strings"
)

// Canonicalize normalizes a raw header mapping into the canonical key space
// shared by every integration: keys are upper-cased with "-" replaced by
// "_", and every key other than CONTENT_TYPE and CONTENT_LENGTH gains an
// HTTP_ prefix unless it already carries one. Values are stringified.
//
// A nil or empty input yields an empty map, never an error. Two raw keys
// that collapse to the same canonical key are last-write-wins. The
// transform is idempotent: canonical keys pass through unchanged.
func Canonicalize(input map[string]any) map[string]string {
	canonical := map[string]string{}
	if len(input) == 0 {
		return canonical
	}
	for raw, value := range input {
		key := strings.ReplaceAll(strings.ToUpper(raw), "-", "_")
		if key != "CONTENT_TYPE" && key != "CONTENT_LENGTH" && !strings.HasPrefix(key, "HTTP_") {
			key = "HTTP_" + key
		}
		canonical[key] = stringify(value)
	}
	return canonical
}

func stringify(value any) string {
	if typed, ok := value.(string); ok {
		return typed
	}
	return fmt.Sprint(value)
}

// Lookup finds a header value case-insensitively and delimiter-insensitively
// ("-" and "_" are equivalent). The boolean reports presence so callers can
// distinguish an absent header from one supplied empty.
func Lookup(headers map[string]string, key string) (string, bool) {
	if len(headers) == 0 {
		return "", false
	}
	want := lookupKey(key)
	for existing, value := range headers {
		if lookupKey(existing) == want {
			return value, true
		}
	}
	return "", false
}

func lookupKey(key string) string {
	key = strings.ToUpper(strings.TrimSpace(key))
	return strings.ReplaceAll(key, "-", "_")
}
