// Package events decides whether an inbound webhook event should be
// processed, based on caller-supplied glob pattern lists.
package events

import (
	"fmt"
	"net/http"

	"github.com/gobwas/glob"
	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-webhooks/core"
)

// FilterSpec carries the user-configured include and exclude patterns for
// one request. A zero spec processes everything.
type FilterSpec struct {
	Only    []string
	Exclude []string
}

func (s FilterSpec) Allows(eventType string) (bool, error) {
	return ShouldProcess(eventType, s.Only, s.Exclude)
}

// ShouldProcess reports whether eventType passes the configured filters.
// Matching uses shell-style glob semantics: "*" spans any run of
// characters, "?" one character, "[...]" a character class.
//
// An empty eventType means the integration supplied no event type, so no
// filtering is possible and the event passes. A nil only list means no
// allow-list was configured; a non-nil empty only list has zero patterns
// for the event to match and therefore rejects every event. The exclude
// list only rejects when it is non-empty and a pattern matches. Pattern
// order never affects the outcome.
func ShouldProcess(eventType string, only []string, exclude []string) (bool, error) {
	if eventType == "" {
		return true, nil
	}
	if only != nil {
		matched, err := matchesAny(eventType, only)
		if err != nil {
			return false, err
		}
		if !matched {
			return false, nil
		}
	}
	if len(exclude) > 0 {
		matched, err := matchesAny(eventType, exclude)
		if err != nil {
			return false, err
		}
		if matched {
			return false, nil
		}
	}
	return true, nil
}

func matchesAny(eventType string, patterns []string) (bool, error) {
	for _, pattern := range patterns {
		matcher, err := glob.Compile(pattern)
		if err != nil {
			return false, core.WrapError(
				err,
				goerrors.CategoryBadInput,
				fmt.Sprintf("events: malformed filter pattern %q", pattern),
				http.StatusBadRequest,
				core.WebhookErrorBadInput,
				map[string]any{"pattern": pattern},
			)
		}
		if matcher.Match(eventType) {
			return true, nil
		}
	}
	return false, nil
}
