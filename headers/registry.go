package headers

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// DeriveFunc maps a fixture name to the HTTP headers that accompany it.
type DeriveFunc func(fixtureName string) map[string]string

// FixtureRegistry maps integration names to statically registered header
// derivations. Integrations register at startup; fixture-driven tests then
// resolve the headers that go with a given fixture without any runtime
// discovery.
type FixtureRegistry struct {
	mu          sync.RWMutex
	derivations map[string]DeriveFunc
}

func NewFixtureRegistry() *FixtureRegistry {
	return &FixtureRegistry{derivations: make(map[string]DeriveFunc)}
}

func (r *FixtureRegistry) Register(integration string, derive DeriveFunc) error {
	if r == nil {
		return fmt.Errorf("headers: fixture registry is nil")
	}
	if derive == nil {
		return fmt.Errorf("headers: derive func is nil")
	}
	name := strings.TrimSpace(strings.ToLower(integration))
	if name == "" {
		return fmt.Errorf("headers: integration name is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.derivations[name]; exists {
		return fmt.Errorf("headers: derivation already registered: %s", name)
	}
	r.derivations[name] = derive
	return nil
}

// Headers resolves the fixture headers for an integration. Integrations
// without a registered derivation get an empty header set, not an error.
func (r *FixtureRegistry) Headers(integration string, fixtureName string) map[string]string {
	if r == nil {
		return map[string]string{}
	}
	name := strings.TrimSpace(strings.ToLower(integration))
	r.mu.RLock()
	derive, ok := r.derivations[name]
	r.mu.RUnlock()
	if !ok || derive == nil {
		return map[string]string{}
	}
	derived := derive(fixtureName)
	if derived == nil {
		return map[string]string{}
	}
	return derived
}

func (r *FixtureRegistry) List() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	names := make([]string, 0, len(r.derivations))
	for name := range r.derivations {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

// FromFilename builds the common derivation for integrations whose event
// type header can be read straight off the fixture name: fixtures named
// "event_type__details" (or just "event_type") map to a single header.
func FromFilename(headerKey string) DeriveFunc {
	return func(fixtureName string) map[string]string {
		eventType := fixtureName
		if idx := strings.Index(fixtureName, "__"); idx >= 0 {
			eventType = fixtureName[:idx]
		}
		return map[string]string{headerKey: eventType}
	}
}
