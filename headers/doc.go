// Package headers normalizes and extracts inbound webhook headers.
//
// Canonicalize folds arbitrary key casing and delimiters into a single
// canonical key space so per-integration handlers can look headers up
// without caring how the third-party service spelled them. Extractor adds
// the owner-notification side effect for headers an integration requires,
// and FixtureRegistry holds the per-integration header derivations used by
// fixture-driven tests.
package headers
