// Package core holds the shared contracts of the webhook integration
// library: collaborator interfaces, the request surface handed over by
// per-integration HTTP handlers, configuration, and the typed error
// envelope every component reports failures through.
package core
