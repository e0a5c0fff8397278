// Package assets exposes the asset loader over HTTP.
//
// It loads JSON and YAML documents from any registered source into a shared
// document storage and lets clients poll the outcome by handle id. A background
// loop applies queued results and, while hot reload is enabled, re-imports
// documents whose backing data changed.
//
// # Components
//
//   - Service: Issues loads, applies results and reports status.
//   - Handler: Exposes HTTP endpoints.
//   - Feature: Registers the routes with the application.
//
// # HTTP Endpoints
//
//   - POST /assets/load : Queue a document load ({"name", "source", "format"}).
//   - GET /assets/status : Progress counters, cache size and sources.
//   - PUT /assets/hot-reload?enabled=true : Toggle reload records for new loads.
//   - GET /assets/:id : State and data of one handle.
package assets
