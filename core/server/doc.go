// Package server holds the HTTP server configuration.
//
// While the serve command handles the server startup, this package defines the
// configuration structure for the listen port, the API key and how often queued
// load results are applied.
package server
