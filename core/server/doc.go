// Package server holds the HTTP server configuration.
//
// While the start command handles the server startup, this package defines the
// listen port, read timeout and the API key protecting the sync trigger endpoints.
package server
