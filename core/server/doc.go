// Package server holds the HTTP server configuration and constants.
//
// While the main application entry point handles the server startup, this package
// defines the configuration structures and valid values for server settings,
// such as the supported reconcile scheduling modes.
//
// # Configuration
//
// The Config struct defines the HTTP port, API key, and the reconcile mode
// (parallel or sequential warehouse processing).
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings
// and by the reconcile orchestrator to decide its scheduling strategy.
package server
