// Package server runs the sandbox HTTP server.
//
// It owns the listener and the server lifecycle: startup, waiting for the
// caller's context to be cancelled, and graceful shutdown.
package server
