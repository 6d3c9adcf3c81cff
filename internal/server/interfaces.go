package server

import "context"

// Server defines the lifecycle contract of the sandbox server.
type Server interface {
	// Run serves requests until ctx is cancelled or serving fails, then
	// shuts the server down.
	Run(ctx context.Context) error

	// Addr is the address the server listens on. It is known only after
	// NewServer returned, which matters when the port was 0.
	Addr() string
}
