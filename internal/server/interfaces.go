package server

import "context"

// Server runs the notes API until it is told to stop.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT arrives, then drains
	// in-flight requests.
	RunServer() error

	// Run serves until ctx is done. A listener failure is returned at once.
	Run(ctx context.Context) error
}
