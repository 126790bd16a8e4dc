// Package server runs the coach-notes HTTP API: it applies the configured
// request timeout, serves until a signal or context cancellation and then
// drains in-flight requests.
package server
