// Package server wires and runs the overlay server's HTTP transport.
//
// It owns the server lifecycle: startup, signal handling and graceful
// shutdown bounded by the configured timeout.
package server
