// Package http implements the HTTP transport layer of the overlay server.
//
// It wires the chi router, the render and version handlers, and the
// middleware chain. Request tracing, access logging, response compression
// and panic recovery run here before a request reaches the service layer.
package http
