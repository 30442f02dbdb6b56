// Package server runs the HTTP API of the credential service.
//
// It owns the listener lifecycle: startup, signal handling and a graceful
// shutdown bounded by the configured timeout.
package server
