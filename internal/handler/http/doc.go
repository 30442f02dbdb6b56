// Package http implements the REST transport of the credential service.
//
// It exposes route wiring, request handlers and middleware. Authentication,
// request tracing, access logging and response compression happen here
// before requests are delegated to the service layer. Service errors are
// mapped onto status codes in errors_mapper.go.
package http
