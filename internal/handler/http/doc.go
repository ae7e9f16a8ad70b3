// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as request tracing, access logging, CORS,
// metrics, and response compression are handled in this package before
// requests are delegated to the service layer.
//
// The GET generate route carries both secrets in its path, so nothing in this
// package logs or labels metrics with the raw request URI. The matched route
// pattern is used instead.
package http
