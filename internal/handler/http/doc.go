// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Session restoration, request validation, logging,
// tracing, and error normalization concerns are all handled at this layer
// before requests are forwarded to the service layer.
package http
