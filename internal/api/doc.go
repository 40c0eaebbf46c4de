// Package api handles incoming HTTP requests, request validation, and
// response formatting. It acts as an adapter between HTTP clients and the
// generation service, translating HTTP concerns to generation calls and
// generation failures back to status codes and error bodies.
package api
