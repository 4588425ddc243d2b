// Package api handles incoming HTTP requests, routing, and response
// formatting for both services: the stateless signup/login endpoints of the
// auth service and the case tracking endpoints of the case service. It acts
// as an adapter between external clients and the storage layer, translating
// HTTP concerns to store operations.
package api
