// Package handler is the entry point for business logic after the router.
//
// Handlers parse and validate requests, call the repositories, and shape
// the responses. Errors are returned, not logged; the global error handler
// owns translation and logging.
package handler
