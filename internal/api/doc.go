// Package api handles incoming HTTP requests, request validation, and
// response formatting. It acts as an adapter between external clients and
// the brewing calculations: query parameters are passed as raw text to the
// textual entry points, which are the validation boundary for user input.
package api
