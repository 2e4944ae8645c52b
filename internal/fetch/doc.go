// Package fetch wraps HTTP GET requests with the status-check, streaming,
// and JSON-decode conventions the update engine needs: a transport error
// or non-200 status yields no handle and a *RequestError describing the
// failure, and an empty URL never starts a network call.
package fetch
