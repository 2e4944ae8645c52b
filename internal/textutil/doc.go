// Package textutil holds two small, independent string helpers used by
// the update engine: sniffing placeholder HTML bodies returned by broken
// changelog endpoints, and canonicalizing a module's display version
// string.
package textutil
