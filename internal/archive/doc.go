// Package archive reads and writes module zip archives: extracting the
// embedded module.prop manifest into an [model.Origin], and packaging a
// directory tree into a zip using [archive/zip]'s Stored method, the way a
// module author's own build would produce one.
package archive
