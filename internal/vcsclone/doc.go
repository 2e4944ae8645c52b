// Package vcsclone implements the git provider: cloning a repository into
// a working directory with [github.com/go-git/go-git/v5] and reporting the
// HEAD commit's timestamp, the way the update engine's other providers
// report a Last-Modified time.
package vcsclone
