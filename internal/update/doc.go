// Package update implements the per-protocol fetch, version-check, and
// retention logic that keeps a module's track.json in sync with its
// upstream provider, and fans that work out across every configured
// module.
package update
