// Package trackstore reads and writes a module's track.json, the
// per-module record of the versions the repository manager currently
// retains for it (at most keep_size of them).
package trackstore
