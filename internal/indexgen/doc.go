// Package indexgen assembles the consolidated public index (modules.json)
// from each module's track.json, qualifying version URLs with the
// repository's base URL, and reconciles modules_dir against the
// configured module list.
package indexgen
