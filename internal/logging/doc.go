// Package logging configures the process-wide zerolog logger from a
// [model.Log] section: disabled sinks, level parsing, console vs. file
// output, and a non-blocking writer for file sinks.
package logging
