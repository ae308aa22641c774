// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It
// translates the flags and positional arguments of each gridkit binary into
// the application's internal configuration.
package cli
