// Package app contains the core application logic. It owns the logger and
// runs the three kinds of work the binaries expose: square-solver batches,
// life runs and declarative scenarios, decoupled from flag parsing and
// process exit codes.
package app
