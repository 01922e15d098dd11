// Package types defines the Project record, the Observer interface, the
// board configuration, and the standard error values shared by the state
// store, the form layer, and the CLI.
package types
