package clix

import "io"

// State carries the execution context handed to a command's Exec. Flag values
// are already reconciled by the time Exec runs; use [Arguments.Value] to read
// them.
type State struct {
	// Args contains the positional arguments remaining after flag parsing.
	Args []string

	// Flags holds the reconciled flag values for this invocation.
	Flags Arguments

	// Path is the chain of command names from the root to the selected command.
	Path []string

	// Standard I/O streams.
	Stdin          io.Reader
	Stdout, Stderr io.Writer
}
