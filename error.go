package clix

import (
	"fmt"
	"strings"
)

// MissingFlagError is returned from the postprocess chain when a required flag
// received no value from any source. Only the first missing flag is reported
// per invocation.
type MissingFlagError struct {
	Name string
}

func (e *MissingFlagError) Error() string {
	return fmt.Sprintf("required flag %q not set", "-"+e.Name)
}

// UnknownCommandError is returned when an argument does not match any
// subcommand. Suggestions holds close matches, best first.
type UnknownCommandError struct {
	Name        string
	Suggestions []string
}

func (e *UnknownCommandError) Error() string {
	if len(e.Suggestions) > 0 {
		return fmt.Sprintf("unknown command %q. Did you mean one of these?\n\t%s",
			e.Name,
			strings.Join(e.Suggestions, "\n\t"))
	}
	return fmt.Sprintf("unknown command %q", e.Name)
}

// NoExecError is returned when the selected command has no execution function.
type NoExecError struct {
	Path []string
}

func (e *NoExecError) Error() string {
	return fmt.Sprintf("command %q has no execution function", strings.Join(e.Path, " "))
}
