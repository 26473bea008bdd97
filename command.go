package clix

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Command represents a CLI command or subcommand within the application's command
// hierarchy. Commands are plain values: extensions and the parser derive modified
// copies instead of mutating a shared tree.
type Command struct {
	// Name is always a single word identifying the command in the hierarchy and
	// in help text.
	Name string

	// ShortHelp is a brief description of the command's purpose, displayed at the
	// top of the help text.
	ShortHelp string

	// LongHelp is optional long-form text rendered after the usage line. Built-in
	// extensions append sections to it, see [LongDescription].
	LongHelp string

	// Version is an optional version string. Required by [VersionSubCommand].
	Version string

	// Flags holds the command's flag declarations. Names must be unique within a
	// single command.
	Flags []Flag

	// SubCommands is a list of nested commands that exist under this command.
	SubCommands []Command

	// Exec defines the command's execution logic. It receives the execution
	// [State] and returns an error if execution fails.
	Exec ExecFunc
}

// ExecFunc is the signature of a command's execution logic.
type ExecFunc func(ctx context.Context, s *State) error

// Flag declares a named, described input a command accepts. Values are strings;
// interpretation is left to the command's Exec.
type Flag struct {
	// Name is the flag's long name, unique within a command's flag list.
	Name string

	// Usage describes the flag in help text. Built-in extensions annotate it with
	// default, required, and environment markers.
	Usage string

	// EnvVar optionally names an environment variable that may supply the flag's
	// value, see [EnvVars].
	EnvVar string
}

// clone returns a copy of c whose flag and subcommand slices are safe to modify
// without affecting the original.
func (c Command) clone() Command {
	c.Flags = slices.Clone(c.Flags)
	c.SubCommands = slices.Clone(c.SubCommands)
	return c
}

// flagIndex returns the position of the named flag, or -1.
func (c Command) flagIndex(name string) int {
	for i, f := range c.Flags {
		if f.Name == name {
			return i
		}
	}
	return -1
}

// findSubCommand searches for a subcommand by name. Reports false if no
// subcommand with the given name exists.
func (c Command) findSubCommand(name string) (Command, bool) {
	for _, sub := range c.SubCommands {
		if strings.EqualFold(sub.Name, name) {
			return sub, true
		}
	}
	return Command{}, false
}

func validateCommand(c Command, path []string) error {
	if c.Name == "" {
		if len(path) == 0 {
			return errors.New("root command has no name")
		}
		return fmt.Errorf("subcommand in path %q has no name", strings.Join(path, " "))
	}
	if strings.Contains(c.Name, " ") {
		return fmt.Errorf("command name %q contains spaces", c.Name)
	}
	seen := make(map[string]bool, len(c.Flags))
	for _, f := range c.Flags {
		if f.Name == "" {
			return fmt.Errorf("command %q declares a flag with no name", c.Name)
		}
		if seen[f.Name] {
			return fmt.Errorf("command %q declares flag %q more than once", c.Name, f.Name)
		}
		seen[f.Name] = true
	}

	currentPath := append(path, c.Name)
	for _, sub := range c.SubCommands {
		if err := validateCommand(sub, currentPath); err != nil {
			return err
		}
	}
	return nil
}
