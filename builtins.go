package clix

import (
	"context"
	"fmt"
	"os"

	"github.com/mfridman/clix/pkg/keyed"
)

// The built-in extensions reference flags by name at structural time. A name
// that resolves to no flag is a bug in the CLI's own definition, not bad user
// input, so they fail LOUD and EARLY with a panic instead of threading an error
// through every caller.

// Author prepends the author's name to the command's short help.
func Author(name string) Extension {
	return Extension{
		Priority: DefaultPriority,
		Extend: func(cmd Command) Command {
			cmd.ShortHelp = name + "\n" + cmd.ShortHelp
			return cmd
		},
	}
}

// LongDescription appends a DESCRIPTION section to the command's long help,
// separated from any existing content by a blank line.
func LongDescription(text string) Extension {
	return Extension{
		Priority: DefaultPriority,
		Extend: func(cmd Command) Command {
			section := "DESCRIPTION\n" + text
			if cmd.LongHelp == "" {
				cmd.LongHelp = section
			} else {
				cmd.LongHelp += "\n\n" + section
			}
			return cmd
		},
	}
}

// HelpSubCommand injects a "help" subcommand whose handler prints the parent
// command's help text.
//
// It uses priority 0 so it applies after the default-priority extensions: the
// help text it captures includes their flag annotations, and the listing
// includes the help subcommand itself.
func HelpSubCommand() Extension {
	return Extension{
		Priority: 0,
		Extend: func(cmd Command) Command {
			child := Command{
				Name:      "help",
				ShortHelp: "show help for " + cmd.Name,
			}
			return insertFinalized(cmd, child, func(parent Command) ExecFunc {
				return func(ctx context.Context, s *State) error {
					fmt.Fprintln(s.Stdout, Usage(parent))
					return nil
				}
			})
		},
	}
}

// VersionSubCommand injects a "version" subcommand whose handler prints the
// parent command's version banner. The command must declare a Version;
// attaching this extension to a versionless command panics at structural time.
func VersionSubCommand() Extension {
	return Extension{
		Priority: 0,
		Extend: func(cmd Command) Command {
			if cmd.Version == "" {
				panic(fmt.Sprintf("clix: version subcommand attached to command %q, which has no version", cmd.Name))
			}
			child := Command{
				Name:      "version",
				ShortHelp: "print the " + cmd.Name + " version",
			}
			return insertFinalized(cmd, child, func(parent Command) ExecFunc {
				return func(ctx context.Context, s *State) error {
					fmt.Fprintf(s.Stdout, "%s v%s\n", parent.Name, parent.Version)
					return nil
				}
			})
		},
	}
}

// DefaultValue pairs a flag name with the value the flag takes when neither the
// user nor the environment supplies one.
type DefaultValue struct {
	Name  string
	Value string
}

// DefaultValues supplies fallback values for existing flags. The structural
// phase annotates each flag's usage with the default; the postprocess phase
// merges one SourceDefault value per pair into the parse result, with anything
// the user supplied taking precedence. A pair naming an unknown flag panics at
// structural time.
func DefaultValues(defaults ...DefaultValue) Extension {
	return Extension{
		Priority: DefaultPriority,
		Extend: func(cmd Command) Command {
			cmd = cmd.clone()
			for _, d := range defaults {
				i := cmd.flagIndex(d.Name)
				if i < 0 {
					panic(fmt.Sprintf("clix: default value for unknown flag %q on command %q", d.Name, cmd.Name))
				}
				cmd.Flags[i].Usage += fmt.Sprintf(" [Default: `%s`]", d.Value)
			}
			return cmd
		},
		Postprocess: func(cmd Command, args Arguments) (Arguments, error) {
			synthesized := make([]ParsedFlag, 0, len(defaults))
			for _, d := range defaults {
				flag := Flag{Name: d.Name}
				if i := cmd.flagIndex(d.Name); i >= 0 {
					flag = cmd.Flags[i]
				}
				synthesized = append(synthesized, ParsedFlag{
					Flag:   flag,
					Value:  d.Value,
					Source: SourceDefault,
				})
			}
			args.Flags = keyed.UnionBy(parsedFlagName, args.Flags, synthesized)
			return args, nil
		},
	}
}

// Require marks existing flags as mandatory. The structural phase prefixes each
// flag's usage with "[Required] "; the postprocess phase fails with a
// [MissingFlagError] naming the first flag, in declaration order, that received
// no value from any source. Validation is skipped when a help or version flag
// is present, so "--help" never trips a missing-flag error. A name resolving to
// no flag panics at structural time.
//
// Declare Require after value-supplying extensions such as [DefaultValues] and
// [EnvVars], or validation runs before their values are merged in.
func Require(names ...string) Extension {
	return Extension{
		Priority: DefaultPriority,
		Extend: func(cmd Command) Command {
			cmd = cmd.clone()
			for _, name := range names {
				i := cmd.flagIndex(name)
				if i < 0 {
					panic(fmt.Sprintf("clix: required flag %q not declared on command %q", name, cmd.Name))
				}
				cmd.Flags[i].Usage = "[Required] " + cmd.Flags[i].Usage
			}
			return cmd
		},
		Postprocess: func(cmd Command, args Arguments) (Arguments, error) {
			if args.Has("help") || args.Has("version") {
				return args, nil
			}
			supplied := make([]string, 0, len(args.Flags))
			for _, pf := range args.Flags {
				supplied = append(supplied, pf.Flag.Name)
			}
			missing := keyed.DiffBy(func(name string) string { return name }, names, supplied)
			if len(missing) > 0 {
				return args, &MissingFlagError{Name: missing[0]}
			}
			return args, nil
		},
	}
}

// EnvVars lets flags that declare an EnvVar take their value from the
// environment. The structural phase annotates each such flag's usage with
// "[env: NAME]"; the postprocess phase looks up each variable and merges one
// SourceEnv value per set variable into the parse result, with user-supplied
// values taking precedence.
//
// lookup may be nil, in which case [os.LookupEnv] is used. Tests substitute a
// map-backed lookup.
func EnvVars(lookup func(string) (string, bool)) Extension {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return Extension{
		Priority: DefaultPriority,
		Extend: func(cmd Command) Command {
			cmd = cmd.clone()
			for i, f := range cmd.Flags {
				if f.EnvVar == "" {
					continue
				}
				cmd.Flags[i].Usage += fmt.Sprintf(" [env: %s]", f.EnvVar)
			}
			return cmd
		},
		Postprocess: func(cmd Command, args Arguments) (Arguments, error) {
			var fromEnv []ParsedFlag
			for _, f := range cmd.Flags {
				if f.EnvVar == "" {
					continue
				}
				if value, ok := lookup(f.EnvVar); ok {
					fromEnv = append(fromEnv, ParsedFlag{
						Flag:   f,
						Value:  value,
						Source: SourceEnv,
					})
				}
			}
			args.Flags = keyed.UnionBy(parsedFlagName, args.Flags, fromEnv)
			return args, nil
		},
	}
}

func parsedFlagName(pf ParsedFlag) string { return pf.Flag.Name }
