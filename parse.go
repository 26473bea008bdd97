package clix

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/mfridman/xflag"

	"github.com/mfridman/clix/pkg/suggest"
)

// Result holds the outcome of parsing raw arguments against a command tree.
type Result struct {
	// Root is the root command the arguments were parsed against, in its final
	// extended form. The pipeline's postprocess phase receives it as context,
	// no matter which command was selected.
	Root Command

	// Command is the selected command.
	Command Command

	// Path is the chain of command names from the root to the selected command.
	Path []string

	// Args holds the user-supplied flag values and positional arguments. Run
	// threads it through the pipeline's postprocess phase before dispatch.
	Args Arguments

	// Help records that the user asked for help with -h or --help. Run renders
	// the selected command's usage instead of dispatching.
	Help bool
}

// Parse traverses the command hierarchy and parses arguments, typically
// os.Args[1:], against it. The command should already be in its final form,
// see [Pipeline.Extend].
//
// Every flag the user actually set is recorded as a SourceUser [ParsedFlag];
// defaults and environment-derived values are merged in later by the pipeline's
// postprocess phase. A -h or --help argument anywhere selects help output
// rather than parsing further. Selecting a subcommand named "help" or "version"
// additionally records a marker flag of the same name, so required-flag
// validation never fires on a help or version request.
func Parse(root Command, args []string) (*Result, error) {
	if err := validateCommand(root, nil); err != nil {
		return nil, fmt.Errorf("failed to parse: %w", err)
	}

	// Split args at the -- delimiter if present.
	argsToParse := args
	var remainingArgs []string
	for i, arg := range args {
		if arg == "--" {
			argsToParse = args[:i]
			remainingArgs = args[i+1:]
			break
		}
	}

	current := root
	path := []string{root.Name}
	chain := []Command{root}

	// Walk subcommands by the leading non-flag tokens. Help requests are
	// captured here, before any flag parsing can fail on them.
	for _, arg := range argsToParse {
		if arg == "-h" || arg == "--h" || arg == "-help" || arg == "--help" {
			return &Result{Root: root, Command: current, Path: path, Help: true}, nil
		}
		if strings.HasPrefix(arg, "-") {
			continue
		}
		if len(current.SubCommands) == 0 {
			break
		}
		sub, ok := current.findSubCommand(arg)
		if !ok {
			return nil, unknownCommandError(current, arg)
		}
		current = sub
		path = append(path, sub.Name)
		chain = append(chain, sub)
	}

	// Register the chain's flags deepest-first so the selected command wins any
	// name clash with an ancestor.
	fset := flag.NewFlagSet(current.Name, flag.ContinueOnError)
	fset.SetOutput(io.Discard)
	declared := make(map[string]Flag)
	for i := len(chain) - 1; i >= 0; i-- {
		for _, f := range chain[i].Flags {
			if fset.Lookup(f.Name) == nil {
				fset.String(f.Name, "", f.Usage)
				declared[f.Name] = f
			}
		}
	}

	if err := xflag.ParseToEnd(fset, argsToParse); err != nil {
		return nil, fmt.Errorf("command %q: %w", current.Name, err)
	}

	var parsed []ParsedFlag
	fset.Visit(func(f *flag.Flag) {
		parsed = append(parsed, ParsedFlag{
			Flag:   declared[f.Name],
			Value:  f.Value.String(),
			Source: SourceUser,
		})
	})
	if len(path) > 1 && (current.Name == "help" || current.Name == "version") {
		parsed = append(parsed, ParsedFlag{
			Flag:   Flag{Name: current.Name},
			Value:  "true",
			Source: SourceUser,
		})
	}

	// The walk consumed one leading non-flag token per traversed subcommand,
	// and those are exactly the first non-flag tokens the flag set reports.
	// Skip that many, then stitch on everything after the -- delimiter. A
	// positional that happens to repeat a command name survives.
	positional := fset.Args()
	start := min(len(chain)-1, len(positional))
	var finalArgs []string
	finalArgs = append(finalArgs, positional[start:]...)
	finalArgs = append(finalArgs, remainingArgs...)

	return &Result{
		Root:    root,
		Command: current,
		Path:    path,
		Args:    Arguments{Flags: parsed, Positional: finalArgs},
	}, nil
}

func unknownCommandError(c Command, name string) error {
	known := make([]string, 0, len(c.SubCommands))
	for _, sub := range c.SubCommands {
		known = append(known, sub.Name)
	}
	return &UnknownCommandError{Name: name, Suggestions: suggest.FindSimilar(name, known, 3)}
}
