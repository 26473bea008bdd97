package clix

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

// RunOptions specifies options for running a command.
type RunOptions struct {
	// Stdin, Stdout, and Stderr are the standard input, output, and error
	// streams for the command. Any nil stream falls back to the corresponding
	// [os.Stdin], [os.Stdout], or [os.Stderr].
	Stdin          io.Reader
	Stdout, Stderr io.Writer
}

// Run threads the parse result through the pipeline's postprocess phase and
// then dispatches the selected command's Exec. The pipeline must be the one
// whose Extend produced the command tree that was parsed; it may be nil when no
// extensions are in play.
//
// A help request renders the selected command's usage and returns nil. A
// postprocess failure is returned as-is for the caller to surface; the command
// is not dispatched.
func Run(ctx context.Context, result *Result, pipeline *Pipeline, options *RunOptions) error {
	if result == nil {
		return errors.New("command has not been parsed")
	}
	options = checkAndSetRunOptions(options)

	if result.Help {
		fmt.Fprintln(options.Stdout, Usage(result.Command))
		return nil
	}

	// Postprocess runs against the fully extended root, not the selection: an
	// extension's flag annotations and environment bindings live on the command
	// the pipeline extended, even when a subcommand was selected.
	args := result.Args
	if pipeline != nil {
		var err error
		args, err = pipeline.Postprocess(result.Root, args)
		if err != nil {
			return err
		}
	}

	if result.Command.Exec == nil {
		// A root command acting purely as a subcommand container prints help
		// instead of failing.
		if len(result.Path) == 1 && len(result.Command.SubCommands) > 0 {
			fmt.Fprintln(options.Stdout, Usage(result.Command))
			return nil
		}
		return &NoExecError{Path: result.Path}
	}

	s := &State{
		Args:   args.Positional,
		Flags:  args,
		Path:   result.Path,
		Stdin:  options.Stdin,
		Stdout: options.Stdout,
		Stderr: options.Stderr,
	}
	return result.Command.Exec(ctx, s)
}

// ParseAndRun extends the root command with the pipeline, parses the arguments
// against the extended tree, and runs the selection. A convenience function
// combining [Pipeline.Extend], [Parse], and [Run]; see those for details.
func ParseAndRun(
	ctx context.Context,
	root Command,
	pipeline *Pipeline,
	args []string,
	options *RunOptions,
) error {
	if pipeline != nil {
		root = pipeline.Extend(root)
	}
	result, err := Parse(root, args)
	if err != nil {
		return err
	}
	return Run(ctx, result, pipeline, options)
}

func checkAndSetRunOptions(opt *RunOptions) *RunOptions {
	if opt == nil {
		opt = &RunOptions{}
	}
	if opt.Stdin == nil {
		opt.Stdin = os.Stdin
	}
	if opt.Stdout == nil {
		opt.Stdout = os.Stdout
	}
	if opt.Stderr == nil {
		opt.Stderr = os.Stderr
	}
	return opt
}
