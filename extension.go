package clix

import "sort"

// DefaultPriority is the priority assigned to extensions that don't care about
// their position in the pipeline. Extensions apply in descending priority order,
// so an extension with a lower value runs after the default-priority ones; see
// [HelpSubCommand] for why that matters.
const DefaultPriority = 100

// Extension augments a command in two phases. The structural phase (Extend) runs
// once at startup and rewrites the command's static definition before help text
// is rendered. The postprocess phase (Postprocess) runs after the parser and may
// transform or validate the parse result, failing with a user-facing error.
type Extension struct {
	// Priority orders extensions within a [Pipeline]: higher values apply
	// earlier, ties keep declaration order. Zero is a meaningful priority; use
	// [DefaultPriority] for order-insensitive extensions.
	Priority int

	// Extend rewrites the command's static definition. It must be a pure
	// transform returning a derived copy. May be nil.
	Extend func(Command) Command

	// Postprocess transforms or validates the parse result. It receives the
	// final, fully extended command as read-only context. Returning an error
	// aborts the remainder of the chain. May be nil.
	Postprocess func(cmd Command, args Arguments) (Arguments, error)
}

// Pipeline is an ordered collection of extensions. The zero value is unusable;
// construct with [NewPipeline].
type Pipeline struct {
	extensions []Extension
}

// NewPipeline orders the given extensions by descending priority, keeping
// declaration order for equal priorities, and returns a pipeline that applies
// them in that order in both phases.
//
// Declaration order matters for equal priorities: extensions that supply flag
// values ([DefaultValues], [EnvVars]) must be declared before extensions that
// validate them ([Require]), or validation runs against incomplete data.
func NewPipeline(extensions ...Extension) *Pipeline {
	ordered := make([]Extension, len(extensions))
	copy(ordered, extensions)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority > ordered[j].Priority
	})
	return &Pipeline{extensions: ordered}
}

// Extend folds every extension's structural transform over cmd in pipeline
// order, each step's output becoming the next step's input. Structural
// transforms are total; the only way this fails is a panic from a misconfigured
// built-in extension, which indicates a bug in the CLI's own definition.
func (p *Pipeline) Extend(cmd Command) Command {
	for _, ext := range p.extensions {
		if ext.Extend == nil {
			continue
		}
		cmd = ext.Extend(cmd)
	}
	return cmd
}

// Postprocess folds every extension's postprocess transform over args in
// pipeline order. Each step receives the final extended command as context plus
// the previous step's output. The first error short-circuits the chain;
// remaining extensions never run.
func (p *Pipeline) Postprocess(cmd Command, args Arguments) (Arguments, error) {
	for _, ext := range p.extensions {
		if ext.Postprocess == nil {
			continue
		}
		var err error
		args, err = ext.Postprocess(cmd, args)
		if err != nil {
			return args, err
		}
	}
	return args, nil
}
