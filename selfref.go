package clix

import "context"

// insertFinalized appends child to parent's subcommands when the child's Exec
// must observe the parent in its final, post-insertion form. Because the tree is
// built from immutable values, the child cannot simply close over the parent it
// is being inserted into: that value does not contain the child yet.
//
// The knot is tied in two phases: the child is appended with a placeholder
// handler, the real handler is built as a closure over the post-insertion
// parent, and the child is then patched in place at the same index. The closure
// observes the finished child through the subcommand slice's shared backing
// array. It does not observe edits made by extensions applied later in the
// pipeline; those operate on the returned parent.
func insertFinalized(parent Command, child Command, exec func(parent Command) ExecFunc) Command {
	child.Exec = func(ctx context.Context, s *State) error { return nil }

	parent = parent.clone()
	parent.SubCommands = append(parent.SubCommands, child)
	idx := len(parent.SubCommands) - 1

	child.Exec = exec(parent)
	parent.SubCommands[idx] = child
	return parent
}
