package clix

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertFinalized(t *testing.T) {
	t.Parallel()

	parent := Command{Name: "root", SubCommands: []Command{{Name: "existing"}}}

	var captured Command
	var calls int
	final := insertFinalized(parent, Command{Name: "self"}, func(p Command) ExecFunc {
		return func(ctx context.Context, s *State) error {
			captured = p
			calls++
			return nil
		}
	})

	// The original parent is untouched.
	require.Len(t, parent.SubCommands, 1)

	require.Len(t, final.SubCommands, 2)
	child := final.SubCommands[1]
	assert.Equal(t, "self", child.Name)

	require.NoError(t, child.Exec(context.Background(), &State{}))
	require.Equal(t, 1, calls)

	// The closure observes the parent including the finished child, not the
	// placeholder: invoking the child reachable through the captured parent
	// runs the real handler again.
	require.Len(t, captured.SubCommands, 2)
	assert.Equal(t, "self", captured.SubCommands[1].Name)
	require.NoError(t, captured.SubCommands[1].Exec(context.Background(), &State{}))
	assert.Equal(t, 2, calls)
}
