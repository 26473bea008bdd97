package clix

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appendMarker(marker string) Extension {
	return Extension{
		Priority: DefaultPriority,
		Extend: func(cmd Command) Command {
			cmd.ShortHelp += marker
			return cmd
		},
	}
}

func TestPipelineExtend(t *testing.T) {
	t.Parallel()

	t.Run("higher priority applies first", func(t *testing.T) {
		t.Parallel()
		first := appendMarker("A")
		first.Priority = DefaultPriority + 1
		last := appendMarker("C")
		last.Priority = 0

		// Declared out of order on purpose.
		p := NewPipeline(last, appendMarker("B"), first)
		got := p.Extend(Command{Name: "root"})
		assert.Equal(t, "ABC", got.ShortHelp)
	})
	t.Run("ties keep declaration order", func(t *testing.T) {
		t.Parallel()
		p := NewPipeline(appendMarker("a"), appendMarker("b"), appendMarker("c"))
		got := p.Extend(Command{Name: "root"})
		assert.Equal(t, "abc", got.ShortHelp)
	})
	t.Run("matches manual composition", func(t *testing.T) {
		t.Parallel()
		e1 := appendMarker("1")
		e2 := appendMarker("2")
		manual := e2.Extend(e1.Extend(Command{Name: "root"}))
		piped := NewPipeline(e1, e2).Extend(Command{Name: "root"})
		assert.Equal(t, manual, piped)
	})
	t.Run("nil extend is skipped", func(t *testing.T) {
		t.Parallel()
		p := NewPipeline(Extension{Priority: DefaultPriority}, appendMarker("x"))
		got := p.Extend(Command{Name: "root"})
		assert.Equal(t, "x", got.ShortHelp)
	})
}

func TestPipelinePostprocess(t *testing.T) {
	t.Parallel()

	t.Run("threads arguments in order", func(t *testing.T) {
		t.Parallel()
		addFlag := func(name string) Extension {
			return Extension{
				Priority: DefaultPriority,
				Postprocess: func(cmd Command, args Arguments) (Arguments, error) {
					args.Flags = append(args.Flags, ParsedFlag{Flag: Flag{Name: name}})
					return args, nil
				},
			}
		}
		p := NewPipeline(addFlag("one"), addFlag("two"))
		got, err := p.Postprocess(Command{Name: "root"}, Arguments{})
		require.NoError(t, err)
		require.Len(t, got.Flags, 2)
		assert.Equal(t, "one", got.Flags[0].Flag.Name)
		assert.Equal(t, "two", got.Flags[1].Flag.Name)
	})
	t.Run("short-circuits on first failure", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		var called int
		failing := Extension{
			Priority: DefaultPriority,
			Postprocess: func(cmd Command, args Arguments) (Arguments, error) {
				return args, boom
			},
		}
		counting := Extension{
			Priority: DefaultPriority,
			Postprocess: func(cmd Command, args Arguments) (Arguments, error) {
				called++
				return args, nil
			},
		}
		p := NewPipeline(failing, counting)
		_, err := p.Postprocess(Command{Name: "root"}, Arguments{})
		require.ErrorIs(t, err, boom)
		assert.Equal(t, 0, called, "extensions after a failure must never run")
	})
	t.Run("receives the final command as context", func(t *testing.T) {
		t.Parallel()
		var seen string
		probe := Extension{
			Priority: DefaultPriority,
			Postprocess: func(cmd Command, args Arguments) (Arguments, error) {
				seen = cmd.ShortHelp
				return args, nil
			},
		}
		p := NewPipeline(probe, appendMarker("!"))
		final := p.Extend(Command{Name: "root"})
		_, err := p.Postprocess(final, Arguments{})
		require.NoError(t, err)
		assert.Equal(t, "!", seen)
	})
}
