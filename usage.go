package clix

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/mfridman/clix/pkg/textutil"
)

const helpWidth = 80

// Usage renders the help text for a command: short help, usage line, long-form
// help, a name-sorted subcommand listing, and an aligned flag listing. Flag
// annotations added by extensions ([Required], defaults, environment variables)
// appear here because they live in the flag's usage string by the time help is
// rendered.
func Usage(c Command) string {
	var b strings.Builder

	if c.ShortHelp != "" {
		b.WriteString(c.ShortHelp)
		b.WriteString("\n\n")
	}

	b.WriteString("Usage:\n  ")
	usage := c.Name
	if len(c.Flags) > 0 {
		usage += " [flags]"
	}
	if len(c.SubCommands) > 0 {
		usage += " <command>"
	}
	b.WriteString(usage)
	b.WriteString("\n")

	if c.LongHelp != "" {
		b.WriteString("\n")
		b.WriteString(c.LongHelp)
		b.WriteString("\n")
	}

	if len(c.SubCommands) > 0 {
		b.WriteString("\nAvailable Commands:\n")
		sorted := slices.Clone(c.SubCommands)
		slices.SortFunc(sorted, func(a, b Command) int {
			return cmp.Compare(a.Name, b.Name)
		})
		maxLen := 0
		for _, sub := range sorted {
			maxLen = max(maxLen, len(sub.Name))
		}
		for _, sub := range sorted {
			writeEntry(&b, sub.Name, sub.ShortHelp, maxLen)
		}
	}

	if len(c.Flags) > 0 {
		b.WriteString("\nFlags:\n")
		sorted := slices.Clone(c.Flags)
		slices.SortFunc(sorted, func(a, b Flag) int {
			return cmp.Compare(a.Name, b.Name)
		})
		maxLen := 0
		for _, f := range sorted {
			maxLen = max(maxLen, len(f.Name)+1)
		}
		for _, f := range sorted {
			writeEntry(&b, "-"+f.Name, f.Usage, maxLen)
		}
	}

	if len(c.SubCommands) > 0 {
		fmt.Fprintf(&b, "\nUse \"%s [command] --help\" for more information about a command.\n", c.Name)
	}

	return strings.TrimRight(b.String(), "\n")
}

// writeEntry writes one aligned name/description row, wrapping the description
// into the remaining width.
func writeEntry(b *strings.Builder, name, description string, maxLen int) {
	if description == "" {
		fmt.Fprintf(b, "  %s\n", name)
		return
	}
	nameWidth := maxLen + 4
	wrapWidth := helpWidth - nameWidth

	lines := textutil.Wrap(description, wrapWidth)
	// A whitespace-only description wraps to no lines at all.
	if len(lines) == 0 {
		fmt.Fprintf(b, "  %s\n", name)
		return
	}
	padding := strings.Repeat(" ", maxLen-len(name)+4)
	fmt.Fprintf(b, "  %s%s%s\n", name, padding, lines[0])

	indent := strings.Repeat(" ", nameWidth+2)
	for _, line := range lines[1:] {
		fmt.Fprintf(b, "%s%s\n", indent, line)
	}
}
