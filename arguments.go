package clix

// Source records where a parsed flag's value came from. When several sources
// supply the same flag, reconciliation keeps exactly one value per flag with
// user-supplied values winning over environment variables and defaults.
type Source int

const (
	// SourceUser marks a value the user supplied on the command line.
	SourceUser Source = iota
	// SourceDefault marks a value synthesized by [DefaultValues].
	SourceDefault
	// SourceEnv marks a value read from an environment variable by [EnvVars].
	SourceEnv
)

func (s Source) String() string {
	switch s {
	case SourceUser:
		return "user"
	case SourceDefault:
		return "default"
	case SourceEnv:
		return "env"
	default:
		return "unknown"
	}
}

// ParsedFlag is one reconciled flag value. At most one ParsedFlag per flag name
// survives reconciliation.
type ParsedFlag struct {
	Flag   Flag
	Value  string
	Source Source
}

// Arguments is the result of parsing raw input against a command. Extensions may
// derive transformed copies in their postprocess phase; after the pipeline
// completes the value is final.
type Arguments struct {
	// Flags holds one entry per flag that received a value, in reconciliation
	// order: user-supplied first, then extension-supplied.
	Flags []ParsedFlag

	// Positional contains the remaining arguments after flag parsing.
	Positional []string
}

// Lookup returns the parsed flag with the given name.
func (a Arguments) Lookup(name string) (ParsedFlag, bool) {
	for _, pf := range a.Flags {
		if pf.Flag.Name == name {
			return pf, true
		}
	}
	return ParsedFlag{}, false
}

// Value returns the value of the named flag, or the empty string if the flag
// received no value from any source.
func (a Arguments) Value(name string) string {
	pf, _ := a.Lookup(name)
	return pf.Value
}

// Has reports whether the named flag received a value from any source.
func (a Arguments) Has(name string) bool {
	_, ok := a.Lookup(name)
	return ok
}
