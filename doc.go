// Package clix composes command-line commands out of independently authored
// extensions. An extension may rewrite a command's static definition before help
// text is rendered, and may transform or validate the parsed arguments after the
// parser runs. Extensions are applied in a deterministic order, so defaults,
// environment-derived values, and required-flag validation reconcile predictably
// with whatever the user actually typed.
//
// The package prioritizes simplicity: commands are plain values, extensions are
// plain functions, and every transform produces a derived copy rather than
// mutating shared state.
package clix
