package iupac

import (
	"errors"
	"fmt"
)

// Name rejection reasons. A ParseError wraps exactly one of these.
var (
	ErrUnrecognizedInput  = errors.New("iupac: unrecognized input")
	ErrUnbalancedBrackets = errors.New("iupac: unbalanced brackets")
	ErrUnbalancedStack    = errors.New("iupac: unbalanced stack")
	ErrMissingPosition    = errors.New("iupac: missing indicated hydrogen position")
	ErrUnexpectedLocant   = errors.New("iupac: unexpected locant in brackets")
	ErrExpectedMolecule   = errors.New("iupac: expected a molecule")
	ErrExpectedGroup      = errors.New("iupac: expected a substituent group")
)

// ErrBuild wraps graph failures for a name that parsed but names an
// impossible structure.
var ErrBuild = errors.New("iupac: cannot build graph")

// ErrIncomplete is wrapped by ErrBuild when a name describes a substituent
// rather than a whole molecule.
var ErrIncomplete = errors.New("iupac: molecule has unused free valences")

// ErrMalformedTree is returned when an s-expression does not describe a tree.
var ErrMalformedTree = errors.New("iupac: malformed tree")

// ParseError describes why a name was rejected.
type ParseError struct {
	Name   string // normalized name
	Detail string // remaining input or stack dump
	Err    error
}

func (e *ParseError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%v in %q", e.Err, e.Name)
	}
	return fmt.Sprintf("%v in %q: %s", e.Err, e.Name, e.Detail)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
