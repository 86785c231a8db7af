package inchi

import "errors"

var (
	ErrFormat         = errors.New("inchi: malformed identifier")
	ErrVersion        = errors.New("inchi: only standard InChI (1S) is supported")
	ErrAtomIndex      = errors.New("inchi: atom index out of range")
	ErrHydrogenCount  = errors.New("inchi: hydrogen layer does not match formula")
	ErrMobileHydrogen = errors.New("inchi: structure has mobile hydrogens")
)
