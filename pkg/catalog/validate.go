package catalog

import (
	"fmt"

	"github.com/OpenTraceLab/iupac/pkg/inchi"
	"github.com/OpenTraceLab/iupac/pkg/iupac"
)

// Result is the outcome of cross-validating one compound.
type Result struct {
	Compound Compound
	Formula  string // formula of the graph built from the name
	Isomers  int    // mobile hydrogen placements of the InChI
	Matched  bool
	Err      error
}

// Validate builds the compound's graph from its name and checks it against
// every hydrogen placement of its InChI.
func Validate(c Compound, tr *iupac.Translator) Result {
	res := Result{Compound: c}
	if tr == nil {
		tr = iupac.NewTranslator(nil)
	}

	g, err := tr.Translate(c.IUPAC)
	if err != nil {
		res.Err = err
		return res
	}
	res.Formula = g.Formula()

	if c.InChI == "" {
		res.Err = fmt.Errorf("%w: %s has no InChI", ErrInvalidCompound, c.Name)
		return res
	}
	in, err := inchi.Parse(c.InChI)
	if err != nil {
		res.Err = err
		return res
	}
	res.Isomers = in.CountIsomers()
	res.Matched = in.Matches(g)
	return res
}

// ValidateAll validates every compound of r in order.
func ValidateAll(r Repository, tr *iupac.Translator) []Result {
	var results []Result
	for _, c := range r.All() {
		results = append(results, Validate(c, tr))
	}
	return results
}
