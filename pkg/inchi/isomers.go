package inchi

import (
	"github.com/OpenTraceLab/iupac/pkg/molecule"
)

// Graph builds the molecular graph of a structure without mobile hydrogens.
func (in *InChI) Graph() (*molecule.Graph, error) {
	if len(in.Mobile) != 0 {
		return nil, ErrMobileHydrogen
	}
	return in.graph(in.Hydrogens), nil
}

func (in *InChI) graph(hydrogens []int) *molecule.Graph {
	g := molecule.New()
	for _, e := range in.Atoms {
		g.AddAtom(e)
	}
	for _, b := range in.Bonds {
		g.AddBond(b[0], b[1])
	}
	g.NumberPositions(0, len(in.Atoms))
	for i, n := range hydrogens {
		g.AddHydrogens(i, n)
	}
	return g
}

// Isomers returns one graph per placement of the mobile hydrogens. Each
// group's hydrogens are spread over its candidates as a multiset, and any
// partial placement that pushes an atom past its standard bonding number is
// abandoned.
func (in *InChI) Isomers() []*molecule.Graph {
	var graphs []*molecule.Graph
	in.enumerate(func(hydrogens []int) {
		graphs = append(graphs, in.graph(hydrogens))
	})
	return graphs
}

// enumerate calls yield with the per-atom hydrogen counts of every feasible
// placement. The slice is reused between calls.
func (in *InChI) enumerate(yield func(hydrogens []int)) {
	degree := make([]int, len(in.Atoms))
	for _, b := range in.Bonds {
		degree[b[0]]++
		degree[b[1]]++
	}
	hydrogens := make([]int, len(in.Atoms))
	copy(hydrogens, in.Hydrogens)
	for i, n := range hydrogens {
		degree[i] += n
	}

	fits := func(i int) bool {
		return degree[i] < in.Atoms[i].StandardBondingNumber()
	}

	// place assigns the remaining hydrogens of group g starting from
	// candidate index from, so each multiset is produced once.
	var place func(g, remaining, from int)
	place = func(g, remaining, from int) {
		if g == len(in.Mobile) {
			yield(hydrogens)
			return
		}
		group := in.Mobile[g]
		if remaining == 0 {
			next := 0
			if g+1 < len(in.Mobile) {
				next = in.Mobile[g+1].Count
			}
			place(g+1, next, 0)
			return
		}
		for k := from; k < len(group.Atoms); k++ {
			i := group.Atoms[k]
			if !fits(i) {
				continue
			}
			hydrogens[i]++
			degree[i]++
			place(g, remaining-1, k)
			hydrogens[i]--
			degree[i]--
		}
	}

	if len(in.Mobile) == 0 {
		yield(hydrogens)
		return
	}
	place(0, in.Mobile[0].Count, 0)
}

// CountIsomers returns the number of feasible mobile hydrogen placements.
func (in *InChI) CountIsomers() int {
	n := 0
	in.enumerate(func([]int) { n++ })
	return n
}

// Matches reports whether g is isomorphic to some isomer of in. The formula
// is compared first.
func (in *InChI) Matches(g *molecule.Graph) bool {
	if g.Formula() != in.Layers.Formula {
		return false
	}
	found := false
	in.enumerate(func(hydrogens []int) {
		if !found && molecule.Isomorphic(g, in.graph(hydrogens)) {
			found = true
		}
	})
	return found
}
