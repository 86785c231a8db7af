// Package molecule holds the molecular graph produced from a parsed name and
// the rewriting operations used to build it.
//
// Every hydrogen is an explicit atom. Bond order is not recorded; multiple
// bonds show up only as missing hydrogens.
package molecule

import (
	"fmt"
	"slices"

	"github.com/OpenTraceLab/iupac/pkg/element"
)

// Position maps a named locant to an atom index.
type Position struct {
	Locant Locant
	Atom   int
}

// FreeValence marks an atom that still owes a bond to a parent structure.
// Order is the number of bonds it offers: 1 for most groups, 2 for oxo.
type FreeValence struct {
	Atom  int
	Order int
}

// Graph is a molecular graph.
type Graph struct {
	Atoms        []element.Element
	Bonds        [][2]int
	Positions    []Position
	FreeValences []FreeValence
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{}
}

// Clone returns a deep copy of g.
func (g *Graph) Clone() *Graph {
	return &Graph{
		Atoms:        slices.Clone(g.Atoms),
		Bonds:        slices.Clone(g.Bonds),
		Positions:    slices.Clone(g.Positions),
		FreeValences: slices.Clone(g.FreeValences),
	}
}

// AddAtom appends an atom and returns its index.
func (g *Graph) AddAtom(e element.Element) int {
	g.Atoms = append(g.Atoms, e)
	return len(g.Atoms) - 1
}

// AddBond connects atoms a and b.
func (g *Graph) AddBond(a, b int) {
	g.Bonds = append(g.Bonds, [2]int{a, b})
}

// AddHydrogens attaches n new hydrogen atoms to atom i.
func (g *Graph) AddHydrogens(i, n int) {
	for range n {
		g.AddBond(i, g.AddAtom(element.Hydrogen))
	}
}

// Saturate fills every atom that is not hydrogen up to its standard bonding
// number with hydrogens.
func (g *Graph) Saturate() {
	degrees := g.degrees()
	for i, d := range degrees {
		if g.Atoms[i] == element.Hydrogen {
			continue
		}
		if missing := g.Atoms[i].StandardBondingNumber() - d; missing > 0 {
			g.AddHydrogens(i, missing)
		}
	}
}

// SetPosition records that locant l names atom i.
func (g *Graph) SetPosition(l Locant, i int) {
	g.Positions = append(g.Positions, Position{Locant: l, Atom: i})
}

// NumberPositions records atoms first..first+n-1 as positions 1..n.
func (g *Graph) NumberPositions(first, n int) {
	for k := range n {
		g.SetPosition(Number(k+1), first+k)
	}
}

// Position resolves a locant to an atom index. Unspecified resolves to the
// first recorded position; an element locant must also match the element.
func (g *Graph) Position(l Locant) (int, error) {
	if len(g.Positions) == 0 {
		return 0, fmt.Errorf("%w: %s on a graph without positions", ErrNoPosition, l)
	}
	if l.Kind == Unspecified {
		return g.Positions[0].Atom, nil
	}
	for _, p := range g.Positions {
		if p.Locant.N != l.N {
			continue
		}
		if l.Kind == Elemental && g.Atoms[p.Atom] != l.Element {
			continue
		}
		return p.Atom, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrNoPosition, l)
}

// Neighbors returns the atoms bonded to i in bond order.
func (g *Graph) Neighbors(i int) []int {
	var neighbors []int
	for _, b := range g.Bonds {
		switch i {
		case b[0]:
			neighbors = append(neighbors, b[1])
		case b[1]:
			neighbors = append(neighbors, b[0])
		}
	}
	return neighbors
}

// Degree is the number of explicit bonds at atom i.
func (g *Graph) Degree(i int) int {
	n := 0
	for _, b := range g.Bonds {
		if b[0] == i {
			n++
		}
		if b[1] == i {
			n++
		}
	}
	return n
}

// degrees returns the explicit bond count of every atom in one pass over
// the bonds.
func (g *Graph) degrees() []int {
	degrees := make([]int, len(g.Atoms))
	for _, b := range g.Bonds {
		degrees[b[0]]++
		degrees[b[1]]++
	}
	return degrees
}

// Hydrogens counts the hydrogen atoms bonded to i.
func (g *Graph) Hydrogens(i int) int {
	n := 0
	for _, j := range g.Neighbors(i) {
		if g.Atoms[j] == element.Hydrogen {
			n++
		}
	}
	return n
}

func (g *Graph) hydrogenNeighbor(i int) (int, bool) {
	for _, j := range g.Neighbors(i) {
		if g.Atoms[j] == element.Hydrogen {
			return j, true
		}
	}
	return 0, false
}

// pendingOrder sums the free valence orders held by atom i.
func (g *Graph) pendingOrder(i int) int {
	n := 0
	for _, fv := range g.FreeValences {
		if fv.Atom == i {
			n += fv.Order
		}
	}
	return n
}

// Merge appends other into g and returns the index offset applied to its
// atoms. Positions of other are dropped; its free valences are kept.
func (g *Graph) Merge(other *Graph) int {
	offset := len(g.Atoms)
	g.Atoms = append(g.Atoms, other.Atoms...)
	for _, b := range other.Bonds {
		g.Bonds = append(g.Bonds, [2]int{b[0] + offset, b[1] + offset})
	}
	for _, fv := range other.FreeValences {
		g.FreeValences = append(g.FreeValences, FreeValence{Atom: fv.Atom + offset, Order: fv.Order})
	}
	return offset
}

// RemoveAtom deletes atom i with its bonds, positions and free valences, and
// shifts every later index down by one.
func (g *Graph) RemoveAtom(i int) {
	g.Atoms = slices.Delete(g.Atoms, i, i+1)

	shift := func(j int) int {
		if j > i {
			return j - 1
		}
		return j
	}

	bonds := g.Bonds[:0]
	for _, b := range g.Bonds {
		if b[0] == i || b[1] == i {
			continue
		}
		bonds = append(bonds, [2]int{shift(b[0]), shift(b[1])})
	}
	g.Bonds = bonds

	positions := g.Positions[:0]
	for _, p := range g.Positions {
		if p.Atom == i {
			continue
		}
		positions = append(positions, Position{Locant: p.Locant, Atom: shift(p.Atom)})
	}
	g.Positions = positions

	valences := g.FreeValences[:0]
	for _, fv := range g.FreeValences {
		if fv.Atom == i {
			continue
		}
		valences = append(valences, FreeValence{Atom: shift(fv.Atom), Order: fv.Order})
	}
	g.FreeValences = valences
}

// Validate checks bond indices and that no atom exceeds its standard bonding
// number, counting pending free valences.
func (g *Graph) Validate() error {
	for _, b := range g.Bonds {
		if b[0] < 0 || b[1] < 0 || b[0] >= len(g.Atoms) || b[1] >= len(g.Atoms) || b[0] == b[1] {
			return fmt.Errorf("%w: %d -- %d", ErrBadBond, b[0], b[1])
		}
	}
	pending := make([]int, len(g.Atoms))
	for _, fv := range g.FreeValences {
		if fv.Atom < 0 || fv.Atom >= len(g.Atoms) {
			return fmt.Errorf("%w: free valence on atom %d", ErrBadBond, fv.Atom)
		}
		pending[fv.Atom] += fv.Order
	}
	for i, d := range g.degrees() {
		if err := g.valenceError(i, d+pending[i]); err != nil {
			return err
		}
	}
	return nil
}

func (g *Graph) checkValence(i int) error {
	return g.valenceError(i, g.Degree(i)+g.pendingOrder(i))
}

func (g *Graph) valenceError(i, used int) error {
	if bonding := g.Atoms[i].StandardBondingNumber(); used > bonding {
		return fmt.Errorf("%w: atom %d (%s) has %d bonds, bonding number %d",
			ErrValence, i, g.Atoms[i], used, bonding)
	}
	return nil
}

// Count returns the number of atoms of element e.
func (g *Graph) Count(e element.Element) int {
	n := 0
	for _, a := range g.Atoms {
		if a == e {
			n++
		}
	}
	return n
}
