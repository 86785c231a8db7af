package molecule

import (
	"fmt"

	"github.com/OpenTraceLab/iupac/pkg/element"
)

// Chain builds an unbranched saturated hydride of n atoms of element e with
// positions numbered along the backbone.
func Chain(e element.Element, n int) *Graph {
	g := New()
	for i := range n {
		g.AddAtom(e)
		if i > 0 {
			g.AddBond(i-1, i)
		}
	}
	g.NumberPositions(0, n)
	g.Saturate()
	return g
}

// MakeGroup turns g into a substituent with one free valence at its first
// position. A hydrogen at that atom is removed if there is one; otherwise
// another neighbor is removed and the atom offers every bond it has left.
func (g *Graph) MakeGroup() error {
	i, err := g.Position(Locant{})
	if err != nil {
		return err
	}

	if h, ok := g.hydrogenNeighbor(i); ok {
		g.RemoveAtom(h)
		if h < i {
			i--
		}
		g.FreeValences = append(g.FreeValences, FreeValence{Atom: i, Order: 1})
		return nil
	}

	neighbors := g.Neighbors(i)
	if len(neighbors) == 0 {
		return fmt.Errorf("%w: atom %d (%s)", ErrNoNeighbor, i, g.Atoms[i])
	}
	j := neighbors[0]
	g.RemoveAtom(j)
	if j < i {
		i--
	}
	order := g.Atoms[i].StandardBondingNumber() - g.Degree(i) - g.pendingOrder(i)
	if order < 1 {
		return fmt.Errorf("%w: atom %d (%s) has no bonds to offer", ErrValence, i, g.Atoms[i])
	}
	g.FreeValences = append(g.FreeValences, FreeValence{Atom: i, Order: order})
	return nil
}

// Unsaturate removes n hydrogen pairs, one hydrogen from each of the first
// two positions per pair.
func (g *Graph) Unsaturate(n int) error {
	if n > 0 && len(g.Positions) < 2 {
		return fmt.Errorf("%w: unsaturation needs two positions, have %d", ErrNoPosition, len(g.Positions))
	}
	for range n {
		for k := range 2 {
			i := g.Positions[k].Atom
			h, ok := g.hydrogenNeighbor(i)
			if !ok {
				return fmt.Errorf("%w: position %s", ErrNoHydrogen, g.Positions[k].Locant)
			}
			g.RemoveAtom(h)
		}
	}
	return nil
}

// Substitute attaches group at locant l of g. The group must carry exactly
// one free valence, which is consumed; up to its order in hydrogens are
// removed from the site unless the group itself is a hydrogen atom.
func (g *Graph) Substitute(l Locant, group *Graph) error {
	if n := len(group.FreeValences); n != 1 {
		return fmt.Errorf("%w: group has %d free valences", ErrNoFreeValence, n)
	}
	site, err := g.Position(l)
	if err != nil {
		return err
	}

	g.Merge(group)
	fv := g.FreeValences[len(g.FreeValences)-1]
	g.FreeValences = g.FreeValences[:len(g.FreeValences)-1]
	if fv.Atom == site {
		return fmt.Errorf("%w: %d -- %d", ErrBadBond, site, fv.Atom)
	}

	if g.Atoms[fv.Atom] != element.Hydrogen {
		for range fv.Order {
			h, ok := g.hydrogenNeighbor(site)
			if !ok {
				break
			}
			g.RemoveAtom(h)
			if h < site {
				site--
			}
			if h < fv.Atom {
				fv.Atom--
			}
		}
	}

	g.AddBond(site, fv.Atom)
	return g.checkValence(site)
}
