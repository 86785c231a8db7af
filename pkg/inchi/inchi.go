// Package inchi reads standard InChI identifiers into molecular graphs.
//
// Only the formula, connection and hydrogen layers are interpreted. Mobile
// hydrogens have no fixed atom, so a structure with them expands into every
// placement that respects the standard bonding numbers (see Isomers).
package inchi

import (
	"fmt"
	"sync"

	"github.com/OpenTraceLab/iupac/pkg/element"
)

// FormulaTerm is one element of the formula layer.
type FormulaTerm struct {
	Element element.Element
	Count   int
}

// MobileGroup is a set of hydrogens shared by candidate atoms.
type MobileGroup struct {
	Count int
	Atoms []int // 0-based skeletal atom indices
}

// InChI is a parsed standard InChI.
type InChI struct {
	Layers *Layers

	Formula []FormulaTerm
	// Atoms are the skeletal (non-hydrogen) atoms in InChI numbering order,
	// 0-based.
	Atoms []element.Element
	Bonds [][2]int
	// Hydrogens holds the fixed hydrogen count of each skeletal atom.
	Hydrogens []int
	Mobile    []MobileGroup
}

// HydrogenCount is the number of hydrogens in the formula.
func (in *InChI) HydrogenCount() int {
	n := 0
	for _, t := range in.Formula {
		if t.Element == element.Hydrogen {
			n += t.Count
		}
	}
	return n
}

var (
	defaultOnce   sync.Once
	defaultParser *Parser
	defaultErr    error
)

// Parse parses s with a shared parser.
func Parse(s string) (*InChI, error) {
	defaultOnce.Do(func() {
		defaultParser, defaultErr = NewParser()
	})
	if defaultErr != nil {
		return nil, defaultErr
	}
	return defaultParser.Parse(s)
}

// Parse parses an InChI string.
func (p *Parser) Parse(s string) (*InChI, error) {
	layers, err := SplitLayers(s)
	if err != nil {
		return nil, err
	}
	if layers.Version != "1S" {
		return nil, fmt.Errorf("%w: version %q", ErrVersion, layers.Version)
	}

	in := &InChI{Layers: layers}
	if err := p.parseFormula(in, layers.Formula); err != nil {
		return nil, err
	}
	if err := p.parseConnections(in, layers.Connections); err != nil {
		return nil, err
	}
	if err := p.parseHydrogens(in, layers.Hydrogens); err != nil {
		return nil, err
	}
	return in, nil
}

func (p *Parser) parseFormula(in *InChI, layer string) error {
	ast, err := p.formula.ParseString("", layer)
	if err != nil {
		return fmt.Errorf("%w: formula %q: %w", ErrFormat, layer, err)
	}

	for _, term := range ast.Terms {
		e, err := element.FromSymbol(term.Symbol)
		if err != nil {
			return err
		}
		count := 1
		if term.Count != nil {
			count = *term.Count
		}
		in.Formula = append(in.Formula, FormulaTerm{Element: e, Count: count})
		if e == element.Hydrogen {
			continue
		}
		for range count {
			in.Atoms = append(in.Atoms, e)
		}
	}
	in.Hydrogens = make([]int, len(in.Atoms))
	return nil
}

// atomIndex converts a 1-based InChI atom number.
func (in *InChI) atomIndex(n int) (int, error) {
	if n < 1 || n > len(in.Atoms) {
		return 0, fmt.Errorf("%w: %d of %d", ErrAtomIndex, n, len(in.Atoms))
	}
	return n - 1, nil
}

func (p *Parser) parseConnections(in *InChI, layer string) error {
	if layer == "" {
		return nil
	}
	ast, err := p.connections.ParseString("", layer)
	if err != nil {
		return fmt.Errorf("%w: connections %q: %w", ErrFormat, layer, err)
	}
	_, err = in.walkChain(ast.Chain, -1)
	return err
}

// walkChain adds the bonds of c, bonding its head to parent when parent is
// not negative, and returns the head index.
func (in *InChI) walkChain(c *chain, parent int) (int, error) {
	head, err := in.atomIndex(c.Head)
	if err != nil {
		return 0, err
	}
	if parent >= 0 {
		in.Bonds = append(in.Bonds, [2]int{parent, head})
	}

	current := head
	for _, l := range c.Links {
		if l.Branch != nil {
			for _, b := range l.Branch.Chains {
				if _, err := in.walkChain(b, current); err != nil {
					return 0, err
				}
			}
			continue
		}
		next, err := in.atomIndex(*l.Next)
		if err != nil {
			return 0, err
		}
		in.Bonds = append(in.Bonds, [2]int{current, next})
		current = next
	}
	return head, nil
}

func (p *Parser) parseHydrogens(in *InChI, layer string) error {
	if layer != "" {
		ast, err := p.hydrogens.ParseString("", layer)
		if err != nil {
			return fmt.Errorf("%w: hydrogens %q: %w", ErrFormat, layer, err)
		}
		for _, g := range ast.Groups {
			if g.Mobile != nil {
				if err := in.addMobile(g.Mobile); err != nil {
					return err
				}
				continue
			}
			if err := in.addImmobile(g.Immobile); err != nil {
				return err
			}
		}
	}

	total := 0
	for _, n := range in.Hydrogens {
		total += n
	}
	for _, m := range in.Mobile {
		total += m.Count
	}
	if want := in.HydrogenCount(); total != want {
		return fmt.Errorf("%w: layer places %d, formula has %d", ErrHydrogenCount, total, want)
	}
	return nil
}

func countOrOne(n *int) int {
	if n == nil {
		return 1
	}
	return *n
}

func (in *InChI) addImmobile(g *immobileGroup) error {
	count := countOrOne(g.Count)
	for _, r := range g.Ranges {
		end := r.Start
		if r.End != nil {
			end = *r.End
		}
		for n := r.Start; n <= end; n++ {
			i, err := in.atomIndex(n)
			if err != nil {
				return err
			}
			in.Hydrogens[i] += count
		}
	}
	return nil
}

func (in *InChI) addMobile(g *mobileGroup) error {
	m := MobileGroup{Count: countOrOne(g.Count)}
	for _, n := range g.Atoms {
		i, err := in.atomIndex(n)
		if err != nil {
			return err
		}
		m.Atoms = append(m.Atoms, i)
	}
	in.Mobile = append(in.Mobile, m)
	return nil
}
