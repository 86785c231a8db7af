package iupac

import (
	"fmt"

	"github.com/OpenTraceLab/iupac/pkg/element"
	"github.com/OpenTraceLab/iupac/pkg/molecule"
)

// isobutaneName is the systematic name the tert-butyl base is built from.
const isobutaneName = "1,1-Dimethylethane"

// Build interprets a tree as a complete molecular graph. Trees that leave
// free valences behind, such as a bare "methyl", are rejected.
func Build(n Node) (*molecule.Graph, error) {
	g, err := build(n)
	if err == nil {
		err = complete(g)
	}
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrBuild, n, err)
	}
	return g, nil
}

func complete(g *molecule.Graph) error {
	if n := len(g.FreeValences); n != 0 {
		return fmt.Errorf("%w: %d left", ErrIncomplete, n)
	}
	return g.Validate()
}

func build(n Node) (*molecule.Graph, error) {
	switch n := n.(type) {
	case *HydrideNode:
		return hydrideGraph(n.Hydride)

	case *BaseNode:
		return baseGraph(n.Base)

	case *GroupNode:
		g, err := build(n.Child)
		if err != nil {
			return nil, err
		}
		if err := g.MakeGroup(); err != nil {
			return nil, err
		}
		return g, nil

	case *UnsaturatedNode:
		g, err := build(n.Child)
		if err != nil {
			return nil, err
		}
		if err := g.Unsaturate(n.Degree); err != nil {
			return nil, err
		}
		return g, nil

	case *SubstitutionNode:
		group, err := build(n.Group)
		if err != nil {
			return nil, err
		}
		parent, err := build(n.Parent)
		if err != nil {
			return nil, err
		}
		if err := parent.Substitute(n.Locant, group); err != nil {
			return nil, err
		}
		return parent, nil

	default:
		return nil, fmt.Errorf("unknown node %T", n)
	}
}

func hydrideGraph(h Hydride) (*molecule.Graph, error) {
	switch h.Kind {
	case SimpleHydride:
		if h.Length < 1 {
			return nil, fmt.Errorf("%w: chain of length %d", molecule.ErrNoPosition, h.Length)
		}
		return molecule.Chain(h.Element, h.Length), nil
	case Benzene:
		return benzene(), nil
	case Pyrimidine:
		return pyrimidine(), nil
	case Purine:
		return purine(h.Isomer)
	default:
		return nil, fmt.Errorf("unknown hydride kind %d", h.Kind)
	}
}

// ring adds the given heavy atoms closed into a ring and numbers them from 1.
func ring(atoms ...element.Element) *molecule.Graph {
	g := molecule.New()
	for i, e := range atoms {
		g.AddAtom(e)
		if i > 0 {
			g.AddBond(i-1, i)
		}
	}
	g.AddBond(len(atoms)-1, 0)
	g.NumberPositions(0, len(atoms))
	return g
}

func benzene() *molecule.Graph {
	c := element.Carbon
	g := ring(c, c, c, c, c, c)
	for i := range 6 {
		g.AddHydrogens(i, 1)
	}
	return g
}

func pyrimidine() *molecule.Graph {
	c, n := element.Carbon, element.Nitrogen
	g := ring(n, c, n, c, c, c)
	for _, i := range []int{1, 3, 4, 5} {
		g.AddHydrogens(i, 1)
	}
	return g
}

// purine builds the fused purine skeleton with the indicated hydrogen on
// position isomer.
func purine(isomer int) (*molecule.Graph, error) {
	if isomer < 1 || isomer > 9 {
		return nil, fmt.Errorf("%w: purine position %dH", molecule.ErrNoPosition, isomer)
	}

	c, n := element.Carbon, element.Nitrogen
	g := ring(n, c, n, c, c, c)
	for _, e := range []element.Element{n, c, n} {
		g.AddAtom(e)
	}
	g.AddBond(4, 6)
	g.AddBond(6, 7)
	g.AddBond(7, 8)
	g.AddBond(8, 3)
	for i := 6; i < 9; i++ {
		g.SetPosition(molecule.Number(i+1), i)
	}

	for _, i := range []int{1, 5, 7} {
		g.AddHydrogens(i, 1)
	}
	g.AddHydrogens(isomer-1, 1)
	return g, nil
}

func baseGraph(b Base) (*molecule.Graph, error) {
	switch b {
	case Hydrogen:
		return diatomic(element.Hydrogen), nil
	case Oxygen:
		return diatomic(element.Oxygen), nil
	case Water:
		return molecule.Chain(element.Oxygen, 1), nil
	case Ammonia:
		return molecule.Chain(element.Nitrogen, 1), nil
	case Isobutane:
		n, err := Parse(isobutaneName)
		if err != nil {
			return nil, err
		}
		return build(n)
	default:
		return nil, fmt.Errorf("unknown base %d", b)
	}
}

func diatomic(e element.Element) *molecule.Graph {
	g := molecule.New()
	g.AddBond(g.AddAtom(e), g.AddAtom(e))
	g.NumberPositions(0, 2)
	return g
}
