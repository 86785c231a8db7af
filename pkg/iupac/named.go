package iupac

import (
	"fmt"

	"github.com/OpenTraceLab/iupac/pkg/element"
)

// HydrideKind enumerates the parent hydride families.
type HydrideKind uint8

const (
	// SimpleHydride is an unbranched homogeneous chain (P-21).
	SimpleHydride HydrideKind = iota
	Benzene
	Pyrimidine
	// Purine carries its indicated hydrogen position in Isomer.
	Purine
)

// Hydride is a parent hydride value.
type Hydride struct {
	Kind    HydrideKind
	Element element.Element // SimpleHydride only
	Length  int             // SimpleHydride only
	Isomer  int             // Purine only
}

// Chain returns the unbranched hydride of n atoms of e.
func Chain(e element.Element, n int) Hydride {
	return Hydride{Kind: SimpleHydride, Element: e, Length: n}
}

// Alkane returns the unbranched carbon chain of length n.
func Alkane(n int) Hydride {
	return Chain(element.Carbon, n)
}

func (h Hydride) String() string {
	switch h.Kind {
	case SimpleHydride:
		return fmt.Sprintf("%s %d", h.Element.Symbol(), h.Length)
	case Benzene:
		return "benzene"
	case Pyrimidine:
		return "pyrimidine"
	case Purine:
		return fmt.Sprintf("purine %d", h.Isomer)
	default:
		return "unknown"
	}
}

// Base is a small named molecule that characteristic groups derive from.
type Base uint8

const (
	Hydrogen Base = iota
	Oxygen
	Water
	Ammonia
	Isobutane
)

var baseNames = [...]string{
	Hydrogen:  "hydrogen",
	Oxygen:    "oxygen",
	Water:     "water",
	Ammonia:   "ammonia",
	Isobutane: "isobutane",
}

func (b Base) String() string {
	if int(b) < len(baseNames) {
		return baseNames[b]
	}
	return "unknown"
}

// CharacteristicGroup is a functional group usable as prefix or suffix.
type CharacteristicGroup uint8

const (
	Hydro CharacteristicGroup = iota
	Hydroxy
	Oxo
	Amino
)

var groupNames = [...]string{
	Hydro:   "hydro",
	Hydroxy: "hydroxy",
	Oxo:     "oxo",
	Amino:   "amino",
}

func (g CharacteristicGroup) String() string {
	if int(g) < len(groupNames) {
		return groupNames[g]
	}
	return "unknown"
}

// Base returns the molecule the group is cut from.
func (g CharacteristicGroup) Base() Base {
	switch g {
	case Hydro:
		return Hydrogen
	case Hydroxy:
		return Water
	case Oxo:
		return Oxygen
	default:
		return Ammonia
	}
}
