package molecule

import (
	"strconv"

	"github.com/OpenTraceLab/iupac/pkg/element"
)

// LocantKind distinguishes the three locant forms.
type LocantKind uint8

const (
	// Unspecified attaches at the parent's first recorded position.
	Unspecified LocantKind = iota
	// Numbered is a plain positional number such as the 2 in "propan-2-ol".
	Numbered
	// Elemental is a number carrying an element tag such as "1H".
	Elemental
)

// Locant identifies a position on a parent structure.
type Locant struct {
	Kind    LocantKind
	N       int
	Element element.Element
}

// Number returns a plain numeric locant.
func Number(n int) Locant {
	return Locant{Kind: Numbered, N: n}
}

// ElementLocant returns a locant tagged with an element, e.g. 1H.
func ElementLocant(n int, e element.Element) Locant {
	return Locant{Kind: Elemental, N: n, Element: e}
}

// IsIndicatedHydrogen reports whether l is an "nH" marker.
func (l Locant) IsIndicatedHydrogen() bool {
	return l.Kind == Elemental && l.Element == element.Hydrogen
}

func (l Locant) String() string {
	switch l.Kind {
	case Numbered:
		return strconv.Itoa(l.N)
	case Elemental:
		return strconv.Itoa(l.N) + l.Element.Symbol()
	default:
		return "?"
	}
}
