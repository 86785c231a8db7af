package element

import (
	"errors"
	"fmt"
)

// ErrUnknownElement is returned when a symbol is not in the table.
var ErrUnknownElement = errors.New("element: unknown element")

// table is indexed by Element
var table [count]Info

// bySymbol is the symbol lookup index
var bySymbol = make(map[string]Element, count)

// register adds an element entry to the table
func register(e Element, info Info) {
	table[e] = info
	bySymbol[info.Symbol] = e
}

func init() {
	// Hydrogen is included to aid graph construction.
	register(Hydrogen, Info{Symbol: "H", Name: "hydrogen", Period: 1, Group: 1})

	// Table 1.1 of the recommendations: groups 13-17, periods 2-6.
	register(Boron, Info{Symbol: "B", Name: "boron", Period: 2, Group: 13})
	register(Carbon, Info{Symbol: "C", Name: "carbon", Period: 2, Group: 14})
	register(Nitrogen, Info{Symbol: "N", Name: "nitrogen", Period: 2, Group: 15})
	register(Oxygen, Info{Symbol: "O", Name: "oxygen", Period: 2, Group: 16})
	register(Fluorine, Info{Symbol: "F", Name: "fluorine", Period: 2, Group: 17})

	register(Aluminium, Info{Symbol: "Al", Name: "aluminium", Period: 3, Group: 13})
	register(Silicon, Info{Symbol: "Si", Name: "silicon", Period: 3, Group: 14})
	register(Phosphorus, Info{Symbol: "P", Name: "phosphorus", Period: 3, Group: 15})
	register(Sulfur, Info{Symbol: "S", Name: "sulfur", Period: 3, Group: 16})
	register(Chlorine, Info{Symbol: "Cl", Name: "chlorine", Period: 3, Group: 17})

	register(Gallium, Info{Symbol: "Ga", Name: "gallium", Period: 4, Group: 13})
	register(Germanium, Info{Symbol: "Ge", Name: "germanium", Period: 4, Group: 14})
	register(Arsenic, Info{Symbol: "As", Name: "arsenic", Period: 4, Group: 15})
	register(Selenium, Info{Symbol: "Se", Name: "selenium", Period: 4, Group: 16})
	register(Bromine, Info{Symbol: "Br", Name: "bromine", Period: 4, Group: 17})

	register(Indium, Info{Symbol: "In", Name: "indium", Period: 5, Group: 13})
	register(Tin, Info{Symbol: "Sn", Name: "tin", Period: 5, Group: 14})
	register(Antimony, Info{Symbol: "Sb", Name: "antimony", Period: 5, Group: 15})
	register(Tellurium, Info{Symbol: "Te", Name: "tellurium", Period: 5, Group: 16})
	register(Iodine, Info{Symbol: "I", Name: "iodine", Period: 5, Group: 17})

	register(Thallium, Info{Symbol: "Tl", Name: "thallium", Period: 6, Group: 13})
	register(Lead, Info{Symbol: "Pb", Name: "lead", Period: 6, Group: 14})
	register(Bismuth, Info{Symbol: "Bi", Name: "bismuth", Period: 6, Group: 15})
	register(Polonium, Info{Symbol: "Po", Name: "polonium", Period: 6, Group: 16})
	register(Astatine, Info{Symbol: "At", Name: "astatine", Period: 6, Group: 17})
}

// All returns every element in table order.
func All() []Element {
	elements := make([]Element, 0, count)
	for e := Element(0); e < count; e++ {
		elements = append(elements, e)
	}
	return elements
}

// FromSymbol looks an element up by its case-sensitive symbol.
func FromSymbol(symbol string) (Element, error) {
	if e, ok := bySymbol[symbol]; ok {
		return e, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownElement, symbol)
}

// Valid reports whether e is a table entry.
func (e Element) Valid() bool {
	return e < count
}

// Info returns the table entry for e.
func (e Element) Info() Info {
	if !e.Valid() {
		return Info{Symbol: "?", Name: "unknown"}
	}
	return table[e]
}

func (e Element) Symbol() string { return e.Info().Symbol }
func (e Element) Name() string   { return e.Info().Name }
func (e Element) Period() int    { return e.Info().Period }
func (e Element) Group() int     { return e.Info().Group }

// String returns the element symbol.
func (e Element) String() string {
	return e.Symbol()
}

// StandardBondingNumber is the valence used for hydrogen accounting (P-14.1).
func (e Element) StandardBondingNumber() int {
	switch e.Group() {
	case 1:
		return 1
	case 13:
		return 3
	case 14:
		return 4
	case 15:
		return 3
	case 16:
		return 2
	case 17:
		return 1
	default:
		return 0
	}
}
