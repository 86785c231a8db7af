package element

// Element identifies one of the atoms covered by the nomenclature rules.
// The zero value is Hydrogen.
type Element uint8

const (
	Hydrogen Element = iota

	Boron
	Carbon
	Nitrogen
	Oxygen
	Fluorine

	Aluminium
	Silicon
	Phosphorus
	Sulfur
	Chlorine

	Gallium
	Germanium
	Arsenic
	Selenium
	Bromine

	Indium
	Tin
	Antimony
	Tellurium
	Iodine

	Thallium
	Lead
	Bismuth
	Polonium
	Astatine

	count
)

// Info describes an element table entry
type Info struct {
	Symbol string // "Cl"
	Name   string // "chlorine"
	Period int
	Group  int
}
