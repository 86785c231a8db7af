package molecule

import (
	"errors"
	"testing"

	"github.com/OpenTraceLab/iupac/pkg/element"
)

func methyl(t *testing.T) *Graph {
	t.Helper()
	g := Chain(element.Carbon, 1)
	if err := g.MakeGroup(); err != nil {
		t.Fatalf("MakeGroup failed: %v", err)
	}
	return g
}

func TestChain(t *testing.T) {
	g := Chain(element.Carbon, 4)

	if got := g.Count(element.Carbon); got != 4 {
		t.Errorf("Expected 4 carbons, got %d", got)
	}
	if got := g.Count(element.Hydrogen); got != 10 {
		t.Errorf("Expected 10 hydrogens, got %d", got)
	}
	if len(g.Bonds) != 13 {
		t.Errorf("Expected 13 bonds, got %d", len(g.Bonds))
	}
	for i := range 4 {
		if d := g.Degree(i); d != 4 {
			t.Errorf("carbon %d: expected degree 4, got %d", i, d)
		}
	}
	if len(g.Positions) != 4 || g.Positions[3].Locant != Number(4) || g.Positions[3].Atom != 3 {
		t.Errorf("unexpected positions %v", g.Positions)
	}
	if err := g.Validate(); err != nil {
		t.Errorf("Validate failed: %v", err)
	}
}

func TestChainHeteroatoms(t *testing.T) {
	tests := []struct {
		element element.Element
		formula string
	}{
		{element.Oxygen, "H2O"},
		{element.Nitrogen, "H3N"},
		{element.Boron, "BH3"},
		{element.Chlorine, "ClH"},
		{element.Silicon, "H4Si"},
	}
	for _, tt := range tests {
		if got := Chain(tt.element, 1).Formula(); got != tt.formula {
			t.Errorf("%s: expected %s, got %s", tt.element.Name(), tt.formula, got)
		}
	}
}

func TestRemoveAtom(t *testing.T) {
	g := Chain(element.Carbon, 2)
	g.FreeValences = []FreeValence{{Atom: 1, Order: 1}}

	g.RemoveAtom(0)

	if len(g.Atoms) != 7 {
		t.Fatalf("Expected 7 atoms, got %d", len(g.Atoms))
	}
	if g.Atoms[0] != element.Carbon {
		t.Errorf("Expected carbon at index 0, got %s", g.Atoms[0])
	}
	if len(g.Positions) != 1 || g.Positions[0].Locant != Number(2) || g.Positions[0].Atom != 0 {
		t.Errorf("unexpected positions %v", g.Positions)
	}
	if g.FreeValences[0].Atom != 0 {
		t.Errorf("Expected free valence on atom 0, got %d", g.FreeValences[0].Atom)
	}
	if d := g.Degree(0); d != 3 {
		t.Errorf("Expected remaining carbon degree 3, got %d", d)
	}
	if err := g.Validate(); err != nil {
		t.Errorf("Validate failed: %v", err)
	}
}

func TestMakeGroup(t *testing.T) {
	g := methyl(t)

	if g.Formula() != "CH3" {
		t.Errorf("Expected CH3, got %s", g.Formula())
	}
	if len(g.FreeValences) != 1 {
		t.Fatalf("Expected 1 free valence, got %d", len(g.FreeValences))
	}
	if fv := g.FreeValences[0]; fv.Atom != 0 || fv.Order != 1 {
		t.Errorf("unexpected free valence %+v", fv)
	}
}

func TestMakeGroupWithoutHydrogen(t *testing.T) {
	g := New()
	g.AddBond(g.AddAtom(element.Oxygen), g.AddAtom(element.Oxygen))
	g.NumberPositions(0, 2)

	if err := g.MakeGroup(); err != nil {
		t.Fatalf("MakeGroup failed: %v", err)
	}
	if len(g.Atoms) != 1 {
		t.Fatalf("Expected a single oxygen, got %v", g.Atoms)
	}
	if fv := g.FreeValences[0]; fv.Atom != 0 || fv.Order != 2 {
		t.Errorf("Expected a double free valence on atom 0, got %+v", fv)
	}
}

func TestMakeGroupIsolatedAtom(t *testing.T) {
	g := New()
	g.AddAtom(element.Carbon)
	g.NumberPositions(0, 1)

	if err := g.MakeGroup(); !errors.Is(err, ErrNoNeighbor) {
		t.Errorf("Expected ErrNoNeighbor, got %v", err)
	}
}

func TestUnsaturate(t *testing.T) {
	tests := []struct {
		length  int
		degree  int
		formula string
	}{
		{2, 0, "C2H6"},
		{2, 1, "C2H4"},
		{2, 2, "C2H2"},
		{5, 2, "C5H8"},
	}
	for _, tt := range tests {
		g := Chain(element.Carbon, tt.length)
		if err := g.Unsaturate(tt.degree); err != nil {
			t.Fatalf("Unsaturate(%d) failed: %v", tt.degree, err)
		}
		if got := g.Formula(); got != tt.formula {
			t.Errorf("C%d unsaturated %d: expected %s, got %s", tt.length, tt.degree, tt.formula, got)
		}
	}
}

func TestUnsaturateErrors(t *testing.T) {
	if err := Chain(element.Carbon, 1).Unsaturate(1); !errors.Is(err, ErrNoPosition) {
		t.Errorf("methane: expected ErrNoPosition, got %v", err)
	}
	if err := Chain(element.Carbon, 2).Unsaturate(4); !errors.Is(err, ErrNoHydrogen) {
		t.Errorf("ethane: expected ErrNoHydrogen, got %v", err)
	}
}

func TestSubstituteNeopentane(t *testing.T) {
	g := Chain(element.Carbon, 3)
	for range 2 {
		if err := g.Substitute(Number(2), methyl(t)); err != nil {
			t.Fatalf("Substitute failed: %v", err)
		}
	}

	want := New()
	center := want.AddAtom(element.Carbon)
	for range 4 {
		want.AddBond(center, want.AddAtom(element.Carbon))
	}
	want.Saturate()

	if g.Formula() != "C5H12" {
		t.Errorf("Expected C5H12, got %s", g.Formula())
	}
	if !Isomorphic(g, want) {
		t.Error("2,2-dimethylpropane graph is not neopentane")
	}
	if len(g.FreeValences) != 0 {
		t.Errorf("Expected no free valences, got %v", g.FreeValences)
	}
}

func TestSubstituteDoubleBond(t *testing.T) {
	oxo := New()
	oxo.AddBond(oxo.AddAtom(element.Oxygen), oxo.AddAtom(element.Oxygen))
	oxo.NumberPositions(0, 2)
	if err := oxo.MakeGroup(); err != nil {
		t.Fatalf("MakeGroup failed: %v", err)
	}

	g := Chain(element.Carbon, 3)
	if err := g.Substitute(Number(2), oxo); err != nil {
		t.Fatalf("Substitute failed: %v", err)
	}
	if got := g.Formula(); got != "C3H6O" {
		t.Errorf("Expected acetone C3H6O, got %s", got)
	}
}

func TestSubstituteHydrogenGroup(t *testing.T) {
	hydro := New()
	hydro.AddBond(hydro.AddAtom(element.Hydrogen), hydro.AddAtom(element.Hydrogen))
	hydro.NumberPositions(0, 2)
	if err := hydro.MakeGroup(); err != nil {
		t.Fatalf("MakeGroup failed: %v", err)
	}

	g := New()
	n := g.AddAtom(element.Nitrogen)
	g.AddBond(n, g.AddAtom(element.Carbon))
	g.AddBond(n, g.AddAtom(element.Carbon))
	g.NumberPositions(0, 1)

	if err := g.Substitute(Number(1), hydro); err != nil {
		t.Fatalf("Substitute failed: %v", err)
	}
	if got := g.Hydrogens(0); got != 1 {
		t.Errorf("Expected the hydro group to add one hydrogen, got %d", got)
	}
}

func TestSubstituteErrors(t *testing.T) {
	g := Chain(element.Carbon, 2)
	if err := g.Substitute(Number(7), methyl(t)); !errors.Is(err, ErrNoPosition) {
		t.Errorf("Expected ErrNoPosition, got %v", err)
	}

	g = Chain(element.Carbon, 2)
	if err := g.Substitute(Number(1), Chain(element.Carbon, 1)); !errors.Is(err, ErrNoFreeValence) {
		t.Errorf("Expected ErrNoFreeValence, got %v", err)
	}
}

func TestSubstituteGroupWithoutFreeValence(t *testing.T) {
	// A group missing its free valence must not consume one held by the parent.
	parent := methyl(t)
	atoms, bonds := len(parent.Atoms), len(parent.Bonds)
	if err := parent.Substitute(Locant{}, Chain(element.Oxygen, 1)); !errors.Is(err, ErrNoFreeValence) {
		t.Fatalf("Expected ErrNoFreeValence, got %v", err)
	}
	if len(parent.Atoms) != atoms || len(parent.Bonds) != bonds || len(parent.FreeValences) != 1 {
		t.Errorf("parent modified: %d atoms, %d bonds, %d free valences",
			len(parent.Atoms), len(parent.Bonds), len(parent.FreeValences))
	}
	if err := parent.Validate(); err != nil {
		t.Errorf("Validate failed: %v", err)
	}

	twice := methyl(t)
	twice.FreeValences = append(twice.FreeValences, FreeValence{Atom: 0, Order: 1})
	g := Chain(element.Carbon, 2)
	if err := g.Substitute(Number(1), twice); !errors.Is(err, ErrNoFreeValence) {
		t.Errorf("Expected ErrNoFreeValence for two free valences, got %v", err)
	}
}

func TestValidateRejectsSelfBond(t *testing.T) {
	g := Chain(element.Carbon, 1)
	g.AddBond(0, 0)
	if err := g.Validate(); !errors.Is(err, ErrBadBond) {
		t.Errorf("Expected ErrBadBond, got %v", err)
	}
}

func TestLongChain(t *testing.T) {
	const n = 20000
	g := Chain(element.Carbon, n)
	if got := g.Count(element.Hydrogen); got != 2*n+2 {
		t.Errorf("Expected %d hydrogens, got %d", 2*n+2, got)
	}
	if err := g.Validate(); err != nil {
		t.Errorf("Validate failed: %v", err)
	}
}

func TestSubstituteValence(t *testing.T) {
	g := Chain(element.Carbon, 5)
	var err error
	for i := 0; i < 6 && err == nil; i++ {
		err = g.Substitute(Locant{}, methyl(t))
		if i < 3 && err != nil {
			t.Fatalf("substitution %d failed: %v", i+1, err)
		}
	}
	if !errors.Is(err, ErrValence) {
		t.Errorf("Expected ErrValence once the first carbon is full, got %v", err)
	}
}

func TestElementLocantPosition(t *testing.T) {
	g := New()
	g.AddAtom(element.Nitrogen)
	g.AddAtom(element.Carbon)
	g.NumberPositions(0, 2)

	if i, err := g.Position(ElementLocant(1, element.Nitrogen)); err != nil || i != 0 {
		t.Errorf("1N: expected atom 0, got %d (%v)", i, err)
	}
	if _, err := g.Position(ElementLocant(2, element.Nitrogen)); !errors.Is(err, ErrNoPosition) {
		t.Errorf("2N: expected ErrNoPosition, got %v", err)
	}
}

func TestLocantString(t *testing.T) {
	tests := map[Locant]string{
		{}:                                 "?",
		Number(12):                         "12",
		ElementLocant(1, element.Hydrogen): "1H",
		ElementLocant(3, element.Nitrogen): "3N",
	}
	for l, want := range tests {
		if got := l.String(); got != want {
			t.Errorf("Expected %q, got %q", want, got)
		}
	}
	if !ElementLocant(9, element.Hydrogen).IsIndicatedHydrogen() || Number(9).IsIndicatedHydrogen() {
		t.Error("IsIndicatedHydrogen mismatch")
	}
}
