package molecule

import (
	"strings"
	"testing"

	"github.com/OpenTraceLab/iupac/pkg/element"
)

// isobutane builds 2-methylpropane with its atoms in a scrambled order.
func isobutane() *Graph {
	g := New()
	terminal := []int{g.AddAtom(element.Carbon), g.AddAtom(element.Carbon)}
	center := g.AddAtom(element.Carbon)
	third := g.AddAtom(element.Carbon)
	g.AddBond(terminal[0], center)
	g.AddBond(third, center)
	g.AddBond(center, terminal[1])
	g.Saturate()
	return g
}

func TestIsomorphic(t *testing.T) {
	butane := Chain(element.Carbon, 4)

	if !Isomorphic(butane, butane.Clone()) {
		t.Error("a graph must be isomorphic to its clone")
	}
	if Isomorphic(butane, isobutane()) {
		t.Error("butane and isobutane share a formula but not a structure")
	}

	branched := Chain(element.Carbon, 3)
	if err := branched.Substitute(Number(2), methyl(t)); err != nil {
		t.Fatalf("Substitute failed: %v", err)
	}
	if !Isomorphic(branched, isobutane()) {
		t.Error("2-methylpropane must match isobutane")
	}
}

func TestIsomorphicReversedAtoms(t *testing.T) {
	a := Chain(element.Carbon, 2)
	if err := a.Substitute(Number(1), func() *Graph {
		g := Chain(element.Oxygen, 1)
		if err := g.MakeGroup(); err != nil {
			t.Fatalf("MakeGroup failed: %v", err)
		}
		return g
	}()); err != nil {
		t.Fatalf("Substitute failed: %v", err)
	}

	// Same ethanol, atoms listed back to front.
	b := New()
	n := len(a.Atoms)
	for i := n - 1; i >= 0; i-- {
		b.AddAtom(a.Atoms[i])
	}
	for _, bond := range a.Bonds {
		b.AddBond(n-1-bond[0], n-1-bond[1])
	}

	if !Isomorphic(a, b) {
		t.Error("relabelled ethanol must be isomorphic")
	}
}

func TestIsomorphicMismatch(t *testing.T) {
	ethanol := Chain(element.Carbon, 2)
	oh := Chain(element.Oxygen, 1)
	if err := oh.MakeGroup(); err != nil {
		t.Fatalf("MakeGroup failed: %v", err)
	}
	if err := ethanol.Substitute(Number(1), oh); err != nil {
		t.Fatalf("Substitute failed: %v", err)
	}

	// Dimethyl ether has the same formula.
	ether := New()
	o := ether.AddAtom(element.Oxygen)
	ether.AddBond(o, ether.AddAtom(element.Carbon))
	ether.AddBond(o, ether.AddAtom(element.Carbon))
	ether.Saturate()

	if ethanol.Formula() != ether.Formula() {
		t.Fatalf("formulas differ: %s vs %s", ethanol.Formula(), ether.Formula())
	}
	if Isomorphic(ethanol, ether) {
		t.Error("ethanol and dimethyl ether must not be isomorphic")
	}
	if Isomorphic(ethanol, Chain(element.Carbon, 2)) {
		t.Error("graphs of different size must not be isomorphic")
	}
}

func TestFormula(t *testing.T) {
	tests := []struct {
		graph   *Graph
		formula string
	}{
		{Chain(element.Carbon, 1), "CH4"},
		{Chain(element.Carbon, 6), "C6H14"},
		{Chain(element.Oxygen, 1), "H2O"},
		{Chain(element.Bromine, 1), "BrH"},
		{New(), ""},
	}
	for _, tt := range tests {
		if got := tt.graph.Formula(); got != tt.formula {
			t.Errorf("Expected %q, got %q", tt.formula, got)
		}
	}
}

func TestWriteDOT(t *testing.T) {
	g := New()
	g.AddBond(g.AddAtom(element.Hydrogen), g.AddAtom(element.Chlorine))

	want := "// Compile using `neato`\n" +
		"graph molecule {\n" +
		"    0 [label=\"H\", shape=none];\n" +
		"    1 [label=\"Cl\", shape=none];\n" +
		"    0 -- 1;\n" +
		"}\n"

	var sb strings.Builder
	if err := g.WriteDOT(&sb); err != nil {
		t.Fatalf("WriteDOT failed: %v", err)
	}
	if sb.String() != want {
		t.Errorf("Expected:\n%s\nGot:\n%s", want, sb.String())
	}
	if g.String() != want {
		t.Error("String must match WriteDOT")
	}
}
