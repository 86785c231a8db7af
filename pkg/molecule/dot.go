package molecule

import (
	"fmt"
	"io"
	"strings"
)

// WriteDOT renders g as an undirected Graphviz graph.
func (g *Graph) WriteDOT(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "// Compile using `neato`"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "graph molecule {"); err != nil {
		return err
	}
	for i, atom := range g.Atoms {
		if _, err := fmt.Fprintf(w, "    %d [label=%q, shape=none];\n", i, atom.Symbol()); err != nil {
			return err
		}
	}
	for _, b := range g.Bonds {
		if _, err := fmt.Fprintf(w, "    %d -- %d;\n", b[0], b[1]); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}

// String returns the DOT rendering.
func (g *Graph) String() string {
	var sb strings.Builder
	_ = g.WriteDOT(&sb)
	return sb.String()
}
