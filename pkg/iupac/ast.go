package iupac

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chewxy/sexp"

	"github.com/OpenTraceLab/iupac/pkg/element"
	"github.com/OpenTraceLab/iupac/pkg/molecule"
)

// Node is a node of the parsed name tree. Nodes are never modified after
// construction, so subtrees may be shared between parents.
type Node interface {
	fmt.Stringer
	writeSexp(sb *strings.Builder)
}

// HydrideNode is a parent hydride leaf.
type HydrideNode struct {
	Hydride Hydride
}

// BaseNode is a named base molecule leaf.
type BaseNode struct {
	Base Base
}

// GroupNode turns its child into a substituent with one free valence.
type GroupNode struct {
	Child Node
}

// UnsaturatedNode removes Degree hydrogen pairs from its child.
type UnsaturatedNode struct {
	Degree int
	Child  Node
}

// SubstitutionNode attaches Group to Parent at Locant.
type SubstitutionNode struct {
	Locant molecule.Locant
	Group  Node
	Parent Node
}

func (n *HydrideNode) writeSexp(sb *strings.Builder) {
	fmt.Fprintf(sb, "(hydride %s)", n.Hydride)
}

func (n *BaseNode) writeSexp(sb *strings.Builder) {
	fmt.Fprintf(sb, "(base %s)", n.Base)
}

func (n *GroupNode) writeSexp(sb *strings.Builder) {
	sb.WriteString("(group ")
	n.Child.writeSexp(sb)
	sb.WriteString(")")
}

func (n *UnsaturatedNode) writeSexp(sb *strings.Builder) {
	fmt.Fprintf(sb, "(unsaturated %d ", n.Degree)
	n.Child.writeSexp(sb)
	sb.WriteString(")")
}

func (n *SubstitutionNode) writeSexp(sb *strings.Builder) {
	sb.WriteString("(substitution ")
	switch n.Locant.Kind {
	case molecule.Numbered:
		fmt.Fprintf(sb, "(locant %d)", n.Locant.N)
	case molecule.Elemental:
		fmt.Fprintf(sb, "(locant %d %s)", n.Locant.N, n.Locant.Element.Symbol())
	default:
		sb.WriteString("unspecified")
	}
	sb.WriteString(" ")
	n.Group.writeSexp(sb)
	sb.WriteString(" ")
	n.Parent.writeSexp(sb)
	sb.WriteString(")")
}

func sexpString(n Node) string {
	var sb strings.Builder
	n.writeSexp(&sb)
	return sb.String()
}

func (n *HydrideNode) String() string      { return sexpString(n) }
func (n *BaseNode) String() string         { return sexpString(n) }
func (n *GroupNode) String() string        { return sexpString(n) }
func (n *UnsaturatedNode) String() string  { return sexpString(n) }
func (n *SubstitutionNode) String() string { return sexpString(n) }

// Equal reports whether two trees have the same structure.
func Equal(a, b Node) bool {
	if a == b {
		return true
	}
	switch x := a.(type) {
	case *HydrideNode:
		y, ok := b.(*HydrideNode)
		return ok && x.Hydride == y.Hydride
	case *BaseNode:
		y, ok := b.(*BaseNode)
		return ok && x.Base == y.Base
	case *GroupNode:
		y, ok := b.(*GroupNode)
		return ok && Equal(x.Child, y.Child)
	case *UnsaturatedNode:
		y, ok := b.(*UnsaturatedNode)
		return ok && x.Degree == y.Degree && Equal(x.Child, y.Child)
	case *SubstitutionNode:
		y, ok := b.(*SubstitutionNode)
		return ok && x.Locant == y.Locant && Equal(x.Group, y.Group) && Equal(x.Parent, y.Parent)
	default:
		return false
	}
}

// CountLeaves re-reads an s-expression rendering of a tree and returns the
// number of atoms it contains.
func CountLeaves(expr string) (int, error) {
	exprs, err := sexp.ParseString(expr)
	if err != nil {
		return 0, fmt.Errorf("iupac: read s-expression: %w", err)
	}
	n := 0
	for _, e := range exprs {
		if e.IsLeaf() {
			n++
			continue
		}
		n += e.LeafCount()
	}
	return n, nil
}

// ReadTree reads a tree back from its s-expression rendering.
func ReadTree(expr string) (Node, error) {
	exprs, err := sexp.ParseString(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedTree, err)
	}
	if len(exprs) != 1 {
		return nil, fmt.Errorf("%w: %d expressions", ErrMalformedTree, len(exprs))
	}
	return readNode(exprs[0])
}

// form splits a list into its head symbol and arguments.
func form(s sexp.Sexp) (string, []sexp.Sexp, error) {
	list, ok := s.(sexp.List)
	if !ok || len(list) == 0 {
		return "", nil, fmt.Errorf("%w: expected a list, got %v", ErrMalformedTree, s)
	}
	head, ok := list[0].(sexp.Symbol)
	if !ok {
		return "", nil, fmt.Errorf("%w: list head %v", ErrMalformedTree, list[0])
	}
	return string(head), list[1:], nil
}

func symbols(args []sexp.Sexp) ([]string, bool) {
	out := make([]string, len(args))
	for i, a := range args {
		sym, ok := a.(sexp.Symbol)
		if !ok {
			return nil, false
		}
		out[i] = string(sym)
	}
	return out, true
}

func readNode(s sexp.Sexp) (Node, error) {
	head, args, err := form(s)
	if err != nil {
		return nil, err
	}
	malformed := fmt.Errorf("%w: %v", ErrMalformedTree, s)

	switch head {
	case "hydride":
		syms, ok := symbols(args)
		if !ok {
			return nil, malformed
		}
		h, err := readHydride(syms)
		if err != nil {
			return nil, malformed
		}
		return &HydrideNode{Hydride: h}, nil

	case "base":
		syms, ok := symbols(args)
		if !ok || len(syms) != 1 {
			return nil, malformed
		}
		for b, name := range baseNames {
			if name == syms[0] {
				return &BaseNode{Base: Base(b)}, nil
			}
		}
		return nil, malformed

	case "group":
		if len(args) != 1 {
			return nil, malformed
		}
		child, err := readNode(args[0])
		if err != nil {
			return nil, err
		}
		return &GroupNode{Child: child}, nil

	case "unsaturated":
		if len(args) != 2 {
			return nil, malformed
		}
		sym, ok := args[0].(sexp.Symbol)
		if !ok {
			return nil, malformed
		}
		degree, err := strconv.Atoi(string(sym))
		if err != nil {
			return nil, malformed
		}
		child, err := readNode(args[1])
		if err != nil {
			return nil, err
		}
		return &UnsaturatedNode{Degree: degree, Child: child}, nil

	case "substitution":
		if len(args) != 3 {
			return nil, malformed
		}
		l, err := readLocant(args[0])
		if err != nil {
			return nil, err
		}
		group, err := readNode(args[1])
		if err != nil {
			return nil, err
		}
		parent, err := readNode(args[2])
		if err != nil {
			return nil, err
		}
		return &SubstitutionNode{Locant: l, Group: group, Parent: parent}, nil
	}
	return nil, malformed
}

func readHydride(syms []string) (Hydride, error) {
	switch {
	case len(syms) == 1 && syms[0] == "benzene":
		return Hydride{Kind: Benzene}, nil
	case len(syms) == 1 && syms[0] == "pyrimidine":
		return Hydride{Kind: Pyrimidine}, nil
	case len(syms) == 2 && syms[0] == "purine":
		n, err := strconv.Atoi(syms[1])
		return Hydride{Kind: Purine, Isomer: n}, err
	case len(syms) == 2:
		e, err := element.FromSymbol(syms[0])
		if err != nil {
			return Hydride{}, err
		}
		n, err := strconv.Atoi(syms[1])
		return Chain(e, n), err
	}
	return Hydride{}, ErrMalformedTree
}

func readLocant(s sexp.Sexp) (molecule.Locant, error) {
	if sym, ok := s.(sexp.Symbol); ok && sym == "unspecified" {
		return molecule.Locant{}, nil
	}
	head, args, err := form(s)
	if err != nil {
		return molecule.Locant{}, err
	}
	syms, ok := symbols(args)
	if head != "locant" || !ok || len(syms) < 1 || len(syms) > 2 {
		return molecule.Locant{}, fmt.Errorf("%w: locant %v", ErrMalformedTree, s)
	}
	n, err := strconv.Atoi(syms[0])
	if err != nil {
		return molecule.Locant{}, fmt.Errorf("%w: locant %v", ErrMalformedTree, s)
	}
	if len(syms) == 1 {
		return molecule.Number(n), nil
	}
	e, err := element.FromSymbol(syms[1])
	if err != nil {
		return molecule.Locant{}, fmt.Errorf("%w: locant %v: %w", ErrMalformedTree, s, err)
	}
	return molecule.ElementLocant(n, e), nil
}
