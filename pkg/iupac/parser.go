package iupac

import (
	"fmt"
	"io"
	"strings"

	"github.com/OpenTraceLab/iupac/pkg/molecule"
)

type itemKind uint8

const (
	itemMolecule itemKind = iota
	itemOpenBracket
	itemLocant
	itemMultiplicity
)

type stackItem struct {
	kind     itemKind
	molecule Node
	locant   molecule.Locant
	n        int
}

func (it stackItem) String() string {
	switch it.kind {
	case itemMolecule:
		return it.molecule.String()
	case itemOpenBracket:
		return "("
	case itemLocant:
		return "locant " + it.locant.String()
	default:
		return fmt.Sprintf("multiplicity %d", it.n)
	}
}

// parser is a shift-reduce parser over the token stream.
type parser struct {
	name  string
	stack []stackItem
}

// Parse turns a name into its tree.
func Parse(name string) (Node, error) {
	normalized := Normalize(name)
	p := &parser{name: normalized}
	s := NewScanner(normalized)

	for {
		tok, err := s.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if err := p.shift(tok); err != nil {
			return nil, err
		}
	}

	m, err := p.popMolecule()
	if err != nil {
		return nil, err
	}
	if len(p.stack) != 0 {
		return nil, p.errorf(ErrUnbalancedStack)
	}
	return m, nil
}

func (p *parser) errorf(err error) *ParseError {
	items := make([]string, len(p.stack))
	for i, it := range p.stack {
		items[i] = it.String()
	}
	return &ParseError{
		Name:   p.name,
		Detail: "stack [" + strings.Join(items, ", ") + "]",
		Err:    err,
	}
}

func (p *parser) top() (stackItem, bool) {
	if len(p.stack) == 0 {
		return stackItem{}, false
	}
	return p.stack[len(p.stack)-1], true
}

func (p *parser) topIs(kind itemKind) bool {
	it, ok := p.top()
	return ok && it.kind == kind
}

func (p *parser) pop() stackItem {
	it := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	return it
}

func (p *parser) pushMolecule(n Node) {
	p.stack = append(p.stack, stackItem{kind: itemMolecule, molecule: n})
}

func (p *parser) shift(tok Token) error {
	switch tok.Kind {
	case OpenBracket:
		p.stack = append(p.stack, stackItem{kind: itemOpenBracket})

	case CloseBracket:
		return p.closeBracket()

	case LocantToken:
		p.stack = append(p.stack, stackItem{kind: itemLocant, locant: tok.Locant})

	case Multiplicity:
		p.stack = append(p.stack, stackItem{kind: itemMultiplicity, n: tok.N})

	case Unsaturated:
		m, err := p.popMolecule()
		if err != nil {
			return err
		}
		if tok.N != 0 {
			m = &UnsaturatedNode{Degree: tok.N, Child: m}
		}
		p.pushMolecule(m)

	case FreeValence:
		m, err := p.popMolecule()
		if err != nil {
			return err
		}
		p.pushMolecule(&GroupNode{Child: m})

	case HydrideToken:
		h := tok.Hydride
		if h.Kind == Purine {
			it, ok := p.top()
			if !ok || it.kind != itemLocant || !it.locant.IsIndicatedHydrogen() {
				return p.errorf(ErrMissingPosition)
			}
			p.pop()
			h.Isomer = it.locant.N
		}
		p.pushMolecule(&HydrideNode{Hydride: h})

	case BaseToken:
		p.pushMolecule(&BaseNode{Base: tok.Base})

	case Prefix:
		p.pushMolecule(characteristicGroup(tok.Group))

	case Suffix:
		group := characteristicGroup(tok.Group)
		positions := p.popMultiplicityAndPositions()
		m, err := p.popMolecule()
		if err != nil {
			return err
		}
		for _, pos := range positions {
			m = &SubstitutionNode{Locant: pos, Group: group, Parent: m}
		}
		p.pushMolecule(m)
	}
	return nil
}

func characteristicGroup(g CharacteristicGroup) Node {
	return &GroupNode{Child: &BaseNode{Base: g.Base()}}
}

// closeBracket reduces the bracket contents to one molecule. Indicated
// hydrogen locants just before the bracket closes, as in "2,4(1H,3H)-dione",
// become hydro substitutions on the nearest molecule below.
func (p *parser) closeBracket() error {
	var hydro []molecule.Locant
	for p.topIs(itemLocant) {
		l := p.pop().locant
		if !l.IsIndicatedHydrogen() {
			return p.errorf(fmt.Errorf("%w: %s", ErrUnexpectedLocant, l))
		}
		hydro = append(hydro, molecule.Number(l.N))
	}

	if !p.hasOpenBracket() {
		return p.errorf(ErrUnbalancedBrackets)
	}
	if p.topIs(itemOpenBracket) {
		p.pop()
	} else {
		m, err := p.popMolecule()
		if err != nil {
			return err
		}
		if !p.topIs(itemOpenBracket) {
			return p.errorf(ErrUnbalancedBrackets)
		}
		p.pop()
		p.pushMolecule(m)
	}

	if len(hydro) == 0 {
		return nil
	}
	for i := len(p.stack) - 1; i >= 0; i-- {
		if p.stack[i].kind != itemMolecule {
			continue
		}
		group := characteristicGroup(Hydro)
		for _, l := range hydro {
			p.stack[i].molecule = &SubstitutionNode{Locant: l, Group: group, Parent: p.stack[i].molecule}
		}
		return nil
	}
	return p.errorf(ErrExpectedMolecule)
}

// popMolecule pops the molecule on top of the stack, or an implicit alkane
// when the top is a bare multiplicity, and folds every group below it into
// substitutions.
func (p *parser) popMolecule() (Node, error) {
	it, ok := p.top()
	if !ok {
		return nil, p.errorf(ErrExpectedMolecule)
	}

	var m Node
	switch it.kind {
	case itemMolecule:
		m = p.pop().molecule
	case itemMultiplicity:
		m = &HydrideNode{Hydride: Alkane(p.popMultiplicity())}
	default:
		return nil, p.errorf(ErrExpectedMolecule)
	}

	for p.topIs(itemMolecule) {
		if it, _ := p.top(); !isGroup(it.molecule) {
			return nil, p.errorf(fmt.Errorf("%w before %s", ErrExpectedGroup, m))
		}
		group := p.pop().molecule
		for _, pos := range p.popMultiplicityAndPositions() {
			m = &SubstitutionNode{Locant: pos, Group: group, Parent: m}
		}
	}
	return m, nil
}

func (p *parser) hasOpenBracket() bool {
	for _, it := range p.stack {
		if it.kind == itemOpenBracket {
			return true
		}
	}
	return false
}

// isGroup reports whether n builds a substituent with a free valence.
func isGroup(n Node) bool {
	switch n := n.(type) {
	case *GroupNode:
		return true
	case *SubstitutionNode:
		return isGroup(n.Parent)
	case *UnsaturatedNode:
		return isGroup(n.Child)
	default:
		return false
	}
}

// popMultiplicity sums the consecutive multiplicities on top of the stack,
// defaulting to one.
func (p *parser) popMultiplicity() int {
	if !p.topIs(itemMultiplicity) {
		return 1
	}
	n := 0
	for p.topIs(itemMultiplicity) {
		n += p.pop().n
	}
	return n
}

// popMultiplicityAndPositions returns one locant per unit of multiplicity,
// taking pending locants from the stack and Unspecified once they run out.
func (p *parser) popMultiplicityAndPositions() []molecule.Locant {
	n := p.popMultiplicity()
	positions := make([]molecule.Locant, n)
	for i := range positions {
		if p.topIs(itemLocant) {
			positions[i] = p.pop().locant
		}
	}
	return positions
}
