// Package iupac translates IUPAC organic nomenclature into molecular graphs.
//
// A name is scanned into tokens by a prefix automaton, reduced into a tree
// by a shift-reduce parser and interpreted by graph rewriting:
//
//	g, err := iupac.Translate("Propan-2-ol")
package iupac

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/OpenTraceLab/iupac/pkg/molecule"
)

// Translator runs the name pipeline and reports each stage to a logger.
type Translator struct {
	logger *zap.Logger
}

// NewTranslator creates a translator. A nil logger discards output.
func NewTranslator(logger *zap.Logger) *Translator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Translator{logger: logger}
}

// Tokens scans name.
func (t *Translator) Tokens(name string) ([]Token, error) {
	tokens, err := Tokenize(name)
	if err != nil {
		t.logger.Debug("scan failed", zap.String("name", name), zap.Error(err))
		return nil, err
	}
	t.logger.Debug("scanned", zap.String("name", name), zap.Int("tokens", len(tokens)))
	return tokens, nil
}

// Parse parses name into its tree.
func (t *Translator) Parse(name string) (Node, error) {
	n, err := Parse(name)
	if err != nil {
		t.logger.Debug("parse failed", zap.String("name", name), zap.Error(err))
		return nil, err
	}
	t.logger.Debug("parsed", zap.String("name", name), zap.Stringer("ast", n))
	return n, nil
}

// Dump parses name and renders its tree as an s-expression. The rendering is
// read back and must describe the same tree.
func (t *Translator) Dump(name string) (string, error) {
	n, err := t.Parse(name)
	if err != nil {
		return "", err
	}
	expr := n.String()
	back, err := ReadTree(expr)
	if err != nil {
		return "", err
	}
	if !Equal(n, back) {
		return "", fmt.Errorf("%w: %s reads back as %s", ErrMalformedTree, expr, back)
	}
	return expr, nil
}

// Translate parses name and builds its graph.
func (t *Translator) Translate(name string) (*molecule.Graph, error) {
	n, err := t.Parse(name)
	if err != nil {
		return nil, err
	}
	g, err := Build(n)
	if err != nil {
		t.logger.Debug("build failed", zap.String("name", name), zap.Error(err))
		return nil, err
	}
	t.logger.Debug("built",
		zap.String("name", name),
		zap.String("formula", g.Formula()),
		zap.Int("atoms", len(g.Atoms)),
		zap.Int("bonds", len(g.Bonds)))
	return g, nil
}

var defaultTranslator = NewTranslator(nil)

// Translate parses name and builds its graph without logging.
func Translate(name string) (*molecule.Graph, error) {
	return defaultTranslator.Translate(name)
}
