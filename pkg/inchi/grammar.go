package inchi

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// layerLexer tokenizes the formula, connection and hydrogen layers.
var layerLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Element", Pattern: `[A-Z][a-z]?`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Punct", Pattern: `[-,()]`},
})

// formulaLayer is e.g. "C8H11NO2".
type formulaLayer struct {
	Terms []*formulaTerm `@@+`
}

type formulaTerm struct {
	Symbol string `@Element`
	Count  *int   `@Int?`
}

// connectionLayer is e.g. "1-3(2)4". Branches in parentheses start at the
// preceding atom; the chain resumes from that atom afterwards.
type connectionLayer struct {
	Chain *chain `@@`
}

type chain struct {
	Head  int     `@Int`
	Links []*link `@@*`
}

type link struct {
	Branch *branch `  @@`
	Next   *int    `| "-"? @Int`
}

type branch struct {
	Chains []*chain `"(" @@ ( "," @@ )* ")"`
}

// hydrogenLayer is e.g. "3-4H,1-2H3,(H2,6,7)".
type hydrogenLayer struct {
	Groups []*hydrogenGroup `@@ ( "," @@ )*`
}

type hydrogenGroup struct {
	Mobile   *mobileGroup   `  @@`
	Immobile *immobileGroup `| @@`
}

type immobileGroup struct {
	Ranges []*atomRange `@@ ( "," @@ )*`
	Count  *int         `"H" @Int?`
}

type atomRange struct {
	Start int  `@Int`
	End   *int `( "-" @Int )?`
}

type mobileGroup struct {
	Count *int  `"(" "H" @Int?`
	Atoms []int `( "," @Int )+ ")"`
}

// Parser parses the layers of standard InChI strings.
type Parser struct {
	formula     *participle.Parser[formulaLayer]
	connections *participle.Parser[connectionLayer]
	hydrogens   *participle.Parser[hydrogenLayer]
}

// NewParser builds the layer grammars.
func NewParser() (*Parser, error) {
	options := []participle.Option{
		participle.Lexer(layerLexer),
		participle.UseLookahead(2),
	}

	formula, err := participle.Build[formulaLayer](options...)
	if err != nil {
		return nil, fmt.Errorf("failed to build formula parser: %w", err)
	}
	connections, err := participle.Build[connectionLayer](options...)
	if err != nil {
		return nil, fmt.Errorf("failed to build connection parser: %w", err)
	}
	hydrogens, err := participle.Build[hydrogenLayer](options...)
	if err != nil {
		return nil, fmt.Errorf("failed to build hydrogen parser: %w", err)
	}

	return &Parser{formula: formula, connections: connections, hydrogens: hydrogens}, nil
}
