package iupac

import (
	"errors"
	"slices"
	"testing"

	"github.com/OpenTraceLab/iupac/pkg/element"
	"github.com/OpenTraceLab/iupac/pkg/molecule"
)

func loc(n int) Token { return locantToken(molecule.Number(n)) }
func hloc(n int) Token {
	return locantToken(molecule.ElementLocant(n, element.Hydrogen))
}

var (
	openTok  = simpleToken(OpenBracket)
	closeTok = simpleToken(CloseBracket)
	yl       = simpleToken(FreeValence)
)

func TestNormalize(t *testing.T) {
	tests := map[string]string{
		"Ethanol":                "ethanol",
		"N-Methylphenethylamine": "N-methylphenethylamine",
		"9H-Purin-6-amine":       "9H-purin-6-amine",
		"(RS)-2-Butanol":         "2-butanol",
		"":                       "",
	}
	for input, want := range tests {
		if got := Normalize(input); got != want {
			t.Errorf("Normalize(%q): expected %q, got %q", input, want, got)
		}
	}
}

func TestTokenizeSimple(t *testing.T) {
	tests := []struct {
		name   string
		tokens []Token
	}{
		{"butane", []Token{hydrideToken(butane), unsaturatedToken(0)}},
		{"ethene", []Token{hydrideToken(ethane), unsaturatedToken(1)}},
		{"pentyne", []Token{multiplicityToken(5), unsaturatedToken(2)}},
		{"hexamethylpentane", []Token{
			multiplicityToken(6), hydrideToken(methane), yl,
			multiplicityToken(5), unsaturatedToken(0),
		}},
		{"propan-2-ol", []Token{
			hydrideToken(propane), unsaturatedToken(0), loc(2), suffixToken(Hydroxy),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.name)
			if err != nil {
				t.Fatalf("Tokenize failed: %v", err)
			}
			if !slices.Equal(tokens, tt.tokens) {
				t.Errorf("Expected %v, got %v", tt.tokens, tokens)
			}
		})
	}
}

func TestTokenizeFixtures(t *testing.T) {
	tests := []struct {
		name   string
		tokens []Token
	}{
		{dopamine, []Token{
			loc(4), openTok, loc(2), prefixToken(Amino), hydrideToken(ethane), yl, closeTok,
			hydrideToken(Hydride{Kind: Benzene}),
			loc(1), loc(2), multiplicityToken(2), suffixToken(Hydroxy),
		}},
		{caffeine, []Token{
			loc(1), loc(3), loc(7), multiplicityToken(3), hydrideToken(methane), yl,
			loc(3), loc(7), multiplicityToken(2), prefixToken(Hydro),
			hloc(1), hydrideToken(Hydride{Kind: Purine}),
			loc(2), loc(6), multiplicityToken(2), suffixToken(Oxo),
		}},
		{salbutamol, []Token{
			loc(4), openTok, loc(2), openTok, baseToken(Isobutane), yl, prefixToken(Amino), closeTok,
			loc(1), prefixToken(Hydroxy), hydrideToken(ethane), yl, closeTok,
			loc(2), openTok, prefixToken(Hydroxy), hydrideToken(methane), yl, closeTok,
			hydrideToken(Hydride{Kind: Benzene}), suffixToken(Hydroxy),
		}},
		{thymine, []Token{
			loc(5), hydrideToken(methane), yl, hydrideToken(Hydride{Kind: Pyrimidine}),
			loc(2), loc(4), openTok, hloc(1), hloc(3), closeTok,
			multiplicityToken(2), suffixToken(Oxo),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.name)
			if err != nil {
				t.Fatalf("Tokenize failed: %v", err)
			}
			if !slices.Equal(tokens, tt.tokens) {
				t.Errorf("Expected %v\ngot %v", tt.tokens, tokens)
			}
		})
	}
}

var compositePrefixes = []struct {
	prefix string
	n      int
}{
	{"tetradeca", 14},
	{"henicosa", 21},
	{"docosa", 22},
	{"tricosa", 23},
	{"tetracosa", 24},
	{"hentetraconta", 41},
	{"dopentaconta", 52},
	{"undecahecta", 111},
	{"trihexacontatricta", 363},
	{"hexaoctacontatetracta", 486},
}

func TestCompositePrefixes(t *testing.T) {
	for _, tt := range compositePrefixes {
		tokens, err := Tokenize(tt.prefix)
		if err != nil {
			t.Fatalf("%s: Tokenize failed: %v", tt.prefix, err)
		}
		want := []Token{multiplicityToken(tt.n)}
		if !slices.Equal(tokens, want) {
			t.Errorf("%s: expected %v, got %v", tt.prefix, want, tokens)
		}
	}
}

func TestSeparatedMultiplicitiesStayApart(t *testing.T) {
	tokens, err := Tokenize("di-tri")
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	want := []Token{multiplicityToken(2), multiplicityToken(3)}
	if !slices.Equal(tokens, want) {
		t.Errorf("Expected %v, got %v", want, tokens)
	}
}

func TestTokenizeIgnoresCase(t *testing.T) {
	for _, name := range []string{"2-METHYLPROPANE", "2-MethylPropane", "2-methylpropane"} {
		tokens, err := Tokenize(name)
		if err != nil {
			t.Fatalf("%s: Tokenize failed: %v", name, err)
		}
		want := []Token{loc(2), hydrideToken(methane), yl, hydrideToken(propane), unsaturatedToken(0)}
		if !slices.Equal(tokens, want) {
			t.Errorf("%s: expected %v, got %v", name, want, tokens)
		}
	}

	// The H of an indicated hydrogen locant is an element symbol, not a vowel.
	tokens, err := Tokenize("9H-PURIN-6-AMINE")
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	if len(tokens) == 0 || tokens[0] != hloc(9) {
		t.Errorf("Expected an indicated hydrogen locant first, got %v", tokens)
	}
}

func TestTokenizeUnrecognized(t *testing.T) {
	for _, name := range []string{"butanex", "ethyl?", "Methane!"} {
		_, err := Tokenize(name)
		if !errors.Is(err, ErrUnrecognizedInput) {
			t.Errorf("%q: expected ErrUnrecognizedInput, got %v", name, err)
			continue
		}
		var perr *ParseError
		if !errors.As(err, &perr) || perr.Detail == "" {
			t.Errorf("%q: expected a ParseError with the remaining input, got %v", name, err)
		}
	}
}

func TestScannerRemaining(t *testing.T) {
	s := NewScanner("propan-2-ol")
	tok, err := s.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if tok != hydrideToken(propane) {
		t.Errorf("Expected propane, got %v", tok)
	}
	if s.Remaining() != "an-2-ol" {
		t.Errorf("Expected remaining %q, got %q", "an-2-ol", s.Remaining())
	}
}

func TestTokenString(t *testing.T) {
	tests := map[Token]string{
		hloc(1):               "locant 1H",
		multiplicityToken(14): "multiplicity 14",
		hydrideToken(butane):  "hydride C 4",
		suffixToken(Oxo):      "suffix oxo",
		baseToken(Isobutane):  "base isobutane",
		closeTok:              "close",
	}
	for tok, want := range tests {
		if got := tok.String(); got != want {
			t.Errorf("Expected %q, got %q", want, got)
		}
	}
}
