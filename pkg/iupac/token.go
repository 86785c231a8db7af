package iupac

import (
	"fmt"

	"github.com/OpenTraceLab/iupac/pkg/molecule"
)

// TokenKind identifies the variant held by a Token.
type TokenKind uint8

const (
	OpenBracket  TokenKind = iota // "(", "["
	CloseBracket                  // ")", "]"
	LocantToken                   // "1-", "2-", "1H-"
	Multiplicity                  // "di", "tri", "tetradeca"
	Unsaturated                   // "an", "en", "yn"
	FreeValence                   // "yl"
	HydrideToken                  // "meth", "benzen", "purin"
	BaseToken                     // "water", "tert-but"
	Prefix                        // "hydroxy", "amino"
	Suffix                        // "ol", "one", "amine"
)

var tokenKindNames = [...]string{
	OpenBracket:  "open",
	CloseBracket: "close",
	LocantToken:  "locant",
	Multiplicity: "multiplicity",
	Unsaturated:  "unsaturated",
	FreeValence:  "free-valence",
	HydrideToken: "hydride",
	BaseToken:    "base",
	Prefix:       "prefix",
	Suffix:       "suffix",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", k)
}

// Token is one scanned morpheme. Only the fields of its Kind are set, so
// tokens compare with ==.
type Token struct {
	Kind    TokenKind
	Locant  molecule.Locant
	N       int // Multiplicity count or Unsaturated degree
	Hydride Hydride
	Base    Base
	Group   CharacteristicGroup
}

func (t Token) String() string {
	switch t.Kind {
	case LocantToken:
		return fmt.Sprintf("%s %s", t.Kind, t.Locant)
	case Multiplicity, Unsaturated:
		return fmt.Sprintf("%s %d", t.Kind, t.N)
	case HydrideToken:
		return fmt.Sprintf("%s %s", t.Kind, t.Hydride)
	case BaseToken:
		return fmt.Sprintf("%s %s", t.Kind, t.Base)
	case Prefix, Suffix:
		return fmt.Sprintf("%s %s", t.Kind, t.Group)
	default:
		return t.Kind.String()
	}
}

func simpleToken(kind TokenKind) Token        { return Token{Kind: kind} }
func locantToken(l molecule.Locant) Token     { return Token{Kind: LocantToken, Locant: l} }
func multiplicityToken(n int) Token           { return Token{Kind: Multiplicity, N: n} }
func unsaturatedToken(n int) Token            { return Token{Kind: Unsaturated, N: n} }
func hydrideToken(h Hydride) Token            { return Token{Kind: HydrideToken, Hydride: h} }
func baseToken(b Base) Token                  { return Token{Kind: BaseToken, Base: b} }
func prefixToken(g CharacteristicGroup) Token { return Token{Kind: Prefix, Group: g} }
func suffixToken(g CharacteristicGroup) Token { return Token{Kind: Suffix, Group: g} }
