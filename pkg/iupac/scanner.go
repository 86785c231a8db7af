package iupac

import (
	"io"
	"strconv"
	"strings"

	"github.com/OpenTraceLab/iupac/pkg/molecule"
)

// stereoPrefix is removed from the front of a name; stereodescriptors are
// not represented in the graph.
const stereoPrefix = "(RS)-"

// Normalize strips stereodescriptors and undoes the capitalization of the
// first letter of a name (P-16.0), leaving element symbols such as the H in
// "1H-purine" untouched.
func Normalize(name string) string {
	for strings.HasPrefix(name, stereoPrefix) {
		name = name[len(stereoPrefix):]
	}
	return uncapitalize(name)
}

// uncapitalize lowercases the first upper case letter that is followed by a
// lower case letter.
func uncapitalize(name string) string {
	for i := 0; i+1 < len(name); i++ {
		if isASCIIUpper(name[i]) && isASCIILower(name[i+1]) {
			return name[:i] + string(name[i]+('a'-'A')) + name[i+1:]
		}
	}
	return name
}

func isASCIIUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isASCIILower(c byte) bool { return c >= 'a' && c <= 'z' }

func isVowel(c byte) bool {
	if isASCIIUpper(c) {
		c += 'a' - 'A'
	}
	switch c {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

// separators carry no meaning beyond splitting morphemes.
const separators = "-,"

// Scanner produces the tokens of a normalized name one at a time. Vocabulary
// matching ignores ASCII case; the element symbol of an indicated hydrogen
// locant is matched exactly.
type Scanner struct {
	name  string
	input string
	vocab *vocabulary
}

// NewScanner creates a scanner over a name that has already been passed
// through Normalize.
func NewScanner(name string) *Scanner {
	return &Scanner{
		name:  name,
		input: name,
		vocab: loadVocabulary(),
	}
}

// Next returns the next token, or io.EOF once the input is consumed.
// Multiplicative prefixes that follow each other without a separator are
// merged into one token.
func (s *Scanner) Next() (Token, error) {
	tok, err := s.scan(true)
	if err != nil || tok.Kind != Multiplicity {
		return tok, err
	}

	for {
		saved := s.input
		next, err := s.scan(false)
		if err != nil || next.Kind != Multiplicity {
			s.input = saved
			return tok, nil
		}
		tok.N += next.N
	}
}

// Remaining returns the unscanned input.
func (s *Scanner) Remaining() string {
	return s.input
}

func (s *Scanner) scan(skipSeparators bool) (Token, error) {
	for {
		if skipSeparators {
			s.input = strings.TrimLeft(s.input, separators)
		}
		if s.input == "" {
			return Token{}, io.EOF
		}

		if n, tok, ok := s.vocab.tokens.GetByPrefixFold(s.input); ok && n > 0 {
			s.input = s.input[n:]
			return tok, nil
		}

		if digits := leadingDigits(s.input); digits > 0 {
			return s.scanLocant(digits)
		}

		if isVowel(s.input[0]) {
			s.input = s.input[1:]
			continue
		}

		return Token{}, &ParseError{Name: s.name, Detail: s.input, Err: ErrUnrecognizedInput}
	}
}

func (s *Scanner) scanLocant(digits int) (Token, error) {
	n, err := strconv.Atoi(s.input[:digits])
	if err != nil {
		return Token{}, &ParseError{Name: s.name, Detail: s.input, Err: ErrUnrecognizedInput}
	}
	s.input = s.input[digits:]

	if length, e, ok := s.vocab.elements.GetByPrefix(s.input); ok && length > 0 {
		s.input = s.input[length:]
		return locantToken(molecule.ElementLocant(n, e)), nil
	}
	return locantToken(molecule.Number(n)), nil
}

func leadingDigits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}

// Tokenize scans a whole name, normalizing it first.
func Tokenize(name string) ([]Token, error) {
	s := NewScanner(Normalize(name))
	var tokens []Token
	for {
		tok, err := s.Next()
		if err == io.EOF {
			return tokens, nil
		}
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
}
