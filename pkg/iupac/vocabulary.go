package iupac

import (
	"sync"

	"github.com/OpenTraceLab/iupac/pkg/dfa"
	"github.com/OpenTraceLab/iupac/pkg/element"
)

type vocabulary struct {
	tokens   *dfa.Automaton[Token]
	elements *dfa.Automaton[element.Element]
}

var (
	vocabularyOnce sync.Once
	vocab          *vocabulary
)

// loadVocabulary returns the shared read-only vocabulary, building it on the
// first call.
func loadVocabulary() *vocabulary {
	vocabularyOnce.Do(func() {
		vocab = buildVocabulary()
	})
	return vocab
}

// Mononuclear parent hydride stems, P-21.1, with the "ane" ending removed.
var mononuclearStems = []struct {
	stem    string
	element element.Element
}{
	{"bor", element.Boron},
	{"carb", element.Carbon},
	{"az", element.Nitrogen},
	{"oxid", element.Oxygen},
	{"fluor", element.Fluorine},
	{"alum", element.Aluminium},
	{"sil", element.Silicon},
	{"phosph", element.Phosphorus},
	{"sulf", element.Sulfur},
	{"chlor", element.Chlorine},
	{"gall", element.Gallium},
	{"germ", element.Germanium},
	{"ars", element.Arsenic},
	{"sel", element.Selenium},
	{"brom", element.Bromine},
	{"indig", element.Indium},
	{"stann", element.Tin},
	{"stib", element.Antimony},
	{"tell", element.Tellurium},
	{"iod", element.Iodine},
	{"thall", element.Thallium},
	{"plumb", element.Lead},
	{"bismuth", element.Bismuth},
	{"pol", element.Polonium},
	{"ast", element.Astatine},
	{"meth", element.Carbon},
}

// Multiplicative prefixes, P-14.2. Composite numbers are written as
// consecutive prefixes and summed.
var multiplicativePrefixes = []struct {
	prefix string
	n      int
}{
	{"mono", 1}, {"hen", 1}, {"di", 2}, {"do", 2}, {"tri", 3}, {"tetr", 4},
	{"pent", 5}, {"hex", 6}, {"hept", 7}, {"oct", 8}, {"non", 9},
	{"dec", 10}, {"undec", 11},
	{"icos", 20}, {"cos", 20}, {"triacont", 30}, {"tetracont", 40},
	{"pentacont", 50}, {"hexacont", 60}, {"heptacont", 70}, {"octacont", 80},
	{"nonacont", 90},
	{"hect", 100}, {"henhect", 101}, {"dict", 200}, {"trict", 300},
	{"tetract", 400}, {"pentact", 500}, {"hexact", 600}, {"heptact", 700},
	{"octact", 800}, {"nonact", 900},
	{"kili", 1000}, {"henkili", 1001}, {"dili", 2000}, {"trili", 3000},
	{"tetrali", 4000}, {"pentali", 5000}, {"hexali", 6000}, {"heptali", 7000},
	{"octali", 8000}, {"nonali", 9000},
}

func buildVocabulary() *vocabulary {
	tokens := dfa.New[Token]()

	// Final vowels are left off most entries; the scanner skips elided
	// vowels, and keeping them would collide with "-ane" and "-ol".
	tokens.Insert("(", simpleToken(OpenBracket))
	tokens.Insert("[", simpleToken(OpenBracket))
	tokens.Insert(")", simpleToken(CloseBracket))
	tokens.Insert("]", simpleToken(CloseBracket))

	for _, p := range multiplicativePrefixes {
		tokens.Insert(p.prefix, multiplicityToken(p.n))
	}

	tokens.Insert("an", unsaturatedToken(0))
	tokens.Insert("en", unsaturatedToken(1))
	tokens.Insert("yn", unsaturatedToken(2))
	tokens.Insert("yl", simpleToken(FreeValence))

	for _, m := range mononuclearStems {
		tokens.Insert(m.stem, hydrideToken(Chain(m.element, 1)))
	}
	tokens.Insert("eth", hydrideToken(Alkane(2)))
	tokens.Insert("prop", hydrideToken(Alkane(3)))
	tokens.Insert("but", hydrideToken(Alkane(4)))

	tokens.Insert("benzen", hydrideToken(Hydride{Kind: Benzene}))
	tokens.Insert("phen", hydrideToken(Hydride{Kind: Benzene}))
	tokens.Insert("pyrimidin", hydrideToken(Hydride{Kind: Pyrimidine}))
	tokens.Insert("purin", hydrideToken(Hydride{Kind: Purine}))

	tokens.Insert("water", baseToken(Water))
	tokens.Insert("ammonia", baseToken(Ammonia))
	tokens.Insert("tert-but", baseToken(Isobutane))

	tokens.Insert("hydr", prefixToken(Hydro))
	tokens.Insert("hydroxy", prefixToken(Hydroxy))
	tokens.Insert("oxo", prefixToken(Oxo))
	tokens.Insert("amino", prefixToken(Amino))

	tokens.Insert("ol", suffixToken(Hydroxy))
	tokens.Insert("one", suffixToken(Oxo))
	tokens.Insert("amine", suffixToken(Amino))

	elements := dfa.New[element.Element]()
	for _, e := range element.All() {
		elements.Insert(e.Symbol(), e)
	}

	return &vocabulary{tokens: tokens, elements: elements}
}
