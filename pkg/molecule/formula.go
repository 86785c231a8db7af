package molecule

import (
	"slices"
	"strconv"
	"strings"

	"github.com/OpenTraceLab/iupac/pkg/element"
)

// Formula returns the molecular formula in Hill order. Without carbon every
// element, hydrogen included, is listed alphabetically.
func (g *Graph) Formula() string {
	counts := make(map[element.Element]int)
	for _, a := range g.Atoms {
		counts[a]++
	}

	elements := make([]element.Element, 0, len(counts))
	for e := range counts {
		elements = append(elements, e)
	}
	if counts[element.Carbon] > 0 {
		slices.SortFunc(elements, element.Compare)
	} else {
		slices.SortFunc(elements, func(a, b element.Element) int {
			return strings.Compare(a.Symbol(), b.Symbol())
		})
	}

	var sb strings.Builder
	for _, e := range elements {
		sb.WriteString(e.Symbol())
		if n := counts[e]; n > 1 {
			sb.WriteString(strconv.Itoa(n))
		}
	}
	return sb.String()
}
