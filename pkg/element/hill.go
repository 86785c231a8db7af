package element

import "strings"

// Compare orders elements by the Hill system: carbon, then hydrogen, then
// everything else alphabetically by symbol.
func Compare(a, b Element) int {
	ra, rb := hillRank(a), hillRank(b)
	if ra != rb {
		return ra - rb
	}
	if ra < 2 {
		return 0
	}
	return strings.Compare(a.Symbol(), b.Symbol())
}

// Less reports whether a sorts before b in Hill order.
func Less(a, b Element) bool {
	return Compare(a, b) < 0
}

func hillRank(e Element) int {
	switch e {
	case Carbon:
		return 0
	case Hydrogen:
		return 1
	default:
		return 2
	}
}
