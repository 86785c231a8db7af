package molecule

import (
	"slices"

	"github.com/OpenTraceLab/iupac/pkg/element"
)

// Isomorphic reports whether a and b have the same element-labelled
// connectivity. Positions and free valences are ignored.
func Isomorphic(a, b *Graph) bool {
	if len(a.Atoms) != len(b.Atoms) || len(a.Bonds) != len(b.Bonds) {
		return false
	}
	if a.Formula() != b.Formula() {
		return false
	}

	m := &matcher{
		a:       newAdjacency(a),
		b:       newAdjacency(b),
		mapping: make([]int, len(a.Atoms)),
		used:    make([]bool, len(b.Atoms)),
	}
	for i := range m.mapping {
		m.mapping[i] = -1
	}
	if !slices.Equal(m.a.degreeHistogram(), m.b.degreeHistogram()) {
		return false
	}
	m.order = m.a.searchOrder()
	return m.extend(0)
}

type adjacency struct {
	atoms     []element.Element
	neighbors [][]int
}

func newAdjacency(g *Graph) *adjacency {
	adj := &adjacency{
		atoms:     g.Atoms,
		neighbors: make([][]int, len(g.Atoms)),
	}
	for _, b := range g.Bonds {
		adj.neighbors[b[0]] = append(adj.neighbors[b[0]], b[1])
		adj.neighbors[b[1]] = append(adj.neighbors[b[1]], b[0])
	}
	return adj
}

func (adj *adjacency) degreeHistogram() []int {
	var hist []int
	for _, n := range adj.neighbors {
		for len(hist) <= len(n) {
			hist = append(hist, 0)
		}
		hist[len(n)]++
	}
	return hist
}

func (adj *adjacency) bonded(i, j int) bool {
	return slices.Contains(adj.neighbors[i], j)
}

// searchOrder visits heavy atoms breadth first so that each atom after the
// first of its component has an already mapped neighbor, then hydrogens.
func (adj *adjacency) searchOrder() []int {
	order := make([]int, 0, len(adj.atoms))
	seen := make([]bool, len(adj.atoms))

	for start := range adj.atoms {
		if seen[start] || adj.atoms[start] == element.Hydrogen {
			continue
		}
		seen[start] = true
		queue := []int{start}
		for len(queue) > 0 {
			i := queue[0]
			queue = queue[1:]
			order = append(order, i)
			for _, j := range adj.neighbors[i] {
				if !seen[j] && adj.atoms[j] != element.Hydrogen {
					seen[j] = true
					queue = append(queue, j)
				}
			}
		}
	}
	for i, e := range adj.atoms {
		if e == element.Hydrogen {
			order = append(order, i)
		}
	}
	return order
}

type matcher struct {
	a, b    *adjacency
	order   []int
	mapping []int
	used    []bool
}

func (m *matcher) extend(depth int) bool {
	if depth == len(m.order) {
		return true
	}
	i := m.order[depth]

	for _, j := range m.candidates(i) {
		if !m.feasible(i, j) {
			continue
		}
		m.mapping[i] = j
		m.used[j] = true
		if m.extend(depth + 1) {
			return true
		}
		m.mapping[i] = -1
		m.used[j] = false
	}
	return false
}

// candidates narrows the search to neighbors of an already mapped neighbor's
// image when there is one.
func (m *matcher) candidates(i int) []int {
	for _, k := range m.a.neighbors[i] {
		if m.mapping[k] >= 0 {
			return m.b.neighbors[m.mapping[k]]
		}
	}
	all := make([]int, len(m.b.atoms))
	for j := range all {
		all[j] = j
	}
	return all
}

func (m *matcher) feasible(i, j int) bool {
	if m.used[j] || m.a.atoms[i] != m.b.atoms[j] {
		return false
	}
	if len(m.a.neighbors[i]) != len(m.b.neighbors[j]) {
		return false
	}

	mappedA := 0
	for _, k := range m.a.neighbors[i] {
		if image := m.mapping[k]; image >= 0 {
			if !m.b.bonded(j, image) {
				return false
			}
			mappedA++
		}
	}
	mappedB := 0
	for _, l := range m.b.neighbors[j] {
		if m.used[l] {
			mappedB++
		}
	}
	return mappedA == mappedB
}
