// Package dfa implements a prefix automaton over fixed literal keys.
//
// Input is routed through a 16-way transition table keyed on the low nibble
// of each byte. Distinct keys may therefore share a state; every state keeps
// the literal keys that end there and a lookup verifies them against the
// input while walking back towards the root. The first verified key on that
// walk is the longest registered prefix of the input.
package dfa

import "strings"

// Automaton maps literal keys to values of type O.
type Automaton[O any] struct {
	states []state[O]
}

type state[O any] struct {
	// transitions holds state indices; 0 means no edge because the root
	// is never the target of a transition.
	transitions [16]int
	parent      int
	mappings    []mapping[O]
}

type mapping[O any] struct {
	key   string
	value O
}

// New creates an empty automaton.
func New[O any]() *Automaton[O] {
	return &Automaton[O]{}
}

func lowNibble(c byte) int {
	return int(c & 0xf)
}

// traverse descends as far as the input allows and returns the state index.
// The automaton must not be empty.
func (a *Automaton[O]) traverse(input string) int {
	cursor := 0
	for i := 0; i < len(input); i++ {
		next := a.states[cursor].transitions[lowNibble(input[i])]
		if next == 0 {
			break
		}
		cursor = next
	}
	return cursor
}

func (a *Automaton[O]) traverseOrCreate(key string) int {
	if len(a.states) == 0 {
		a.states = append(a.states, state[O]{})
	}

	cursor := 0
	for i := 0; i < len(key); i++ {
		nibble := lowNibble(key[i])
		next := a.states[cursor].transitions[nibble]
		if next == 0 {
			next = len(a.states)
			a.states = append(a.states, state[O]{parent: cursor})
			a.states[cursor].transitions[nibble] = next
		}
		cursor = next
	}
	return cursor
}

// Insert registers key with value. Registering the same key twice keeps the
// first value for lookups.
func (a *Automaton[O]) Insert(key string, value O) {
	index := a.traverseOrCreate(key)
	a.states[index].mappings = append(a.states[index].mappings, mapping[O]{key: key, value: value})
}

// Len returns the number of registered keys.
func (a *Automaton[O]) Len() int {
	n := 0
	for i := range a.states {
		n += len(a.states[i].mappings)
	}
	return n
}

// GetByPrefix finds the longest registered key that is a prefix of input.
// It returns the key length and its value, or ok == false when nothing
// matches.
func (a *Automaton[O]) GetByPrefix(input string) (n int, value O, ok bool) {
	return a.lookup(input, strings.HasPrefix)
}

// GetByPrefixFold is GetByPrefix with ASCII case-insensitive key matching.
// Upper and lower case ASCII letters share their low nibble, so both spellings
// reach the same states.
func (a *Automaton[O]) GetByPrefixFold(input string) (n int, value O, ok bool) {
	return a.lookup(input, hasPrefixFold)
}

func (a *Automaton[O]) lookup(input string, match func(s, prefix string) bool) (int, O, bool) {
	var zero O
	if len(a.states) == 0 {
		return 0, zero, false
	}

	cursor := a.traverse(input)
	for {
		st := &a.states[cursor]
		for _, m := range st.mappings {
			if match(input, m.key) {
				return len(m.key), m.value, true
			}
		}
		if cursor == 0 {
			return 0, zero, false
		}
		cursor = st.parent
	}
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
