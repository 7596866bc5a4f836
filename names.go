package effects

import (
	"golang.org/x/text/cases"
)

// foldName returns the caseless form of a property, kind or enum name.
// A Caser carries state, so each call gets its own.
func foldName(s string) string {
	return cases.Fold().String(s)
}

// nameTable maps folded names to values of an enumeration.
type nameTable[T ~uint8] map[string]T

func newNameTable[T ~uint8](names []string) nameTable[T] {
	t := make(nameTable[T], len(names))
	for i, n := range names {
		t[foldName(n)] = T(i)
	}
	return t
}

func (t nameTable[T]) lookup(name string) (T, bool) {
	v, ok := t[foldName(name)]
	return v, ok
}
