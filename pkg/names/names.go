package names

import (
	"iter"
	"slices"
)

// Names is the set of candidate names of one address, kept sorted from the
// most to the least preferred.  Each (text, origin) pair is stored once;
// equal text from two origins yields two entries.
type Names struct {
	names []Name
}

// Add records text under origin.  It returns false, leaving the set
// untouched, when text is empty.  Adding a pair that is already present
// returns true.
func (ns *Names) Add(text string, origin Origin) bool {
	ok, _ := ns.insert(text, origin)
	return ok
}

// insert is Add, additionally reporting whether the set grew.
func (ns *Names) insert(text string, origin Origin) (ok, inserted bool) {
	if text == "" {
		return false, false
	}
	name := NewName(text, origin)
	if name.text == "" {
		return false, false
	}
	i, found := slices.BinarySearchFunc(ns.names, name, Compare)
	if found {
		return true, false
	}
	ns.names = slices.Insert(ns.names, i, name)
	return true, true
}

// Preferred returns the most preferred name, or EmptyName if there is none.
func (ns *Names) Preferred() Name {
	if ns == nil || len(ns.names) == 0 {
		return EmptyName
	}
	return ns.names[0]
}

// Contains reports whether the normalized form of text is recorded under
// origin.
func (ns *Names) Contains(text string, origin Origin) bool {
	if ns == nil {
		return false
	}
	_, found := slices.BinarySearchFunc(ns.names, NewName(text, origin), Compare)
	return found
}

// Len returns the number of names.
func (ns *Names) Len() int {
	if ns == nil {
		return 0
	}
	return len(ns.names)
}

// Empty reports whether no name is recorded.
func (ns *Names) Empty() bool {
	return ns.Len() == 0
}

// All iterates the names from the most to the least preferred.
func (ns *Names) All() iter.Seq[Name] {
	return func(yield func(Name) bool) {
		if ns == nil {
			return
		}
		for _, n := range ns.names {
			if !yield(n) {
				return
			}
		}
	}
}

// Slice returns a copy of the names, most preferred first.
func (ns *Names) Slice() []Name {
	if ns == nil {
		return nil
	}
	return slices.Clone(ns.names)
}
