package rectpack

import "sort"

// An inentry is an input entry, remembering its position in the input.
type inentry struct {
	index int
	entry Entry
}

// ordEntry returns true if a should be packed before b. Entries with larger
// area go first, then entries with the larger size, comparing the long side
// before the short side.
func ordEntry(a, b Entry, ord bool) bool {
	switch {
	case a.Area > b.Area:
		return true
	case a.Area < b.Area:
		return false
	case a.Size.X > b.Size.X:
		return true
	case a.Size.X < b.Size.X:
		return false
	case a.Size.Y > b.Size.Y:
		return true
	case a.Size.Y < b.Size.Y:
		return false
	default:
		return ord
	}
}

type eslice []inentry

func (s eslice) Len() int { return len(s) }

func (s eslice) Less(i, j int) bool {
	return ordEntry(s[i].entry, s[j].entry, s[i].index < s[j].index)
}

func (s eslice) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}

// sortEntries returns the entries in packing order.
func sortEntries(entries []Entry) []inentry {
	s := make(eslice, len(entries))
	for i, e := range entries {
		s[i] = inentry{index: i, entry: e}
	}
	sort.Sort(s)
	return s
}
