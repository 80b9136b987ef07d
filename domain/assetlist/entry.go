package assetlist

// EntryKind discriminates the two entry shapes.
type EntryKind int

// EntryKind values.
const (
	KindSingle EntryKind = iota + 1
	KindRange
)

// Entry is one parsed unit of a selection: either a single identifier or an
// inclusive range of them. Entries are immutable values.
type Entry struct {
	kind EntryKind
	from AssetID
	to   AssetID
}

// Single creates an entry denoting exactly one identifier.
func Single(id AssetID) Entry {
	return Entry{kind: KindSingle, from: id}
}

// Range creates an entry denoting every identifier from from through to,
// inclusive. Direction is not checked here; List.Validate rejects ranges
// that run backwards before they are expanded.
func Range(from, to AssetID) Entry {
	return Entry{kind: KindRange, from: from, to: to}
}

// Kind returns the entry shape.
func (e Entry) Kind() EntryKind { return e.kind }

// ID returns the identifier of a Single entry. For a Range entry it equals
// From.
func (e Entry) ID() AssetID { return e.from }

// From returns the first identifier of the entry.
func (e Entry) From() AssetID { return e.from }

// To returns the last identifier of a Range entry.
func (e Entry) To() AssetID { return e.to }

// Iter starts a fresh enumeration of the identifiers the entry denotes.
// Each Iter owns its own cursor: two iterations of the same entry never
// share state, and an exhausted Iter stays exhausted.
func (e Entry) Iter() *Iter {
	return &Iter{entry: e}
}

// Iter enumerates the identifiers denoted by one entry, producing them one
// at a time. It is not restartable; create a new Iter per traversal.
type Iter struct {
	entry   Entry
	current AssetID
	started bool
	done    bool
}

// Next returns the next identifier in the entry, or false when the entry is
// exhausted. A Single entry yields its identifier once. A Range entry
// yields from first, then each successor in order, stopping after to.
func (it *Iter) Next() (AssetID, bool) {
	if it.done {
		return AssetID{}, false
	}

	switch it.entry.kind {
	case KindSingle:
		it.done = true
		return it.entry.from, true

	case KindRange:
		if !it.started {
			it.started = true
			it.current = it.entry.from
			return it.current, true
		}
		if it.current.Compare(it.entry.to) >= 0 {
			it.done = true
			return AssetID{}, false
		}
		next, err := it.current.Next()
		if err != nil {
			// Only reachable when to exceeds 999-999, which no valid
			// identifier does.
			it.done = true
			return AssetID{}, false
		}
		it.current = next
		return it.current, true
	}

	it.done = true
	return AssetID{}, false
}

// List is the ordered sequence of entries parsed from one selection string.
// Order is exactly as written: no deduplication, no sorting, no merging of
// adjacent or overlapping ranges.
type List []Entry

// Expand flattens the whole list into concrete identifiers, entries in list
// order, each entry in its own iteration order.
func (l List) Expand() []AssetID {
	var ids []AssetID
	for _, e := range l {
		it := e.Iter()
		for id, ok := it.Next(); ok; id, ok = it.Next() {
			ids = append(ids, id)
		}
	}
	return ids
}

// Strings renders every expanded identifier in canonical form.
func (l List) Strings() []string {
	ids := l.Expand()
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
