package stubindex

type warnFunc func(format string, args ...interface{})

// Merge combines indexes into a new one.  When more than one index has an
// entry for the same class the first wins and the others are reported
// through warn.
func Merge(warn warnFunc, indexes ...*Index) *Index {
	merged := NewIndex()
	for i, ix := range indexes {
		for _, e := range ix.Entries() {
			if !merged.Put(e) {
				prev, _ := merged.Get(e.Name)
				if prev.Hash != e.Hash {
					warn("duplicate class %s in index #%d (hash %x, keeping %x)", e.Name, i, e.Hash, prev.Hash)
				}
			}
		}
	}
	return merged
}
