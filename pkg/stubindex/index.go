package stubindex

import (
	"sort"

	"github.com/cespare/xxhash/v2"

	"github.com/l2obster/smali/pkg/collections"
	"github.com/l2obster/smali/pkg/reflist"
	"github.com/l2obster/smali/pkg/smali"
)

// Entry is the precomputed reference lists of one class.
type Entry struct {
	// Name is the canonical name of the class.
	Name string
	// Kind is the kind of the class.
	Kind smali.Kind
	// Hash is the xxhash64 of the source file the entry was built from.
	Hash uint64
	// Extends are the canonical names of the Extends role.
	Extends []string
	// Implements are the canonical names of the Implements role.
	Implements []string
}

// Names returns the stored names for a role.
func (e *Entry) Names(role smali.Role) []string {
	switch role {
	case smali.Extends:
		return e.Extends
	case smali.Implements:
		return e.Implements
	default:
		return nil
	}
}

// Build computes the entry for a class from its syntax tree.  It uses the
// same extraction as tree-backed queries, so a fresh entry always agrees
// with the tree it was built from.
func Build(class *smali.Class, content []byte) *Entry {
	return &Entry{
		Name:       class.QualifiedName(),
		Kind:       class.Kind,
		Hash:       Hash(content),
		Extends:    names(reflist.ExtractReferences(class, smali.Extends)),
		Implements: names(reflist.ExtractReferences(class, smali.Implements)),
	}
}

// Hash returns the content hash recorded in entries.
func Hash(content []byte) uint64 {
	return xxhash.Sum64(content)
}

func names(refs []smali.ClassType) []string {
	if len(refs) == 0 {
		return nil
	}
	out := make([]string, len(refs))
	for i, ref := range refs {
		out[i] = ref.Name
	}
	return out
}

// Index is a set of entries keyed by class name.
type Index struct {
	entries map[string]*Entry
}

// NewIndex constructs an empty index.
func NewIndex() *Index {
	return &Index{entries: make(map[string]*Entry)}
}

// Put adds the entry.  It returns false, leaving the index unchanged, if an
// entry with the same name is already present.
func (ix *Index) Put(e *Entry) bool {
	if _, ok := ix.entries[e.Name]; ok {
		return false
	}
	ix.entries[e.Name] = &Entry{
		Name:       e.Name,
		Kind:       e.Kind,
		Hash:       e.Hash,
		Extends:    collections.SliceClone(e.Extends),
		Implements: collections.SliceClone(e.Implements),
	}
	return true
}

// Get returns the entry for the given class name.
func (ix *Index) Get(name string) (*Entry, bool) {
	e, ok := ix.entries[name]
	return e, ok
}

// Len returns the number of entries.
func (ix *Index) Len() int {
	return len(ix.entries)
}

// Entries returns the entries sorted by name.
func (ix *Index) Entries() []*Entry {
	entries := make([]*Entry, 0, len(ix.entries))
	for _, e := range ix.entries {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries
}
