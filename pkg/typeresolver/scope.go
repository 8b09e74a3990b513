package typeresolver

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/dghubble/trie"
)

// PredefinedTypes are the platform types every scope knows about.
var PredefinedTypes = []string{
	"java.io.Serializable",
	"java.lang.Cloneable",
	"java.lang.Comparable",
	"java.lang.Enum",
	"java.lang.Iterable",
	"java.lang.Object",
	"java.lang.Runnable",
	"java.lang.annotation.Annotation",
}

// Scope is an index of known types keyed by canonical name.  It implements
// TypeResolver with exact-name lookups.
type Scope struct {
	mu    sync.RWMutex
	known *trie.PathTrie
	size  int
}

// NewScope constructs a new empty Scope.
func NewScope() *Scope {
	return &Scope{
		known: trie.NewPathTrieWithConfig(&trie.PathTrieConfig{
			Segmenter: nameSegmenter,
		}),
	}
}

// NewPredefinedScope constructs a Scope holding PredefinedTypes.
func NewPredefinedScope() *Scope {
	s := NewScope()
	for _, name := range PredefinedTypes {
		// cannot fail: names and provider are non-empty
		_ = s.PutType(NewType(name, "predefined", ""))
	}
	return s
}

// PutType adds the given type to the scope, replacing any previous type
// with the same name.
func (s *Scope) PutType(t *Type) error {
	if t.Name == "" {
		return fmt.Errorf("PutType: empty type name")
	}
	if t.Provider == "" {
		return fmt.Errorf("PutType(%s): missing provider", t.Name)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.known.Put(t.Name, t) {
		s.size++
	}
	return nil
}

// GetType does an exact lookup of the given canonical name.
func (s *Scope) GetType(name string) (*Type, bool) {
	if name == "" {
		return nil, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	value := s.known.Get(name)
	if value == nil {
		return nil, false
	}
	return value.(*Type), true
}

// GetTypes returns all types whose canonical name lies under the given
// package prefix, sorted by name.  An empty prefix returns every type.
func (s *Scope) GetTypes(prefix string) (types []*Type) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.known.Walk(func(key string, value interface{}) error {
		if prefix == "" || strings.HasPrefix(key, prefix+".") {
			types = append(types, value.(*Type))
		}
		return nil
	})
	sort.Slice(types, func(i, j int) bool {
		return types[i].Name < types[j].Name
	})
	return
}

// Len returns the number of types in the scope.
func (s *Scope) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.size
}

// ResolveType implements the TypeResolver interface
func (s *Scope) ResolveType(name string) (*Type, bool) {
	return s.GetType(name)
}

// String implements the fmt.Stringer interface
func (s *Scope) String() string {
	var buf strings.Builder
	for _, t := range s.GetTypes("") {
		buf.WriteString(t.String())
		buf.WriteRune('\n')
	}
	return buf.String()
}

// nameSegmenter segments canonical names by dot separators. For example,
// "a.b.c" -> ("a", 1), (".b", 3), (".c", -1) in successive calls. It does
// not allocate any heap memory.
func nameSegmenter(path string, start int) (segment string, next int) {
	if len(path) == 0 || start < 0 || start > len(path)-1 {
		return "", -1
	}
	end := strings.IndexRune(path[start+1:], '.') // next '.' after 0th rune
	if end == -1 {
		return path[start:], -1
	}
	return path[start : start+end+1], start + end + 1
}
