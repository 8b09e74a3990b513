package typeresolver

import "sync"

// MemoTypeResolver implements TypeResolver, memoizing results.  Misses are
// not memoized so that types registered later can still be found.  It is
// safe for concurrent use.
type MemoTypeResolver struct {
	next TypeResolver

	mu    sync.RWMutex
	cache map[string]*Type
}

func NewMemoTypeResolver(next TypeResolver) *MemoTypeResolver {
	return &MemoTypeResolver{
		next:  next,
		cache: make(map[string]*Type),
	}
}

// ResolveType implements the TypeResolver interface
func (r *MemoTypeResolver) ResolveType(name string) (*Type, bool) {
	r.mu.RLock()
	t, ok := r.cache[name]
	r.mu.RUnlock()
	if ok {
		return t, true
	}
	if t, ok := r.next.ResolveType(name); ok {
		r.mu.Lock()
		r.cache[name] = t
		r.mu.Unlock()
		return t, true
	}
	return nil, false
}
