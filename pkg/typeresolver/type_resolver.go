package typeresolver

// TypeResolver knows how to map a canonical class name to a type handle.
type TypeResolver interface {
	// ResolveType returns the type for the given canonical name.  If the
	// name is not known `(nil, false)` is returned.
	ResolveType(name string) (*Type, bool)
}

// TypeResolverFunc adapts a function to the TypeResolver interface.
type TypeResolverFunc func(name string) (*Type, bool)

// ResolveType implements the TypeResolver interface
func (f TypeResolverFunc) ResolveType(name string) (*Type, bool) {
	return f(name)
}

// Unresolved is a TypeResolver that never resolves anything.
var Unresolved TypeResolver = TypeResolverFunc(func(string) (*Type, bool) {
	return nil, false
})
