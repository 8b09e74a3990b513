package typeresolver

// ChainTypeResolver implements TypeResolver over a chain of resolvers.
type ChainTypeResolver struct {
	chain []TypeResolver
}

func NewChainTypeResolver(chain ...TypeResolver) *ChainTypeResolver {
	return &ChainTypeResolver{
		chain: chain,
	}
}

// ResolveType implements the TypeResolver interface
func (r *ChainTypeResolver) ResolveType(name string) (*Type, bool) {
	for _, next := range r.chain {
		if t, ok := next.ResolveType(name); ok {
			return t, true
		}
	}
	return nil, false
}
