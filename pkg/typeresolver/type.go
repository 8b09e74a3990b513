package typeresolver

import (
	"fmt"
)

// Type is a resolved handle for a canonical class name.
type Type struct {
	// Name is the fully-qualified canonical name (e.g. "java.lang.Object").
	Name string
	// Provider is the name of the provider that supplied the type.
	Provider string
	// Source is where the type was declared (a file path, an index name),
	// if known.
	Source string
}

// NewType constructs a new type pointer with the given arguments.
func NewType(name, provider, source string) *Type {
	return &Type{
		Name:     name,
		Provider: provider,
		Source:   source,
	}
}

// String implements fmt.Stringer
func (t *Type) String() string {
	return fmt.Sprintf("(%s<%s> %s)", t.Name, t.Provider, t.Source)
}
