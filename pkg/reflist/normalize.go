package reflist

import (
	"github.com/l2obster/smali/pkg/smali"
)

// Source names the statements a role is computed from.
type Source int

const (
	// SourceNone means the role is always empty.
	SourceNone Source = iota
	// SourceSuper is the single ".super" statement.
	SourceSuper
	// SourceImplements is the ordered ".implements" statements.
	SourceImplements
)

func (s Source) String() string {
	switch s {
	case SourceSuper:
		return "super"
	case SourceImplements:
		return "implements"
	default:
		return "none"
	}
}

// Normalize maps a (kind, role) pair to the statements it is computed from.
// Interfaces carry their extended interfaces as ".implements" statements, so
// for an interface Extends reads the implements statements and Implements is
// empty.
func Normalize(kind smali.Kind, role smali.Role) Source {
	switch {
	case kind == smali.KindInterface && role == smali.Extends:
		return SourceImplements
	case kind == smali.KindInterface:
		return SourceNone
	case role == smali.Extends:
		return SourceSuper
	case role == smali.Implements:
		return SourceImplements
	default:
		return SourceNone
	}
}
