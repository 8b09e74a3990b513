package smali

// Kind says whether a declarational unit is a class or an interface.
type Kind int

const (
	KindClass Kind = iota
	KindInterface
)

func (k Kind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindInterface:
		return "interface"
	default:
		return "unknown"
	}
}

// Role is a reference-list view of a declarational unit.  Roles are computed
// on demand and never stored.
type Role int

const (
	// Extends is the superclass list of a class or the extended-interfaces
	// list of an interface.
	Extends Role = iota
	// Implements is the implemented-interfaces list of a class.  It is always
	// empty for an interface.
	Implements
)

// Roles lists every role in a stable order.
var Roles = []Role{Extends, Implements}

func (r Role) String() string {
	switch r {
	case Extends:
		return "extends"
	case Implements:
		return "implements"
	default:
		return "unknown"
	}
}
