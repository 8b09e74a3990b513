package reflist

import (
	"errors"
	"fmt"

	"github.com/l2obster/smali/pkg/collections"
	"github.com/l2obster/smali/pkg/smali"
)

// ErrUnsupportedOperation is returned by every mutating operation of a
// ReferenceList.
var ErrUnsupportedOperation = errors.New("unsupported operation")

// ReferenceList is a read-only view of the types referenced by a unit for a
// role.  It is a projection of the unit, not a backing store: the mutating
// operations exist for callers written against editable lists and always
// fail with ErrUnsupportedOperation.
type ReferenceList struct {
	role  smali.Role
	types []smali.ClassType
}

// Role returns the role the list was computed for.
func (l ReferenceList) Role() smali.Role {
	return l.role
}

// Len returns the number of references.
func (l ReferenceList) Len() int {
	return len(l.types)
}

// At returns the i'th reference.
func (l ReferenceList) At(i int) smali.ClassType {
	return l.types[i]
}

// Types returns a copy of the references.
func (l ReferenceList) Types() []smali.ClassType {
	return collections.SliceClone(l.types)
}

// Names returns the canonical names of the references.
func (l ReferenceList) Names() []string {
	if len(l.types) == 0 {
		return nil
	}
	names := make([]string, len(l.types))
	for i, t := range l.types {
		names[i] = t.Name
	}
	return names
}

// IsWritable is always false.
func (l ReferenceList) IsWritable() bool {
	return false
}

// Add is not supported.
func (l ReferenceList) Add(t smali.ClassType) error {
	return l.unsupported("Add")
}

// Insert is not supported.
func (l ReferenceList) Insert(i int, t smali.ClassType) error {
	return l.unsupported("Insert")
}

// Remove is not supported.
func (l ReferenceList) Remove(i int) error {
	return l.unsupported("Remove")
}

// Replace is not supported.
func (l ReferenceList) Replace(i int, t smali.ClassType) error {
	return l.unsupported("Replace")
}

func (l ReferenceList) unsupported(op string) error {
	return fmt.Errorf("%w: %s on read-only %s list", ErrUnsupportedOperation, op, l.role)
}
