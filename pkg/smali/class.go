package smali

import (
	"fmt"
	"strings"

	"github.com/l2obster/smali/pkg/typeresolver"
)

// ClassType is a single named type occurrence: a canonical name and, when
// resolvable, a type handle.  ClassType values are immutable.
type ClassType struct {
	// Name is the canonical name; never empty.
	Name string
	// Type is the resolved handle, nil when unresolved.
	Type *typeresolver.Type
}

// Resolved reports whether the reference has a type handle.
func (t ClassType) Resolved() bool {
	return t.Type != nil
}

// String implements fmt.Stringer
func (t ClassType) String() string {
	if t.Type == nil {
		return t.Name + "<unresolved>"
	}
	return fmt.Sprintf("%s<%s>", t.Name, t.Type.Provider)
}

// ClassTypeElement is a class-type reference node of the syntax tree.
type ClassTypeElement struct {
	// Descriptor is the raw smali text of the node (e.g. "Lcom/foo/Bar;").
	Descriptor string
	// Line is the 1-based source line, 0 if unknown.
	Line int
}

// CanonicalText returns the canonical name of the referenced type.
func (e *ClassTypeElement) CanonicalText() string {
	return CanonicalName(e.Descriptor)
}

// SuperStatement is a ".super" directive.
type SuperStatement struct {
	// ClassReference is nil when the directive has no type.
	ClassReference *ClassTypeElement
}

// ImplementsStatement is an ".implements" directive.
type ImplementsStatement struct {
	// ClassReference is nil when the directive has no type.
	ClassReference *ClassTypeElement
}

// ReferenceListStub is a precomputed snapshot of a reference list, as read
// from a stub index.  It is never mutated once attached.
type ReferenceListStub struct {
	// Names are the canonical names, in order.
	Names []string
	// Types are the typed references, in order.  When nil, typed queries
	// build them from Names.
	Types []ClassType
}

// Class is a declarational unit: a ".class" with at most one super statement
// and any number of implements statements.
type Class struct {
	// Name is the class being declared.
	Name *ClassTypeElement
	// Kind is KindInterface when the access flags include "interface".
	Kind Kind
	// AccessFlags are the flags of the ".class" directive, in order.
	AccessFlags []string
	// Super is nil when the class has no ".super" directive.
	Super *SuperStatement
	// Implements are the ".implements" directives in source order.
	Implements []*ImplementsStatement

	stubs map[Role]*ReferenceListStub
}

// QualifiedName returns the canonical name of the class, or "" if the
// ".class" directive is missing.
func (c *Class) QualifiedName() string {
	if c.Name == nil {
		return ""
	}
	return c.Name.CanonicalText()
}

// UnitKind returns the kind of the declarational unit.
func (c *Class) UnitKind() Kind {
	return c.Kind
}

// SuperStatement returns the super statement, or nil.
func (c *Class) SuperStatement() *SuperStatement {
	return c.Super
}

// ImplementsStatements returns the implements statements in source order.
func (c *Class) ImplementsStatements() []*ImplementsStatement {
	return c.Implements
}

// Stub returns the stub attached for the given role, if any.
func (c *Class) Stub(role Role) (*ReferenceListStub, bool) {
	stub, ok := c.stubs[role]
	return stub, ok
}

// AttachStub attaches a precomputed reference list for the given role.
func (c *Class) AttachStub(role Role, stub *ReferenceListStub) {
	if c.stubs == nil {
		c.stubs = make(map[Role]*ReferenceListStub)
	}
	c.stubs[role] = stub
}

// DetachStubs drops every attached stub, making the class tree-backed.
func (c *Class) DetachStubs() {
	c.stubs = nil
}

// HasStubs reports whether any stub is attached.
func (c *Class) HasStubs() bool {
	return len(c.stubs) > 0
}

// String implements fmt.Stringer
func (c *Class) String() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "%s %s", c.Kind, c.QualifiedName())
	if c.Super != nil && c.Super.ClassReference != nil {
		fmt.Fprintf(&buf, " super %s", c.Super.ClassReference.CanonicalText())
	}
	for _, impl := range c.Implements {
		if impl.ClassReference != nil {
			fmt.Fprintf(&buf, " implements %s", impl.ClassReference.CanonicalText())
		}
	}
	return buf.String()
}
