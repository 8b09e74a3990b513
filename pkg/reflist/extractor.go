package reflist

import (
	"github.com/l2obster/smali/pkg/smali"
)

// Unit is the view of a declarational unit the resolver needs.  Callers are
// responsible for holding the unit stable (see smali.Document) for the
// duration of a query.
type Unit interface {
	// UnitKind says whether the unit is a class or an interface.
	UnitKind() smali.Kind
	// SuperStatement returns the ".super" statement, or nil.
	SuperStatement() *smali.SuperStatement
	// ImplementsStatements returns the ".implements" statements in source
	// order.
	ImplementsStatements() []*smali.ImplementsStatement
	// Stub returns the precomputed reference list for a role, if the unit
	// was loaded from an index.
	Stub(role smali.Role) (*smali.ReferenceListStub, bool)
}

// SmaliReferenceElements walks the syntax tree of the unit and returns the
// present reference nodes for the role, in source order.  Statements with a
// missing or empty reference contribute nothing.
func SmaliReferenceElements(unit Unit, role smali.Role) []*smali.ClassTypeElement {
	var elements []*smali.ClassTypeElement
	switch Normalize(unit.UnitKind(), role) {
	case SourceSuper:
		if stmt := unit.SuperStatement(); stmt != nil && present(stmt.ClassReference) {
			elements = append(elements, stmt.ClassReference)
		}
	case SourceImplements:
		for _, stmt := range unit.ImplementsStatements() {
			if stmt != nil && present(stmt.ClassReference) {
				elements = append(elements, stmt.ClassReference)
			}
		}
	}
	return elements
}

// ExtractReferences returns unresolved type references for the role, read
// from the syntax tree.
func ExtractReferences(unit Unit, role smali.Role) []smali.ClassType {
	elements := SmaliReferenceElements(unit, role)
	if len(elements) == 0 {
		return nil
	}
	refs := make([]smali.ClassType, len(elements))
	for i, e := range elements {
		refs[i] = smali.ClassType{Name: e.CanonicalText()}
	}
	return refs
}

func present(e *smali.ClassTypeElement) bool {
	return e != nil && e.CanonicalText() != ""
}
