package reflist

import (
	"github.com/l2obster/smali/pkg/collections"
	"github.com/l2obster/smali/pkg/smali"
)

// TryGetCached returns the stub attached to the unit for the role.  The stub
// is authoritative: it is returned as stored, without comparing it to the
// syntax tree.
func TryGetCached(unit Unit, role smali.Role) (*smali.ReferenceListStub, bool) {
	stub, ok := unit.Stub(role)
	if !ok || stub == nil {
		return nil, false
	}
	return stub, true
}

// TryGetCachedNames is TryGetCached for name-only queries.  A stub that only
// stores typed references answers with their names.
func TryGetCachedNames(unit Unit, role smali.Role) ([]string, bool) {
	stub, ok := TryGetCached(unit, role)
	if !ok {
		return nil, false
	}
	if stub.Names == nil && stub.Types != nil {
		names := make([]string, len(stub.Types))
		for i, t := range stub.Types {
			names[i] = t.Name
		}
		return names, true
	}
	return collections.SliceClone(stub.Names), true
}
