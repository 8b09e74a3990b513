package reflist

import (
	"github.com/rs/zerolog"

	"github.com/l2obster/smali/pkg/collections"
	"github.com/l2obster/smali/pkg/smali"
	"github.com/l2obster/smali/pkg/typeresolver"
)

// CodeReference is a reference node in java source syntax.  Smali has no
// such nodes; it exists for callers written against java reference lists.
type CodeReference interface {
	CanonicalText() string
}

type ResolverOption func(*Resolver) *Resolver

// WithTypeResolver sets the service used to resolve canonical names for
// typed queries.
func WithTypeResolver(types typeresolver.TypeResolver) ResolverOption {
	return func(r *Resolver) *Resolver {
		r.types = types
		return r
	}
}

func WithLogger(logger zerolog.Logger) ResolverOption {
	return func(r *Resolver) *Resolver {
		r.logger = logger
		return r
	}
}

var defaultResolverOptions = []ResolverOption{
	WithTypeResolver(typeresolver.Unresolved),
	WithLogger(zerolog.Nop()),
}

// Resolver answers reference-list queries for declarational units.  It
// holds no per-unit state: every query re-decides between the attached stub
// and the syntax tree.  A Resolver is safe for concurrent use if its
// TypeResolver is.
type Resolver struct {
	types  typeresolver.TypeResolver
	logger zerolog.Logger
}

func NewResolver(options ...ResolverOption) *Resolver {
	r := &Resolver{}
	for _, opt := range append(defaultResolverOptions, options...) {
		r = opt(r)
	}
	return r
}

// ReferencedTypes returns the references of the unit for the role with type
// handles populated where resolvable.
func (r *Resolver) ReferencedTypes(unit Unit, role smali.Role) ReferenceList {
	src := r.selectSource(unit, role)
	return ReferenceList{role: role, types: src.types(r)}
}

// ReferenceNames returns the canonical names of the references of the unit
// for the role.
func (r *Resolver) ReferenceNames(unit Unit, role smali.Role) []string {
	return r.selectSource(unit, role).names()
}

// ReferenceElements always returns an empty list: smali has no java source
// reference nodes.  Use SmaliReferenceElements for the smali nodes.
func (r *Resolver) ReferenceElements(unit Unit, role smali.Role) []CodeReference {
	return nil
}

// IsWritable reports whether reference lists can be edited through the
// resolver.  They cannot.
func (r *Resolver) IsWritable() bool {
	return false
}

type sourceKind int

const (
	emptySource sourceKind = iota
	cachedSource
	treeSource
)

func (k sourceKind) String() string {
	switch k {
	case cachedSource:
		return "stub"
	case treeSource:
		return "tree"
	default:
		return "empty"
	}
}

// listSource is the source chosen for a single query.
type listSource struct {
	kind sourceKind
	unit Unit
	role smali.Role
	stub *smali.ReferenceListStub
}

func (r *Resolver) selectSource(unit Unit, role smali.Role) listSource {
	src := listSource{unit: unit, role: role}
	if Normalize(unit.UnitKind(), role) == SourceNone {
		src.kind = emptySource
	} else if stub, ok := TryGetCached(unit, role); ok {
		src.kind = cachedSource
		src.stub = stub
	} else {
		src.kind = treeSource
	}
	r.logger.Debug().
		Stringer("kind", unit.UnitKind()).
		Stringer("role", role).
		Stringer("source", src.kind).
		Msg("reference list source selected")
	return src
}

func (s listSource) names() []string {
	switch s.kind {
	case cachedSource:
		names, _ := TryGetCachedNames(s.unit, s.role)
		return names
	case treeSource:
		elements := SmaliReferenceElements(s.unit, s.role)
		if len(elements) == 0 {
			return nil
		}
		names := make([]string, len(elements))
		for i, e := range elements {
			names[i] = e.CanonicalText()
		}
		return names
	default:
		return nil
	}
}

func (s listSource) types(r *Resolver) []smali.ClassType {
	switch s.kind {
	case cachedSource:
		if s.stub.Types != nil {
			return collections.SliceClone(s.stub.Types)
		}
		refs := make([]smali.ClassType, len(s.stub.Names))
		for i, name := range s.stub.Names {
			refs[i] = smali.ClassType{Name: name}
		}
		return r.resolve(refs)
	case treeSource:
		return r.resolve(ExtractReferences(s.unit, s.role))
	default:
		return nil
	}
}

// resolve fills in type handles in place.  Unresolved names keep a nil
// handle and do not affect the other references.
func (r *Resolver) resolve(refs []smali.ClassType) []smali.ClassType {
	for i, ref := range refs {
		if t, ok := r.types.ResolveType(ref.Name); ok {
			refs[i].Type = t
		} else {
			r.logger.Debug().Str("name", ref.Name).Msg("unresolved type")
		}
	}
	if len(refs) == 0 {
		return nil
	}
	return refs
}
