package stubindex

import (
	"github.com/rs/zerolog"

	"github.com/l2obster/smali/pkg/collections"
	"github.com/l2obster/smali/pkg/smali"
)

type ProviderOption func(*Provider) *Provider

func WithLogger(logger zerolog.Logger) ProviderOption {
	return func(p *Provider) *Provider {
		p.logger = logger
		return p
	}
}

// Provider attaches stubs from an index to parsed classes.  It is the only
// place staleness is checked: an entry is attached only when its hash
// matches the content the class was parsed from.
type Provider struct {
	index  *Index
	logger zerolog.Logger
}

func NewProvider(index *Index, options ...ProviderOption) *Provider {
	p := &Provider{index: index, logger: zerolog.Nop()}
	for _, opt := range options {
		p = opt(p)
	}
	return p
}

// Attach attaches the stubs of the class's index entry for every role.  It
// reports false, leaving the class tree-backed, if there is no entry or the
// entry is stale.
func (p *Provider) Attach(class *smali.Class, content []byte) bool {
	name := class.QualifiedName()
	e, ok := p.index.Get(name)
	if !ok {
		p.logger.Debug().Str("class", name).Msg("no stub index entry")
		return false
	}
	if hash := Hash(content); hash != e.Hash {
		p.logger.Warn().
			Str("class", name).
			Str("want", formatHash(e.Hash)).
			Str("got", formatHash(hash)).
			Msg("stale stub index entry")
		return false
	}
	for _, role := range smali.Roles {
		class.AttachStub(role, &smali.ReferenceListStub{
			Names: collections.SliceClone(e.Names(role)),
		})
	}
	return true
}
