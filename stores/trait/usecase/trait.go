package usecase

import (
	"github.com/viney-shih/goroutines"

	"github.com/x-xyz/traitkit/base/ctx"
	"github.com/x-xyz/traitkit/base/log"
	"github.com/x-xyz/traitkit/domain/trait"
)

const defaultBatchWorkers = 8

type impl struct {
	batchWorkers int
}

type Option func(*impl)

// WithBatchWorkers bounds the goroutines used by ClassifyBatch
func WithBatchWorkers(n int) Option {
	return func(im *impl) {
		if n > 0 {
			im.batchWorkers = n
		}
	}
}

func New(opts ...Option) trait.UseCase {
	im := &impl{batchWorkers: defaultBatchWorkers}
	for _, opt := range opts {
		opt(im)
	}
	return im
}

// Classify evaluates the categories in order; the first match wins. Property
// and ranking only apply to traits without a display_type, so stat and boost
// are never shadowed by them.
func (im *impl) Classify(t trait.Trait, collectionTraits trait.CollectionTraits) (trait.TraitType, bool) {
	switch {
	case isProperty(t, collectionTraits):
		return trait.TraitTypeProperty, true
	case isRanking(t, collectionTraits):
		return trait.TraitTypeRanking, true
	case isStat(t):
		return trait.TraitTypeStat, true
	case isBoost(t):
		return trait.TraitTypeBoost, true
	}
	return "", false
}

func (im *impl) Group(traits []trait.Trait, collectionTraits trait.CollectionTraits) trait.Groups {
	g := trait.Groups{}
	for _, t := range traits {
		traitType, ok := im.Classify(t, collectionTraits)
		g.Add(t, traitType, ok)
	}
	return g
}

func (im *impl) ClassifyBatch(c ctx.Ctx, assets []trait.Asset) ([]trait.Groups, error) {
	res := make([]trait.Groups, len(assets))
	if len(assets) == 0 {
		return res, nil
	}

	type indexed struct {
		idx    int
		groups trait.Groups
	}

	b := goroutines.NewBatch(im.batchWorkers, goroutines.WithBatchSize(len(assets)))
	defer b.Close()
	for i := range assets {
		idx := i
		if err := b.Queue(func() (interface{}, error) {
			return indexed{idx, im.Group(assets[idx].Traits, assets[idx].CollectionTraits)}, nil
		}); err != nil {
			c.WithFields(log.Fields{"err": err, "idx": idx}).Error("batch.Queue failed")
			return nil, err
		}
	}
	b.QueueComplete()

	for ret := range b.Results() {
		if err := ret.Error(); err != nil {
			c.WithField("err", err).Error("classify batch error result")
			return nil, err
		}
		v := ret.Value().(indexed)
		res[v.idx] = v.groups
	}
	return res, nil
}

func hasDisplayType(t trait.Trait) bool {
	return t.DisplayType != nil
}

func isProperty(t trait.Trait, collectionTraits trait.CollectionTraits) bool {
	if hasDisplayType(t) {
		return false
	}
	def, ok := collectionTraits.Lookup(t.TraitType)
	return !ok || !def.IsRanged()
}

func isRanking(t trait.Trait, collectionTraits trait.CollectionTraits) bool {
	if hasDisplayType(t) {
		return false
	}
	def, ok := collectionTraits.Lookup(t.TraitType)
	return ok && def.IsRanged()
}

func isStat(t trait.Trait) bool {
	return hasDisplayType(t) && *t.DisplayType == trait.DisplayTypeNumber
}

func isBoost(t trait.Trait) bool {
	return hasDisplayType(t) && trait.IsBoostDisplayType(*t.DisplayType)
}
