package trait

import (
	"strings"

	"github.com/x-xyz/traitkit/base/ctx"
)

// TraitType is the display category of a trait
type TraitType string

const (
	TraitTypeProperty TraitType = "property"
	TraitTypeRanking  TraitType = "ranking"
	TraitTypeStat     TraitType = "stat"
	TraitTypeBoost    TraitType = "boost"
)

// display_type values with a fixed meaning
const (
	DisplayTypeNumber = "number"
	displayTypeBoost  = "boost"
)

// Trait is one attribute of an asset's metadata
type Trait struct {
	TraitType   string      `json:"trait_type" validate:"required"`
	Value       interface{} `json:"value"`
	DisplayType *string     `json:"display_type"`
	Max         *float64    `json:"max,omitempty"`
}

// Groups buckets an asset's traits per TraitType, keeping input order
type Groups struct {
	Properties   []Trait `json:"properties"`
	Rankings     []Trait `json:"rankings"`
	Stats        []Trait `json:"stats"`
	Boosts       []Trait `json:"boosts"`
	Unclassified []Trait `json:"unclassified"`
}

// Add appends t to the bucket of traitType, or to Unclassified when ok is false
func (g *Groups) Add(t Trait, traitType TraitType, ok bool) {
	if !ok {
		g.Unclassified = append(g.Unclassified, t)
		return
	}
	switch traitType {
	case TraitTypeProperty:
		g.Properties = append(g.Properties, t)
	case TraitTypeRanking:
		g.Rankings = append(g.Rankings, t)
	case TraitTypeStat:
		g.Stats = append(g.Stats, t)
	case TraitTypeBoost:
		g.Boosts = append(g.Boosts, t)
	default:
		g.Unclassified = append(g.Unclassified, t)
	}
}

// Asset is the input of a batch classification
type Asset struct {
	Traits           []Trait          `json:"traits" validate:"dive"`
	CollectionTraits CollectionTraits `json:"collectionTraits"`
}

// FormatTraitType turns a trait_type key into a display label
func FormatTraitType(traitType string) string {
	return strings.ReplaceAll(traitType, "_", " ")
}

// IsBoostDisplayType reports whether displayType names a boost
func IsBoostDisplayType(displayType string) bool {
	return strings.Contains(displayType, displayTypeBoost)
}

type UseCase interface {
	Classify(t Trait, collectionTraits CollectionTraits) (TraitType, bool)
	Group(traits []Trait, collectionTraits CollectionTraits) Groups
	ClassifyBatch(c ctx.Ctx, assets []Asset) ([]Groups, error)
}
