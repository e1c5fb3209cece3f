package trait

import (
	"bytes"
	"encoding/json"
	"sort"
)

const (
	keyMin = "min"
	keyMax = "max"
)

var null = []byte("null")

// Definition describes one trait type of a collection. In its JSON form it
// is either a value -> count object or a ranged {"min": x, "max": y} object.
type Definition struct {
	Min    *float64
	Max    *float64
	Counts map[string]int64

	// hasMax is set when the decoded object carried a max key, numeric or not
	hasMax bool
}

// CollectionTraits maps a trait_type key to its definition
type CollectionTraits map[string]Definition

// Lookup is safe on a nil map
func (ct CollectionTraits) Lookup(traitType string) (Definition, bool) {
	def, ok := ct[traitType]
	return def, ok
}

// IsRanged reports whether the definition carries a max key. The value of
// max does not matter.
func (d Definition) IsRanged() bool {
	return d.hasMax || d.Max != nil
}

// UnmarshalJSON never fails on unexpected shapes: non-object input yields an
// empty definition and null or non-numeric entries are skipped. A max key
// still marks the definition as ranged when its value is skipped.
func (d *Definition) UnmarshalJSON(data []byte) error {
	*d = Definition{}

	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	for k, v := range raw {
		if k == keyMax {
			d.hasMax = true
		}
		if bytes.Equal(v, null) {
			continue
		}
		var num float64
		if err := json.Unmarshal(v, &num); err != nil {
			continue
		}
		switch k {
		case keyMin:
			d.Min = &num
		case keyMax:
			d.Max = &num
		default:
			if d.Counts == nil {
				d.Counts = map[string]int64{}
			}
			d.Counts[k] = int64(num)
		}
	}
	return nil
}

func (d Definition) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(d.Counts)+2)
	keys := make([]string, 0, len(d.Counts))
	for k := range d.Counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out[k] = d.Counts[k]
	}
	if d.Min != nil {
		out[keyMin] = *d.Min
	}
	if d.Max != nil {
		out[keyMax] = *d.Max
	} else if d.hasMax {
		out[keyMax] = nil
	}
	return json.Marshal(out)
}
