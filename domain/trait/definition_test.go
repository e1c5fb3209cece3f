package trait

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/x-xyz/traitkit/base/ptr"
)

func TestCollectionTraitsUnmarshal(t *testing.T) {
	req := require.New(t)
	data := []byte(`{
		"Background": {"blue": 3, "orange": 7},
		"Level": {"min": 1, "max": 10},
		"Generation": {"max": 4},
		"Broken": "not an object",
		"Mixed": {"gold": 2, "label": "shiny"}
	}`)

	ct := CollectionTraits{}
	req.NoError(json.Unmarshal(data, &ct))
	req.Len(ct, 5)

	bg := ct["Background"]
	req.False(bg.IsRanged())
	req.Equal(map[string]int64{"blue": 3, "orange": 7}, bg.Counts)

	lvl := ct["Level"]
	req.True(lvl.IsRanged())
	req.Equal(float64(1), *lvl.Min)
	req.Equal(float64(10), *lvl.Max)
	req.Nil(lvl.Counts)

	req.True(ct["Generation"].IsRanged())
	req.Nil(ct["Generation"].Min)

	req.Equal(Definition{}, ct["Broken"])
	req.Equal(map[string]int64{"gold": 2}, ct["Mixed"].Counts)
}

func TestDefinitionMaxKeyPresence(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		ranged  bool
		wantMax *float64
	}{
		{name: "numeric max", data: `{"max": 10}`, ranged: true, wantMax: ptr.Float64(10)},
		{name: "string max", data: `{"max": "10"}`, ranged: true},
		{name: "null max", data: `{"max": null}`, ranged: true},
		{name: "object max", data: `{"max": {}}`, ranged: true},
		{name: "min only", data: `{"min": 1}`, ranged: false},
		{name: "counts", data: `{"maximum": 2}`, ranged: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			ct := CollectionTraits{}
			req.NoError(json.Unmarshal([]byte(`{"Level": `+tt.data+`}`), &ct))
			def, ok := ct.Lookup("Level")
			req.True(ok)
			req.Equal(tt.ranged, def.IsRanged())
			req.Equal(tt.wantMax, def.Max)
		})
	}
}

func TestDefinitionMarshalKeepsMaxKey(t *testing.T) {
	req := require.New(t)
	def := Definition{}
	req.NoError(json.Unmarshal([]byte(`{"max": "ten"}`), &def))

	b, err := json.Marshal(def)
	req.NoError(err)
	req.JSONEq(`{"max": null}`, string(b))

	again := Definition{}
	req.NoError(json.Unmarshal(b, &again))
	req.True(again.IsRanged())
}

func TestDefinitionMarshal(t *testing.T) {
	req := require.New(t)
	lo, hi := float64(1), float64(10)

	b, err := json.Marshal(Definition{Min: &lo, Max: &hi})
	req.NoError(err)
	req.JSONEq(`{"min": 1, "max": 10}`, string(b))

	b, err = json.Marshal(Definition{Counts: map[string]int64{"blue": 3}})
	req.NoError(err)
	req.JSONEq(`{"blue": 3}`, string(b))
}

func TestLookupOnNilMap(t *testing.T) {
	var ct CollectionTraits
	_, ok := ct.Lookup("Background")
	require.False(t, ok)
}
