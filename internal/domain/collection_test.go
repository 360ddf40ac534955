package domain

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestFilmItemRef_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		kind     FilmItemRefKind
		stringID string
		index    int64
	}{
		{name: "string id", input: `"film-12"`, kind: FilmRefString, stringID: "film-12"},
		{name: "empty string is still a string ref", input: `""`, kind: FilmRefString},
		{name: "integer index", input: `7`, kind: FilmRefIndex, index: 7},
		{name: "negative index", input: `-2`, kind: FilmRefIndex, index: -2},
		{name: "integral float", input: `3.0`, kind: FilmRefIndex, index: 3},
		{name: "fractional number", input: `1.5`, kind: FilmRefInvalid},
		{name: "boolean", input: `true`, kind: FilmRefInvalid},
		{name: "null", input: `null`, kind: FilmRefInvalid},
		{name: "object", input: `{"id":"x"}`, kind: FilmRefInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ref FilmItemRef
			require.NoError(t, ref.UnmarshalJSON([]byte(tt.input)))
			assert.Equal(t, tt.kind, ref.Kind())

			if s, ok := ref.StringID(); ok {
				assert.Equal(t, tt.stringID, s)
			}
			if i, ok := ref.Index(); ok {
				assert.Equal(t, tt.index, i)
			}
		})
	}
}

func TestFilmItemRef_MixedListJSON(t *testing.T) {
	var refs []FilmItemRef
	require.NoError(t, json.Unmarshal([]byte(`["a", 2, "b"]`), &refs))

	assert.Equal(t, []FilmItemRef{StringRef("a"), IndexRef(2), StringRef("b")}, refs)

	out, err := json.Marshal(refs)
	require.NoError(t, err)
	assert.JSONEq(t, `["a", 2, "b"]`, string(out))
}

func TestFilmItemRef_MarshalInvalid(t *testing.T) {
	_, err := FilmItemRef{}.MarshalJSON()
	assert.Error(t, err)

	_, _, err = FilmItemRef{}.MarshalBSONValue()
	assert.Error(t, err)
}

func TestCollection_BSON(t *testing.T) {
	c := Collection{
		CollectionID:       "c1",
		Title:              LocalizedString{He: "א", En: "A"},
		YearsRange:         "1900-1910",
		FilmItemReferences: []FilmItemRef{StringRef("reel-1"), IndexRef(4)},
	}

	data, err := bson.Marshal(c)
	require.NoError(t, err)

	_, err = bson.Raw(data).LookupErr("_id")
	assert.Error(t, err, "zero ObjectID must not be written")

	var decoded Collection
	require.NoError(t, bson.Unmarshal(data, &decoded))
	assert.Equal(t, c, decoded)
}

func TestFilmItemRef_UnmarshalBSONDouble(t *testing.T) {
	data, err := bson.Marshal(bson.M{"film_item_references": bson.A{"x", 5.0, int32(6)}})
	require.NoError(t, err)

	var decoded Collection
	require.NoError(t, bson.Unmarshal(data, &decoded))
	assert.Equal(t, []FilmItemRef{StringRef("x"), IndexRef(5), IndexRef(6)}, decoded.FilmItemReferences)

	bad, err := bson.Marshal(bson.M{"film_item_references": bson.A{2.5}})
	require.NoError(t, err)
	assert.Error(t, bson.Unmarshal(bad, &decoded))
}
