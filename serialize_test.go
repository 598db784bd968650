package wfc_test

import (
	"testing"

	"github.com/arcwave/wfc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeModel_RoundTrips(t *testing.T) {
	images := [][][]int{{
		{0, 1, 0, 1},
		{0, 1, 0, 1},
		{0, 1, 0, 1},
	}}
	model, err := wfc.Learn(images, 2)
	require.NoError(t, err)

	data, err := wfc.EncodeModel(model)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	decoded, err := wfc.DecodeModel(data)
	require.NoError(t, err)
	assert.Equal(t, model.PatternCount(), decoded.PatternCount())

	reencoded, err := wfc.EncodeModel(decoded)
	require.NoError(t, err)
	assert.Equal(t, data, reencoded)
}

// TestEncodeDecodeModel_PreservesGenerateBehavior checks that a decoded
// model produces the same output as the original for the same seed and
// presets, not merely the same byte count.
func TestEncodeDecodeModel_PreservesGenerateBehavior(t *testing.T) {
	images := [][][]int{{
		{0, 0, 1, 1},
		{0, 0, 1, 1},
		{2, 2, 3, 3},
		{2, 2, 3, 3},
	}}
	original, err := wfc.Learn(images, 2)
	require.NoError(t, err)

	data, err := wfc.EncodeModel(original)
	require.NoError(t, err)
	decoded, err := wfc.DecodeModel(data)
	require.NoError(t, err)

	wantTiles, wantOK, err := original.Generate(4, 4, 50)
	require.NoError(t, err)
	gotTiles, gotOK, err := decoded.Generate(4, 4, 50)
	require.NoError(t, err)

	assert.Equal(t, wantOK, gotOK)
	if wantOK {
		assert.Equal(t, wantTiles, gotTiles)
	}
}

func TestDecodeModel_RejectsTruncatedStream(t *testing.T) {
	images := [][][]int{{
		{0, 1},
		{1, 0},
	}}
	model, err := wfc.Learn(images, 1)
	require.NoError(t, err)

	data, err := wfc.EncodeModel(model)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	_, err = wfc.DecodeModel(data[:len(data)-1])
	assert.ErrorIs(t, err, wfc.ErrMalformedModel)
}

func TestEncodeModel_NilModelIsInvalidInput(t *testing.T) {
	_, err := wfc.EncodeModel(nil)
	assert.ErrorIs(t, err, wfc.ErrInvalidInput)
}
