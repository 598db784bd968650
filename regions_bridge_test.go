package wfc_test

import (
	"testing"

	"github.com/arcwave/wfc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectedRegionsAndBridgeRegions_WireThroughGeneratedTilemap(t *testing.T) {
	images := [][][]int{{
		{0, 0, 1, 1},
		{0, 0, 1, 1},
	}}
	model, err := wfc.Learn(images, 2)
	require.NoError(t, err)

	tm, ok, err := model.Generate(4, 2, 10)
	require.NoError(t, err)
	require.True(t, ok)

	groups, err := wfc.ConnectedRegions(tm)
	require.NoError(t, err)
	require.NotEmpty(t, groups)

	var src, dst []wfc.Region
	for tile, group := range groups {
		if len(group[0]) > 0 && src == nil {
			src = group[0]
			_ = tile
			continue
		}
		if dst == nil {
			dst = group[0]
		}
	}
	if src == nil || dst == nil {
		t.Skip("generated tilemap did not yield two distinct regions under this seed")
	}

	_, cost, err := wfc.BridgeRegions(tm, src, dst)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, cost, 0)
}
