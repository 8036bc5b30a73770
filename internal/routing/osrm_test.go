package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Known encoding from Google's polyline algorithm documentation: the
// points (38.5,-120.2), (40.7,-120.95), (43.252,-126.453).
func TestDecodePolylineKnownSample(t *testing.T) {
	got := decodePolyline("_p~iF~ps|U_ulLnnqC_mqNvxq`@")
	require.Len(t, got, 3)
	assert.InDelta(t, 38.5, got[0].Lat, 1e-5)
	assert.InDelta(t, -120.2, got[0].Lng, 1e-5)
	assert.InDelta(t, 40.7, got[1].Lat, 1e-5)
	assert.InDelta(t, -120.95, got[1].Lng, 1e-5)
	assert.InDelta(t, 43.252, got[2].Lat, 1e-5)
	assert.InDelta(t, -126.453, got[2].Lng, 1e-5)
}

func TestDecodePolylineEmpty(t *testing.T) {
	assert.Empty(t, decodePolyline(""))
}
