package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveBlast(t *testing.T) {
	blasts := testutil.ToFloat64(Blasts)
	pixels := testutil.ToFloat64(DestroyedPixels)

	ObserveBlast(120)
	ObserveBlast(0)

	assert.Equal(t, blasts+2, testutil.ToFloat64(Blasts))
	assert.Equal(t, pixels+120, testutil.ToFloat64(DestroyedPixels))
}

func TestObserveRebuildSetsGauge(t *testing.T) {
	ObserveRebuild(4242, 3*time.Millisecond)
	assert.Equal(t, 4242.0, testutil.ToFloat64(MeshBlocks))
}

func TestHandlerExposesRegistry(t *testing.T) {
	ObserveBlast(1)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "worms_terrain_blasts_total"))
}
