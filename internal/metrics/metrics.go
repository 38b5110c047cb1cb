// Package metrics exposes Prometheus collectors for the terrain simulation
// and the SSH server. Collectors live in a private registry so tests and
// multiple servers in one process never collide on registration.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "worms"

var (
	// Registry holds every collector of this package.
	Registry = prometheus.NewRegistry()

	// TerrainGenerated counts full terrain generations.
	TerrainGenerated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "terrain",
		Name:      "generated_total",
		Help:      "Number of terrain fields generated.",
	})

	// Blasts counts applied explosions.
	Blasts = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "terrain",
		Name:      "blasts_total",
		Help:      "Number of explosions applied to terrain.",
	})

	// DestroyedPixels counts solid cells removed by explosions.
	DestroyedPixels = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "terrain",
		Name:      "destroyed_pixels_total",
		Help:      "Solid cells removed by explosions, including settling.",
	})

	// MeshRebuild observes collision mesh rebuild latency.
	MeshRebuild = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "collision",
		Name:      "rebuild_duration_seconds",
		Help:      "Time spent rebuilding the collision mesh.",
		Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
	})

	// MeshBlocks is the block count of the most recent rebuild.
	MeshBlocks = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "collision",
		Name:      "blocks",
		Help:      "Collision blocks produced by the latest rebuild.",
	})

	// Sessions tracks live SSH sessions.
	Sessions = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "ssh",
		Name:      "sessions",
		Help:      "Currently connected SSH sessions.",
	})

	// MatchesFinished counts completed matches by outcome.
	MatchesFinished = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "match",
		Name:      "finished_total",
		Help:      "Finished matches by winning team.",
	}, []string{"winner"})
)

func init() {
	Registry.MustRegister(
		TerrainGenerated,
		Blasts,
		DestroyedPixels,
		MeshRebuild,
		MeshBlocks,
		Sessions,
		MatchesFinished,
	)
}

// ObserveRebuild records one collision mesh rebuild.
func ObserveRebuild(blocks int, took time.Duration) {
	MeshRebuild.Observe(took.Seconds())
	MeshBlocks.Set(float64(blocks))
}

// ObserveBlast records one explosion and the cells it removed.
func ObserveBlast(destroyed int) {
	Blasts.Inc()
	DestroyedPixels.Add(float64(destroyed))
}

// Handler serves the registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
