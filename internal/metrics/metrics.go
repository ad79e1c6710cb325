package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Label values are bounded: population kinds, recovery reasons and game modes.
var (
	tickDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "hero_tick_duration_seconds",
		Help:    "Time spent in one simulation tick",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.016},
	})

	renderDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "hero_snapshot_render_duration_seconds",
		Help:    "Time spent rendering a PNG snapshot",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1},
	})

	population = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "hero_population",
		Help: "Current number of entities per kind",
	}, []string{"kind"}) // "customer", "doc", "bug", "bullet", "power_up"

	level = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "hero_level",
		Help: "Current level of the run",
	})

	score = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "hero_score",
		Help: "Current total score of the run",
	})

	levelUps = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hero_level_ups_total",
		Help: "Total level-ups across runs",
	})

	gameOvers = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hero_game_overs_total",
		Help: "Total runs that ended with zero health",
	})

	recoveries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hero_recoveries_total",
		Help: "Recovery guard activations",
	}, []string{"reason"}) // "corrupt", "out_of_bounds", "unknown"

	wsConnectionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "hero_websocket_connections_active",
		Help: "Currently active WebSocket connections",
	})
)

// Handler serves the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordTick records tick timing.
func RecordTick(duration time.Duration) {
	tickDuration.Observe(duration.Seconds())
}

// RecordRender records snapshot render timing.
func RecordRender(duration time.Duration) {
	renderDuration.Observe(duration.Seconds())
}

// UpdatePopulation sets the gauge for one entity kind.
func UpdatePopulation(kind string, count int) {
	population.WithLabelValues(kind).Set(float64(count))
}

// UpdateRun publishes the level and score of the current run.
func UpdateRun(lvl, total int) {
	level.Set(float64(lvl))
	score.Set(float64(total))
}

func IncrementLevelUps() {
	levelUps.Inc()
}

func IncrementGameOvers() {
	gameOvers.Inc()
}

// RecordRecovery increments the recovery counter.
// reason must be one of: "corrupt", "out_of_bounds", "unknown"
func RecordRecovery(reason string) {
	recoveries.WithLabelValues(reason).Inc()
}

// UpdateWSConnections updates the WebSocket connection count.
func UpdateWSConnections(count int) {
	wsConnectionsActive.Set(float64(count))
}
