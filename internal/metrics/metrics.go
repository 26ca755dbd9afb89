package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by path/method/code.",
		},
		[]string{"path", "method", "code"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests by path/method/code.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method", "code"},
	)

	drawEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "team_draws_total",
			Help: "Team draws by game format, team count and result.",
		},
		[]string{"format", "teams", "result"},
	)

	drawRosterSize = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "team_draw_roster_size",
			Help:    "Number of registered players seen by each draw.",
			Buckets: prometheus.LinearBuckets(4, 4, 10),
		},
	)

	droppedPlayers = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "team_draw_dropped_players_total",
			Help: "Players left out of a successful draw because the remainder pool was larger than the free slots.",
		},
	)
)

// Middleware записывает количество и длительность HTTP запросов
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		path := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				path = pattern
			}
		}
		if path == "/metrics" {
			return
		}

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		code := strconv.Itoa(status)

		httpRequests.WithLabelValues(path, r.Method, code).Inc()
		httpDuration.WithLabelValues(path, r.Method, code).Observe(time.Since(start).Seconds())
	})
}

// Handler отдает метрики в формате Prometheus
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

// ObserveDraw записывает результат одной жеребьевки
func ObserveDraw(format string, teamCount, rosterSize, dropped int, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	drawEvents.WithLabelValues(format, strconv.Itoa(teamCount), result).Inc()
	drawRosterSize.Observe(float64(rosterSize))
	if err == nil && dropped > 0 {
		droppedPlayers.Add(float64(dropped))
	}
}

func init() {
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		httpRequests,
		httpDuration,
		drawEvents,
		drawRosterSize,
		droppedPlayers,
	)
}
