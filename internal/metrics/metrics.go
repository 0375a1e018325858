// Package metrics exposes game and frame timing counters in the Prometheus
// text format.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/tetris"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "blockfall"

// Metrics holds the collectors of one process on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	games         prometheus.Counter
	lines         prometheus.Counter
	locked        *prometheus.CounterVec
	finalScore    prometheus.Histogram
	level         prometheus.Gauge
	frames        prometheus.Gauge
	systemSeconds *prometheus.GaugeVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		games: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_total",
			Help:      "Total number of finished games",
		}),
		lines: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lines_cleared_total",
			Help:      "Total number of cleared lines",
		}),
		locked: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "pieces_locked_total",
				Help:      "Total number of pieces merged into the board",
			},
			[]string{"kind"},
		),
		finalScore: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "final_score",
			Help:      "Score of finished games",
			Buckets:   prometheus.ExponentialBuckets(100, 2, 10),
		}),
		level: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "level",
			Help:      "Level reached by the current game",
		}),
		frames: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "frames",
			Help:      "Frames executed by the scheduler",
		}),
		systemSeconds: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "system_duration_seconds",
				Help:      "Average execution time of a frame system",
			},
			[]string{"system"},
		),
	}

	m.registry.MustRegister(
		m.games,
		m.lines,
		m.locked,
		m.finalScore,
		m.level,
		m.frames,
		m.systemSeconds,
	)
	m.level.Set(1)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// OnEvent counts game events. It is a session listener.
func (m *Metrics) OnEvent(event any) {
	switch ev := event.(type) {
	case tetris.Locked:
		m.locked.WithLabelValues(ev.Kind.String()).Inc()
	case tetris.LinesCleared:
		m.lines.Add(float64(ev.Count))
		m.level.Set(float64(ev.Level))
	case tetris.GameOver:
		m.games.Inc()
		m.finalScore.Observe(float64(ev.Score))
		m.level.Set(1)
	}
}

// FrameSystem copies the scheduler's timing statistics into gauges. Register
// it last so it sees every other system.
type FrameSystem struct {
	Metrics   *Metrics
	Scheduler *engine.Scheduler
}

func (s *FrameSystem) Execute(*engine.UpdateFrame) {
	stats := s.Scheduler.GetStats()
	s.Metrics.frames.Set(float64(stats.Frames))
	for _, sys := range stats.Systems {
		s.Metrics.systemSeconds.WithLabelValues(sys.Name).Set(sys.AvgDuration.Seconds())
	}
}

// Handler serves /metrics and /healthz.
func (m *Metrics) Handler() http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("ok\n"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
	return r
}

// ListenAndServe serves Handler on addr until ctx is cancelled.
func (m *Metrics) ListenAndServe(ctx context.Context, addr string, logger *slog.Logger) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("metrics listen: %w", err)
	}
	return m.Serve(ctx, ln, logger)
}

// Serve serves Handler on ln until ctx is cancelled.
func (m *Metrics) Serve(ctx context.Context, ln net.Listener, logger *slog.Logger) error {
	srv := &http.Server{
		Handler:           m.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	logger.Info("metrics server listening", "addr", ln.Addr().String())

	select {
	case err := <-errCh:
		return fmt.Errorf("metrics serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("metrics shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("metrics serve: %w", err)
	}
	return nil
}
