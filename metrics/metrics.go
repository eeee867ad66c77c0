// Package metrics records Prometheus metrics for duckurl runs on a private
// registry and writes them in textfile-collector format.
package metrics

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/jongio/duckurl/duckapi"
	"github.com/jongio/duckurl/httpclient"
)

// OutcomeSuccess labels a run that printed a URL.
const OutcomeSuccess = "success"

// Recorder owns the registry and the collectors registered on it.
type Recorder struct {
	registry *prometheus.Registry

	fetchDuration *prometheus.HistogramVec
	runsTotal     *prometheus.CounterVec
	responseBytes prometheus.Gauge
}

// NewRecorder creates a Recorder with its own registry so repeated runs in
// one process (tests, the MCP server) do not collide on the default one.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		fetchDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "duckurl_fetch_duration_seconds",
				Help:    "Duration of requests to the duck API in seconds",
				Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
			},
			[]string{"status"},
		),
		runsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "duckurl_runs_total",
				Help: "Total number of pipeline runs by outcome",
			},
			[]string{"outcome"},
		),
		responseBytes: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "duckurl_response_bytes",
				Help: "Size of the last duck API response body in bytes",
			},
		),
	}
}

// Registry returns the registry backing r.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// InstrumentDoer wraps next so every request is timed and sized.
func (r *Recorder) InstrumentDoer(next httpclient.Doer) httpclient.Doer {
	return &instrumentedDoer{next: next, recorder: r}
}

// RecordOutcome counts one run. A nil err is a success; otherwise the
// outcome is the duckapi error kind, or "error" for anything else.
func (r *Recorder) RecordOutcome(err error) {
	r.runsTotal.WithLabelValues(Outcome(err)).Inc()
}

// Outcome returns the runs_total label for err.
func Outcome(err error) string {
	if err == nil {
		return OutcomeSuccess
	}
	if kind := duckapi.KindOf(err); kind != "" {
		return string(kind)
	}
	return "error"
}

// WriteFile writes every metric in r to path using the node_exporter
// textfile format. The file is replaced atomically.
func (r *Recorder) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics file: %w", err)
	}
	return nil
}

type instrumentedDoer struct {
	next     httpclient.Doer
	recorder *Recorder
}

func (d *instrumentedDoer) Get(ctx context.Context, url string) (*httpclient.Response, error) {
	start := time.Now()
	resp, err := d.next.Get(ctx, url)
	elapsed := time.Since(start).Seconds()

	if err != nil {
		d.recorder.fetchDuration.WithLabelValues("error").Observe(elapsed)
		return nil, err
	}

	d.recorder.fetchDuration.WithLabelValues(strconv.Itoa(resp.StatusCode)).Observe(elapsed)
	d.recorder.responseBytes.Set(float64(len(resp.Body)))
	return resp, nil
}
