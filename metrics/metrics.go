package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type (
	Collector        = prometheus.Collector
	Registerer       = prometheus.Registerer
	Gatherer         = prometheus.Gatherer
	Registry         = prometheus.Registry
	RegisterGatherer interface {
		Registerer
		Gatherer
	}

	Counter       = prometheus.Counter
	CounterVec    = prometheus.CounterVec
	CounterOpts   = prometheus.CounterOpts
	Gauge         = prometheus.Gauge
	GaugeOpts     = prometheus.GaugeOpts
	Histogram     = prometheus.Histogram
	HistogramVec  = prometheus.HistogramVec
	HistogramOpts = prometheus.HistogramOpts
	Labels        = prometheus.Labels
)

var (
	NewCounter         = prometheus.NewCounter
	NewCounterVec      = prometheus.NewCounterVec
	NewGauge           = prometheus.NewGauge
	NewHistogram       = prometheus.NewHistogram
	NewHistogramVec    = prometheus.NewHistogramVec
	NewRegistry        = prometheus.NewRegistry
	ExponentialBuckets = prometheus.ExponentialBuckets
)

// Default registry exposed on the metrics endpoint.
var Default = NewRegistry()

func init() {
	Default.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

func Register(c Collector) error   { return Default.Register(c) }
func MustRegister(cs ...Collector) { Default.MustRegister(cs...) }
