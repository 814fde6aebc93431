package http

import (
	"crypto/subtle"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/corpix/keypad/errors"
	"github.com/corpix/keypad/log"
	"github.com/corpix/keypad/metrics"
)

type (
	MetricsOption        = promhttp.Option
	MetricsHandlerConfig = promhttp.HandlerOpts
)

var (
	MetricsHandlerDuration     = promhttp.InstrumentHandlerDuration
	MetricsHandlerCounter      = promhttp.InstrumentHandlerCounter
	MetricsHandlerRequestSize  = promhttp.InstrumentHandlerRequestSize
	MetricsHandlerResponseSize = promhttp.InstrumentHandlerResponseSize
	MetricsHandlerInFlight     = promhttp.InstrumentHandlerInFlight

	MetricsHandler    = promhttp.InstrumentMetricHandler
	MetricsHandlerFor = promhttp.HandlerFor
)

//

type MetricsConfig struct {
	Enable    bool   `yaml:"enable"`
	Path      string `yaml:"path"`
	TokenType string `yaml:"token-type"`
	Token     string `yaml:"token"`
	TokenFile string `yaml:"token-file"`
}

func (c *MetricsConfig) Default() {
	if c.Path == "" {
		c.Path = "/metrics"
	}
	if c.TokenType == "" {
		c.TokenType = AuthTokenTypeBearer
	}
}

func (c *MetricsConfig) Validate() error {
	if c.Token != "" && c.TokenFile != "" {
		return errors.New("either define token or token-file, not both of them")
	}
	if c.TokenType != "" && strings.ToLower(c.TokenType) != AuthTokenTypeBearer {
		return errors.New("at this moment only bearer token type is supported")
	}
	return nil
}

func (c *MetricsConfig) Expand() error {
	c.TokenType = strings.ToLower(c.TokenType)

	if c.TokenFile != "" {
		tokenBytes, err := os.ReadFile(c.TokenFile)
		if err != nil {
			return errors.Wrapf(err, "failed to read token file at %q", c.TokenFile)
		}
		c.Token = strings.TrimSpace(string(tokenBytes))
	}
	return nil
}

//

// Metrics instruments h with request counters registered in r.
func Metrics(r metrics.Registerer, h Handler, options ...MetricsOption) Handler {
	labels := []string{
		"code",
		"method",
	}

	duration := metrics.NewHistogramVec(metrics.HistogramOpts{
		Name: "request_duration_histogram_seconds",
		Help: "Request time duration.",
	}, labels)
	total := metrics.NewCounterVec(metrics.CounterOpts{
		Name: "requests_total",
		Help: "Total number of requests received.",
	}, labels)
	reqSize := metrics.NewHistogramVec(metrics.HistogramOpts{
		Name:    "request_size_histogram_bytes",
		Help:    "Request size in bytes.",
		Buckets: []float64{100, 1000, 2000, 5000, 10000},
	}, labels)
	resSize := metrics.NewHistogramVec(metrics.HistogramOpts{
		Name:    "response_size_histogram_bytes",
		Help:    "Response size in bytes.",
		Buckets: []float64{100, 1000, 2000, 5000, 10000},
	}, labels)
	inFlight := metrics.NewGauge(metrics.GaugeOpts{
		Name: "requests_in_flight",
		Help: "Number of http requests which are currently running.",
	})
	r.MustRegister(
		duration,
		total,
		reqSize,
		resSize,
		inFlight,
	)

	return MetricsHandlerDuration(duration,
		MetricsHandlerCounter(total,
			MetricsHandlerRequestSize(reqSize,
				MetricsHandlerResponseSize(resSize,
					MetricsHandlerInFlight(inFlight, h),
					options...,
				),
				options...,
			),
			options...,
		),
		options...,
	)
}

// MetricsAuth hides the metrics endpoint behind a constant token,
// mismatches look like a missing route. The scheme is case insensitive.
func MetricsAuth(c *MetricsConfig) Middleware {
	expected := []byte(c.Token)
	return func(next Handler) Handler {
		return HandlerFunc(func(w ResponseWriter, r *Request) {
			scheme, token, _ := strings.Cut(r.Header.Get(HeaderAuthorization), " ")
			if strings.EqualFold(scheme, c.TokenType) &&
				subtle.ConstantTimeCompare(expected, []byte(token)) == 1 {
				next.ServeHTTP(w, r)
				return
			}

			l := RequestLogGet(r)
			l.Warn().Msg("authentication failed, token does not match")

			NotFoundHandler().ServeHTTP(w, r)
		})
	}
}

func WithMetricsHandler(r metrics.RegisterGatherer, options ...MetricsOption) Option {
	return func(h *Http) {
		if !h.Config.Metrics.Enable {
			return
		}

		subr := h.Router.NewRoute().Subrouter()

		if h.Config.Metrics.Token == "" {
			// NOTE: TokenFile contents are loaded into Token by Expand
			log.Warn().
				Msg("metrics token is not defined, likely this is not what you want, please define metrics.token or metrics.token-file")
		} else {
			subr.Use(MetricsAuth(h.Config.Metrics))
		}

		subr.
			Methods(MethodGet).
			Path(h.Config.Metrics.Path).
			Handler(MetricsHandler(r, MetricsHandlerFor(r,
				MetricsHandlerConfig{ErrorLog: log.Std(log.Default)},
			)))

		h.Handler = Metrics(r, h.Handler, options...)
	}
}
