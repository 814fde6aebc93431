// Package api exposes the keypad decoder over http.
package api

import (
	"io"
	"strings"

	"github.com/corpix/keypad/encoding"
	"github.com/corpix/keypad/errors"
	"github.com/corpix/keypad/http"
	"github.com/corpix/keypad/keypad"
	"github.com/corpix/keypad/metrics"
)

const (
	DefaultPath        = "/decode"
	DefaultMaxBodySize = 64 * 1024
)

type (
	Config struct {
		Path        string `yaml:"path"`
		MaxBodySize int64  `yaml:"max-body-size"`
	}

	DecodeRequest struct {
		// Input is optional, nil decodes to an empty string.
		Input *string `json:"input" msgpack:"input"`
	}
	DecodeResponse struct {
		Decoded string `json:"decoded" msgpack:"decoded"`
	}
	ErrorResponse struct {
		Error string `json:"error" msgpack:"error"`
	}

	Api struct {
		Config  *Config
		Decoder *keypad.Decoder
		metrics *apiMetrics
	}
	apiMetrics struct {
		total  *metrics.CounterVec
		length metrics.Histogram
	}
)

func (c *Config) Default() {
	if c.Path == "" {
		c.Path = DefaultPath
	}
	if c.MaxBodySize == 0 {
		c.MaxBodySize = DefaultMaxBodySize
	}
}

func (c *Config) Validate() error {
	if !strings.HasPrefix(c.Path, "/") {
		return errors.Newf("path should start with /, got %q", c.Path)
	}
	if c.MaxBodySize <= 0 {
		return errors.New("max-body-size should be larger than zero")
	}
	return nil
}

//

func newApiMetrics(r metrics.Registerer) *apiMetrics {
	m := &apiMetrics{
		total: metrics.NewCounterVec(metrics.CounterOpts{
			Namespace: "keypad",
			Name:      "decode_total",
			Help:      "Total number of decode requests by result.",
		}, []string{"result"}),
		length: metrics.NewHistogram(metrics.HistogramOpts{
			Namespace: "keypad",
			Name:      "decode_input_length_bytes",
			Help:      "Length of decoded key press input in bytes.",
			Buckets:   metrics.ExponentialBuckets(1, 4, 8),
		}),
	}
	r.MustRegister(m.total, m.length)
	return m
}

func (a *Api) fail(w http.ResponseWriter, r *http.Request, codec encoding.Codec, status int, err error) {
	a.metrics.total.WithLabelValues("error").Inc()

	l := http.RequestLogGet(r)
	l.Warn().Err(err).Int("code", status).Msg("failed to handle decode request")

	respond(w, r, codec, status, ErrorResponse{Error: err.Error()})
}

func respond(w http.ResponseWriter, r *http.Request, codec encoding.Codec, status int, v interface{}) {
	buf, err := codec.Marshal(v)
	if err != nil {
		panic(errors.Wrapf(err, "failed to marshal %T", v))
	}
	w.Header().Set(http.HeaderContentType, codec.ContentType())
	w.WriteHeader(status)
	_, err = w.Write(buf)
	if err != nil {
		l := http.RequestLogGet(r)
		l.Warn().Err(err).Msg("failed to write response")
	}
}

// Decode handles a single DecodeRequest, the codec is picked by content type.
func (a *Api) Decode(w http.ResponseWriter, r *http.Request) {
	codec := encoding.ForContentType(r.Header.Get(http.HeaderContentType))

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, a.Config.MaxBodySize))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			a.fail(w, r, codec, http.StatusRequestEntityTooLarge,
				errors.Newf("request body is larger than %d bytes", maxErr.Limit))
			return
		}
		a.fail(w, r, codec, http.StatusBadRequest, errors.Wrap(err, "failed to read request body"))
		return
	}
	if len(body) == 0 {
		a.fail(w, r, codec, http.StatusBadRequest, errors.New("request body is empty"))
		return
	}

	req := DecodeRequest{}
	err = codec.Unmarshal(body, &req)
	if err != nil {
		a.fail(w, r, codec, http.StatusBadRequest, err)
		return
	}

	input := ""
	if req.Input != nil {
		input = *req.Input
	}
	decoded := a.Decoder.Decode(input)

	a.metrics.total.WithLabelValues("ok").Inc()
	a.metrics.length.Observe(float64(len(input)))

	l := http.RequestLogGet(r)
	l.Debug().
		Str("input", input).
		Str("decoded", decoded).
		Msg("decoded")

	respond(w, r, codec, http.StatusOK, DecodeResponse{Decoded: decoded})
}

func (a *Api) Register(r *http.Router) {
	r.HandleFunc(a.Config.Path, a.Decode).Methods(http.MethodPost)
}

func New(c *Config, d *keypad.Decoder, r metrics.Registerer) *Api {
	return &Api{
		Config:  c,
		Decoder: d,
		metrics: newApiMetrics(r),
	}
}
