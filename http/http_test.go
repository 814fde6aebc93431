package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corpix/keypad/metrics"
)

func newConfig() *Config {
	c := &Config{}
	c.Default()
	return c
}

func TestConfigDefault(t *testing.T) {
	c := &Config{Metrics: &MetricsConfig{Enable: true}}
	c.Default()
	require.NoError(t, c.Validate())

	assert.Equal(t, DefaultAddress, c.Address)
	assert.Equal(t, "/metrics", c.Metrics.Path)
	assert.Contains(t, c.Trace.SkipPaths, "/metrics")
	assert.True(t, *c.Compress.Enable)
}

func TestCompose(t *testing.T) {
	order := []string{}
	mark := func(name string) Middleware {
		return func(next Handler) Handler {
			return HandlerFunc(func(w ResponseWriter, r *Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}
	h := Compose(HandlerFunc(func(w ResponseWriter, r *Request) {
		order = append(order, "handler")
	}), mark("outer"), mark("inner"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(MethodGet, "/", nil))
	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestTrace(t *testing.T) {
	var seen string
	h := Trace(&TraceConfig{SkipPaths: map[string]struct{}{}})(HandlerFunc(func(w ResponseWriter, r *Request) {
		seen = RequestIdGet(r)
	}))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(MethodGet, "/", nil)
	r.Header.Set(HeaderRequestId, "abc")
	h.ServeHTTP(w, r)

	assert.Equal(t, "abc", seen)
	assert.Equal(t, "abc", w.Header().Get(HeaderRequestId))

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.NotEqual(t, "abc", seen)
	assert.Equal(t, seen, w.Header().Get(HeaderRequestId))
}

func TestRecover(t *testing.T) {
	h := Recover()(HandlerFunc(func(w ResponseWriter, r *Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(MethodGet, "/", nil))
	assert.Equal(t, StatusInternalServerError, w.Code)
}

func TestCompress(t *testing.T) {
	c := &CompressConfig{}
	c.Default()
	require.NoError(t, c.Validate())

	body := strings.Repeat("HELLO ", 1024)
	h := New(newConfig(), WithCompress(c))
	h.Router.HandleFunc("/", func(w ResponseWriter, r *Request) {
		_, _ = io.WriteString(w, body)
	})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(MethodGet, "/", nil)
	r.Header.Set("accept-encoding", "gzip")
	h.Handler.ServeHTTP(w, r)

	require.Equal(t, "gzip", w.Header().Get("content-encoding"))
	gz, err := gzip.NewReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	buf, err := io.ReadAll(gz)
	require.NoError(t, err)
	assert.Equal(t, body, string(buf))
}

func TestCompressConfig(t *testing.T) {
	c := &CompressConfig{}
	c.Default()
	require.NotNil(t, c.Level)
	assert.Equal(t, gzip.DefaultCompression, *c.Level)

	for _, level := range []int{gzip.HuffmanOnly, gzip.DefaultCompression, gzip.NoCompression, gzip.BestCompression} {
		v := level
		c := &CompressConfig{Level: &v}
		c.Default()
		require.NoError(t, c.Validate(), "level %d", level)
		assert.Equal(t, level, *c.Level)

		_, err := Compress(c)
		assert.NoError(t, err, "level %d", level)
	}

	for _, level := range []int{-3, 10, 42} {
		v := level
		c := &CompressConfig{Level: &v}
		c.Default()
		assert.Error(t, c.Validate(), "level %d", level)
	}
}

func TestMetricsHandler(t *testing.T) {
	c := &Config{Metrics: &MetricsConfig{Enable: true, Token: "secret"}}
	c.Default()
	require.NoError(t, c.Metrics.Validate())

	registry := metrics.NewRegistry()
	h := New(c, WithMetricsHandler(registry))
	h.Router.HandleFunc("/ping", func(w ResponseWriter, r *Request) {
		_, _ = io.WriteString(w, "pong")
	})

	w := httptest.NewRecorder()
	h.Handler.ServeHTTP(w, httptest.NewRequest(MethodGet, "/ping", nil))
	assert.Equal(t, StatusOK, w.Code)

	w = httptest.NewRecorder()
	h.Handler.ServeHTTP(w, httptest.NewRequest(MethodGet, "/metrics", nil))
	assert.Equal(t, StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	r := httptest.NewRequest(MethodGet, "/metrics", nil)
	r.Header.Set(HeaderAuthorization, "Bearer secret")
	h.Handler.ServeHTTP(w, r)
	assert.Equal(t, StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "requests_total")
}

func TestMetricsAuth(t *testing.T) {
	c := &MetricsConfig{Token: "secret"}
	c.Default()

	h := MetricsAuth(c)(HandlerFunc(func(w ResponseWriter, r *Request) {
		_, _ = io.WriteString(w, "ok")
	}))

	samples := []struct {
		header string
		code   int
	}{
		{"Bearer secret", StatusOK},
		{"bearer secret", StatusOK},
		{"BEARER secret", StatusOK},
		{"Bearer Secret", StatusNotFound},
		{"Bearer secret ", StatusNotFound},
		{"Basic secret", StatusNotFound},
		{"Bearer", StatusNotFound},
		{"", StatusNotFound},
		{"ȺȺa", StatusNotFound},
		{"ȺȺȺȺȺȺ secret", StatusNotFound},
		{"Bearer ȺȺȺ", StatusNotFound},
	}
	for _, sample := range samples {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(MethodGet, "/metrics", nil)
		r.Header.Set(HeaderAuthorization, sample.header)

		require.NotPanics(t, func() { h.ServeHTTP(w, r) }, "header %q", sample.header)
		assert.Equal(t, sample.code, w.Code, "header %q", sample.header)
	}
}

func TestMetricsConfigValidate(t *testing.T) {
	c := &MetricsConfig{Token: "a", TokenFile: "b"}
	assert.Error(t, c.Validate())

	c = &MetricsConfig{TokenType: "basic"}
	assert.Error(t, c.Validate())
}
