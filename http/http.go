package http

import (
	"context"
	"net/http"
	"time"

	"github.com/corpix/keypad/di"
	"github.com/corpix/keypad/errors"
	"github.com/corpix/keypad/log"
)

type (
	Option         func(*Http)
	Handler        = http.Handler
	HandlerFunc    = http.HandlerFunc
	Middleware     = func(Handler) Handler
	Request        = http.Request
	ResponseWriter = http.ResponseWriter
	Response       = http.Response
	Server         = http.Server
	FileSystem     = http.FileSystem
	MaxBytesError  = http.MaxBytesError
	ContextKey     uint8

	Config struct {
		Address         string          `yaml:"address,omitempty"`
		Prefix          string          `yaml:"prefix,omitempty"`
		ShutdownTimeout *time.Duration  `yaml:"shutdown-timeout,omitempty"`
		Compress        *CompressConfig `yaml:"compress,omitempty"`
		Metrics         *MetricsConfig  `yaml:"metrics,omitempty"`
		Trace           *TraceConfig    `yaml:"trace,omitempty"`
	}
	Http struct {
		Config  *Config
		Address string
		Router  *Router
		Handler Handler
	}
)

const (
	MethodGet     = http.MethodGet
	MethodHead    = http.MethodHead
	MethodPost    = http.MethodPost
	MethodPut     = http.MethodPut
	MethodPatch   = http.MethodPatch
	MethodDelete  = http.MethodDelete
	MethodOptions = http.MethodOptions

	StatusOK                    = http.StatusOK
	StatusBadRequest            = http.StatusBadRequest
	StatusNotFound              = http.StatusNotFound
	StatusMethodNotAllowed      = http.StatusMethodNotAllowed
	StatusRequestEntityTooLarge = http.StatusRequestEntityTooLarge
	StatusInternalServerError   = http.StatusInternalServerError

	HeaderRequestId     = "x-request-id"
	HeaderAuthorization = "authorization"
	HeaderContentType   = "content-type"

	MimeTextHtml = "text/html; charset=utf-8"

	AuthTokenTypeBearer = "bearer"

	DefaultAddress         = "127.0.0.1:8080"
	DefaultShutdownTimeout = 10 * time.Second
)

var (
	ErrServerClosed = http.ErrServerClosed

	FS              = http.FS
	FileServer      = http.FileServer
	StripPrefix     = http.StripPrefix
	MaxBytesReader  = http.MaxBytesReader
	StatusText      = http.StatusText
	Error           = http.Error
	NotFoundHandler = http.NotFoundHandler
)

func (c *Config) Default() {
	if c.Address == "" {
		c.Address = DefaultAddress
	}
	if c.ShutdownTimeout == nil {
		dur := DefaultShutdownTimeout
		c.ShutdownTimeout = &dur
	}
	if c.Compress == nil {
		c.Compress = &CompressConfig{}
	}
	if c.Metrics == nil {
		c.Metrics = &MetricsConfig{}
	}
	if c.Trace == nil {
		c.Trace = &TraceConfig{}
	}

	//

	c.Compress.Default()
	c.Trace.Default()

	if c.Metrics.Enable {
		c.Metrics.Default()
		c.Trace.SkipPaths[c.Prefix+c.Metrics.Path] = struct{}{}
	}
}

func (c *Config) Validate() error {
	if c.Address == "" {
		return errors.New("address should not be empty")
	}
	if c.ShutdownTimeout != nil && *c.ShutdownTimeout < 0 {
		return errors.New("shutdown-timeout should not be negative")
	}
	if c.Compress != nil {
		if err := c.Compress.Validate(); err != nil {
			return errors.Wrap(err, "compress")
		}
	}
	if c.Metrics != nil {
		if err := c.Metrics.Validate(); err != nil {
			return errors.Wrap(err, "metrics")
		}
	}
	return nil
}

//

func WithAddress(addr string) Option {
	return func(h *Http) {
		if addr != "" {
			h.Address = addr
		}
	}
}

func WithProvide(cont *di.Container) Option {
	return func(h *Http) {
		di.MustProvide(cont, func() *Http { return h })
	}
}

// WithInvoke calls f with dependencies resolved from cont,
// combine with WithProvide to make *Http one of them.
func WithInvoke(cont *di.Container, f di.Function) Option {
	return func(h *Http) { di.MustInvoke(cont, f) }
}

func WithMiddleware(middlewares ...Middleware) Option {
	return func(h *Http) {
		for _, middleware := range middlewares {
			h.Router.Use(middleware)
		}
	}
}

// WithHandlerMiddleware wraps the whole handler, unlike WithMiddleware
// it runs for requests which match no route.
func WithHandlerMiddleware(middlewares ...Middleware) Option {
	return func(h *Http) {
		h.Handler = Compose(h.Handler, middlewares...)
	}
}

// Compose wraps h so the first middleware is the outermost one.
func Compose(h Handler, middlewares ...Middleware) Handler {
	for n := len(middlewares) - 1; n >= 0; n-- {
		h = middlewares[n](h)
	}
	return h
}

func (h *Http) ListenAndServe(ctx context.Context) error {
	if h.Address == "" {
		return errors.New("no address was defined for http server to listen on (use WithAddress Option)")
	}
	if h.Handler == nil {
		return errors.New("no handler assigned to the server")
	}

	srv := &Server{
		Addr:              h.Address,
		Handler:           h.Handler,
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          log.Std(log.Default),
	}

	LogRoutes(h.Router)

	errc := make(chan error, 1)
	go func() {
		log.Info().Str("address", h.Address).Msg("starting http server")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	timeout := DefaultShutdownTimeout
	if h.Config.ShutdownTimeout != nil {
		timeout = *h.Config.ShutdownTimeout
	}
	log.Info().Dur("timeout", timeout).Msg("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	err := srv.Shutdown(shutdownCtx)
	if err != nil {
		return errors.Wrap(err, "failed to shutdown http server")
	}
	err = <-errc
	if errors.Is(err, ErrServerClosed) {
		return nil
	}
	return err
}

func New(c *Config, options ...Option) *Http {
	h := &Http{
		Config:  c,
		Address: c.Address,
		Router:  NewRouter(c),
	}
	h.Handler = h.Router
	for _, option := range options {
		option(h)
	}

	return h
}
