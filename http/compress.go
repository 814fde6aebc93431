package http

import (
	"github.com/klauspost/compress/gzhttp"
	"github.com/klauspost/compress/gzip"

	"github.com/corpix/keypad/errors"
)

type CompressConfig struct {
	Enable  *bool `yaml:"enable"`
	MinSize int   `yaml:"min-size"`
	Level   *int  `yaml:"level"`
}

func (c *CompressConfig) Default() {
	if c.Enable == nil {
		v := true
		c.Enable = &v
	}
	if c.MinSize == 0 {
		c.MinSize = gzhttp.DefaultMinSize
	}
	if c.Level == nil {
		v := gzip.DefaultCompression
		c.Level = &v
	}
}

func (c *CompressConfig) Validate() error {
	if c.MinSize < 0 {
		return errors.New("min-size should not be negative")
	}
	if c.Level != nil && (*c.Level < gzip.HuffmanOnly || *c.Level > gzip.BestCompression) {
		return errors.Newf(
			"level should be in range %d..%d, got %d",
			gzip.HuffmanOnly, gzip.BestCompression, *c.Level,
		)
	}
	return nil
}

// Compress gzips responses for clients which accept it.
func Compress(c *CompressConfig) (Middleware, error) {
	level := gzip.DefaultCompression
	if c.Level != nil {
		level = *c.Level
	}
	wrapper, err := gzhttp.NewWrapper(
		gzhttp.MinSize(c.MinSize),
		gzhttp.CompressionLevel(level),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create compression middleware")
	}
	return func(next Handler) Handler { return wrapper(next) }, nil
}

func WithCompress(c *CompressConfig) Option {
	return func(h *Http) {
		if c.Enable == nil || !*c.Enable {
			return
		}
		middleware, err := Compress(c)
		if err != nil {
			panic(err)
		}
		h.Handler = middleware(h.Handler)
	}
}
