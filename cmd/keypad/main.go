package main

import (
	"github.com/corpix/keypad/api"
	"github.com/corpix/keypad/cli"
	"github.com/corpix/keypad/config"
	"github.com/corpix/keypad/di"
	"github.com/corpix/keypad/http"
	"github.com/corpix/keypad/keypad"
	"github.com/corpix/keypad/log"
	"github.com/corpix/keypad/metrics"
	"github.com/corpix/keypad/web"
)

const name = "keypad"

var version = "dev"

type Config struct {
	Log  *log.Config  `yaml:"log"`
	Http *http.Config `yaml:"http"`
	Api  *api.Config  `yaml:"api"`
	Web  *web.Config  `yaml:"web"`
}

func (c *Config) Default() {
	if c.Log == nil {
		c.Log = &log.Config{}
	}
	if c.Http == nil {
		c.Http = &http.Config{}
	}
	if c.Api == nil {
		c.Api = &api.Config{}
	}
	if c.Web == nil {
		c.Web = &web.Config{}
	}

	c.Log.Default()
	c.Http.Default()
	c.Api.Default()
	c.Web.Default()
}

func (c *Config) Validate() error {
	for _, v := range []config.Validatable{c.Log, c.Http, c.Api, c.Web} {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) Expand() error {
	if c.Http == nil || c.Http.Metrics == nil {
		return nil
	}
	return c.Http.Metrics.Expand()
}

func (c *Config) LogConfig() *log.Config   { return c.Log }
func (c *Config) HttpConfig() *http.Config { return c.Http }

var conf = &Config{}

//

func main() {
	di.MustProvide(di.Default, keypad.New)
	di.MustProvide(di.Default, func(d *keypad.Decoder) *api.Api {
		return api.New(conf.Api, d, metrics.Default)
	})
	di.MustProvide(di.Default, func() (*web.Web, error) {
		return web.New(conf.Web, web.Info{
			Name:       name,
			Version:    version,
			Prefix:     conf.Http.Prefix,
			DecodePath: conf.Api.Path,
		})
	})

	cli.New(
		cli.WithName(name),
		cli.WithVersion(version),
		cli.WithUsage("Old phone keypad decoder"),
		cli.WithDescription("Translates old phone keypad presses into text, from the command line or over http"),
		cli.WithConfigTools(
			conf,
			config.YamlUnmarshaler,
			config.YamlMarshaler,
		),
		cli.WithLogTools(conf.LogConfig),
		cli.WithDecodeTools(keypad.New()),
		cli.WithHttpTools(
			conf.HttpConfig,
			http.WithProvide(di.Default),
			http.WithInvoke(
				di.Default,
				func(h *http.Http, a *api.Api, wb *web.Web) {
					a.Register(h.Router)
					wb.Register(h.Router)
				},
			),
		),
	).RunAndExitOnError()
}
