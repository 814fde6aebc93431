package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/corpix/keypad/config"
	"github.com/corpix/keypad/http"
	"github.com/corpix/keypad/log"
	"github.com/corpix/keypad/metrics"

	cli "github.com/urfave/cli/v2"
)

type (
	Command         = cli.Command
	Commands        = cli.Commands
	Context         = cli.Context
	Flag            = cli.Flag
	Flags           = []Flag
	BoolFlag        = cli.BoolFlag
	DurationFlag    = cli.DurationFlag
	IntFlag         = cli.IntFlag
	StringFlag      = cli.StringFlag
	StringSliceFlag = cli.StringSliceFlag

	App        = cli.App
	BeforeFunc = cli.BeforeFunc
	AfterFunc  = cli.AfterFunc
	ActionFunc = cli.ActionFunc
	Action     = func(*Context) error

	Config          = config.Config
	ConfigContainer = config.Container

	Cli struct {
		*App
		Config *ConfigContainer
	}

	Option func(*Cli)
)

//

func WithComposition(options ...Option) Option {
	return func(c *Cli) {
		for _, option := range options {
			option(c)
		}
	}
}

//

func WithName(name string) Option {
	return func(c *Cli) {
		c.Name = name
	}
}

func WithDescription(desc string) Option {
	return func(c *Cli) {
		c.Description = desc
	}
}

func WithUsage(usage string) Option {
	return func(c *Cli) {
		c.Usage = usage
	}
}

func WithVersion(version string) Option {
	return func(c *Cli) {
		c.Version = version
	}
}

func WithConfig(cfg Config) Option {
	return func(c *Cli) {
		c.Config = config.New(cfg)
	}
}

//

func WithFlags(flags Flags) Option {
	return func(c *Cli) {
		c.Flags = append(c.Flags, flags...)
	}
}

func WithCommands(commands Commands) Option {
	return func(c *Cli) {
		c.Commands = append(c.Commands, commands...)
	}
}

//

func ActionChain(current Action, next Action) Action {
	if current != nil {
		return func(ctx *Context) error {
			err := current(ctx)
			if err != nil {
				return err
			}
			return next(ctx)
		}
	}
	return next
}

func WithBefore(fn BeforeFunc) Option {
	return func(c *Cli) {
		c.Before = ActionChain(c.Before, fn)
	}
}
func WithAfter(fn AfterFunc) Option {
	return func(c *Cli) {
		c.After = ActionChain(c.After, fn)
	}
}
func WithAction(fn ActionFunc) Option {
	return func(c *Cli) {
		c.Action = ActionChain(c.Action, fn)
	}
}

//

func ConfigFromContext(ctx *Context, cfg Config, unmarshaler config.Unmarshaler) error {
	paths := ctx.StringSlice("config")
	sources := make([]config.SourceOption, 0, len(paths)+1)

	for _, path := range paths {
		if !ctx.IsSet("config") {
			// default config file is optional
			if _, err := os.Stat(path); os.IsNotExist(err) {
				continue
			}
		}
		sources = append(sources, config.FromFile(path, unmarshaler))
	}
	sources = append(sources, config.FromEnviron(config.EnvironPrefix))

	_, err := config.Load(cfg, sources...)
	if err != nil {
		return err
	}
	return nil
}

func ConfigPostprocess(cfg Config, validate bool) error {
	if !validate {
		return config.Postprocess(
			cfg,
			config.WithDefaults(),
			config.WithExpansion(),
		)
	}
	return config.Postprocess(
		cfg,
		config.WithDefaults(),
		config.WithExpansion(),
		config.WithValidation(),
	)
}

func WithConfigTools(cfg Config, unmarshaler config.Unmarshaler, marshaler config.Marshaler) Option {
	return WithComposition(
		WithConfig(cfg),
		WithBefore(func(ctx *Context) error {
			err := ConfigFromContext(ctx, cfg, unmarshaler)
			if err != nil {
				return err
			}
			return ConfigPostprocess(cfg, true)
		}),
		func(c *Cli) {
			c.Flags = append(c.Flags, &StringSliceFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to application configuration file",
				Value:   cli.NewStringSlice("config.yml"),
			})

			c.Commands = append(c.Commands, &Command{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Configuration tools",
				Subcommands: Commands{
					&Command{
						Name:    "show-default",
						Aliases: []string{"sd"},
						Usage:   "Show default configuration",
						Action: func(ctx *Context) error {
							empty := c.Config.EmptyClone()
							err := config.Postprocess(empty, config.WithDefaults())
							if err != nil {
								return err
							}
							return config.ToWriter(ctx.App.Writer, marshaler)(empty)
						},
					},
					&Command{
						Name:    "validate",
						Aliases: []string{"v"},
						Usage:   "Validate configuration and exit",
						Action: func(ctx *Context) error {
							// Before hook already loaded and validated it
							_, err := fmt.Fprintln(ctx.App.Writer, "configuration is valid")
							return err
						},
					},
					&Command{
						Name:    "show",
						Aliases: []string{"s"},
						Usage:   "Show current configuration",
						Action: func(ctx *Context) error {
							return config.ToWriter(ctx.App.Writer, marshaler)(cfg)
						},
					},
				},
			})
		},
	)
}

func WithLogTools(cfg func() *log.Config, options ...log.Option) Option {
	return WithComposition(
		WithFlags(Flags{
			&StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "logging level (trace, debug, info, warn, error)",
			},
		}),
		WithBefore(func(ctx *Context) error {
			level := ctx.String("log-level")
			if level == "" {
				level = cfg().Level
			}

			return log.Init(level, options...)
		}),
	)
}

// WithHttpTools adds "http serve", options are applied after the
// decoder routes are known so they can register handlers on the router.
func WithHttpTools(cfg func() *http.Config, options ...http.Option) Option {
	return func(c *Cli) {
		c.Commands = append(c.Commands, &Command{
			Name:    "http",
			Aliases: []string{"ht"},
			Usage:   "HTTP server tools",
			Subcommands: Commands{
				&Command{
					Name:    "serve",
					Aliases: []string{"s"},
					Usage:   "Run server listener",
					Flags: Flags{
						&StringFlag{
							Name:    "address",
							Aliases: []string{"a"},
							Usage:   "address:port to listen on",
						},
					},
					Action: func(ctx *Context) error {
						conf := cfg()

						opts := append([]http.Option{}, options...)
						opts = append(opts,
							http.WithAddress(ctx.String("address")),
							http.WithMiddleware(
								http.Trace(conf.Trace),
								http.Recover(),
							),
							http.WithCompress(conf.Compress),
							http.WithMetricsHandler(metrics.Default),
						)

						sigctx, cancel := signal.NotifyContext(ctx.Context, os.Interrupt, syscall.SIGTERM)
						defer cancel()

						return http.New(conf, opts...).ListenAndServe(sigctx)
					},
				},
			},
		})
	}
}

func New(options ...Option) *Cli {
	c := &Cli{
		App: &App{},
	}

	for _, option := range options {
		option(c)
	}

	return c
}
