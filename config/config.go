package config

import (
	"github.com/corpix/revip"

	"github.com/corpix/keypad/log"
)

type (
	Config          = revip.Config
	Defaultable     = revip.Defaultable
	Expandable      = revip.Expandable
	Validatable     = revip.Validatable
	ErrFileNotFound = revip.ErrFileNotFound
	ErrUnmarshal    = revip.ErrUnmarshal
	ErrPostprocess  = revip.ErrPostprocess
	Marshaler       = revip.Marshaler
	Unmarshaler     = revip.Unmarshaler
	SourceOption    = revip.SourceOption
	Container       = revip.Container
)

//

type BaseConfig struct {
	Log *log.Config `yaml:"log"`
}

func (c *BaseConfig) Default() {
	if c.Log == nil {
		c.Log = &log.Config{}
	}
}

func (c *BaseConfig) LogConfig() *log.Config { return c.Log }

//

const (
	// EnvironPrefix is prepended to every environment variable name
	// which overrides a configuration path, e.g. KEYPAD_HTTP_ADDRESS.
	EnvironPrefix = "KEYPAD"
)

var (
	FromEnviron    = revip.FromEnviron
	FromFile       = revip.FromFile
	FromReader     = revip.FromReader
	Load           = revip.Load
	New            = revip.New
	Postprocess    = revip.Postprocess
	ToWriter       = revip.ToWriter
	WithDefaults   = revip.WithDefaults
	WithExpansion  = revip.WithExpansion
	WithValidation = revip.WithValidation

	JsonMarshaler   = revip.JsonMarshaler
	JsonUnmarshaler = revip.JsonUnmarshaler
	YamlMarshaler   = revip.YamlMarshaler
	YamlUnmarshaler = revip.YamlUnmarshaler
)
