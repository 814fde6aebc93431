package di

import (
	"go.uber.org/dig"
)

type (
	Container     = dig.Container
	ProvideOption = dig.ProvideOption
	InvokeOption  = dig.InvokeOption
	In            = dig.In
	Out           = dig.Out
	// Function is a constructor or an invocation target, dig inspects it with reflection.
	Function = interface{}
)

var (
	Default = New()
	Name    = dig.Name
)

func New() *Container { return dig.New() }

func MustProvide(c *Container, f Function, opts ...ProvideOption) {
	err := c.Provide(f, opts...)
	if err != nil {
		panic(err)
	}
}

func MustInvoke(c *Container, f Function, opts ...InvokeOption) {
	err := c.Invoke(f, opts...)
	if err != nil {
		panic(err)
	}
}
