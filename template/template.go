package template

import (
	"html/template"
	"io/fs"

	sprig "github.com/Masterminds/sprig/v3"

	"github.com/corpix/keypad/di"
	"github.com/corpix/keypad/errors"
)

type (
	CSS      = template.CSS
	FuncMap  = template.FuncMap
	HTML     = template.HTML
	HTMLAttr = template.HTMLAttr
	JS       = template.JS
	Template = template.Template
	URL      = template.URL

	Option func(*Template)

	// ContextKey names a value exposed to templates, {{ .request }} for example.
	ContextKey string
	Context    map[string]interface{}
)

var (
	HTMLEscapeString = template.HTMLEscapeString
	JSEscapeString   = template.JSEscapeString
	Must             = template.Must
)

func NewContext() Context { return Context{} }

func (c Context) With(key ContextKey, value interface{}) Context {
	c[string(key)] = value
	return c
}

//

func WithProvide(cont *di.Container) Option {
	return func(t *Template) {
		di.MustProvide(cont, func() *Template { return t })
	}
}

func WithFuncs(funcs FuncMap) Option {
	return func(t *Template) { t.Funcs(funcs) }
}

func Parse(name string, data string, options ...Option) (*Template, error) {
	t, err := New(name, options...).Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse template %q", name)
	}
	return t, nil
}

// ParseFS parses templates matching patterns from fsys,
// templates are named after their base file names.
func ParseFS(fsys fs.FS, name string, patterns []string, options ...Option) (*Template, error) {
	t, err := New(name, options...).ParseFS(fsys, patterns...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse templates %v", patterns)
	}
	return t, nil
}

func New(name string, options ...Option) *Template {
	t := template.New(name).Funcs(sprig.FuncMap())
	for _, option := range options {
		option(t)
	}
	return t
}
