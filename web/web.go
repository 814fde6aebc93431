// Package web serves the browser front-end of the decoder.
package web

import (
	"bytes"
	"embed"
	"io/fs"
	"os"

	"github.com/corpix/keypad/errors"
	"github.com/corpix/keypad/http"
	"github.com/corpix/keypad/template"
)

const (
	TemplateNameIndex = "index.html"

	TemplateContextKeyName       template.ContextKey = "name"
	TemplateContextKeyVersion    template.ContextKey = "version"
	TemplateContextKeyPrefix     template.ContextKey = "prefix"
	TemplateContextKeyDecodePath template.ContextKey = "decodePath"
)

//go:embed assets
var assets embed.FS

type (
	Config struct {
		Enable *bool  `yaml:"enable"`
		Dir    string `yaml:"dir,omitempty"`
	}

	Info struct {
		Name       string
		Version    string
		Prefix     string
		DecodePath string
	}

	Web struct {
		Config   *Config
		Info     Info
		Template *template.Template
		Static   fs.FS
	}
)

func (c *Config) Default() {
	if c.Enable == nil {
		v := true
		c.Enable = &v
	}
}

func (c *Config) Validate() error {
	if c.Dir == "" {
		return nil
	}
	stat, err := os.Stat(c.Dir)
	if err != nil {
		return errors.Wrapf(err, "failed to stat web dir %q", c.Dir)
	}
	if !stat.IsDir() {
		return errors.Newf("web dir %q is not a directory", c.Dir)
	}
	return nil
}

// Assets returns the directory holding index.html and static/.
func (c *Config) Assets() (fs.FS, error) {
	if c.Dir != "" {
		return os.DirFS(c.Dir), nil
	}
	return fs.Sub(assets, "assets")
}

//

func (wb *Web) Index(w http.ResponseWriter, r *http.Request) {
	buf := bytes.NewBuffer(nil)
	err := wb.Template.ExecuteTemplate(buf, TemplateNameIndex,
		http.NewTemplateContext(r).
			With(TemplateContextKeyName, wb.Info.Name).
			With(TemplateContextKeyVersion, wb.Info.Version).
			With(TemplateContextKeyPrefix, wb.Info.Prefix).
			With(TemplateContextKeyDecodePath, wb.Info.DecodePath),
	)
	if err != nil {
		panic(errors.Wrapf(err, "failed to render %q", TemplateNameIndex))
	}

	w.Header().Set(http.HeaderContentType, http.MimeTextHtml)
	_, _ = w.Write(buf.Bytes())
}

func (wb *Web) Register(r *http.Router) {
	if wb.Config.Enable != nil && !*wb.Config.Enable {
		return
	}

	r.HandleFunc("/", wb.Index).Methods(http.MethodGet, http.MethodHead)
	r.HandleFunc("/"+TemplateNameIndex, wb.Index).Methods(http.MethodGet, http.MethodHead)

	static, err := fs.Sub(wb.Static, "static")
	if err != nil {
		panic(err)
	}
	r.PathPrefix("/static/").
		Methods(http.MethodGet, http.MethodHead).
		Handler(http.StripPrefix(wb.Info.Prefix+"/static/", http.FileServer(http.FS(static))))
}

func New(c *Config, info Info) (*Web, error) {
	fsys, err := c.Assets()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open web assets")
	}

	tpl, err := template.ParseFS(fsys, "web", []string{TemplateNameIndex})
	if err != nil {
		return nil, err
	}

	return &Web{
		Config:   c,
		Info:     info,
		Template: tpl,
		Static:   fsys,
	}, nil
}
