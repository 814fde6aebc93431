package web

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corpix/keypad/http"
)

func newServer(t *testing.T, c *Config) *http.Http {
	t.Helper()

	c.Default()
	require.NoError(t, c.Validate())

	hc := &http.Config{}
	hc.Default()
	h := http.New(hc)

	wb, err := New(c, Info{Name: "keypad", Version: "1.2.3", DecodePath: "/decode"})
	require.NoError(t, err)
	wb.Register(h.Router)

	return h
}

func get(h *http.Http, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestIndex(t *testing.T) {
	h := newServer(t, &Config{})

	w := get(h, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, http.MimeTextHtml, w.Header().Get(http.HeaderContentType))
	assert.Contains(t, w.Body.String(), `data-endpoint="/decode"`)
	assert.Contains(t, w.Body.String(), "<title>Keypad</title>")
	assert.Contains(t, w.Body.String(), "1.2.3")
}

func TestStatic(t *testing.T) {
	h := newServer(t, &Config{})

	w := get(h, "/static/app.js")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "JSON.stringify")

	w = get(h, "/static/missing.js")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDisabled(t *testing.T) {
	disabled := false
	h := newServer(t, &Config{Enable: &disabled})

	w := get(h, "/")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "static"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, TemplateNameIndex), []byte(`<p>{{ .name | upper }}</p>`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "static", "a.txt"), []byte("local"), 0o644))

	h := newServer(t, &Config{Dir: dir})

	w := get(h, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "<p>KEYPAD</p>", w.Body.String())

	w = get(h, "/static/a.txt")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "local", w.Body.String())
}

func TestConfigValidate(t *testing.T) {
	c := &Config{Dir: filepath.Join(t.TempDir(), "missing")}
	assert.Error(t, c.Validate())
}
