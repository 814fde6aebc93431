package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corpix/keypad/api"
	"github.com/corpix/keypad/http"
)

func TestConfigDefault(t *testing.T) {
	c := &Config{}
	c.Default()
	require.NoError(t, c.Validate())

	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, http.DefaultAddress, c.Http.Address)
	assert.Equal(t, api.DefaultPath, c.Api.Path)
	assert.EqualValues(t, api.DefaultMaxBodySize, c.Api.MaxBodySize)
	assert.True(t, *c.Web.Enable)
}

func TestConfigValidate(t *testing.T) {
	c := &Config{Api: &api.Config{Path: "decode"}}
	c.Default()
	assert.Error(t, c.Validate())
}
