package http

import (
	"github.com/corpix/keypad/template"
)

const (
	TemplateContextKeyRequest   template.ContextKey = "request"
	TemplateContextKeyRequestId template.ContextKey = "requestId"
)

func NewTemplateContext(r *Request) template.Context {
	return template.NewContext().
		With(TemplateContextKeyRequest, r).
		With(TemplateContextKeyRequestId, RequestIdGet(r))
}
