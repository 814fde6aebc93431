package http

import (
	"fmt"
	"runtime/debug"

	"github.com/corpix/keypad/errors"
)

func Recover() Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(w ResponseWriter, r *Request) {
			defer func() {
				if err := recover(); err != nil {
					var e error
					switch typedErr := err.(type) {
					case error:
						e = typedErr
					default:
						e = errors.New(fmt.Sprint(err))
					}

					l := RequestLogGet(r)
					l.Error().
						Err(e).
						Str("stack", string(debug.Stack())).
						Msg("panic recover")

					Error(w, StatusText(StatusInternalServerError), StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
