package http

import (
	"strings"

	"github.com/gorilla/mux"

	"github.com/corpix/keypad/log"
)

type (
	Router         = mux.Router
	RouteWalkFn    = mux.WalkFunc
	Route          = mux.Route
	RouteMatch     = mux.RouteMatch
	MiddlewareFunc = mux.MiddlewareFunc
)

var (
	SetURLVars   = mux.SetURLVars
	GetURLVars   = mux.Vars
	CurrentRoute = mux.CurrentRoute
)

func NewRouter(c *Config) *Router {
	r := mux.NewRouter()
	if c.Prefix != "" {
		r = r.PathPrefix(c.Prefix).Subrouter()
	}
	return r
}

// LogRoutes writes every registered route with its methods at debug level.
func LogRoutes(r *Router) {
	_ = r.Walk(func(route *Route, router *Router, ancestors []*Route) error {
		path, err := route.GetPathTemplate()
		if err != nil {
			path, err = route.GetPathRegexp()
			if err != nil {
				return nil
			}
		}
		methods, _ := route.GetMethods()
		log.Debug().
			Str("path", path).
			Str("methods", strings.Join(methods, ",")).
			Msg("route")
		return nil
	})
}
