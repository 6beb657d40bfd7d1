// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is meant for [chi.Mux.MethodNotAllowed]. It answers 404
// instead of chi's 405 when the matched route does not handle the method, so
// unsupported methods cannot probe which routes exist.
//
// Routes are looked up by exact pattern against r.URL.Path, walking into
// mounted sub-routers. Parameterised segments are not expanded.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		route, found := findRoute(router.Routes(), "", r.URL.Path)
		if !found {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		if _, ok := route.Handlers[r.Method]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}

func findRoute(routes []chi.Route, prefix, path string) (chi.Route, bool) {
	for _, route := range routes {
		pattern := prefix + route.Pattern
		if route.SubRoutes != nil {
			sub := prefix + trimWildcard(route.Pattern)
			if found, ok := findRoute(route.SubRoutes.Routes(), sub, path); ok {
				return found, true
			}
			continue
		}
		if pattern == path {
			return route, true
		}
	}
	return chi.Route{}, false
}

func trimWildcard(pattern string) string {
	if n := len(pattern); n >= 2 && pattern[n-2:] == "/*" {
		return pattern[:n-2]
	}
	return pattern
}
