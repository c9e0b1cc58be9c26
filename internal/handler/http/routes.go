package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router from the endpoints table.
//
// Every route is mounted behind the identify middleware so that a bearer
// token, when present, resolves to a user identity regardless of whether the
// endpoint is gated. Gated endpoints additionally pass through requireUser.
// A table entry without a matching handler is a wiring bug and panics here,
// at startup, instead of surfacing as a dead route in production.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	for name, ep := range endpoints {
		handlerFunc := h.resolveHandler(name)
		if handlerFunc == nil {
			panic(fmt.Sprintf("endpoint %q is registered without a handler", name))
		}

		var route http.Handler = handlerFunc
		if ep.authRequired {
			route = h.requireUser(route)
		}

		router.Method(ep.method, ep.path, h.identify(route))
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
