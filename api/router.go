package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/maxpoletaev/kivimon/api/handler"
	"github.com/maxpoletaev/kivimon/metrics"
)

// instrument records request metrics labelled with the matched route pattern.
func instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metrics.Instrument(r.Method+" "+routePattern(r), next).ServeHTTP(w, r)
	})
}

func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || rctx.Routes == nil {
		return "unmatched"
	}

	tctx := chi.NewRouteContext()
	if rctx.Routes.Match(tctx, r.Method, r.URL.Path) {
		return tctx.RoutePattern()
	}

	return "unmatched"
}

func CreateRouter(board Board, inbox Inbox) *chi.Mux {
	r := chi.NewRouter()
	r.Use(instrument)

	handler.NewNodesHandler(board).Register(r)
	handler.NewNotificationsHandler(inbox).Register(r)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	return r
}
