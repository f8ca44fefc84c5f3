package muxx

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Abraxas-365/faultable/faultx"
)

// probeMethods is the method set tried when computing an Allow header,
// already in the order the header should list them.
var probeMethods = []string{
	http.MethodDelete,
	http.MethodGet,
	http.MethodHead,
	http.MethodOptions,
	http.MethodPatch,
	http.MethodPost,
	http.MethodPut,
}

// Install points the router's NotFoundHandler and MethodNotAllowedHandler at
// fault renderers. The 405 handler fills the Allow header with every method
// the router would accept for the request path.
func Install(r *mux.Router) {
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		faultx.NotFound.New().ServeHTTP(w, req)
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		faultx.MethodNotAllowed.New(faultx.WithAllowed(Allowed(r, req)...)).ServeHTTP(w, req)
	})
}

// Allowed returns the methods the router accepts for the request's path, in
// ascending order. It probes by re-matching a copy of the request per
// candidate method.
func Allowed(r *mux.Router, req *http.Request) []string {
	var methods []string
	for _, method := range probeMethods {
		probe := req.Clone(req.Context())
		probe.Method = method

		var match mux.RouteMatch
		if r.Match(probe, &match) && match.MatchErr == nil {
			methods = append(methods, method)
		}
	}
	return methods
}
