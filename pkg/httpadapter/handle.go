package httpadapter

import (
	"encoding/json"
	"net/http"
)

// HttpHandle pairs a ServeMux pattern ("GET /health") with its handler.
type HttpHandle struct {
	Path    string
	Handler func(w http.ResponseWriter, r *http.Request)
}

func Register(mux *http.ServeMux, routes ...HttpHandle) {
	for _, route := range routes {
		mux.HandleFunc(route.Path, route.Handler)
	}
}

// WriteJSON writes v with the given status. Encoding errors are returned for logging only,
// the status line is already sent at that point.
func WriteJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}
