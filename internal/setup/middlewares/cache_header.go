package middlewares

import "net/http"

// NoCacheHeader keeps clients from caching responses; plate and recipe
// state changes on every mutation.
func NoCacheHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}
