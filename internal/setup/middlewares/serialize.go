package middlewares

import (
	"net/http"
	"sync"
)

// Serialize lets one request at a time reach next. The nutrition aggregates
// are not safe for concurrent use.
func Serialize(mu *sync.Mutex, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()

		next.ServeHTTP(w, r)
	})
}
