package middlewares

import (
	"encoding/json"
	"log"
	"net/http"
	"runtime/debug"
)

func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("CRITICAL ERROR: %v\n", err)
				stack := debug.Stack()
				log.Printf("Stack trace: %s\n", stack)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)

				errorResponse := map[string]string{
					"error": "Sorry, something unexpected happened. Please try again in a moment.",
				}

				json.NewEncoder(w).Encode(errorResponse)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
