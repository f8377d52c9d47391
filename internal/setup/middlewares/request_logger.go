package middlewares

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const RequestIdHeader = "X-Request-Id"

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

// RequestLogger tags each request with an id, reusing the caller's one when
// present, and logs it once the response is written.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestId := r.Header.Get(RequestIdHeader)
		if _, err := uuid.Parse(requestId); err != nil {
			requestId = uuid.NewString()
		}
		w.Header().Set(RequestIdHeader, requestId)

		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)

		log.Printf("[%s] %s %s %d %s", requestId, r.Method, r.URL.Path, recorder.status, time.Since(start))
	})
}
