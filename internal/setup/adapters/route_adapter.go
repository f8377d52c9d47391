package adapters

import (
	"io"
	"log"
	"net/http"

	presentationProtocols "github.com/anuntech/nutrisnap-backend/internal/presentation/protocols"
)

func AdaptRoute(controller presentationProtocols.Controller) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := controller.Handle(presentationProtocols.HttpRequest{
			Body:      r.Body,
			Header:    r.Header,
			UrlParams: r.URL.Query(),
			Req:       r,
		})

		for key, values := range response.Header {
			w.Header().Del(key)
			for _, value := range values {
				w.Header().Add(key, value)
			}
		}
		w.WriteHeader(response.StatusCode)

		if response.Body == nil {
			return
		}
		defer response.Body.Close()

		if _, err := io.Copy(w, response.Body); err != nil {
			log.Printf("error writing response: %v", err)
		}
	})
}
