package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"

	presentationProtocols "github.com/anuntech/nutrisnap-backend/internal/presentation/protocols"
)

func CreateResponse(body any, statusCode int) *presentationProtocols.HttpResponse {
	header := http.Header{}
	if body == nil {
		return &presentationProtocols.HttpResponse{
			Body:       http.NoBody,
			StatusCode: statusCode,
			Header:     header,
		}
	}

	data, err := json.Marshal(body)
	if err != nil {
		log.Printf("error encoding response body: %v", err)
		data, statusCode = []byte(`{"error":"error encoding response"}`), http.StatusInternalServerError
	}

	header.Set("Content-Type", "application/json")
	return &presentationProtocols.HttpResponse{
		Body:       io.NopCloser(bytes.NewReader(data)),
		StatusCode: statusCode,
		Header:     header,
	}
}

func CreateFileResponse(data []byte, contentType string, fileName string) *presentationProtocols.HttpResponse {
	header := http.Header{}
	header.Set("Content-Type", contentType)
	header.Set("Content-Disposition", `attachment; filename="`+fileName+`"`)

	return &presentationProtocols.HttpResponse{
		Body:       io.NopCloser(bytes.NewReader(data)),
		StatusCode: http.StatusOK,
		Header:     header,
	}
}

func CreateErrorResponse(message string, statusCode int) *presentationProtocols.HttpResponse {
	return CreateResponse(&presentationProtocols.ErrorResponse{
		Error: message,
	}, statusCode)
}
