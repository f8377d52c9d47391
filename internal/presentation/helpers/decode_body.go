package helpers

import (
	"encoding/json"
	"net/http"

	presentationProtocols "github.com/anuntech/nutrisnap-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
)

// DecodeBody reads and validates a JSON body. The returned response is nil
// when the body is usable.
func DecodeBody(r presentationProtocols.HttpRequest, validate *validator.Validate, body any) *presentationProtocols.HttpResponse {
	if r.Body == nil {
		return CreateErrorResponse("invalid body request", http.StatusBadRequest)
	}
	if err := json.NewDecoder(r.Body).Decode(body); err != nil {
		return CreateErrorResponse("invalid body request", http.StatusBadRequest)
	}

	if err := validate.Struct(body); err != nil {
		return CreateErrorResponse(GetErrorMessages(validate, err), http.StatusUnprocessableEntity)
	}

	return nil
}
