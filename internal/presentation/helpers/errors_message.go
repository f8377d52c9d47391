package helpers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/anuntech/nutrisnap-backend/internal/domain/nutrition"
	presentationProtocols "github.com/anuntech/nutrisnap-backend/internal/presentation/protocols"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

func GetErrorMessages(validate *validator.Validate, errs error) string {
	var validationErrors validator.ValidationErrors
	if validate == nil || !errors.As(errs, &validationErrors) {
		return errs.Error()
	}

	eng := en.New()
	uni := ut.New(eng, eng)
	trans, _ := uni.GetTranslator("en")
	en_translations.RegisterDefaultTranslations(validate, trans)

	var errorMessages []string
	for _, e := range validationErrors {
		errorMessages = append(errorMessages, e.Translate(trans))
	}
	return strings.Join(errorMessages, ", ")
}

// DomainErrorResponse maps errors from the nutrition aggregates to a status.
func DomainErrorResponse(validate *validator.Validate, err error) *presentationProtocols.HttpResponse {
	var validationErrors validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrors):
		return CreateErrorResponse(GetErrorMessages(validate, err), http.StatusUnprocessableEntity)
	case errors.Is(err, nutrition.ErrEmptyRecipeName),
		errors.Is(err, nutrition.ErrNonPositiveQuantity),
		errors.Is(err, nutrition.ErrInvalidCategory):
		return CreateErrorResponse(err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, nutrition.ErrRecipeNotFound),
		errors.Is(err, nutrition.ErrFoodNotFound):
		return CreateErrorResponse(err.Error(), http.StatusNotFound)
	case errors.Is(err, nutrition.ErrFoodNotCustom):
		return CreateErrorResponse(err.Error(), http.StatusForbidden)
	}
	return CreateErrorResponse(err.Error(), http.StatusInternalServerError)
}
