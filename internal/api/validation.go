package api

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"speaksmart/internal/model"
)

// RegisterValidations adds the "categoria" tag. With strict off every value passes,
// so storage keeps accepting free-text categories.
func RegisterValidations(v *validator.Validate, strict bool) error {
	return v.RegisterValidation("categoria", func(fl validator.FieldLevel) bool {
		if !strict {
			return true
		}
		return model.IsCategory(fl.Field().String())
	})
}

// IsCategoryError reports whether err failed only on the categoria tag.
func IsCategoryError(err error) bool {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return false
	}
	for _, fe := range verrs {
		if fe.Tag() != "categoria" {
			return false
		}
	}
	return true
}

// ValidationMessage picks the client message for a failed c.Validate call.
func ValidationMessage(err error, required string) string {
	if IsCategoryError(err) {
		return MsgUnknownCategory
	}
	return required
}
