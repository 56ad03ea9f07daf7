package serverutils

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs struct tag validation. The returned error is
// validator.ValidationErrors, which ErrorHandlerMiddleware maps to 400.
func ValidateRequest(req interface{}) error {
	return validate.Struct(req)
}

func formatValidationErrors(errs validator.ValidationErrors) map[string]string {
	out := make(map[string]string, len(errs))
	for _, fe := range errs {
		if fe.Param() != "" {
			out[fe.Field()] = fmt.Sprintf("failed on '%s=%s'", fe.Tag(), fe.Param())
		} else {
			out[fe.Field()] = fmt.Sprintf("failed on '%s'", fe.Tag())
		}
	}
	return out
}
