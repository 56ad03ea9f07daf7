package serverutils

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AppError carries the HTTP status and the message shown to the visitor.
type AppError struct {
	Code      int
	Message   string
	ErrorType string
	Details   interface{}
	Err       error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewBadRequestError(message string) *AppError {
	return &AppError{Code: fiber.StatusBadRequest, Message: message, ErrorType: "bad_request"}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{Code: fiber.StatusUnauthorized, Message: message, ErrorType: "unauthorized"}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Code: fiber.StatusNotFound, Message: message, ErrorType: "not_found"}
}

// NewInternalError hides err from the client but keeps it for logging.
func NewInternalError(message string, err error) *AppError {
	return &AppError{Code: fiber.StatusInternalServerError, Message: message, ErrorType: "internal", Err: err}
}

// ErrorHandlerMiddleware renders errors returned by handlers as ErrorResponse.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}
		resp := toErrorResponse(err)
		if resp.Code >= fiber.StatusInternalServerError {
			log.Printf("[ERROR] %s %s: %v", ctx.Method(), ctx.Path(), err)
		}
		return ctx.Status(resp.Code).JSON(resp)
	}
}

func toErrorResponse(err error) ErrorResponse {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return ErrorResponse{
			Code:      appErr.Code,
			Message:   appErr.Message,
			ErrorType: appErr.ErrorType,
			Errors:    appErr.Details,
		}
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return ErrorResponse{
			Code:      fiber.StatusBadRequest,
			Message:   "Validation failed",
			ErrorType: "validation",
			Errors:    formatValidationErrors(validationErrs),
		}
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return ErrorResponse{Code: fiberErr.Code, Message: fiberErr.Message}
	}

	return ErrorResponse{
		Code:      fiber.StatusInternalServerError,
		Message:   "Internal server error",
		ErrorType: "internal",
	}
}
