package serverutils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"ai-hrchat-be/internal/repository/contract"
	"ai-hrchat-be/pkg/maps"
)

type Response[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

type ErrorBody struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Success: true,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(code int, message string) ErrorBody {
	return ErrorBody{
		Success: false,
		Code:    code,
		Message: message,
	}
}

var validate = validator.New()

// ValidateRequest runs struct-tag validation and flattens the violations
// into a single readable message.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			return err
		}

		var msgs []string
		for _, fieldErr := range err.(validator.ValidationErrors) {
			msgs = append(msgs, fmt.Sprintf("field '%s' failed on '%s'", fieldErr.Field(), fieldErr.Tag()))
		}
		return errors.New(strings.Join(msgs, "; "))
	}
	return nil
}

// ErrorHandlerMiddleware converts errors escaping the handlers into JSON
// error responses with sensible status codes.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code := fiber.StatusInternalServerError

		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &fiberErr):
			code = fiberErr.Code
		case errors.Is(err, contract.ErrSessionNotFound):
			code = fiber.StatusNotFound
		case errors.Is(err, maps.ErrCityNotFound),
			errors.Is(err, maps.ErrCityRequired),
			errors.Is(err, maps.ErrOriginRequired),
			errors.Is(err, maps.ErrDestinationRequired),
			errors.Is(err, maps.ErrInvalidIntent):
			code = fiber.StatusBadRequest
		case errors.Is(err, maps.ErrNoPlacesFound),
			errors.Is(err, maps.ErrDestinationNotFound),
			errors.Is(err, maps.ErrRouteNotFound):
			code = fiber.StatusNotFound
		}

		return ctx.Status(code).JSON(ErrorResponse(code, err.Error()))
	}
}
