package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// BaseResponse is the envelope every endpoint returns.
type BaseResponse[T any] struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

func SuccessResponse[T any](message string, data T) BaseResponse[T] {
	return BaseResponse[T]{
		Success: true,
		Code:    fiber.StatusOK,
		Message: message,
		Data:    data,
	}
}

// ApiError carries an HTTP status through the service layer so the error
// handler can map it without string matching.
type ApiError struct {
	Status  int
	Message string
}

func (e *ApiError) Error() string {
	return e.Message
}

func NewApiError(status int, message string) *ApiError {
	return &ApiError{Status: status, Message: message}
}

func NotFound(message string) *ApiError {
	return NewApiError(fiber.StatusNotFound, message)
}

func BadRequest(message string) *ApiError {
	return NewApiError(fiber.StatusBadRequest, message)
}

func Forbidden(message string) *ApiError {
	return NewApiError(fiber.StatusForbidden, message)
}

func Unauthorized(message string) *ApiError {
	return NewApiError(fiber.StatusUnauthorized, message)
}

// ErrorHandlerMiddleware converts errors escaping the controllers into the
// BaseResponse envelope. 401s always pass through with their own status so
// the client's forced-logout path fires.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		status := fiber.StatusInternalServerError
		message := err.Error()

		var apiErr *ApiError
		var fiberErr *fiber.Error
		if errors.As(err, &apiErr) {
			status = apiErr.Status
			message = apiErr.Message
		} else if errors.As(err, &fiberErr) {
			status = fiberErr.Code
			message = fiberErr.Message
		}

		return ctx.Status(status).JSON(BaseResponse[any]{
			Success: false,
			Code:    status,
			Message: message,
			Data:    nil,
		})
	}
}
