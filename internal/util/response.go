package util

import (
	"runtime/debug"

	"github.com/fadilmartias/interview-prep/internal/config"
	"github.com/fadilmartias/interview-prep/internal/response"
	"github.com/gofiber/fiber/v2"
)

type SuccessResponseFormat struct {
	Code    int
	Message string
	Data    any
}

type ErrorResponseFormat struct {
	Code    int
	Message string
	Kind    string
}

// SuccessResponse writes the standard success envelope.
func SuccessResponse(c *fiber.Ctx, params SuccessResponseFormat) error {
	body := response.Success{
		Success: true,
		Message: params.Message,
		Data:    params.Data,
	}
	code := params.Code
	if code == 0 {
		code = fiber.StatusOK
	}
	return c.Status(code).JSON(body)
}

// ErrorResponse writes the standard error envelope. Diagnostics from errs are
// attached only outside production.
func ErrorResponse(c *fiber.Ctx, params ErrorResponseFormat, errs ...error) error {
	body := response.Error{
		Success: false,
		Message: params.Message,
		Kind:    params.Kind,
	}
	if !config.LoadAppConfig().IsProduction() && len(errs) > 0 && errs[0] != nil {
		body.DevMessage = errs[0].Error()
		body.Trace = string(debug.Stack())
	}

	code := params.Code
	if code == 0 {
		code = fiber.StatusInternalServerError
	}
	return c.Status(code).JSON(body)
}
