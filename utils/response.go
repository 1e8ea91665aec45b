package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Data    any          `json:"data,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func Respond(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Fail(c *fiber.Ctx, status int, message string, errs ...FieldError) error {
	return c.Status(status).JSON(Response{
		Success: false,
		Message: message,
		Errors:  errs,
	})
}

// HandleError renders err; anything that is not an *AppError becomes a 500.
func HandleError(c *fiber.Ctx, err error) error {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		appErr = Internal(err).(*AppError)
	}

	fields := logrus.Fields{
		"status": appErr.Status,
		"code":   appErr.Code,
		"method": c.Method(),
		"path":   c.Path(),
	}
	if appErr.Err != nil {
		fields["error"] = appErr.Err.Error()
	}
	if appErr.Status >= fiber.StatusInternalServerError {
		Logger.WithFields(fields).Error(appErr.Message)
	} else {
		Logger.WithFields(fields).Debug(appErr.Message)
	}

	return Fail(c, appErr.Status, appErr.Message)
}
