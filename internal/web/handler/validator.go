package handler

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type (
	// ErrorResponse represents a single failed validation.
	ErrorResponse struct {
		Error       bool
		FailedField string
		Tag         string
		Value       any
	}

	// XValidator plugs go-playground/validator into fiber's binder.
	XValidator struct {
		validator *validator.Validate
	}

	// GlobalErrorHandlerResp is the json body of every error response.
	GlobalErrorHandlerResp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
)

// NewValidator returns a validator ready to be set as fiber.Config.StructValidator.
func NewValidator() *XValidator {
	return &XValidator{validator: validator.New()}
}

// Errors validates data and returns one ErrorResponse per failed field.
func (v *XValidator) Errors(data any) []ErrorResponse {
	var validationErrors []ErrorResponse

	err := v.validator.Struct(data)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return []ErrorResponse{{Error: true, Tag: err.Error()}}
	}

	for _, fe := range errs {
		validationErrors = append(validationErrors, ErrorResponse{
			Error:       true,
			FailedField: fe.Field(),
			Tag:         fe.Tag(),
			Value:       fe.Value(),
		})
	}

	return validationErrors
}

// Validate implements fiber.StructValidator. Failures become a 400 fiber.Error.
func (v *XValidator) Validate(out any) error {
	errs := v.Errors(out)
	if len(errs) == 0 {
		return nil
	}

	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, fmt.Sprintf("[%s]: '%v' | needs to implement '%s'", e.FailedField, e.Value, e.Tag))
	}

	return fiber.NewError(fiber.StatusBadRequest, strings.Join(msgs, " and "))
}

// ErrorHandler renders every error as GlobalErrorHandlerResp. Errors that are not a
// *fiber.Error are logged and answered with 500.
func ErrorHandler(c fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := fiber.ErrInternalServerError.Message

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
	} else {
		log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	}

	return c.Status(code).JSON(GlobalErrorHandlerResp{
		Success: false,
		Message: msg,
	})
}
