// Package validator adapts go-playground/validator to echo.
package validator

import (
	"strings"

	"carebridge/internal/domain/entity"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the request validator with the domain tags registered:
// action_kind, action_status, permission and ad_event.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	_ = validate.RegisterValidation("action_kind", func(fl validator.FieldLevel) bool {
		return entity.ActionKind(fl.Field().String()).IsValid()
	})
	_ = validate.RegisterValidation("action_status", func(fl validator.FieldLevel) bool {
		status := entity.ActionStatus(fl.Field().String())

		return status == entity.ActionStatusPlayed || status == entity.ActionStatusViewed
	})
	_ = validate.RegisterValidation("permission", func(fl validator.FieldLevel) bool {
		return entity.PermissionStatus(fl.Field().String()).IsValid()
	})
	_ = validate.RegisterValidation("ad_event", func(fl validator.FieldLevel) bool {
		return entity.AdEventType(fl.Field().String()).IsValid()
	})

	return &CustomValidator{validate: validate}
}

// Validate validates i and flattens field errors into one message.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		messages = append(messages, fieldErr.Field()+" failed on "+fieldErr.Tag())
	}

	return &Error{message: strings.Join(messages, "; ")}
}

// Error is returned by Validate for invalid requests.
type Error struct {
	message string
}

func (e *Error) Error() string {
	return e.message
}
