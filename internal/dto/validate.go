package dto

import (
	"fmt"

	"github.com/CesarBerbel/personal_finance_app/internal/apperrors"
	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance; validator instances cache struct
// metadata, so a single one is reused across requests.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate runs struct-tag validation on a request DTO and maps failures to
// apperrors.ErrValidation so callers can distinguish user-correctable input
// errors from everything else.
func Validate(req any) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	return nil
}
