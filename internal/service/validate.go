package service

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	apperrors "studentboard/internal/errors"
)

var validate = validator.New()

// decodeFields round-trips a loosely typed request body into a typed
// request struct and runs struct validation on the result. Unknown keys
// are ignored; validation failures map to the client-error taxonomy.
func decodeFields(fields map[string]interface{}, dst interface{}) error {
	payload, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if err := json.Unmarshal(payload, dst); err != nil {
		return fmt.Errorf("%w: malformed field value", apperrors.ErrValidation)
	}
	if err := validate.Struct(dst); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return nil
}

// filterColumns keeps only the allowed column keys of a partial update.
func filterColumns(fields map[string]interface{}, allowed map[string]bool) map[string]interface{} {
	out := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		if allowed[k] {
			out[k] = v
		}
	}
	return out
}
