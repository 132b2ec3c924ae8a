package helpers

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation"
)

// Validator is implemented by request DTOs that support validation.
type Validator interface {
	Validate() error
}

// DecodeAndValidate decodes the request body into dest (with DisallowUnknownFields)
// and, if dest implements Validator, runs Validate(). On decode or validation failure
// it writes a 400 ApiError and returns false; otherwise returns true.
// Callers should return immediately when DecodeAndValidate returns false.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dest any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		WriteValidationError(w, "malformed request body: "+err.Error(), nil)
		return false
	}
	if v, ok := dest.(Validator); ok {
		if err := v.Validate(); err != nil {
			WriteValidationError(w, err.Error(), FieldErrors(err))
			return false
		}
	}
	return true
}

// FieldErrors flattens ozzo validation errors into "field: message" strings sorted by field.
func FieldErrors(err error) []string {
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(verrs))
	for field, fe := range verrs {
		out = append(out, field+": "+fe.Error())
	}
	sort.Strings(out)
	return out
}
