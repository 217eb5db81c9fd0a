package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/resfinder/resfinder/internal/apperr"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps core error kinds to their HTTP status. Unclassified
// errors (storage failures) surface as opaque 500s.
func writeError(w http.ResponseWriter, err error) {
	status := apperr.StatusOf(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal error"
	}
	writeJSON(w, status, errorResponse{Error: msg})
}

// decode parses a JSON request body. Malformed bodies degrade to
// InvalidInput rather than a 500.
func decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.Invalid("Body is invalid json")
	}
	return nil
}

// decodeValidate additionally enforces `validate` tags on dst.
func decodeValidate(r *http.Request, dst any) error {
	if err := decode(r, dst); err != nil {
		return err
	}
	if err := validate.Struct(dst); err != nil {
		return apperr.Invalid("Required fields missing")
	}
	return nil
}
