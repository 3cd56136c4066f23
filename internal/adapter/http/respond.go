package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"lcatv-backend/internal/core/port"
)

// writeJSON encodes v as the response body with the given status.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError sends a JSON error body matching the dashboard's expectations.
func (h *Handler) writeError(w http.ResponseWriter, status int, detail string) {
	h.writeJSON(w, status, map[string]string{"detail": detail})
}

// respondError maps an error to a response: identifier problems are client
// errors, validation failures carry a per-field breakdown, and anything
// else is a server error logged without masking.
func (h *Handler) respondError(w http.ResponseWriter, err error) {
	var verrs validator.ValidationErrors
	switch {
	case errors.Is(err, port.ErrNotFound):
		h.writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, port.ErrInvalidID), errors.Is(err, errBadJSON):
		h.writeError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &verrs):
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
		h.writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"detail": "validation failed",
			"errors": fields,
		})
	default:
		h.logger.Error("request failed", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// decodeAndValidate decodes the request body into v and runs the payload
// validator on it.
func (h *Handler) decodeAndValidate(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errBadJSON
	}
	return h.validate.Struct(v)
}

// errBadJSON marks an undecodable request body; respondError answers it
// with 400.
var errBadJSON = errors.New("invalid JSON body")
