package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/dwikikusuma/minicommerce/pkg/apperr"
)

// ErrorBody is the wire shape every service uses for failures.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, err error) {
	kind := apperr.KindOf(err)
	WriteJSON(w, StatusFromKind(kind), ErrorBody{
		Code:    kind.String(),
		Message: apperr.MessageOf(err),
	})
}

func DecodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperr.Wrap(apperr.InvalidArgument, "invalid request body", err)
	}
	return nil
}

func StatusFromKind(kind apperr.Kind) int {
	switch kind {
	case apperr.InvalidArgument:
		return http.StatusBadRequest
	case apperr.Unauthenticated:
		return http.StatusUnauthorized
	case apperr.NotFound:
		return http.StatusNotFound
	case apperr.Unavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// KindFromStatus translates a downstream HTTP status back into an error
// kind. Timeout-ish statuses count as Unavailable.
func KindFromStatus(status int) apperr.Kind {
	switch status {
	case http.StatusBadRequest:
		return apperr.InvalidArgument
	case http.StatusUnauthorized:
		return apperr.Unauthenticated
	case http.StatusNotFound:
		return apperr.NotFound
	case http.StatusServiceUnavailable, http.StatusGatewayTimeout, http.StatusBadGateway:
		return apperr.Unavailable
	default:
		return apperr.Internal
	}
}
