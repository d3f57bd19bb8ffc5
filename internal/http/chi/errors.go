package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/dispatch"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/event"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/payload"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/rule"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/subscription"
)

// errorStatus maps domain errors to HTTP status codes
func errorStatus(err error) int {
	switch {
	case errors.Is(err, rule.ErrTenantRequired),
		errors.Is(err, event.ErrTenantRequired),
		errors.Is(err, subscription.ErrTenantRequired),
		errors.Is(err, rule.ErrInvalidTrigger),
		errors.Is(err, payload.ErrInvalidEventType),
		errors.Is(err, subscription.ErrInvalidURL):
		return http.StatusBadRequest
	case errors.Is(err, rule.ErrNotFound),
		errors.Is(err, subscription.ErrNotFound),
		errors.Is(err, event.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, dispatch.ErrPassInProgress):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), errorStatus(err))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
