package chi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/document"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/event"
)

type eventResponse struct {
	ID            string            `json:"id"`
	TenantID      string            `json:"tenant_id"`
	EventType     string            `json:"event_type"`
	Payload       document.Document `json:"payload"`
	Status        string            `json:"status"`
	RetryCount    int               `json:"retry_count"`
	LastError     string            `json:"last_error,omitempty"`
	NextAttemptAt *time.Time        `json:"next_attempt_at,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

func toEventResponse(ev event.OutboundEvent) eventResponse {
	result := eventResponse{
		ID:         ev.ID,
		TenantID:   ev.TenantID,
		EventType:  ev.EventType,
		Payload:    ev.Payload,
		Status:     ev.Status.String(),
		RetryCount: ev.RetryCount,
		LastError:  ev.LastError,
		CreatedAt:  ev.CreatedAt,
		UpdatedAt:  ev.UpdatedAt,
	}
	if !ev.NextAttemptAt.IsZero() {
		next := ev.NextAttemptAt
		result.NextAttemptAt = &next
	}
	return result
}

// getTenantEvents handles GET /v1/tenants/{tenant_id}/events?status=failed&limit=50
func getTenantEvents(events event.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var status event.Status
		if raw := r.URL.Query().Get("status"); raw != "" {
			status = event.NewStatus(raw)
			if status == 0 {
				http.Error(w, "invalid status: "+raw, http.StatusBadRequest)
				return
			}
		}

		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				http.Error(w, "invalid limit: "+raw, http.StatusBadRequest)
				return
			}
			limit = n
		}

		all, err := events.ListByTenant(r.Context(), chi.URLParam(r, "tenant_id"), status, limit)
		if err != nil {
			writeError(w, err)
			return
		}
		result := []eventResponse{}
		for _, ev := range all {
			result = append(result, toEventResponse(ev))
		}
		writeJSON(w, http.StatusOK, result)
	})
}

func getEvent(events event.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ev, err := events.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toEventResponse(ev))
	})
}
