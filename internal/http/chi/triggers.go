package chi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/document"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/rule"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/trigger"
)

/* HTTP layer DTOs for trigger notifications
 * Separate from domain entities to avoid leaking internal structure
 */

type triggerRequest struct {
	TriggerType string            `json:"trigger_type"`
	Context     document.Document `json:"context"`
}

type triggerResponse struct {
	EventIDs []string `json:"event_ids"`
	Errors   string   `json:"errors,omitempty"`
}

/* postTrigger handles POST /v1/tenants/{tenant_id}/triggers
 * Delivery happens later, so the response is 202 with the ids of the enqueued events.
 * When only some matches were stored the response is 207 and carries the errors.
 */
func postTrigger(triggers trigger.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var tr triggerRequest
		if err := json.NewDecoder(r.Body).Decode(&tr); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if tr.TriggerType == "" {
			http.Error(w, "trigger_type is required", http.StatusBadRequest)
			return
		}

		events, err := triggers.Notify(r.Context(), chi.URLParam(r, "tenant_id"), rule.TriggerType(tr.TriggerType), tr.Context)
		if err != nil && len(events) == 0 {
			writeError(w, err)
			return
		}

		result := triggerResponse{EventIDs: []string{}}
		for _, ev := range events {
			result.EventIDs = append(result.EventIDs, ev.ID)
		}
		if err != nil {
			result.Errors = err.Error()
			writeJSON(w, http.StatusMultiStatus, result)
			return
		}
		writeJSON(w, http.StatusAccepted, result)
	})
}
