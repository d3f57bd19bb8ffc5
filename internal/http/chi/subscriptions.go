package chi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/subscription"
)

type subscriptionRequest struct {
	EventType string `json:"event_type"`
	TargetURL string `json:"target_url"`
	Secret    string `json:"secret"`
}

/* The secret is only echoed back by the create call,
 * listings never expose it
 */
type subscriptionResponse struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	EventType string    `json:"event_type"`
	TargetURL string    `json:"target_url"`
	Secret    string    `json:"secret,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toSubscriptionResponse(s subscription.Subscription) subscriptionResponse {
	return subscriptionResponse{
		ID:        s.ID,
		TenantID:  s.TenantID,
		EventType: s.EventType,
		TargetURL: s.TargetURL,
		Active:    s.Active,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func getSubscriptions(subs subscription.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		all, err := subs.List(r.Context(), chi.URLParam(r, "tenant_id"))
		if err != nil {
			writeError(w, err)
			return
		}
		result := []subscriptionResponse{}
		for _, s := range all {
			result = append(result, toSubscriptionResponse(s))
		}
		writeJSON(w, http.StatusOK, result)
	})
}

func postSubscription(subs subscription.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var sr subscriptionRequest
		if err := json.NewDecoder(r.Body).Decode(&sr); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		created, err := subs.Create(r.Context(), chi.URLParam(r, "tenant_id"), sr.EventType, sr.TargetURL, sr.Secret)
		if err != nil {
			writeError(w, err)
			return
		}
		result := toSubscriptionResponse(created)
		result.Secret = created.Secret
		writeJSON(w, http.StatusCreated, result)
	})
}

func deleteSubscription(subs subscription.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		deactivated, err := subs.Deactivate(r.Context(), chi.URLParam(r, "tenant_id"), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toSubscriptionResponse(deactivated))
	})
}
