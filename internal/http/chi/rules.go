package chi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/document"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/rule"
)

type ruleRequest struct {
	TriggerType string            `json:"trigger_type"`
	Condition   document.Document `json:"condition"`
	Action      document.Document `json:"action"`
}

type ruleActiveRequest struct {
	Active *bool `json:"active"`
}

type ruleResponse struct {
	ID          string            `json:"id"`
	TenantID    string            `json:"tenant_id"`
	TriggerType string            `json:"trigger_type"`
	EventType   string            `json:"event_type"`
	Condition   document.Document `json:"condition"`
	Action      document.Document `json:"action"`
	Active      bool              `json:"active"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

func toRuleResponse(r rule.Rule) ruleResponse {
	return ruleResponse{
		ID:          r.ID,
		TenantID:    r.TenantID,
		TriggerType: r.TriggerType.String(),
		EventType:   r.EventType(),
		Condition:   r.Condition,
		Action:      r.Action,
		Active:      r.Active,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func getRules(rules rule.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		all, err := rules.List(r.Context(), chi.URLParam(r, "tenant_id"))
		if err != nil {
			writeError(w, err)
			return
		}
		result := []ruleResponse{}
		for _, ru := range all {
			result = append(result, toRuleResponse(ru))
		}
		writeJSON(w, http.StatusOK, result)
	})
}

func postRule(rules rule.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var rr ruleRequest
		if err := json.NewDecoder(r.Body).Decode(&rr); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		created, err := rules.CreateRule(r.Context(), chi.URLParam(r, "tenant_id"), rule.TriggerType(rr.TriggerType), rr.Condition, rr.Action)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toRuleResponse(created))
	})
}

func putRuleActive(rules rule.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var ar ruleActiveRequest
		if err := json.NewDecoder(r.Body).Decode(&ar); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if ar.Active == nil {
			http.Error(w, "active is required", http.StatusBadRequest)
			return
		}
		updated, err := rules.SetActive(r.Context(), chi.URLParam(r, "tenant_id"), chi.URLParam(r, "id"), *ar.Active)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toRuleResponse(updated))
	})
}
