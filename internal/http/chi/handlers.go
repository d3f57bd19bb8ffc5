package chi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/dispatch"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/event"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/rule"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/subscription"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/trigger"
)

// Services are the use cases exposed over HTTP; Metrics is optional
type Services struct {
	Triggers      trigger.UseCase
	Rules         rule.UseCase
	Subscriptions subscription.UseCase
	Events        event.UseCase
	Dispatcher    dispatch.UseCase
	Metrics       http.Handler
}

// Handlers sets up the admin API routes
func Handlers(ctx context.Context, s Services) *chi.Mux {
	logger := httplog.NewLogger("workflow-webhooks", httplog.Options{
		JSON: true,
	})

	r := chi.NewRouter()
	r.Use(httplog.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	if s.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.Metrics)
	}

	r.Route("/v1", func(r chi.Router) {
		r.Route("/tenants/{tenant_id}", func(r chi.Router) {
			r.Method(http.MethodPost, "/triggers", postTrigger(s.Triggers))

			r.Method(http.MethodGet, "/rules", getRules(s.Rules))
			r.Method(http.MethodPost, "/rules", postRule(s.Rules))
			r.Method(http.MethodPut, "/rules/{id}/active", putRuleActive(s.Rules))

			r.Method(http.MethodGet, "/subscriptions", getSubscriptions(s.Subscriptions))
			r.Method(http.MethodPost, "/subscriptions", postSubscription(s.Subscriptions))
			r.Method(http.MethodDelete, "/subscriptions/{id}", deleteSubscription(s.Subscriptions))

			r.Method(http.MethodGet, "/events", getTenantEvents(s.Events))
		})

		r.Method(http.MethodGet, "/events/{id}", getEvent(s.Events))
		r.Method(http.MethodPost, "/dispatch", postDispatch(s.Dispatcher))
	})

	return r
}
