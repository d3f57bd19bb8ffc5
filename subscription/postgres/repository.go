package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/subscription"
)

// PostgreSQL implementation of subscription.Repository

const columns = "id, tenant_id, event_type, target_url, secret, active, created_at, updated_at"

type Repository struct {
	DB *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Insert(ctx context.Context, s subscription.Subscription) error {
	query := `
		INSERT INTO webhook_subscriptions (id, tenant_id, event_type, target_url, secret, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.DB.ExecContext(ctx, query, s.ID, s.TenantID, s.EventType, s.TargetURL, s.Secret, s.Active, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("inserting subscription: %w", err)
	}

	return nil
}

func (r *Repository) Get(ctx context.Context, tenantID, id string) (subscription.Subscription, error) {
	query := "SELECT " + columns + " FROM webhook_subscriptions WHERE tenant_id = $1 AND id = $2"

	s, err := scanSubscription(r.DB.QueryRowContext(ctx, query, tenantID, id))
	if errors.Is(err, sql.ErrNoRows) {
		return subscription.Subscription{}, subscription.ErrNotFound
	}
	if err != nil {
		return subscription.Subscription{}, fmt.Errorf("selecting subscription: %w", err)
	}

	return s, nil
}

func (r *Repository) FindActive(ctx context.Context, tenantID, eventType string) ([]subscription.Subscription, error) {
	query := "SELECT " + columns + ` FROM webhook_subscriptions
		WHERE tenant_id = $1 AND event_type = $2 AND active
		ORDER BY created_at, id`

	rows, err := r.DB.QueryContext(ctx, query, tenantID, eventType)
	if err != nil {
		return nil, fmt.Errorf("selecting active subscriptions: %w", err)
	}
	return collect(rows)
}

func (r *Repository) ListByTenant(ctx context.Context, tenantID string) ([]subscription.Subscription, error) {
	query := "SELECT " + columns + " FROM webhook_subscriptions WHERE tenant_id = $1 ORDER BY created_at, id"

	rows, err := r.DB.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("selecting subscriptions: %w", err)
	}
	return collect(rows)
}

func (r *Repository) Deactivate(ctx context.Context, tenantID, id string, updatedAt time.Time) error {
	query := "UPDATE webhook_subscriptions SET active = FALSE, updated_at = $1 WHERE tenant_id = $2 AND id = $3"

	result, err := r.DB.ExecContext(ctx, query, updatedAt, tenantID, id)
	if err != nil {
		return fmt.Errorf("deactivating subscription: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rows == 0 {
		return subscription.ErrNotFound
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSubscription(row scanner) (subscription.Subscription, error) {
	var s subscription.Subscription
	err := row.Scan(&s.ID, &s.TenantID, &s.EventType, &s.TargetURL, &s.Secret, &s.Active, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

func collect(rows *sql.Rows) ([]subscription.Subscription, error) {
	defer rows.Close()

	subs := []subscription.Subscription{}
	for rows.Next() {
		s, err := scanSubscription(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning subscription: %w", err)
		}
		subs = append(subs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating subscriptions: %w", err)
	}

	return subs, nil
}
