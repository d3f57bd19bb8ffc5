package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/event"
)

/*
PostgreSQL implementation of event.Repository.
The pending scan is served by a partial index on created_at; CompareAndSwap is a
single conditional UPDATE guarded by status and retry_count.
*/

const columns = "id, tenant_id, event_type, payload, status, retry_count, last_error, next_attempt_at, created_at, updated_at"

type Repository struct {
	DB *sql.DB
}

// NewRepository wraps an open connection pool, see internal/database.Open
func NewRepository(db *sql.DB) *Repository {
	return &Repository{DB: db}
}

// Insert stores a new event
func (r *Repository) Insert(ctx context.Context, ev event.OutboundEvent) error {
	query := `
		INSERT INTO outbound_events (id, tenant_id, event_type, payload, status, retry_count, last_error, next_attempt_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.DB.ExecContext(ctx, query,
		ev.ID,
		ev.TenantID,
		ev.EventType,
		ev.Payload,
		ev.Status.String(),
		ev.RetryCount,
		ev.LastError,
		nullTime(ev.NextAttemptAt),
		ev.CreatedAt,
		ev.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting event: %w", err)
	}

	return nil
}

// Get retrieves an event by ID
func (r *Repository) Get(ctx context.Context, id string) (event.OutboundEvent, error) {
	query := "SELECT " + columns + " FROM outbound_events WHERE id = $1"

	ev, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return event.OutboundEvent{}, event.ErrNotFound
	}
	if err != nil {
		return event.OutboundEvent{}, fmt.Errorf("selecting event: %w", err)
	}

	return ev, nil
}

// ListPending returns due pending events, oldest first
func (r *Repository) ListPending(ctx context.Context, now time.Time, limit int) ([]event.OutboundEvent, error) {
	query := "SELECT " + columns + ` FROM outbound_events
		WHERE status = $1 AND (next_attempt_at IS NULL OR next_attempt_at <= $2)
		ORDER BY created_at, id
		LIMIT $3`

	rows, err := r.DB.QueryContext(ctx, query, event.Pending.String(), now, limit)
	if err != nil {
		return nil, fmt.Errorf("selecting pending events: %w", err)
	}
	return collect(rows)
}

// ListByTenant returns a tenant's events newest first
func (r *Repository) ListByTenant(ctx context.Context, tenantID string, status event.Status, limit int) ([]event.OutboundEvent, error) {
	var (
		rows *sql.Rows
		err  error
	)

	if status == 0 {
		query := "SELECT " + columns + ` FROM outbound_events
			WHERE tenant_id = $1
			ORDER BY created_at DESC, id DESC
			LIMIT $2`
		rows, err = r.DB.QueryContext(ctx, query, tenantID, limit)
	} else {
		query := "SELECT " + columns + ` FROM outbound_events
			WHERE tenant_id = $1 AND status = $2
			ORDER BY created_at DESC, id DESC
			LIMIT $3`
		rows, err = r.DB.QueryContext(ctx, query, tenantID, status.String(), limit)
	}
	if err != nil {
		return nil, fmt.Errorf("selecting tenant events: %w", err)
	}
	return collect(rows)
}

func (r *Repository) CountByStatus(ctx context.Context) (map[event.Status]int64, error) {
	query := "SELECT status, COUNT(*) FROM outbound_events GROUP BY status"

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("counting events: %w", err)
	}
	defer rows.Close()

	counts := map[event.Status]int64{
		event.Pending:   0,
		event.Delivered: 0,
		event.Failed:    0,
	}
	for rows.Next() {
		var (
			name  string
			count int64
		)
		if err := rows.Scan(&name, &count); err != nil {
			return nil, fmt.Errorf("scanning count: %w", err)
		}
		if status := event.NewStatus(name); status != 0 {
			counts[status] = count
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating counts: %w", err)
	}

	return counts, nil
}

// CompareAndSwap updates the row only while status and retry_count still match prev
func (r *Repository) CompareAndSwap(ctx context.Context, prev, next event.OutboundEvent) error {
	query := `
		UPDATE outbound_events
		SET event_type = $1, payload = $2, status = $3, retry_count = $4, last_error = $5, next_attempt_at = $6, updated_at = $7
		WHERE id = $8 AND status = $9 AND retry_count = $10
	`

	result, err := r.DB.ExecContext(ctx, query,
		next.EventType,
		next.Payload,
		next.Status.String(),
		next.RetryCount,
		next.LastError,
		nullTime(next.NextAttemptAt),
		next.UpdatedAt,
		prev.ID,
		prev.Status.String(),
		prev.RetryCount,
	)
	if err != nil {
		return fmt.Errorf("updating event: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rows > 0 {
		return nil
	}

	var exists bool
	err = r.DB.QueryRowContext(ctx, "SELECT EXISTS (SELECT 1 FROM outbound_events WHERE id = $1)", prev.ID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("checking event: %w", err)
	}
	if !exists {
		return event.ErrNotFound
	}
	return event.ErrConflict
}

// Close is a no-op: the pool is owned by whoever opened it
func (r *Repository) Close(ctx context.Context) error {
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(row scanner) (event.OutboundEvent, error) {
	var (
		ev          event.OutboundEvent
		status      string
		nextAttempt sql.NullTime
	)

	err := row.Scan(
		&ev.ID,
		&ev.TenantID,
		&ev.EventType,
		&ev.Payload,
		&status,
		&ev.RetryCount,
		&ev.LastError,
		&nextAttempt,
		&ev.CreatedAt,
		&ev.UpdatedAt,
	)
	if err != nil {
		return event.OutboundEvent{}, err
	}

	ev.Status = event.NewStatus(status)
	if nextAttempt.Valid {
		ev.NextAttemptAt = nextAttempt.Time
	}
	return ev, nil
}

func collect(rows *sql.Rows) ([]event.OutboundEvent, error) {
	defer rows.Close()

	events := []event.OutboundEvent{}
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating events: %w", err)
	}

	return events, nil
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}
