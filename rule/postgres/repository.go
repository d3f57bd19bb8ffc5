package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/rule"
)

// PostgreSQL implementation of rule.Repository, conditions and actions are JSONB

const columns = "id, tenant_id, trigger_type, condition, action, active, created_at, updated_at"

type Repository struct {
	DB *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Insert(ctx context.Context, rl rule.Rule) error {
	query := `
		INSERT INTO workflow_rules (id, tenant_id, trigger_type, condition, action, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.DB.ExecContext(ctx, query,
		rl.ID,
		rl.TenantID,
		rl.TriggerType.String(),
		rl.Condition,
		rl.Action,
		rl.Active,
		rl.CreatedAt,
		rl.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting rule: %w", err)
	}

	return nil
}

func (r *Repository) Get(ctx context.Context, tenantID, id string) (rule.Rule, error) {
	query := "SELECT " + columns + " FROM workflow_rules WHERE tenant_id = $1 AND id = $2"

	rl, err := scanRule(r.DB.QueryRowContext(ctx, query, tenantID, id))
	if errors.Is(err, sql.ErrNoRows) {
		return rule.Rule{}, rule.ErrNotFound
	}
	if err != nil {
		return rule.Rule{}, fmt.Errorf("selecting rule: %w", err)
	}

	return rl, nil
}

func (r *Repository) FindActive(ctx context.Context, tenantID string, trigger rule.TriggerType) ([]rule.Rule, error) {
	query := "SELECT " + columns + ` FROM workflow_rules
		WHERE tenant_id = $1 AND trigger_type = $2 AND active
		ORDER BY created_at, id`

	rows, err := r.DB.QueryContext(ctx, query, tenantID, trigger.String())
	if err != nil {
		return nil, fmt.Errorf("selecting active rules: %w", err)
	}
	return collect(rows)
}

func (r *Repository) ListByTenant(ctx context.Context, tenantID string) ([]rule.Rule, error) {
	query := "SELECT " + columns + " FROM workflow_rules WHERE tenant_id = $1 ORDER BY created_at, id"

	rows, err := r.DB.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("selecting rules: %w", err)
	}
	return collect(rows)
}

func (r *Repository) SetActive(ctx context.Context, tenantID, id string, active bool, updatedAt time.Time) error {
	query := "UPDATE workflow_rules SET active = $1, updated_at = $2 WHERE tenant_id = $3 AND id = $4"

	result, err := r.DB.ExecContext(ctx, query, active, updatedAt, tenantID, id)
	if err != nil {
		return fmt.Errorf("updating rule: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rows == 0 {
		return rule.ErrNotFound
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRule(row scanner) (rule.Rule, error) {
	var (
		rl      rule.Rule
		trigger string
	)
	err := row.Scan(&rl.ID, &rl.TenantID, &trigger, &rl.Condition, &rl.Action, &rl.Active, &rl.CreatedAt, &rl.UpdatedAt)
	if err != nil {
		return rule.Rule{}, err
	}
	rl.TriggerType = rule.TriggerType(trigger)
	return rl, nil
}

func collect(rows *sql.Rows) ([]rule.Rule, error) {
	defer rows.Close()

	rules := []rule.Rule{}
	for rows.Next() {
		rl, err := scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning rule: %w", err)
		}
		rules = append(rules, rl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rules: %w", err)
	}

	return rules, nil
}
