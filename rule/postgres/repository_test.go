//go:build !integration

package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/document"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/rule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ruleColumns = []string{"id", "tenant_id", "trigger_type", "condition", "action", "active", "created_at", "updated_at"}

func TestRepository_Insert_Unit(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now().UTC()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO workflow_rules")).
		WithArgs("rule-1", "tenant-a", "STATUS_CHANGE", `{"status":"PROCESSING"}`, `{"eventType":"loan.status_changed"}`, true, now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Insert(context.Background(), rule.Rule{
		ID:          "rule-1",
		TenantID:    "tenant-a",
		TriggerType: rule.StatusChange,
		Condition:   document.Document{"status": "PROCESSING"},
		Action:      document.Document{"eventType": "loan.status_changed"},
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	})

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindActive_Unit(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now().UTC()

	rows := sqlmock.NewRows(ruleColumns).
		AddRow("rule-1", "tenant-a", "STATUS_CHANGE", []byte(`{"status":"PROCESSING"}`), []byte(`{}`), true, now, now)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE tenant_id = $1 AND trigger_type = $2 AND active")).
		WithArgs("tenant-a", "STATUS_CHANGE").
		WillReturnRows(rows)

	rules, err := repo.FindActive(context.Background(), "tenant-a", rule.StatusChange)

	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, rule.StatusChange, rules[0].TriggerType)
	assert.Equal(t, "PROCESSING", rules[0].Condition["status"])
	assert.True(t, rules[0].Active)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Get_Unit(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta("FROM workflow_rules WHERE tenant_id = $1 AND id = $2")).
		WithArgs("tenant-b", "rule-1").
		WillReturnRows(sqlmock.NewRows(ruleColumns))

	_, err = repo.Get(context.Background(), "tenant-b", "rule-1")

	assert.ErrorIs(t, err, rule.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SetActive_Unit(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewRepository(db)
		now := time.Now().UTC()
		mock.ExpectExec(regexp.QuoteMeta("UPDATE workflow_rules SET active = $1")).
			WithArgs(false, now, "tenant-a", "rule-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.SetActive(context.Background(), "tenant-a", "rule-1", false, now))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("other tenant", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewRepository(db)
		mock.ExpectExec(regexp.QuoteMeta("UPDATE workflow_rules SET active = $1")).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err = repo.SetActive(context.Background(), "tenant-b", "rule-1", false, time.Now())

		assert.ErrorIs(t, err, rule.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
