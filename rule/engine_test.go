package rule_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/document"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/rule"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/rule/memory"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/rule/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	ctx := context.Background()

	t.Run("rule without expected status always matches", func(t *testing.T) {
		engine := rule.NewEngine(memory.NewRepository(), nil)
		_, err := engine.CreateRule(ctx, "tenant-a", rule.StatusChange, nil, nil)
		require.NoError(t, err)

		for _, status := range []string{"PROCESSING", "CLOSED", ""} {
			requests, err := engine.Evaluate(ctx, "tenant-a", rule.StatusChange, document.Document{"status": status})
			require.NoError(t, err)
			assert.Len(t, requests, 1, "status %q", status)
		}
	})

	t.Run("expected status must equal context status", func(t *testing.T) {
		engine := rule.NewEngine(memory.NewRepository(), nil)
		_, err := engine.CreateRule(ctx, "tenant-a", rule.StatusChange, document.Document{"expectedStatus": "PROCESSING"}, nil)
		require.NoError(t, err)

		requests, err := engine.Evaluate(ctx, "tenant-a", rule.StatusChange, document.Document{"status": "CLOSED"})
		require.NoError(t, err)
		assert.Empty(t, requests)

		requests, err = engine.Evaluate(ctx, "tenant-a", rule.StatusChange, document.Document{"status": "PROCESSING"})
		require.NoError(t, err)
		assert.Len(t, requests, 1)
	})

	t.Run("request carries rule id trigger context and action", func(t *testing.T) {
		engine := rule.NewEngine(memory.NewRepository(), nil)
		r, err := engine.CreateRule(ctx, "tenant-a", rule.StatusChange,
			document.Document{"status": "PROCESSING"},
			document.Document{"eventType": "loan.status_changed", "notify": "underwriting"})
		require.NoError(t, err)

		triggerCtx := document.Document{"entity": "loanApplication", "loanId": "loan-1", "status": "PROCESSING"}
		requests, err := engine.Evaluate(ctx, "tenant-a", rule.StatusChange, triggerCtx)
		require.NoError(t, err)
		require.Len(t, requests, 1)

		req := requests[0]
		assert.Equal(t, "tenant-a", req.TenantID)
		assert.Equal(t, "loan.status_changed", req.EventType)
		assert.Equal(t, r.ID, req.Payload["ruleId"])
		assert.Equal(t, "STATUS_CHANGE", req.Payload["trigger"])
		assert.Equal(t, triggerCtx, req.Payload["context"])
		assert.Equal(t, document.Document{"eventType": "loan.status_changed", "notify": "underwriting"}, req.Payload["action"])
	})

	t.Run("default event type", func(t *testing.T) {
		engine := rule.NewEngine(memory.NewRepository(), nil)
		_, err := engine.CreateRule(ctx, "tenant-a", rule.StatusChange, nil, document.Document{"notify": "ops"})
		require.NoError(t, err)

		requests, err := engine.Evaluate(ctx, "tenant-a", rule.StatusChange, nil)
		require.NoError(t, err)
		require.Len(t, requests, 1)
		assert.Equal(t, rule.DefaultEventType, requests[0].EventType)
	})

	t.Run("inactive rules and other tenants are ignored", func(t *testing.T) {
		engine := rule.NewEngine(memory.NewRepository(), nil)
		r, err := engine.CreateRule(ctx, "tenant-a", rule.StatusChange, nil, nil)
		require.NoError(t, err)
		_, err = engine.CreateRule(ctx, "tenant-b", rule.StatusChange, nil, nil)
		require.NoError(t, err)

		_, err = engine.SetActive(ctx, "tenant-a", r.ID, false)
		require.NoError(t, err)

		requests, err := engine.Evaluate(ctx, "tenant-a", rule.StatusChange, nil)
		require.NoError(t, err)
		assert.Empty(t, requests)
	})

	t.Run("unknown trigger type is a no-op", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		engine := rule.NewEngine(repo, nil)

		requests, err := engine.Evaluate(ctx, "tenant-a", rule.TriggerType("TASK_OVERDUE"), nil)

		require.NoError(t, err)
		assert.Empty(t, requests)
		repo.AssertNotCalled(t, "FindActive", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("tenant required", func(t *testing.T) {
		engine := rule.NewEngine(mocks.NewRepository(t), nil)

		_, err := engine.Evaluate(ctx, "", rule.StatusChange, nil)

		assert.ErrorIs(t, err, rule.ErrTenantRequired)
	})

	t.Run("repository error", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		engine := rule.NewEngine(repo, nil)

		repo.On("FindActive", ctx, "tenant-a", rule.StatusChange).Return(nil, errors.New("timeout"))

		_, err := engine.Evaluate(ctx, "tenant-a", rule.StatusChange, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "loading rules")
	})

	t.Run("custom matcher strategy", func(t *testing.T) {
		matchers := rule.DefaultMatchers()
		overdue := rule.TriggerType("TASK_OVERDUE")
		matchers.Register(overdue, rule.MatcherFunc(func(condition, triggerCtx document.Document) bool {
			return triggerCtx.Has("dueDate")
		}))

		engine := rule.NewEngine(memory.NewRepository(), matchers)
		_, err := engine.CreateRule(ctx, "tenant-a", overdue, nil, nil)
		require.NoError(t, err)

		requests, err := engine.Evaluate(ctx, "tenant-a", overdue, document.Document{"dueDate": "2026-01-01"})
		require.NoError(t, err)
		assert.Len(t, requests, 1)

		requests, err = engine.Evaluate(ctx, "tenant-a", overdue, document.Document{})
		require.NoError(t, err)
		assert.Empty(t, requests)
	})
}

func TestCreateRule(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		engine := rule.NewEngine(repo, nil)

		repo.On("Insert", ctx, rule.MatchRule(func(r rule.Rule) bool {
			return r.ID != "" &&
				r.TenantID == "tenant-a" &&
				r.TriggerType == rule.StatusChange &&
				r.Active &&
				r.Condition != nil &&
				r.Action != nil
		})).Return(nil)

		r, err := engine.CreateRule(ctx, "tenant-a", rule.StatusChange, nil, nil)

		require.NoError(t, err)
		assert.True(t, r.Active)
		assert.False(t, r.CreatedAt.IsZero())
	})

	t.Run("invalid trigger type", func(t *testing.T) {
		engine := rule.NewEngine(mocks.NewRepository(t), nil)

		_, err := engine.CreateRule(ctx, "tenant-a", rule.TriggerType("NOPE"), nil, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid trigger type")
	})

	t.Run("invalid action event type", func(t *testing.T) {
		engine := rule.NewEngine(mocks.NewRepository(t), nil)

		_, err := engine.CreateRule(ctx, "tenant-a", rule.StatusChange, nil, document.Document{"eventType": "loan status"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "validating action")
	})

	t.Run("tenant required", func(t *testing.T) {
		engine := rule.NewEngine(mocks.NewRepository(t), nil)

		_, err := engine.CreateRule(ctx, " ", rule.StatusChange, nil, nil)

		assert.ErrorIs(t, err, rule.ErrTenantRequired)
	})
}

func TestSetActiveAndList(t *testing.T) {
	ctx := context.Background()
	engine := rule.NewEngine(memory.NewRepository(), nil)

	r, err := engine.CreateRule(ctx, "tenant-a", rule.EntityCreated, document.Document{"entity": "lead"}, nil)
	require.NoError(t, err)

	disabled, err := engine.SetActive(ctx, "tenant-a", r.ID, false)
	require.NoError(t, err)
	assert.False(t, disabled.Active)

	rules, err := engine.List(ctx, "tenant-a")
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.False(t, rules[0].Active)

	_, err = engine.SetActive(ctx, "tenant-b", r.ID, true)
	assert.ErrorIs(t, err, rule.ErrNotFound)

	_, err = engine.List(ctx, "")
	assert.ErrorIs(t, err, rule.ErrTenantRequired)
}
