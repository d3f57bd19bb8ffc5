package event_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/document"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/event"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/event/memory"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/event/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEnqueue(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		queue := event.NewQueue(repo, event.DefaultRetryPolicy())

		p := document.Document{"ruleId": "rule-1"}

		repo.On("Insert", ctx, event.MatchEvent(func(ev event.OutboundEvent) bool {
			return ev.ID != "" &&
				ev.TenantID == "tenant-a" &&
				ev.EventType == "workflow.triggered" &&
				ev.Status == event.Pending &&
				ev.RetryCount == 0 &&
				ev.Payload["ruleId"] == "rule-1" &&
				!ev.CreatedAt.IsZero()
		})).Return(nil)

		ev, err := queue.Enqueue(ctx, "tenant-a", "workflow.triggered", p)

		require.NoError(t, err)
		assert.Equal(t, event.Pending, ev.Status)
		assert.Equal(t, 0, ev.RetryCount)
		assert.NotEmpty(t, ev.ID)
	})

	t.Run("tenant required", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		queue := event.NewQueue(repo, event.DefaultRetryPolicy())

		_, err := queue.Enqueue(ctx, " ", "workflow.triggered", nil)

		assert.ErrorIs(t, err, event.ErrTenantRequired)
	})

	t.Run("invalid event type", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		queue := event.NewQueue(repo, event.DefaultRetryPolicy())

		_, err := queue.Enqueue(ctx, "tenant-a", "not a type", nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "validating event type")
	})

	t.Run("repository error", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		queue := event.NewQueue(repo, event.DefaultRetryPolicy())

		repo.On("Insert", ctx, mock.Anything).Return(errors.New("disk full"))

		_, err := queue.Enqueue(ctx, "tenant-a", "workflow.triggered", nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "storing event")
	})
}

func TestMarkFailed(t *testing.T) {
	ctx := context.Background()

	t.Run("stays pending below the threshold", func(t *testing.T) {
		queue := event.NewQueue(memory.NewRepository(), event.DefaultRetryPolicy())
		ev, err := queue.Enqueue(ctx, "tenant-a", "workflow.triggered", nil)
		require.NoError(t, err)

		for i := 1; i <= 2; i++ {
			ev, err = queue.MarkFailed(ctx, ev.ID, "Status 500")
			require.NoError(t, err)
			assert.Equal(t, event.Pending, ev.Status)
			assert.Equal(t, i, ev.RetryCount)
			assert.Equal(t, "Status 500", ev.LastError)
		}
	})

	t.Run("third failure is terminal", func(t *testing.T) {
		queue := event.NewQueue(memory.NewRepository(), event.DefaultRetryPolicy())
		ev, err := queue.Enqueue(ctx, "tenant-a", "workflow.triggered", nil)
		require.NoError(t, err)

		for i := 0; i < 3; i++ {
			ev, err = queue.MarkFailed(ctx, ev.ID, "Status 500")
			require.NoError(t, err)
		}

		assert.Equal(t, event.Failed, ev.Status)
		assert.Equal(t, 3, ev.RetryCount)

		pending, err := queue.ListPending(ctx, 0)
		require.NoError(t, err)
		assert.Empty(t, pending)
	})

	t.Run("terminal events are left untouched", func(t *testing.T) {
		queue := event.NewQueue(memory.NewRepository(), event.DefaultRetryPolicy())
		ev, err := queue.Enqueue(ctx, "tenant-a", "workflow.triggered", nil)
		require.NoError(t, err)

		_, err = queue.MarkDelivered(ctx, ev.ID)
		require.NoError(t, err)

		ev, err = queue.MarkFailed(ctx, ev.ID, "late report")
		require.NoError(t, err)
		assert.Equal(t, event.Delivered, ev.Status)
		assert.Equal(t, 0, ev.RetryCount)
		assert.Empty(t, ev.LastError)
	})

	t.Run("custom threshold", func(t *testing.T) {
		queue := event.NewQueue(memory.NewRepository(), event.RetryPolicy{MaxRetries: 1})
		ev, err := queue.Enqueue(ctx, "tenant-a", "workflow.triggered", nil)
		require.NoError(t, err)

		ev, err = queue.MarkFailed(ctx, ev.ID, "timeout")
		require.NoError(t, err)
		assert.Equal(t, event.Failed, ev.Status)
	})

	t.Run("backoff delays the next attempt", func(t *testing.T) {
		now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
		queue := event.NewQueue(memory.NewRepository(), event.RetryPolicy{
			MaxRetries:     3,
			InitialBackoff: time.Minute,
		}).WithClock(func() time.Time { return now })

		ev, err := queue.Enqueue(ctx, "tenant-a", "workflow.triggered", nil)
		require.NoError(t, err)

		ev, err = queue.MarkFailed(ctx, ev.ID, "Status 503")
		require.NoError(t, err)
		assert.Equal(t, now.Add(time.Minute), ev.NextAttemptAt)

		pending, err := queue.ListPending(ctx, 0)
		require.NoError(t, err)
		assert.Empty(t, pending)

		now = now.Add(time.Minute)
		pending, err = queue.ListPending(ctx, 0)
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, ev.ID, pending[0].ID)
	})

	t.Run("retries after a concurrent update", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		queue := event.NewQueue(repo, event.DefaultRetryPolicy())

		stale := event.OutboundEvent{ID: "evt-1", TenantID: "tenant-a", Status: event.Pending, RetryCount: 0}
		fresh := stale
		fresh.RetryCount = 1

		repo.On("Get", ctx, "evt-1").Return(stale, nil).Once()
		repo.On("CompareAndSwap", ctx, stale, mock.Anything).Return(event.ErrConflict).Once()
		repo.On("Get", ctx, "evt-1").Return(fresh, nil).Once()
		repo.On("CompareAndSwap", ctx, fresh, event.MatchEvent(func(ev event.OutboundEvent) bool {
			return ev.RetryCount == 2 && ev.Status == event.Pending
		})).Return(nil).Once()

		ev, err := queue.MarkFailed(ctx, "evt-1", "Status 500")

		require.NoError(t, err)
		assert.Equal(t, 2, ev.RetryCount)
	})

	t.Run("not found", func(t *testing.T) {
		queue := event.NewQueue(memory.NewRepository(), event.DefaultRetryPolicy())

		_, err := queue.MarkFailed(ctx, "missing", "Status 500")

		assert.ErrorIs(t, err, event.ErrNotFound)
	})
}

func TestMarkDelivered(t *testing.T) {
	ctx := context.Background()
	queue := event.NewQueue(memory.NewRepository(), event.DefaultRetryPolicy())

	ev, err := queue.Enqueue(ctx, "tenant-a", "workflow.triggered", nil)
	require.NoError(t, err)

	ev, err = queue.MarkFailed(ctx, ev.ID, "Status 500")
	require.NoError(t, err)

	ev, err = queue.MarkDelivered(ctx, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, event.Delivered, ev.Status)
	assert.Equal(t, 1, ev.RetryCount)

	again, err := queue.MarkDelivered(ctx, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, ev.UpdatedAt, again.UpdatedAt)
}

func TestListPending(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults the limit", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		queue := event.NewQueue(repo, event.DefaultRetryPolicy())

		repo.On("ListPending", ctx, mock.AnythingOfType("time.Time"), event.DefaultListLimit).
			Return([]event.OutboundEvent{}, nil)

		events, err := queue.ListPending(ctx, 0)

		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("oldest first", func(t *testing.T) {
		now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
		queue := event.NewQueue(memory.NewRepository(), event.DefaultRetryPolicy()).
			WithClock(func() time.Time { return now })

		var ids []string
		for i := 0; i < 3; i++ {
			ev, err := queue.Enqueue(ctx, "tenant-a", "workflow.triggered", nil)
			require.NoError(t, err)
			ids = append(ids, ev.ID)
			now = now.Add(time.Second)
		}

		events, err := queue.ListPending(ctx, 2)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, ids[0], events[0].ID)
		assert.Equal(t, ids[1], events[1].ID)
	})
}

func TestListByTenant(t *testing.T) {
	ctx := context.Background()
	queue := event.NewQueue(memory.NewRepository(), event.DefaultRetryPolicy())

	_, err := queue.Enqueue(ctx, "tenant-a", "workflow.triggered", nil)
	require.NoError(t, err)
	_, err = queue.Enqueue(ctx, "tenant-b", "workflow.triggered", nil)
	require.NoError(t, err)

	events, err := queue.ListByTenant(ctx, "tenant-a", 0, 0)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "tenant-a", events[0].TenantID)

	_, err = queue.ListByTenant(ctx, "", 0, 0)
	assert.ErrorIs(t, err, event.ErrTenantRequired)

	_, err = queue.ListByTenant(ctx, "tenant-a", event.Status(42), 0)
	assert.Error(t, err)
}

func TestRetryPolicy_NextDelay(t *testing.T) {
	policy := event.RetryPolicy{MaxRetries: 5, InitialBackoff: time.Second, MaxBackoff: 5 * time.Second}

	assert.Equal(t, time.Second, policy.NextDelay(1))
	assert.Equal(t, 2*time.Second, policy.NextDelay(2))
	assert.Equal(t, 4*time.Second, policy.NextDelay(3))
	assert.Equal(t, 5*time.Second, policy.NextDelay(4))
	assert.Equal(t, time.Duration(0), event.DefaultRetryPolicy().NextDelay(2))
}
