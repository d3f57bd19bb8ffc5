//go:build integration

package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/config"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/dispatch"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/document"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/event"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/payload"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/rule"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/signature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	testcontainersredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"
)

// receiver is a subscriber endpoint that verifies every delivery it gets
type receiver struct {
	mu       sync.Mutex
	secret   string
	status   int
	received []payload.Envelope
	rejected int
}

func (rc *receiver) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	body, err := signature.VerifyRequest(r, rc.secret)
	if err != nil {
		rc.rejected++
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	env, err := payload.Parse(body)
	if err != nil {
		rc.rejected++
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	rc.received = append(rc.received, env)
	w.WriteHeader(rc.status)
}

func (rc *receiver) envelopes() []payload.Envelope {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return append([]payload.Envelope(nil), rc.received...)
}

func setupRedis(t *testing.T, ctx context.Context) string {
	t.Helper()

	container, err := testcontainersredis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err, "failed to start Redis container")
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate Redis container: %v", err)
		}
	})

	addr, err := container.ConnectionString(ctx)
	require.NoError(t, err)
	return strings.TrimPrefix(addr, "redis://")
}

func setupPostgres(t *testing.T, ctx context.Context) string {
	t.Helper()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err, "failed to start PostgreSQL container")
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate PostgreSQL container: %v", err)
		}
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	return connStr
}

func runScenario(t *testing.T, ctx context.Context, cfg *config.Config) {
	t.Helper()

	a, err := New(ctx, cfg, zerolog.Nop())
	require.NoError(t, err)
	defer a.Close(ctx)

	secret, err := signature.GenerateSecret(signature.DefaultSecretBytes)
	require.NoError(t, err)

	ok := &receiver{secret: secret, status: http.StatusOK}
	okServer := httptest.NewServer(ok)
	defer okServer.Close()

	broken := &receiver{secret: secret, status: http.StatusInternalServerError}
	brokenServer := httptest.NewServer(broken)
	defer brokenServer.Close()

	_, err = a.Rules.CreateRule(ctx, "tenant-a", rule.StatusChange,
		document.Document{"status": "PROCESSING"}, document.Document{"eventType": "loan.processing"})
	require.NoError(t, err)
	_, err = a.Rules.CreateRule(ctx, "tenant-b", rule.StatusChange, nil, nil)
	require.NoError(t, err)

	_, err = a.Registry.Create(ctx, "tenant-a", "loan.processing", okServer.URL, secret)
	require.NoError(t, err)
	_, err = a.Registry.Create(ctx, "tenant-b", rule.DefaultEventType, brokenServer.URL, secret)
	require.NoError(t, err)

	delivered, err := a.Notifier.Notify(ctx, "tenant-a", rule.StatusChange, document.Document{"status": "PROCESSING", "loanId": "loan-1"})
	require.NoError(t, err)
	require.Len(t, delivered, 1)

	skipped, err := a.Notifier.Notify(ctx, "tenant-a", rule.StatusChange, document.Document{"status": "CLOSED"})
	require.NoError(t, err)
	assert.Empty(t, skipped)

	failing, err := a.Notifier.Notify(ctx, "tenant-b", rule.StatusChange, document.Document{"status": "ANY"})
	require.NoError(t, err)
	require.Len(t, failing, 1)

	for i := 0; i < 3; i++ {
		_, err := a.Dispatcher.DispatchPending(ctx)
		require.NoError(t, err)
	}

	got, err := a.Queue.Get(ctx, delivered[0].ID)
	require.NoError(t, err)
	assert.Equal(t, event.Delivered, got.Status)

	got, err = a.Queue.Get(ctx, failing[0].ID)
	require.NoError(t, err)
	assert.Equal(t, event.Failed, got.Status)
	assert.Equal(t, 3, got.RetryCount)
	assert.Equal(t, "Status 500", got.LastError)

	envelopes := ok.envelopes()
	require.Len(t, envelopes, 1)
	assert.Equal(t, "loan.processing", envelopes[0].EventType)
	assert.Equal(t, "STATUS_CHANGE", envelopes[0].Payload["trigger"])
	triggerCtx, err := json.Marshal(envelopes[0].Payload["context"])
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"PROCESSING","loanId":"loan-1"}`, string(triggerCtx))
	assert.Zero(t, ok.rejected)
	assert.Len(t, broken.envelopes(), 3)

	m, err := a.Collector.Collect(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), m.StatusCounts["delivered"])
	assert.Equal(t, int64(1), m.StatusCounts["failed"])
	assert.Equal(t, int64(0), m.StatusCounts["pending"])
}

func integrationConfig(backend string) *config.Config {
	return &config.Config{
		StorageBackend:    backend,
		InstanceID:        "integration",
		DispatchInterval:  time.Second,
		DispatchBatchSize: 20,
		DeliveryTimeout:   2 * time.Second,
		MaxRetries:        3,
		HeartbeatTTL:      time.Minute,
		LockTTL:           time.Minute,
	}
}

func TestEndToEnd_Postgres_Integration(t *testing.T) {
	ctx := context.Background()

	cfg := integrationConfig(config.BackendPostgres)
	cfg.DatabaseURL = setupPostgres(t, ctx)

	runScenario(t, ctx, cfg)
}

func TestEndToEnd_RedisEventsWithPostgresRules_Integration(t *testing.T) {
	ctx := context.Background()

	cfg := integrationConfig(config.BackendRedis)
	cfg.RedisAddr = setupRedis(t, ctx)
	cfg.DatabaseURL = setupPostgres(t, ctx)

	runScenario(t, ctx, cfg)
}

func TestEndToEnd_RedisSharedLock_Integration(t *testing.T) {
	ctx := context.Background()

	cfg := integrationConfig(config.BackendRedis)
	cfg.RedisAddr = setupRedis(t, ctx)

	first, err := New(ctx, cfg, zerolog.Nop())
	require.NoError(t, err)
	defer first.Close(ctx)

	second, err := New(ctx, cfg, zerolog.Nop())
	require.NoError(t, err)
	defer second.Close(ctx)

	started := make(chan struct{}, 1)
	release := make(chan struct{})
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started <- struct{}{}
		<-release
		w.WriteHeader(http.StatusOK)
	}))
	defer slow.Close()

	_, err = first.Registry.Create(ctx, "tenant-a", rule.DefaultEventType, slow.URL, "")
	require.NoError(t, err)
	ev, err := first.Queue.Enqueue(ctx, "tenant-a", rule.DefaultEventType, nil)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := first.Dispatcher.DispatchPending(ctx)
		done <- err
	}()

	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("delivery never reached the receiver")
	}

	// the second replica shares Redis, so it sees the first one's lock
	_, err = second.Dispatcher.DispatchPending(ctx)
	assert.ErrorIs(t, err, dispatch.ErrPassInProgress)

	close(release)
	require.NoError(t, <-done)

	got, err := second.Queue.Get(ctx, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, event.Delivered, got.Status)
}
