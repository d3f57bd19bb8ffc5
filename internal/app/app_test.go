package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/config"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/document"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/event"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/rule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryConfig() *config.Config {
	return &config.Config{
		StorageBackend:    config.BackendMemory,
		InstanceID:        "test",
		DispatchInterval:  time.Second,
		DispatchBatchSize: 20,
		DeliveryTimeout:   time.Second,
		MaxRetries:        3,
		HeartbeatTTL:      time.Minute,
	}
}

func TestNew_MemoryBackendWithSeededRules(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	rulesFile := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(rulesFile, []byte(`rules:
  - tenant_id: tenant-a
    trigger: STATUS_CHANGE
    condition:
      status: PROCESSING
    action:
      eventType: loan.processing
`), 0o600))

	cfg := memoryConfig()
	cfg.RulesFile = rulesFile

	a, err := New(ctx, cfg, zerolog.Nop())
	require.NoError(t, err)
	defer a.Close(ctx)

	rules, err := a.Rules.List(ctx, "tenant-a")
	require.NoError(t, err)
	require.Len(t, rules, 1)

	_, err = a.Registry.Create(ctx, "tenant-a", "loan.processing", server.URL, "")
	require.NoError(t, err)

	events, err := a.Notifier.Notify(ctx, "tenant-a", rule.StatusChange, document.Document{"status": "PROCESSING"})
	require.NoError(t, err)
	require.Len(t, events, 1)

	stats, err := a.Dispatcher.DispatchPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Delivered)

	m, err := a.Collector.Collect(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), m.StatusCounts[event.Delivered.String()])
	require.Len(t, m.Dispatchers, 1)
	assert.Equal(t, "test", m.Dispatchers[0].InstanceID)
}

func TestNew_InvalidRulesFile(t *testing.T) {
	cfg := memoryConfig()
	cfg.RulesFile = filepath.Join(t.TempDir(), "missing.yaml")

	_, err := New(context.Background(), cfg, zerolog.Nop())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading rules")
}

func TestNew_RetryPolicyFromConfig(t *testing.T) {
	cfg := memoryConfig()
	cfg.MaxRetries = 5
	cfg.RetryInitialBackoff = time.Second

	a, err := New(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, 5, a.Queue.Policy.MaxRetries)
	assert.Equal(t, time.Second, a.Queue.Policy.InitialBackoff)
}
