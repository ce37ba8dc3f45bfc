package iof

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsCollectorEvictsStaleInflight(t *testing.T) {
	t.Parallel()

	collector := NewMetricsCollector()
	collector.inflight["never-answered"] = time.Now().Add(-2 * inflightTTL)

	req := httptest.NewRequest("GET", "http://api.iofinance.io/api/v1/contracts", nil)
	req.Header.Set("X-Request-Id", "fresh")

	require.NoError(t, collector.RequestInterceptor()(context.Background(), req))

	collector.mu.Lock()
	defer collector.mu.Unlock()

	_, stale := collector.inflight["never-answered"]
	assert.False(t, stale)

	_, fresh := collector.inflight["fresh"]
	assert.True(t, fresh)
}

func TestMetricsCollectorKeepsRecentInflight(t *testing.T) {
	t.Parallel()

	collector := NewMetricsCollector()
	collector.inflight["recent"] = time.Now().Add(-time.Second)

	req := httptest.NewRequest("GET", "http://api.iofinance.io/api/v1/contracts", nil)
	req.Header.Set("X-Request-Id", "fresh")

	require.NoError(t, collector.RequestInterceptor()(context.Background(), req))

	collector.mu.Lock()
	defer collector.mu.Unlock()

	_, recent := collector.inflight["recent"]
	assert.True(t, recent)
}
