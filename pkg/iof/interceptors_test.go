package iof_test

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iofinance-io/iof-client/pkg/iof"
)

func newTestRequest(t *testing.T, method, rawURL string) *http.Request {
	t.Helper()

	parsed, err := url.Parse(rawURL)
	require.NoError(t, err)

	return &http.Request{Method: method, URL: parsed, Header: http.Header{}}
}

func TestInterceptorChainOrder(t *testing.T) {
	t.Parallel()

	chain := iof.NewInterceptorChain()

	var order []string

	chain.AddRequestInterceptor(func(_ context.Context, _ *http.Request) error {
		order = append(order, "first")

		return nil
	})
	chain.AddRequestInterceptor(func(_ context.Context, _ *http.Request) error {
		order = append(order, "second")

		return nil
	})

	req := newTestRequest(t, http.MethodGet, "https://api.iofinance.io/api/v1/contracts")
	require.NoError(t, chain.ApplyRequestInterceptors(context.Background(), req))
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestInterceptorChainRequestError(t *testing.T) {
	t.Parallel()

	chain := iof.NewInterceptorChain()
	abort := errors.New("abort")

	chain.AddRequestInterceptor(func(_ context.Context, _ *http.Request) error {
		return abort
	})

	called := false

	chain.AddRequestInterceptor(func(_ context.Context, _ *http.Request) error {
		called = true

		return nil
	})

	req := newTestRequest(t, http.MethodGet, "https://api.iofinance.io/api/v1/contracts")
	err := chain.ApplyRequestInterceptors(context.Background(), req)
	require.ErrorIs(t, err, abort)
	assert.Contains(t, err.Error(), "request interceptor")
	assert.False(t, called)
}

func TestInterceptorChainResponse(t *testing.T) {
	t.Parallel()

	chain := iof.NewInterceptorChain()

	var status int

	chain.AddResponseInterceptor(func(_ context.Context, _ *http.Request, resp *http.Response) error {
		status = resp.StatusCode

		return nil
	})

	req := newTestRequest(t, http.MethodGet, "https://api.iofinance.io/api/v1/contracts")
	resp := &http.Response{StatusCode: http.StatusOK}

	require.NoError(t, chain.ApplyResponseInterceptors(context.Background(), req, resp))
	assert.Equal(t, http.StatusOK, status)
}

func TestHeadersInterceptor(t *testing.T) {
	t.Parallel()

	interceptor := iof.NewHeadersInterceptor(map[string]string{
		"X-Trace-Id": "trace-1",
		"X-Source":   "batch-job",
	})

	req := newTestRequest(t, http.MethodGet, "https://api.iofinance.io/api/v1/contracts")
	require.NoError(t, interceptor(context.Background(), req))
	assert.Equal(t, "trace-1", req.Header.Get("X-Trace-Id"))
	assert.Equal(t, "batch-job", req.Header.Get("X-Source"))
}

func TestRateLimiterBurst(t *testing.T) {
	t.Parallel()

	limiter := iof.NewRateLimiter(1, 2)
	ctx := context.Background()

	// burst capacity admits the first two immediately
	require.NoError(t, limiter.Wait(ctx))
	require.NoError(t, limiter.Wait(ctx))

	timeout, cancel := context.WithTimeout(ctx, 5*time.Millisecond)
	defer cancel()

	err := limiter.Wait(timeout)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRateLimiterRefills(t *testing.T) {
	t.Parallel()

	limiter := iof.NewRateLimiter(100, 1)
	ctx := context.Background()

	require.NoError(t, limiter.Wait(ctx))

	// at 100 tokens per second a new token shows up within ~10ms
	timeout, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	require.NoError(t, limiter.Wait(timeout))
}

func TestMetricsCollector(t *testing.T) {
	t.Parallel()

	collector := iof.NewMetricsCollector()
	request := collector.RequestInterceptor()
	response := collector.ResponseInterceptor()
	ctx := context.Background()

	ok := newTestRequest(t, http.MethodGet, "https://api.iofinance.io/api/v1/contracts")
	ok.Header.Set("X-Request-Id", "req-1")
	require.NoError(t, request(ctx, ok))
	require.NoError(t, response(ctx, ok, &http.Response{StatusCode: http.StatusOK}))

	failed := newTestRequest(t, http.MethodGet, "https://api.iofinance.io/api/v1/contracts")
	failed.Header.Set("X-Request-Id", "req-2")
	require.NoError(t, request(ctx, failed))
	require.NoError(t, response(ctx, failed, &http.Response{StatusCode: http.StatusInternalServerError}))

	other := newTestRequest(t, http.MethodPost, "https://api.iofinance.io/api/v1/zakat/calculate")
	other.Header.Set("X-Request-Id", "req-3")
	require.NoError(t, request(ctx, other))
	require.NoError(t, response(ctx, other, &http.Response{StatusCode: http.StatusOK}))

	snapshot := collector.Snapshot()
	require.Len(t, snapshot, 2)

	contracts := snapshot["GET /api/v1/contracts"]
	assert.Equal(t, int64(2), contracts.Requests)
	assert.Equal(t, int64(1), contracts.Errors)

	zakat := snapshot["POST /api/v1/zakat/calculate"]
	assert.Equal(t, int64(1), zakat.Requests)
	assert.Zero(t, zakat.Errors)
}
