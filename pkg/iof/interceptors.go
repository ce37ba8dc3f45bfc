package iof

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// RequestInterceptor can inspect or mutate an outgoing request. Returning an
// error aborts the request.
type RequestInterceptor func(ctx context.Context, req *http.Request) error

// ResponseInterceptor can inspect an incoming response.
type ResponseInterceptor func(ctx context.Context, req *http.Request, resp *http.Response) error

// InterceptorChain holds ordered request and response interceptors. It is
// safe for concurrent use.
type InterceptorChain struct {
	mu       sync.RWMutex
	request  []RequestInterceptor
	response []ResponseInterceptor
}

// NewInterceptorChain returns an empty chain.
func NewInterceptorChain() *InterceptorChain {
	return &InterceptorChain{}
}

// AddRequestInterceptor appends a request interceptor.
func (c *InterceptorChain) AddRequestInterceptor(interceptor RequestInterceptor) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.request = append(c.request, interceptor)
}

// AddResponseInterceptor appends a response interceptor.
func (c *InterceptorChain) AddResponseInterceptor(interceptor ResponseInterceptor) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.response = append(c.response, interceptor)
}

// ApplyRequestInterceptors runs the request interceptors in order.
func (c *InterceptorChain) ApplyRequestInterceptors(ctx context.Context, req *http.Request) error {
	c.mu.RLock()
	interceptors := c.request
	c.mu.RUnlock()

	for _, interceptor := range interceptors {
		if err := interceptor(ctx, req); err != nil {
			return fmt.Errorf("request interceptor: %w", err)
		}
	}

	return nil
}

// ApplyResponseInterceptors runs the response interceptors in order.
func (c *InterceptorChain) ApplyResponseInterceptors(ctx context.Context, req *http.Request, resp *http.Response) error {
	c.mu.RLock()
	interceptors := c.response
	c.mu.RUnlock()

	for _, interceptor := range interceptors {
		if err := interceptor(ctx, req, resp); err != nil {
			return fmt.Errorf("response interceptor: %w", err)
		}
	}

	return nil
}

// NewLoggingRequestInterceptor logs every outgoing request.
func NewLoggingRequestInterceptor(logger Logger) RequestInterceptor {
	return func(_ context.Context, req *http.Request) error {
		logger.Debug("sending request", map[string]interface{}{
			"method": req.Method,
			"url":    req.URL.String(),
		})

		return nil
	}
}

// NewLoggingResponseInterceptor logs every incoming response.
func NewLoggingResponseInterceptor(logger Logger) ResponseInterceptor {
	return func(_ context.Context, req *http.Request, resp *http.Response) error {
		logger.Debug("received response", map[string]interface{}{
			"method": req.Method,
			"url":    req.URL.String(),
			"status": resp.StatusCode,
		})

		return nil
	}
}

// NewHeadersInterceptor sets static headers on every request.
func NewHeadersInterceptor(headers map[string]string) RequestInterceptor {
	return func(_ context.Context, req *http.Request) error {
		for key, value := range headers {
			req.Header.Set(key, value)
		}

		return nil
	}
}

// RateLimiter is a token bucket for client-side request throttling.
type RateLimiter struct {
	mu         sync.Mutex
	tokens     float64
	maxTokens  float64
	refillRate float64
	lastRefill time.Time
}

// NewRateLimiter returns a limiter allowing ratePerSecond sustained requests
// with the given burst capacity.
func NewRateLimiter(ratePerSecond float64, burst int) *RateLimiter {
	return &RateLimiter{
		tokens:     float64(burst),
		maxTokens:  float64(burst),
		refillRate: ratePerSecond,
		lastRefill: time.Now(),
	}
}

// Wait blocks until a token is available or the context is done.
func (l *RateLimiter) Wait(ctx context.Context) error {
	for {
		if l.take() {
			return nil
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("rate limiter wait: %w", ctx.Err())
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func (l *RateLimiter) take() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	l.tokens += now.Sub(l.lastRefill).Seconds() * l.refillRate
	if l.tokens > l.maxTokens {
		l.tokens = l.maxTokens
	}

	l.lastRefill = now

	if l.tokens >= 1 {
		l.tokens--
		return true
	}

	return false
}

// NewRateLimitInterceptor throttles outgoing requests through the limiter.
func NewRateLimitInterceptor(limiter *RateLimiter) RequestInterceptor {
	return func(ctx context.Context, _ *http.Request) error {
		return limiter.Wait(ctx)
	}
}

// EndpointMetrics aggregates request outcomes for one method and path.
type EndpointMetrics struct {
	Requests     int64
	Errors       int64
	TotalLatency time.Duration
}

// inflightTTL bounds how long a request start time is retained when the
// response interceptor never runs, as happens on transport failures.
const inflightTTL = time.Minute

// MetricsCollector records per-endpoint request counts, error counts and
// latency. Attach both interceptors to a chain to feed it.
type MetricsCollector struct {
	mu        sync.Mutex
	endpoints map[string]*EndpointMetrics
	inflight  map[string]time.Time
}

// NewMetricsCollector returns an empty collector.
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{
		endpoints: make(map[string]*EndpointMetrics),
		inflight:  make(map[string]time.Time),
	}
}

// RequestInterceptor marks the start of a request. Entries older than
// inflightTTL are evicted so requests that never see a response do not
// accumulate.
func (m *MetricsCollector) RequestInterceptor() RequestInterceptor {
	return func(_ context.Context, req *http.Request) error {
		requestID := req.Header.Get("X-Request-Id")

		m.mu.Lock()
		defer m.mu.Unlock()

		for id, start := range m.inflight {
			if time.Since(start) > inflightTTL {
				delete(m.inflight, id)
			}
		}

		if requestID != "" {
			m.inflight[requestID] = time.Now()
		}

		return nil
	}
}

// ResponseInterceptor records the outcome of a request.
func (m *MetricsCollector) ResponseInterceptor() ResponseInterceptor {
	return func(_ context.Context, req *http.Request, resp *http.Response) error {
		key := req.Method + " " + req.URL.Path
		requestID := req.Header.Get("X-Request-Id")

		m.mu.Lock()
		defer m.mu.Unlock()

		metrics, ok := m.endpoints[key]
		if !ok {
			metrics = &EndpointMetrics{}
			m.endpoints[key] = metrics
		}

		metrics.Requests++
		if resp.StatusCode >= http.StatusBadRequest {
			metrics.Errors++
		}

		if start, ok := m.inflight[requestID]; ok {
			metrics.TotalLatency += time.Since(start)
			delete(m.inflight, requestID)
		}

		return nil
	}
}

// Snapshot returns a copy of the collected metrics keyed by "METHOD /path".
func (m *MetricsCollector) Snapshot() map[string]EndpointMetrics {
	m.mu.Lock()
	defer m.mu.Unlock()

	snapshot := make(map[string]EndpointMetrics, len(m.endpoints))
	for key, metrics := range m.endpoints {
		snapshot[key] = *metrics
	}

	return snapshot
}
