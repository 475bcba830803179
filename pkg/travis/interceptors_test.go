package travis_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trvs-io/travis-client/pkg/travis"
)

type recordingLogger struct {
	messages []string
}

func (l *recordingLogger) Debug(msg string, fields map[string]interface{}) {
	l.messages = append(l.messages, msg)
}
func (l *recordingLogger) Info(msg string, fields map[string]interface{})  {}
func (l *recordingLogger) Warn(msg string, fields map[string]interface{})  {}
func (l *recordingLogger) Error(msg string, fields map[string]interface{}) {}

func TestInterceptorChain_Order(t *testing.T) {
	t.Parallel()

	chain := travis.NewInterceptorChain()

	var order []string

	chain.AddRequestInterceptor(func(ctx context.Context, req *travis.Request) error {
		order = append(order, "first")

		return nil
	})
	chain.AddRequestInterceptor(func(ctx context.Context, req *travis.Request) error {
		order = append(order, "second")

		return nil
	})

	req := &travis.Request{Method: http.MethodGet, Path: "/builds"}
	require.NoError(t, chain.ExecuteRequestInterceptors(context.Background(), req))
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestInterceptorChain_StopsOnError(t *testing.T) {
	t.Parallel()

	chain := travis.NewInterceptorChain()

	chain.AddRequestInterceptor(func(ctx context.Context, req *travis.Request) error {
		return assert.AnError
	})

	reached := false
	chain.AddRequestInterceptor(func(ctx context.Context, req *travis.Request) error {
		reached = true

		return nil
	})

	err := chain.ExecuteRequestInterceptors(context.Background(), &travis.Request{})
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.False(t, reached)
}

func TestInterceptorChain_MutatesRequest(t *testing.T) {
	t.Parallel()

	chain := travis.NewInterceptorChain()
	chain.AddRequestInterceptor(func(ctx context.Context, req *travis.Request) error {
		req.Path = "/rewritten"

		return nil
	})

	req := &travis.Request{Method: http.MethodGet, Path: "/original"}
	require.NoError(t, chain.ExecuteRequestInterceptors(context.Background(), req))
	assert.Equal(t, "/rewritten", req.Path)
}

func TestLoggingInterceptors(t *testing.T) {
	t.Parallel()

	logger := &recordingLogger{}
	req := &travis.Request{Method: http.MethodGet, Path: "/builds"}
	resp := &travis.Response{StatusCode: http.StatusOK}

	require.NoError(t, travis.LoggingInterceptor(logger)(context.Background(), req))
	require.NoError(t, travis.LoggingResponseInterceptor(logger)(context.Background(), req, resp))

	assert.Equal(t, []string{"API Request", "API Response"}, logger.messages)
}

func TestRateLimitInterceptor_AllowsBurst(t *testing.T) {
	t.Parallel()

	interceptor := travis.RateLimitInterceptor(5)
	req := &travis.Request{Method: http.MethodGet, Path: "/builds"}

	for i := 0; i < 5; i++ {
		require.NoError(t, interceptor(context.Background(), req))
	}
}

func TestRateLimitInterceptor_CanceledContext(t *testing.T) {
	t.Parallel()

	interceptor := travis.RateLimitInterceptor(1)
	req := &travis.Request{Method: http.MethodGet, Path: "/builds"}

	// Drain the only token.
	require.NoError(t, interceptor(context.Background(), req))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := interceptor(ctx, req)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
