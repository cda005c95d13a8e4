package paykit_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paykit"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("empty API key rejected", func(t *testing.T) {
		t.Parallel()
		_, err := paykit.New("")
		require.ErrorIs(t, err, paykit.ErrMissingAPIKey)
	})

	t.Run("defaults to production host", func(t *testing.T) {
		t.Parallel()
		client, err := paykit.New("sk_live_key")
		require.NoError(t, err)
		assert.Equal(t, "https://api.paykit.com", client.BaseURL())
	})

	t.Run("sandbox environment", func(t *testing.T) {
		t.Parallel()
		client, err := paykit.New("sk_test_key", paykit.WithEnvironment(paykit.EnvironmentSandbox))
		require.NoError(t, err)
		assert.Equal(t, "https://sandbox-api.paykit.com", client.BaseURL())
	})

	t.Run("explicit base URL wins over environment", func(t *testing.T) {
		t.Parallel()
		client, err := paykit.New("sk_test_key",
			paykit.WithEnvironment(paykit.EnvironmentSandbox),
			paykit.WithBaseURL("https://proxy.internal:8443"),
		)
		require.NoError(t, err)
		assert.Equal(t, "https://proxy.internal:8443", client.BaseURL())

		// Option order must not matter.
		client, err = paykit.New("sk_test_key",
			paykit.WithBaseURL("https://proxy.internal:8443"),
			paykit.WithEnvironment(paykit.EnvironmentSandbox),
		)
		require.NoError(t, err)
		assert.Equal(t, "https://proxy.internal:8443", client.BaseURL())
	})

	t.Run("invalid environment rejected", func(t *testing.T) {
		t.Parallel()
		_, err := paykit.New("sk_test_key", paykit.WithEnvironment("staging"))
		require.ErrorIs(t, err, paykit.ErrInvalidEnvironment)
	})

	t.Run("services are wired", func(t *testing.T) {
		t.Parallel()
		client, err := paykit.New("sk_test_key")
		require.NoError(t, err)
		assert.NotNil(t, client.Customers)
		assert.NotNil(t, client.Products)
		assert.NotNil(t, client.Payments)
		assert.NotNil(t, client.Subscriptions)
	})

	t.Run("budget tracker reflects configured ceiling", func(t *testing.T) {
		t.Parallel()
		client, err := paykit.New("sk_test_key", paykit.WithRequestsPerMinute(42))
		require.NoError(t, err)
		assert.Equal(t, 42, client.RateLimit().Limit)
	})
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	cfg := paykit.Config{
		APIKey:            "sk_cfg_key",
		Environment:       paykit.EnvironmentSandbox,
		Timeout:           5 * time.Second,
		MaxRetries:        1,
		InitialRetryDelay: 100 * time.Millisecond,
		MaxRetryDelay:     time.Second,
		JitterFactor:      0.2,
		RequestsPerMinute: 120,
		RespectRetryAfter: true,
	}

	client, err := paykit.NewFromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, "https://sandbox-api.paykit.com", client.BaseURL())
	assert.Equal(t, 120, client.RateLimit().Limit)

	t.Run("options override the struct", func(t *testing.T) {
		t.Parallel()
		client, err := paykit.NewFromConfig(cfg, paykit.WithBaseURL("https://override.example.com"))
		require.NoError(t, err)
		assert.Equal(t, "https://override.example.com", client.BaseURL())
	})

	t.Run("missing API key rejected", func(t *testing.T) {
		t.Parallel()
		_, err := paykit.NewFromConfig(paykit.Config{})
		require.ErrorIs(t, err, paykit.ErrMissingAPIKey)
	})
}

func TestFromEnv(t *testing.T) {
	t.Run("builds a client from PAYKIT_ variables", func(t *testing.T) {
		t.Setenv("PAYKIT_API_KEY", "sk_env_key")
		t.Setenv("PAYKIT_ENVIRONMENT", "sandbox")
		t.Setenv("PAYKIT_REQUESTS_PER_MINUTE", "99")

		client, err := paykit.FromEnv()
		require.NoError(t, err)
		assert.Equal(t, "https://sandbox-api.paykit.com", client.BaseURL())
		assert.Equal(t, 99, client.RateLimit().Limit)
	})

	t.Run("missing key fails", func(t *testing.T) {
		t.Setenv("PAYKIT_API_KEY", "")
		_, err := paykit.FromEnv()
		require.Error(t, err)
	})
}
