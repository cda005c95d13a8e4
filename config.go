package paykit

import (
	"fmt"
	"time"
)

// Version is the client library version, reported in the User-Agent header.
const Version = "0.3.0"

// Environment selects which Paykit API host the client talks to. It is
// mutually exclusive with an explicit base URL; when both are configured,
// the explicit URL wins.
type Environment string

const (
	EnvironmentProduction Environment = "production"
	EnvironmentSandbox    Environment = "sandbox"
)

const (
	productionBaseURL = "https://api.paykit.com"
	sandboxBaseURL    = "https://sandbox-api.paykit.com"
)

const (
	defaultTimeout           = 30 * time.Second
	defaultMaxRetries        = 3
	defaultInitialRetryDelay = time.Second
	defaultMaxRetryDelay     = 30 * time.Second
	defaultJitterFactor      = 0.1
	defaultRequestsPerMinute = 600
)

// Config holds client configuration, loadable from the environment via
// FromEnv. Values are copied into the Client at construction; the Client
// never reads the struct afterwards.
type Config struct {
	// APIKey is the organization access token used as the bearer
	// credential on every request.
	APIKey string `env:"PAYKIT_API_KEY,required"`

	// BaseURL overrides the host derived from Environment.
	BaseURL string `env:"PAYKIT_BASE_URL"`

	// Environment picks the production or sandbox host.
	Environment Environment `env:"PAYKIT_ENVIRONMENT" envDefault:"production"`

	// Timeout applies per HTTP attempt, not to a whole retry sequence.
	Timeout time.Duration `env:"PAYKIT_TIMEOUT" envDefault:"30s"`

	// MaxRetries bounds retry attempts; total attempts are 1+MaxRetries.
	MaxRetries int `env:"PAYKIT_MAX_RETRIES" envDefault:"3"`

	InitialRetryDelay time.Duration `env:"PAYKIT_INITIAL_RETRY_DELAY" envDefault:"1s"`
	MaxRetryDelay     time.Duration `env:"PAYKIT_MAX_RETRY_DELAY" envDefault:"30s"`

	// JitterFactor is clamped to [0,1].
	JitterFactor float64 `env:"PAYKIT_JITTER_FACTOR" envDefault:"0.1"`

	// RequestsPerMinute is the advisory client-side budget ceiling.
	RequestsPerMinute int `env:"PAYKIT_REQUESTS_PER_MINUTE" envDefault:"600"`

	// RespectRetryAfter makes the pipeline prefer a server-supplied
	// Retry-After hint over its own backoff schedule.
	RespectRetryAfter bool `env:"PAYKIT_RESPECT_RETRY_AFTER" envDefault:"true"`

	// UserAgent overrides the default "paykit-go/<version>".
	UserAgent string `env:"PAYKIT_USER_AGENT"`
}

// baseURLFor resolves the effective base URL from an explicit override and
// an environment, enforcing that the override always wins.
func baseURLFor(explicit string, environment Environment) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	switch environment {
	case EnvironmentProduction, "":
		return productionBaseURL, nil
	case EnvironmentSandbox:
		return sandboxBaseURL, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidEnvironment, environment)
	}
}
