package paykit

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// Codec is the serializer configuration owned by a client. It is fixed at
// construction; there is no process-wide JSON state to mutate.
type Codec struct {
	Marshal   func(v any) ([]byte, error)
	Unmarshal func(data []byte, v any) error
}

func defaultCodec() Codec {
	return Codec{
		Marshal:   json.Marshal,
		Unmarshal: json.Unmarshal,
	}
}

// settings collects everything New needs before the immutable Client is
// assembled.
type settings struct {
	baseURL           string
	environment       Environment
	timeout           time.Duration
	maxRetries        int
	initialRetryDelay time.Duration
	maxRetryDelay     time.Duration
	jitterFactor      float64
	requestsPerMinute int
	respectRetryAfter bool
	userAgent         string
	headers           map[string]string
	httpClient        *http.Client
	codec             Codec
	logger            *slog.Logger
}

func defaultSettings() *settings {
	return &settings{
		environment:       EnvironmentProduction,
		timeout:           defaultTimeout,
		maxRetries:        defaultMaxRetries,
		initialRetryDelay: defaultInitialRetryDelay,
		maxRetryDelay:     defaultMaxRetryDelay,
		jitterFactor:      defaultJitterFactor,
		requestsPerMinute: defaultRequestsPerMinute,
		respectRetryAfter: true,
		headers:           make(map[string]string),
		codec:             defaultCodec(),
	}
}

// Option configures a Client during construction.
type Option func(*settings)

// WithBaseURL sets an explicit API host, overriding the environment.
func WithBaseURL(baseURL string) Option {
	return func(s *settings) {
		if baseURL != "" {
			s.baseURL = baseURL
		}
	}
}

// WithEnvironment selects the production or sandbox host. Ignored when an
// explicit base URL is configured.
func WithEnvironment(environment Environment) Option {
	return func(s *settings) {
		s.environment = environment
	}
}

// WithTimeout sets the per-attempt HTTP timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(s *settings) {
		if timeout > 0 {
			s.timeout = timeout
		}
	}
}

// WithRetryPolicy configures the retry schedule: the number of retries
// after the initial attempt, the initial and maximum backoff delays, and
// the jitter factor (clamped to [0,1]).
func WithRetryPolicy(maxRetries int, initial, max time.Duration, jitter float64) Option {
	return func(s *settings) {
		if maxRetries >= 0 {
			s.maxRetries = maxRetries
		}
		if initial > 0 {
			s.initialRetryDelay = initial
		}
		if max > 0 {
			s.maxRetryDelay = max
		}
		s.jitterFactor = jitter
	}
}

// WithNoRetry disables retries entirely; every call gets a single attempt.
func WithNoRetry() Option {
	return func(s *settings) {
		s.maxRetries = 0
	}
}

// WithRequestsPerMinute sets the advisory client-side budget ceiling.
func WithRequestsPerMinute(limit int) Option {
	return func(s *settings) {
		if limit > 0 {
			s.requestsPerMinute = limit
		}
	}
}

// WithRespectRetryAfter controls whether a server-supplied Retry-After
// hint takes precedence over the client's own backoff schedule.
func WithRespectRetryAfter(respect bool) Option {
	return func(s *settings) {
		s.respectRetryAfter = respect
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(s *settings) {
		if userAgent != "" {
			s.userAgent = userAgent
		}
	}
}

// WithHeader adds a custom header to every request.
func WithHeader(key, value string) Option {
	return func(s *settings) {
		if key != "" && value != "" {
			s.headers[key] = value
		}
	}
}

// WithHTTPClient sets a custom HTTP client, useful for custom transports,
// proxies, or testing.
func WithHTTPClient(client *http.Client) Option {
	return func(s *settings) {
		if client != nil {
			s.httpClient = client
		}
	}
}

// WithCodec replaces the JSON serializer configuration.
func WithCodec(codec Codec) Option {
	return func(s *settings) {
		if codec.Marshal != nil && codec.Unmarshal != nil {
			s.codec = codec
		}
	}
}

// WithLogger sets the structured logger for retry and budget diagnostics.
// The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}
