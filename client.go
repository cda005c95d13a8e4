package paykit

import (
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/dmitrymomot/paykit/pkg/config"
	"github.com/dmitrymomot/paykit/pkg/ratelimit"
)

// Client talks to the Paykit API. It is immutable after construction and
// safe for concurrent use; all per-call state lives on the stack of the
// call itself.
type Client struct {
	apiKey            string
	baseURL           string
	userAgent         string
	headers           map[string]string
	httpClient        *http.Client
	codec             Codec
	logger            *slog.Logger
	timeout           time.Duration
	maxRetries        int
	initialRetryDelay time.Duration
	maxRetryDelay     time.Duration
	jitterFactor      float64
	respectRetryAfter bool
	tracker           *ratelimit.Tracker

	Customers     *CustomersService
	Products      *ProductsService
	Payments      *PaymentsService
	Subscriptions *SubscriptionsService
}

// New creates a client authenticated with the given organization access
// token.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	s := defaultSettings()
	for _, opt := range opts {
		opt(s)
	}

	baseURL, err := baseURLFor(s.baseURL, s.environment)
	if err != nil {
		return nil, err
	}

	userAgent := s.userAgent
	if userAgent == "" {
		userAgent = fmt.Sprintf("paykit-go/%s", Version)
	}

	httpClient := s.httpClient
	if httpClient == nil {
		httpClient = &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}

	logger := s.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	c := &Client{
		apiKey:            apiKey,
		baseURL:           baseURL,
		userAgent:         userAgent,
		headers:           s.headers,
		httpClient:        httpClient,
		codec:             s.codec,
		logger:            logger,
		timeout:           s.timeout,
		maxRetries:        s.maxRetries,
		initialRetryDelay: s.initialRetryDelay,
		maxRetryDelay:     s.maxRetryDelay,
		jitterFactor:      math.Min(math.Max(s.jitterFactor, 0), 1),
		respectRetryAfter: s.respectRetryAfter,
		tracker:           ratelimit.NewTracker(s.requestsPerMinute),
	}

	c.Customers = &CustomersService{client: c}
	c.Products = &ProductsService{client: c}
	c.Payments = &PaymentsService{client: c}
	c.Subscriptions = &SubscriptionsService{client: c}

	return c, nil
}

// NewFromConfig creates a client from a Config struct. Options are applied
// on top and win over the struct's values.
func NewFromConfig(cfg Config, opts ...Option) (*Client, error) {
	base := []Option{
		WithBaseURL(cfg.BaseURL),
		WithEnvironment(environmentOrDefault(cfg.Environment)),
		WithTimeout(cfg.Timeout),
		WithRetryPolicy(cfg.MaxRetries, cfg.InitialRetryDelay, cfg.MaxRetryDelay, cfg.JitterFactor),
		WithRequestsPerMinute(cfg.RequestsPerMinute),
		WithRespectRetryAfter(cfg.RespectRetryAfter),
		WithUserAgent(cfg.UserAgent),
	}
	return New(cfg.APIKey, append(base, opts...)...)
}

// FromEnv builds a client from PAYKIT_* environment variables, reading an
// optional .env file first.
func FromEnv(opts ...Option) (*Client, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	return NewFromConfig(cfg, opts...)
}

// RateLimit returns the current client-side request budget snapshot
// without consuming any of it.
func (c *Client) RateLimit() ratelimit.Result {
	return c.tracker.Status()
}

// BaseURL returns the resolved API host the client sends requests to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func environmentOrDefault(environment Environment) Environment {
	if environment == "" {
		return EnvironmentProduction
	}
	return environment
}
