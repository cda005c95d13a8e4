package paykit

import (
	"context"
	"fmt"
	"iter"
	"net/http"
	"time"
)

// Subscription is a recurring charge agreement between a customer and a
// product.
type Subscription struct {
	ID               string             `json:"id"`
	CustomerID       string             `json:"customer_id"`
	ProductID        string             `json:"product_id"`
	Status           SubscriptionStatus `json:"status"`
	Interval         Interval           `json:"interval"`
	CurrentPeriodEnd time.Time          `json:"current_period_end"`
	Metadata         Metadata           `json:"metadata,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
}

type CreateSubscriptionRequest struct {
	CustomerID string   `json:"customer_id"`
	ProductID  string   `json:"product_id"`
	Metadata   Metadata `json:"metadata,omitempty"`
}

func (r CreateSubscriptionRequest) Validate() error {
	if r.CustomerID == "" {
		return fmt.Errorf("%w: customer id is required", ErrValidation)
	}
	if r.ProductID == "" {
		return fmt.Errorf("%w: product id is required", ErrValidation)
	}
	return nil
}

// SubscriptionsService manages recurring subscriptions.
type SubscriptionsService struct {
	client *Client
}

func (s *SubscriptionsService) Create(ctx context.Context, req CreateSubscriptionRequest) (*Subscription, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var out Subscription
	if err := s.client.do(ctx, apiRequest{method: http.MethodPost, path: "/v1/subscriptions", body: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *SubscriptionsService) Get(ctx context.Context, id string) (*Subscription, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: subscription id is required", ErrValidation)
	}
	var out Subscription
	if err := s.client.do(ctx, apiRequest{method: http.MethodGet, path: "/v1/subscriptions/" + id}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Cancel stops a subscription at the end of the current billing period.
func (s *SubscriptionsService) Cancel(ctx context.Context, id string) (*Subscription, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: subscription id is required", ErrValidation)
	}
	var out Subscription
	if err := s.client.do(ctx, apiRequest{method: http.MethodPost, path: "/v1/subscriptions/" + id + "/cancel"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// List lazily iterates all subscriptions. A pageSize of 0 uses
// DefaultPageSize.
func (s *SubscriptionsService) List(ctx context.Context, pageSize int) iter.Seq2[Subscription, error] {
	return Iterate(ctx, pageSize, listPages[Subscription](s.client, "/v1/subscriptions"))
}
