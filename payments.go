package paykit

import (
	"context"
	"fmt"
	"iter"
	"net/http"
	"time"
)

// Payment is a single charge against a customer.
type Payment struct {
	ID         string        `json:"id"`
	CustomerID string        `json:"customer_id"`
	Amount     int64         `json:"amount"`
	Currency   string        `json:"currency"`
	Status     PaymentStatus `json:"status"`
	Metadata   Metadata      `json:"metadata,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
}

type CreatePaymentRequest struct {
	CustomerID string   `json:"customer_id"`
	Amount     int64    `json:"amount"`
	Currency   string   `json:"currency"`
	Metadata   Metadata `json:"metadata,omitempty"`
}

func (r CreatePaymentRequest) Validate() error {
	if r.CustomerID == "" {
		return fmt.Errorf("%w: customer id is required", ErrValidation)
	}
	if r.Amount <= 0 {
		return fmt.Errorf("%w: amount must be a positive amount in minor units", ErrValidation)
	}
	if len(r.Currency) != 3 {
		return fmt.Errorf("%w: currency must be a three-letter ISO code", ErrValidation)
	}
	return nil
}

// PaymentsService creates and inspects payments.
type PaymentsService struct {
	client *Client
}

func (s *PaymentsService) Create(ctx context.Context, req CreatePaymentRequest) (*Payment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var out Payment
	if err := s.client.do(ctx, apiRequest{method: http.MethodPost, path: "/v1/payments", body: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *PaymentsService) Get(ctx context.Context, id string) (*Payment, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: payment id is required", ErrValidation)
	}
	var out Payment
	if err := s.client.do(ctx, apiRequest{method: http.MethodGet, path: "/v1/payments/" + id}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// List lazily iterates all payments. A pageSize of 0 uses DefaultPageSize.
func (s *PaymentsService) List(ctx context.Context, pageSize int) iter.Seq2[Payment, error] {
	return Iterate(ctx, pageSize, listPages[Payment](s.client, "/v1/payments"))
}
