package paykit

import (
	"context"
	"fmt"
	"iter"
	"net/http"
	"strings"
	"time"
)

// Customer is a buyer record.
type Customer struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Metadata  Metadata  `json:"metadata,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateCustomerRequest struct {
	Email    string   `json:"email"`
	Name     string   `json:"name,omitempty"`
	Metadata Metadata `json:"metadata,omitempty"`
}

func (r CreateCustomerRequest) Validate() error {
	if r.Email == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	if !strings.Contains(r.Email, "@") {
		return fmt.Errorf("%w: email %q is not a valid address", ErrValidation, r.Email)
	}
	return nil
}

type UpdateCustomerRequest struct {
	Email    string   `json:"email,omitempty"`
	Name     string   `json:"name,omitempty"`
	Metadata Metadata `json:"metadata,omitempty"`
}

func (r UpdateCustomerRequest) Validate() error {
	if r.Email != "" && !strings.Contains(r.Email, "@") {
		return fmt.Errorf("%w: email %q is not a valid address", ErrValidation, r.Email)
	}
	return nil
}

// CustomersService manages customer records.
type CustomersService struct {
	client *Client
}

func (s *CustomersService) Create(ctx context.Context, req CreateCustomerRequest) (*Customer, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var out Customer
	if err := s.client.do(ctx, apiRequest{method: http.MethodPost, path: "/v1/customers", body: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *CustomersService) Get(ctx context.Context, id string) (*Customer, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: customer id is required", ErrValidation)
	}
	var out Customer
	if err := s.client.do(ctx, apiRequest{method: http.MethodGet, path: "/v1/customers/" + id}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *CustomersService) Update(ctx context.Context, id string, req UpdateCustomerRequest) (*Customer, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: customer id is required", ErrValidation)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var out Customer
	if err := s.client.do(ctx, apiRequest{method: http.MethodPatch, path: "/v1/customers/" + id, body: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// List lazily iterates all customers. A pageSize of 0 uses DefaultPageSize.
func (s *CustomersService) List(ctx context.Context, pageSize int) iter.Seq2[Customer, error] {
	return Iterate(ctx, pageSize, listPages[Customer](s.client, "/v1/customers"))
}
