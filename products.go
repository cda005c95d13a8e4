package paykit

import (
	"context"
	"fmt"
	"iter"
	"net/http"
	"time"
)

// Product is a sellable item with a fixed price.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       int64     `json:"price"`
	Currency    string    `json:"currency"`
	Interval    Interval  `json:"interval,omitempty"`
	Metadata    Metadata  `json:"metadata,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateProductRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Price       int64    `json:"price"`
	Currency    string   `json:"currency"`
	Interval    Interval `json:"interval,omitempty"`
	Metadata    Metadata `json:"metadata,omitempty"`
}

func (r CreateProductRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: product name is required", ErrValidation)
	}
	if r.Price <= 0 {
		return fmt.Errorf("%w: price must be a positive amount in minor units", ErrValidation)
	}
	if len(r.Currency) != 3 {
		return fmt.Errorf("%w: currency must be a three-letter ISO code", ErrValidation)
	}
	return nil
}

// ProductsService manages the product catalogue.
type ProductsService struct {
	client *Client
}

func (s *ProductsService) Create(ctx context.Context, req CreateProductRequest) (*Product, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var out Product
	if err := s.client.do(ctx, apiRequest{method: http.MethodPost, path: "/v1/products", body: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ProductsService) Get(ctx context.Context, id string) (*Product, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: product id is required", ErrValidation)
	}
	var out Product
	if err := s.client.do(ctx, apiRequest{method: http.MethodGet, path: "/v1/products/" + id}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ProductsService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: product id is required", ErrValidation)
	}
	return s.client.do(ctx, apiRequest{method: http.MethodDelete, path: "/v1/products/" + id}, nil)
}

// List lazily iterates all products. A pageSize of 0 uses DefaultPageSize.
func (s *ProductsService) List(ctx context.Context, pageSize int) iter.Seq2[Product, error] {
	return Iterate(ctx, pageSize, listPages[Product](s.client, "/v1/products"))
}
