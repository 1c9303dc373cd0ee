package pricing

import (
	"context"
	"net/http"

	"github.com/greenstem/retail-core/internal/domain"
	"github.com/greenstem/retail-core/internal/platform/logger"
	"github.com/greenstem/retail-core/internal/platform/rpc"
)

// Client serves retail price records from the pricing service.
type Client interface {
	GetPrice(ctx context.Context, sku uint32) (*domain.Price, error)
	GetPriceBulk(ctx context.Context, skus []uint32) ([]domain.Price, error)
}

type client struct {
	rpc *rpc.Client
}

func New(log *logger.Logger, cfg rpc.Config) (Client, error) {
	rc, err := rpc.New(log, "pricing", cfg)
	if err != nil {
		return nil, err
	}
	return &client{rpc: rc}, nil
}

func (c *client) GetPrice(ctx context.Context, sku uint32) (*domain.Price, error) {
	req := struct {
		Sku uint32 `json:"sku"`
	}{sku}
	var out domain.Price
	if err := c.rpc.Do(ctx, http.MethodPost, "/price/get", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) GetPriceBulk(ctx context.Context, skus []uint32) ([]domain.Price, error) {
	req := struct {
		Skus []uint32 `json:"skus"`
	}{skus}
	var out []domain.Price
	if err := c.rpc.Do(ctx, http.MethodPost, "/price/get_bulk", req, &out); err != nil {
		return nil, err
	}
	return out, nil
}
