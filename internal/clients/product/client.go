package product

import (
	"context"
	"net/http"

	"github.com/greenstem/retail-core/internal/domain"
	"github.com/greenstem/retail-core/internal/platform/logger"
	"github.com/greenstem/retail-core/internal/platform/rpc"
)

// Client serves catalog records from the product service.
type Client interface {
	GetSku(ctx context.Context, sku uint32) (*domain.Sku, error)
	GetSkuBulk(ctx context.Context, skus []uint32) ([]domain.Sku, error)
}

type client struct {
	rpc *rpc.Client
}

func New(log *logger.Logger, cfg rpc.Config) (Client, error) {
	rc, err := rpc.New(log, "product", cfg)
	if err != nil {
		return nil, err
	}
	return &client{rpc: rc}, nil
}

func (c *client) GetSku(ctx context.Context, sku uint32) (*domain.Sku, error) {
	req := struct {
		SkuID uint32 `json:"sku_id"`
	}{sku}
	var out domain.Sku
	if err := c.rpc.Do(ctx, http.MethodPost, "/sku/get", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) GetSkuBulk(ctx context.Context, skus []uint32) ([]domain.Sku, error) {
	req := struct {
		SkuIDs []uint32 `json:"sku_ids"`
	}{skus}
	var out []domain.Sku
	if err := c.rpc.Do(ctx, http.MethodPost, "/sku/get_bulk", req, &out); err != nil {
		return nil, err
	}
	return out, nil
}
