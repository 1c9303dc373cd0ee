package invoice

import (
	"context"
	"net/http"

	"github.com/greenstem/retail-core/internal/domain"
	"github.com/greenstem/retail-core/internal/platform/apierr"
	"github.com/greenstem/retail-core/internal/platform/logger"
	"github.com/greenstem/retail-core/internal/platform/rpc"
)

// Client starts invoice generation at the invoice service.
type Client interface {
	CreateNew(ctx context.Context, req domain.InvoiceRequest) (string, error)
}

type client struct {
	rpc *rpc.Client
}

func New(log *logger.Logger, cfg rpc.Config) (Client, error) {
	rc, err := rpc.New(log, "invoice", cfg)
	if err != nil {
		return nil, err
	}
	return &client{rpc: rc}, nil
}

func (c *client) CreateNew(ctx context.Context, req domain.InvoiceRequest) (string, error) {
	var out struct {
		ID string `json:"id"`
	}
	if err := c.rpc.Do(ctx, http.MethodPost, "/invoice/create_new", req, &out); err != nil {
		return "", err
	}
	if out.ID == "" {
		return "", apierr.Internal("invoice service returned no invoice id")
	}
	return out.ID, nil
}
