package unit

import (
	"context"
	"net/http"

	"github.com/greenstem/retail-core/internal/domain"
	"github.com/greenstem/retail-core/internal/platform/logger"
	"github.com/greenstem/retail-core/internal/platform/rpc"
)

// Client talks to the stock-unit service. Locks and locations are owned
// there; this core only asks for transitions.
type Client interface {
	GetByID(ctx context.Context, unitID string) (*domain.Unit, error)
	// GetBulk returns only the units that exist; unknown ids are skipped.
	GetBulk(ctx context.Context, unitIDs []string) ([]domain.Unit, error)
	LockToCart(ctx context.Context, unitID, cartID string, actor uint32) error
	ReleaseLockFromCart(ctx context.Context, unitID, cartID string, actor uint32) error
	CloseCart(ctx context.Context, cartID string, actor uint32) error
	// CreateBulk returns the ids actually created, which may be fewer than
	// requested.
	CreateBulk(ctx context.Context, reqs []domain.UnitCreateRequest) ([]string, error)
}

type client struct {
	rpc *rpc.Client
}

func New(log *logger.Logger, cfg rpc.Config) (Client, error) {
	rc, err := rpc.New(log, "unit", cfg)
	if err != nil {
		return nil, err
	}
	return &client{rpc: rc}, nil
}

func (c *client) GetByID(ctx context.Context, unitID string) (*domain.Unit, error) {
	var u domain.Unit
	if err := c.rpc.Do(ctx, http.MethodGet, "/unit/"+unitID, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *client) GetBulk(ctx context.Context, unitIDs []string) ([]domain.Unit, error) {
	req := struct {
		UnitIDs []string `json:"unit_ids"`
	}{unitIDs}
	var units []domain.Unit
	if err := c.rpc.Do(ctx, http.MethodPost, "/unit/bulk", req, &units); err != nil {
		return nil, err
	}
	return units, nil
}

func (c *client) LockToCart(ctx context.Context, unitID, cartID string, actor uint32) error {
	req := struct {
		UnitID    string `json:"unit_id"`
		CartID    string `json:"cart_id"`
		CreatedBy uint32 `json:"created_by"`
	}{unitID, cartID, actor}
	return c.rpc.Do(ctx, http.MethodPut, "/unit/lock_to_cart", req, nil)
}

func (c *client) ReleaseLockFromCart(ctx context.Context, unitID, cartID string, actor uint32) error {
	req := struct {
		UnitID    string `json:"unit_id"`
		CartID    string `json:"cart_id"`
		CreatedBy uint32 `json:"created_by"`
	}{unitID, cartID, actor}
	return c.rpc.Do(ctx, http.MethodPut, "/unit/release_lock_from_cart", req, nil)
}

func (c *client) CloseCart(ctx context.Context, cartID string, actor uint32) error {
	req := struct {
		CartID    string `json:"cart_id"`
		CreatedBy uint32 `json:"created_by"`
	}{cartID, actor}
	return c.rpc.Do(ctx, http.MethodPut, "/unit/close_cart", req, nil)
}

func (c *client) CreateBulk(ctx context.Context, reqs []domain.UnitCreateRequest) ([]string, error) {
	var out struct {
		UnitIDs []string `json:"unit_ids"`
	}
	if err := c.rpc.Do(ctx, http.MethodPost, "/unit/create_bulk", reqs, &out); err != nil {
		return nil, err
	}
	return out.UnitIDs, nil
}
