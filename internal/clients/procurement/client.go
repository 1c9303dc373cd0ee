package procurement

import (
	"context"
	"net/http"

	"github.com/greenstem/retail-core/internal/domain"
	"github.com/greenstem/retail-core/internal/platform/logger"
	"github.com/greenstem/retail-core/internal/platform/rpc"
)

// Client talks to the procurement service, which owns procurement records and
// their status machine.
type Client interface {
	GetByID(ctx context.Context, procurementID uint32) (*domain.Procurement, error)
	SetStatus(ctx context.Context, procurementID uint32, status domain.ProcurementStatus, actor uint32) (*domain.Procurement, error)
}

type client struct {
	rpc *rpc.Client
}

func New(log *logger.Logger, cfg rpc.Config) (Client, error) {
	rc, err := rpc.New(log, "procurement", cfg)
	if err != nil {
		return nil, err
	}
	return &client{rpc: rc}, nil
}

func (c *client) GetByID(ctx context.Context, procurementID uint32) (*domain.Procurement, error) {
	req := struct {
		ProcurementID uint32 `json:"procurement_id"`
	}{procurementID}
	var out domain.Procurement
	if err := c.rpc.Do(ctx, http.MethodPost, "/procurement/get", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) SetStatus(ctx context.Context, procurementID uint32, status domain.ProcurementStatus, actor uint32) (*domain.Procurement, error) {
	req := struct {
		ProcurementID uint32                   `json:"procurement_id"`
		Status        domain.ProcurementStatus `json:"status"`
		CreatedBy     uint32                   `json:"created_by"`
	}{procurementID, status, actor}
	var out domain.Procurement
	if err := c.rpc.Do(ctx, http.MethodPut, "/procurement/set_status", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
