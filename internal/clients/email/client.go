package email

import (
	"context"
	"net/http"

	"github.com/greenstem/retail-core/internal/platform/logger"
	"github.com/greenstem/retail-core/internal/platform/rpc"
)

// Client sends mail through the email service. Whether a send failure is
// fatal is the caller's decision: operational alerts are best-effort,
// caller-blocking notifications are not.
type Client interface {
	Send(ctx context.Context, to, subject, body string) error
}

type client struct {
	rpc *rpc.Client
}

func New(log *logger.Logger, cfg rpc.Config) (Client, error) {
	rc, err := rpc.New(log, "email", cfg)
	if err != nil {
		return nil, err
	}
	return &client{rpc: rc}, nil
}

func (c *client) Send(ctx context.Context, to, subject, body string) error {
	req := struct {
		To      string `json:"to"`
		Subject string `json:"subject"`
		Body    string `json:"body"`
	}{to, subject, body}
	return c.rpc.Do(ctx, http.MethodPost, "/email/send", req, nil)
}
