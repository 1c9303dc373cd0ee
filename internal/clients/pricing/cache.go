package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/greenstem/retail-core/internal/domain"
	"github.com/greenstem/retail-core/internal/platform/logger"
)

// cached is a read-through cache in front of the pricing service for single
// price lookups. Bulk reads bypass the cache: the reconciler wants the
// service's current truth when it commits units. Cache failures degrade to
// the inner client.
type cached struct {
	log   *logger.Logger
	inner Client
	rdb   *goredis.Client
	ttl   time.Duration
}

func NewCached(log *logger.Logger, inner Client, rdb *goredis.Client, ttl time.Duration) Client {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &cached{
		log:   log.With("client", "pricing-cache"),
		inner: inner,
		rdb:   rdb,
		ttl:   ttl,
	}
}

func priceKey(sku uint32) string { return fmt.Sprintf("price:%d", sku) }

func (c *cached) GetPrice(ctx context.Context, sku uint32) (*domain.Price, error) {
	if raw, err := c.rdb.Get(ctx, priceKey(sku)).Bytes(); err == nil {
		var p domain.Price
		if json.Unmarshal(raw, &p) == nil {
			return &p, nil
		}
	}

	p, err := c.inner.GetPrice(ctx, sku)
	if err != nil {
		return nil, err
	}
	if raw, err := json.Marshal(p); err == nil {
		if err := c.rdb.Set(ctx, priceKey(sku), raw, c.ttl).Err(); err != nil {
			c.log.Warn("price cache set failed", "sku", sku, "error", err)
		}
	}
	return p, nil
}

func (c *cached) GetPriceBulk(ctx context.Context, skus []uint32) ([]domain.Price, error) {
	return c.inner.GetPriceBulk(ctx, skus)
}
