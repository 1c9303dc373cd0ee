package product

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/greenstem/retail-core/internal/domain"
	"github.com/greenstem/retail-core/internal/platform/logger"
)

// cached is a read-through cache for single SKU lookups. Bulk reads bypass
// it; see the pricing cache for the reasoning.
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
		log:   log.With("client", "product-cache"),
		inner: inner,
		rdb:   rdb,
		ttl:   ttl,
	}
}

func skuKey(sku uint32) string { return fmt.Sprintf("sku:%d", sku) }

func (c *cached) GetSku(ctx context.Context, sku uint32) (*domain.Sku, error) {
	if raw, err := c.rdb.Get(ctx, skuKey(sku)).Bytes(); err == nil {
		var s domain.Sku
		if json.Unmarshal(raw, &s) == nil {
			return &s, nil
		}
	}

	s, err := c.inner.GetSku(ctx, sku)
	if err != nil {
		return nil, err
	}
	if raw, err := json.Marshal(s); err == nil {
		if err := c.rdb.Set(ctx, skuKey(sku), raw, c.ttl).Err(); err != nil {
			c.log.Warn("sku cache set failed", "sku", sku, "error", err)
		}
	}
	return s, nil
}

func (c *cached) GetSkuBulk(ctx context.Context, skus []uint32) ([]domain.Sku, error) {
	return c.inner.GetSkuBulk(ctx, skus)
}
