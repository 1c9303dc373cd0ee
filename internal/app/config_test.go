package app

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	if cfg.Port != "8080" {
		t.Fatalf("port: want=8080 got=%s", cfg.Port)
	}
	if cfg.DefaultStockID != 1 {
		t.Fatalf("default stock id: want=1 got=%d", cfg.DefaultStockID)
	}
	if cfg.ClientMaxRetries != 3 {
		t.Fatalf("client max retries: want=3 got=%d", cfg.ClientMaxRetries)
	}
	if cfg.ClientTimeout != 30*time.Second {
		t.Fatalf("client timeout: want=30s got=%s", cfg.ClientTimeout)
	}
	if cfg.PurchaseAddr == "" || cfg.UnitAddr == "" || cfg.EmailAddr == "" {
		t.Fatalf("service addrs: want non-empty defaults, got %+v", cfg)
	}
	if cfg.RedisAddr != "" {
		t.Fatalf("redis addr: want empty default, got %s", cfg.RedisAddr)
	}
}

func TestLoadConfigReadsEnv(t *testing.T) {
	t.Setenv("SERVICE_ADDR_PURCHASE", "http://purchase.test:9000")
	t.Setenv("DEFAULT_STOCK_ID", "4")
	t.Setenv("ALERT_EMAIL", "ops@example.com")

	cfg := LoadConfig()

	if cfg.PurchaseAddr != "http://purchase.test:9000" {
		t.Fatalf("purchase addr: want env value, got %s", cfg.PurchaseAddr)
	}
	if cfg.DefaultStockID != 4 {
		t.Fatalf("default stock id: want=4 got=%d", cfg.DefaultStockID)
	}
	if cfg.AlertEmail != "ops@example.com" {
		t.Fatalf("alert email: want env value, got %s", cfg.AlertEmail)
	}
}
