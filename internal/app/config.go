package app

import (
	"time"

	"github.com/spf13/viper"

	"github.com/greenstem/retail-core/internal/platform/rpc"
)

type Config struct {
	Port         string
	LogMode      string
	ServiceName  string
	Environment  string
	AllowOrigins []string

	JWTSecretKey string

	PurchaseAddr    string
	UnitAddr        string
	ProductAddr     string
	PricingAddr     string
	InvoiceAddr     string
	ProcurementAddr string
	EmailAddr       string

	ClientTimeout    time.Duration
	ClientMaxRetries int

	AlertEmail     string
	DefaultStockID uint32

	RedisAddr     string
	RedisPassword string
	CacheTTL      time.Duration
}

func LoadConfig() Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_MODE", "development")
	v.SetDefault("SERVICE_NAME", "retail-core")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("ALLOW_ORIGINS", "http://localhost:3000")

	v.SetDefault("JWT_SECRET_KEY", "defaultsecret")

	v.SetDefault("SERVICE_ADDR_PURCHASE", "http://purchase:8080")
	v.SetDefault("SERVICE_ADDR_UNIT", "http://unit:8080")
	v.SetDefault("SERVICE_ADDR_PRODUCT", "http://product:8080")
	v.SetDefault("SERVICE_ADDR_PRICING", "http://pricing:8080")
	v.SetDefault("SERVICE_ADDR_INVOICE", "http://invoice:8080")
	v.SetDefault("SERVICE_ADDR_PROCUREMENT", "http://procurement:8080")
	v.SetDefault("SERVICE_ADDR_EMAIL", "http://email:8080")

	v.SetDefault("CLIENT_TIMEOUT_SECONDS", 30)
	v.SetDefault("CLIENT_MAX_RETRIES", 3)

	v.SetDefault("ALERT_EMAIL", "")
	v.SetDefault("DEFAULT_STOCK_ID", 1)

	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("CACHE_TTL_SECONDS", 300)

	return Config{
		Port:         v.GetString("PORT"),
		LogMode:      v.GetString("LOG_MODE"),
		ServiceName:  v.GetString("SERVICE_NAME"),
		Environment:  v.GetString("ENVIRONMENT"),
		AllowOrigins: v.GetStringSlice("ALLOW_ORIGINS"),

		JWTSecretKey: v.GetString("JWT_SECRET_KEY"),

		PurchaseAddr:    v.GetString("SERVICE_ADDR_PURCHASE"),
		UnitAddr:        v.GetString("SERVICE_ADDR_UNIT"),
		ProductAddr:     v.GetString("SERVICE_ADDR_PRODUCT"),
		PricingAddr:     v.GetString("SERVICE_ADDR_PRICING"),
		InvoiceAddr:     v.GetString("SERVICE_ADDR_INVOICE"),
		ProcurementAddr: v.GetString("SERVICE_ADDR_PROCUREMENT"),
		EmailAddr:       v.GetString("SERVICE_ADDR_EMAIL"),

		ClientTimeout:    time.Duration(v.GetInt("CLIENT_TIMEOUT_SECONDS")) * time.Second,
		ClientMaxRetries: v.GetInt("CLIENT_MAX_RETRIES"),

		AlertEmail:     v.GetString("ALERT_EMAIL"),
		DefaultStockID: v.GetUint32("DEFAULT_STOCK_ID"),

		RedisAddr:     v.GetString("REDIS_ADDR"),
		RedisPassword: v.GetString("REDIS_PASSWORD"),
		CacheTTL:      time.Duration(v.GetInt("CACHE_TTL_SECONDS")) * time.Second,
	}
}

func (c Config) clientConfig(baseURL string) rpc.Config {
	return rpc.Config{
		BaseURL:    baseURL,
		Timeout:    c.ClientTimeout,
		MaxRetries: c.ClientMaxRetries,
	}
}
