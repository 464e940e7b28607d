package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config is shared by every binary in the system; each service reads the
// slice it needs. Peer URLs point at the owning service's API root.
type Config struct {
	Env       string        `env:"ENV,        default=development"`
	LogLevel  string        `env:"LOG_LEVEL,  default=info"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=24h"`

	Gateway  GatewayConfig
	Services ServicesConfig
	Peers    PeerConfig
	Mongo    MongoConfig
	Redis    RedisConfig
}

type GatewayConfig struct {
	Port       string        `env:"GATEWAY_PORT,        default=8080"`
	RateLimit  int           `env:"GATEWAY_RATE_LIMIT,  default=120"`
	RateWindow time.Duration `env:"GATEWAY_RATE_WINDOW, default=1m"`
}

type ServicesConfig struct {
	UserPort      string `env:"USER_SERVICE_PORT,      default=8700"`
	ProductPort   string `env:"PRODUCT_SERVICE_PORT,   default=8500"`
	OrderPort     string `env:"ORDER_SERVICE_PORT,     default=8300"`
	PaymentPort   string `env:"PAYMENT_SERVICE_PORT,   default=8400"`
	FavouritePort string `env:"FAVOURITE_SERVICE_PORT, default=8800"`
	ShippingPort  string `env:"SHIPPING_SERVICE_PORT,  default=8600"`
}

type PeerConfig struct {
	UserServiceURL      string `env:"USER_SERVICE_URL,      default=http://localhost:8700/api"`
	ProductServiceURL   string `env:"PRODUCT_SERVICE_URL,   default=http://localhost:8500/api"`
	OrderServiceURL     string `env:"ORDER_SERVICE_URL,     default=http://localhost:8300/api"`
	PaymentServiceURL   string `env:"PAYMENT_SERVICE_URL,   default=http://localhost:8400/api"`
	FavouriteServiceURL string `env:"FAVOURITE_SERVICE_URL, default=http://localhost:8800/api"`
	ShippingServiceURL  string `env:"SHIPPING_SERVICE_URL,  default=http://localhost:8600/api"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=commerce_system"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
