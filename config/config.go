package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type HTTP struct {
	Addr              string        `default:":8080" envconfig:"ADDR"`
	GinMode           string        `default:"debug" envconfig:"GIN_MODE"`
	ReadTimeout       time.Duration `default:"10s" envconfig:"READ_TIMEOUT"`
	WriteTimeout      time.Duration `default:"10s" envconfig:"WRITE_TIMEOUT"`
	ReadHeaderTimeout time.Duration `default:"5s" envconfig:"READ_HEADER_TIMEOUT"`
	IdleTimeout       time.Duration `default:"60s" envconfig:"IDLE_TIMEOUT"`
	GracefulTimeout   time.Duration `default:"5s" envconfig:"GRACEFUL_TIMEOUT"`
}

// Backend — the external Apps-Script book service. Order submission
// gets a longer timeout than the lookup calls, matching the backend's
// slower write path.
type Backend struct {
	URL          string        `envconfig:"URL"`
	APIKey       string        `default:"LRU_WebApp_Key_2025" envconfig:"API_KEY"`
	Timeout      time.Duration `default:"30s" envconfig:"TIMEOUT"`
	OrderTimeout time.Duration `default:"45s" envconfig:"ORDER_TIMEOUT"`
}

// Cache — TTLs for the read-mostly backend lookups. PriceTTL of 0
// leaves delivery-price lookups uncached (the historical behavior);
// set it to enable caching keyed by normalized area text.
type Cache struct {
	Capacity int           `default:"512" envconfig:"CAPACITY"`
	AreasTTL time.Duration `default:"3h" envconfig:"AREAS_TTL"`
	PromoTTL time.Duration `default:"1h" envconfig:"PROMO_TTL"`
	PriceTTL time.Duration `default:"0" envconfig:"PRICE_TTL"`
}

type Cart struct {
	Dir string `default:"./data/carts" envconfig:"DIR"`
}

type Checkout struct {
	// Delay between a successful order and the automatic checkout close
	// plus catalog reload.
	AutoClose time.Duration `default:"7s" envconfig:"AUTO_CLOSE"`
}

type Logger struct {
	IsProd bool `default:"false" envconfig:"IS_PROD"`
}

type Tracing struct {
	Enabled     bool    `default:"false" envconfig:"OTEL_ENABLED"`
	ServiceName string  `default:"little-readers" envconfig:"OTEL_SERVICE_NAME"`
	Endpoint    string  `default:"jaeger:4318" envconfig:"OTEL_ENDPOINT"`
	SampleRatio float64 `default:"1" envconfig:"OTEL_SAMPLE_RATIO"`
}

type Config struct {
	HTTP     HTTP
	Backend  Backend
	Cache    Cache
	Cart     Cart
	Checkout Checkout
	Logger   Logger
	Tracing  Tracing
}

// Load — reads configuration from LRP_* environment variables.
func Load() (Config, error) {
	return LoadWithPrefix("LRP")
}

// LoadWithPrefix — same as Load with a custom prefix; used by tests to
// isolate environments.
func LoadWithPrefix(prefix string) (Config, error) {
	var c Config
	if err := envconfig.Process(prefix, &c); err != nil {
		return Config{}, err
	}
	return c, nil
}
