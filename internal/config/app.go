package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type HTTPServer struct {
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type DbServer struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Pass     string `mapstructure:"pass"`
	Name     string `mapstructure:"name"`
	MaxConns int32  `mapstructure:"max_conns"`
}

func (config *DbServer) GetConnectionStr() string {
	return fmt.Sprintf(
		"user=%s password=%s host=%s port=%s dbname=%s sslmode=disable",
		config.User, config.Pass, config.Host, config.Port, config.Name,
	)
}

type HTTPClient struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

type Logging struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // text | json
}

type Storage struct {
	Driver  string `mapstructure:"driver"` // postgres | memory
	Migrate bool   `mapstructure:"migrate"`
}

type Rates struct {
	ProviderURL     string        `mapstructure:"provider_url"`
	Freshness       time.Duration `mapstructure:"freshness"`
	StaleCeiling    time.Duration `mapstructure:"stale_ceiling"`
	Baseline        string        `mapstructure:"baseline"` // fallback | previous
	RefreshInterval time.Duration `mapstructure:"refresh_interval"`
	HotCacheTTL     time.Duration `mapstructure:"hot_cache_ttl"`
}

type Purchases struct {
	Endpoint             string        `mapstructure:"endpoint"`
	HealthURL            string        `mapstructure:"health_url"`
	CheckInterval        time.Duration `mapstructure:"check_interval"`
	DefaultUserID        int64         `mapstructure:"default_user_id"`
	DefaultPaymentMethod string        `mapstructure:"default_payment_method"`
}

type Capabilities struct {
	Notifier       string `mapstructure:"notifier"` // log | none
	BackgroundSync bool   `mapstructure:"background_sync"`
}

type Prefs struct {
	Timezone            string        `mapstructure:"timezone"`
	WheelCooldown       time.Duration `mapstructure:"wheel_cooldown"`
	InstallPromptSnooze time.Duration `mapstructure:"install_prompt_snooze"`
}

type AppConfig struct {
	HTTPServer   HTTPServer   `mapstructure:"http_server"`
	DbServer     DbServer     `mapstructure:"db_server"`
	HTTPClient   HTTPClient   `mapstructure:"http_client"`
	Logging      Logging      `mapstructure:"logging"`
	Storage      Storage      `mapstructure:"storage"`
	Rates        Rates        `mapstructure:"rates"`
	Purchases    Purchases    `mapstructure:"purchases"`
	Capabilities Capabilities `mapstructure:"capabilities"`
	Prefs        Prefs        `mapstructure:"prefs"`
}

// Init loads .env (if present) and the YAML file named by CONFIG_PATH, config.yaml by default.
func Init() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}
	return Load(path)
}

func Load(path string) (*AppConfig, error) {
	var cfg AppConfig

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	setDefaults(v)
	bindEnv(v)

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http_server.port", "8080")
	v.SetDefault("http_server.shutdown_timeout", "10s")
	v.SetDefault("db_server.max_conns", 10)
	v.SetDefault("http_client.timeout_seconds", 10)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("storage.driver", "postgres")
	v.SetDefault("storage.migrate", true)
	v.SetDefault("rates.provider_url", "https://www.cbr-xml-daily.ru/daily_json.js")
	v.SetDefault("rates.freshness", "4h")
	v.SetDefault("rates.stale_ceiling", "24h")
	v.SetDefault("rates.baseline", "fallback")
	v.SetDefault("rates.refresh_interval", "6h")
	v.SetDefault("rates.hot_cache_ttl", "1m")
	v.SetDefault("purchases.check_interval", "30s")
	v.SetDefault("purchases.default_user_id", 1)
	v.SetDefault("purchases.default_payment_method", "card")
	v.SetDefault("capabilities.notifier", "log")
	v.SetDefault("capabilities.background_sync", true)
	v.SetDefault("prefs.timezone", "UTC")
	v.SetDefault("prefs.wheel_cooldown", "24h")
	v.SetDefault("prefs.install_prompt_snooze", "168h")
}

func bindEnv(v *viper.Viper) {
	_ = v.BindEnv("http_server.port", "HTTP_PORT")

	// db server env vars
	_ = v.BindEnv("db_server.host", "DB_HOST")
	_ = v.BindEnv("db_server.port", "DB_PORT")
	_ = v.BindEnv("db_server.user", "DB_USER")
	_ = v.BindEnv("db_server.pass", "DB_PASS")
	_ = v.BindEnv("db_server.name", "DB_NAME")
	_ = v.BindEnv("db_server.max_conns", "DB_MAX_CONNS")

	// http client env vars
	_ = v.BindEnv("http_client.timeout_seconds", "HTTP_CLIENT_TIMEOUT_SECONDS")

	_ = v.BindEnv("logging.level", "LOG_LEVEL")
	_ = v.BindEnv("storage.driver", "STORAGE_DRIVER")
	_ = v.BindEnv("rates.provider_url", "RATES_PROVIDER_URL")
	_ = v.BindEnv("rates.baseline", "RATES_BASELINE")
	_ = v.BindEnv("purchases.endpoint", "PURCHASES_ENDPOINT")
	_ = v.BindEnv("purchases.health_url", "PURCHASES_HEALTH_URL")
	_ = v.BindEnv("prefs.timezone", "PREFS_TIMEZONE")
}

func (c *AppConfig) validate() error {
	switch c.Storage.Driver {
	case "postgres", "memory":
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	switch c.Rates.Baseline {
	case "fallback", "previous":
	default:
		return fmt.Errorf("unknown rates baseline %q", c.Rates.Baseline)
	}
	if c.Purchases.Endpoint == "" {
		return errors.New("purchases endpoint is required")
	}
	if _, err := time.LoadLocation(c.Prefs.Timezone); err != nil {
		return fmt.Errorf("invalid prefs timezone: %w", err)
	}
	return nil
}

// Location returns the time zone daily rewards roll over in.
func (p Prefs) Location() *time.Location {
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
