package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug       bool   `mapstructure:"debug"`
	Environment string `mapstructure:"environment"`
	SentryDSN   string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // Maximum amount of time a connection may be reused (e.g., "5m", "1h")
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // Maximum amount of time a connection may be idle (e.g., "10m", "30m")
}

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
}

// RedisConfig holds the routing cache configuration
// An empty Addr disables the cache
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
	// ScanRatePerMinute limits scans per client IP, 0 disables the limiter
	ScanRatePerMinute int `mapstructure:"scan_rate_per_minute"`
	// ScanRateLocalFallback limits per process while Redis fails instead of failing open
	ScanRateLocalFallback bool `mapstructure:"scan_rate_local_fallback"`
}

// TemporalConfig holds Temporal configuration
type TemporalConfig struct {
	HostPort                           string  `mapstructure:"host_port"`
	Namespace                          string  `mapstructure:"namespace"`
	FulfillmentTaskQueue               string  `mapstructure:"fulfillment_task_queue"`
	MaxConcurrentActivityExecutionSize int     `mapstructure:"max_concurrent_activity_execution_size"`
	WorkerActivitiesPerSecond          float64 `mapstructure:"worker_activities_per_second"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
	// AllowedOrigins restricts CORS on the management API, empty allows all origins
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string `mapstructure:"jwt_public_key"`
}

// WorkerConfig holds worker pool configuration
type WorkerConfig struct {
	WorkerPoolSize  int `mapstructure:"pool_size"`
	WorkerQueueSize int `mapstructure:"queue_size"`
}

// RoutingConfig holds the URLs used when a scan cannot be routed to a destination
type RoutingConfig struct {
	SiteURL           string `mapstructure:"site_url"`
	NotFoundURL       string `mapstructure:"not_found_url"`
	DefaultExpiredURL string `mapstructure:"default_expired_url"`
}

// PaymentsConfig holds the inbound payment webhook configuration
type PaymentsConfig struct {
	Provider           string        `mapstructure:"provider"`
	WebhookSecret      string        `mapstructure:"webhook_secret"`
	SignatureTolerance time.Duration `mapstructure:"signature_tolerance"`
}

// ProvisioningConfig holds event provisioning defaults
type ProvisioningConfig struct {
	DefaultContentTTLDays int    `mapstructure:"default_content_ttl_days"`
	DefaultTimezone       string `mapstructure:"default_timezone"`
}

// QuickStartConfig holds the quick start package defaults
type QuickStartConfig struct {
	DefaultTotalDuration time.Duration `mapstructure:"default_total_duration"`
	MaxChallenges        int           `mapstructure:"max_challenges"`
}

// PrintProviderConfig holds the print-on-demand API configuration
type PrintProviderConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	StoreID string        `mapstructure:"store_id"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// FulfillmentSweeperConfig holds configuration for the fulfillment retry sweeper
type FulfillmentSweeperConfig struct {
	Interval   time.Duration `mapstructure:"interval"`
	BatchSize  int           `mapstructure:"batch_size"`
	RetryAfter time.Duration `mapstructure:"retry_after"`
	Worker     WorkerConfig  `mapstructure:"worker"`
}

// ExpirySweeperConfig holds configuration for the event expiry sweeper
type ExpirySweeperConfig struct {
	Interval time.Duration `mapstructure:"interval"`
}

// APIConfig holds configuration for API server
type APIConfig struct {
	BaseConfig   `mapstructure:",squash"`
	Server       ServerConfig       `mapstructure:"server"`
	Database     DatabaseConfig     `mapstructure:"database"`
	Temporal     TemporalConfig     `mapstructure:"temporal"`
	NATS         NATSConfig         `mapstructure:"nats"`
	Redis        RedisConfig        `mapstructure:"redis"`
	Auth         AuthConfig         `mapstructure:"auth"`
	Routing      RoutingConfig      `mapstructure:"routing"`
	Payments     PaymentsConfig     `mapstructure:"payments"`
	Provisioning ProvisioningConfig `mapstructure:"provisioning"`
	QuickStart   QuickStartConfig   `mapstructure:"quick_start"`
	ScanRecorder WorkerConfig       `mapstructure:"scan_recorder"`
}

// WorkerFulfillmentConfig holds configuration for worker-fulfillment
type WorkerFulfillmentConfig struct {
	BaseConfig    `mapstructure:",squash"`
	Database      DatabaseConfig      `mapstructure:"database"`
	Temporal      TemporalConfig      `mapstructure:"temporal"`
	PrintProvider PrintProviderConfig `mapstructure:"print_provider"`
}

// SweeperConfig holds configuration for the sweeper program
type SweeperConfig struct {
	BaseConfig         `mapstructure:",squash"`
	Database           DatabaseConfig           `mapstructure:"database"`
	Temporal           TemporalConfig           `mapstructure:"temporal"`
	FulfillmentSweeper FulfillmentSweeperConfig `mapstructure:"fulfillment_sweeper"`
	ExpirySweeper      ExpirySweeperConfig      `mapstructure:"expiry_sweeper"`
}

// LoadAPIConfig loads configuration for API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("environment", "development")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 120)
	setDatabaseDefaults(v)
	setTemporalDefaults(v)
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "QR_ROUTER_EVENTS")
	v.SetDefault("nats.connection_name", "qr-router-api")
	v.SetDefault("redis.cache_ttl", "30s")
	v.SetDefault("redis.scan_rate_per_minute", 120)
	v.SetDefault("routing.site_url", "http://localhost:3000")
	v.SetDefault("payments.provider", "stripe")
	v.SetDefault("payments.signature_tolerance", "5m")
	v.SetDefault("provisioning.default_content_ttl_days", 30)
	v.SetDefault("provisioning.default_timezone", "UTC")
	v.SetDefault("quick_start.default_total_duration", "4h")
	v.SetDefault("quick_start.max_challenges", 50)
	v.SetDefault("scan_recorder.pool_size", 16)
	v.SetDefault("scan_recorder.queue_size", 4096)

	if err := readInConfig(v); err != nil {
		return nil, err
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.Routing.applyDefaults()

	if config.Payments.WebhookSecret == "" {
		return nil, errors.New("payments.webhook_secret is required")
	}

	return &config, nil
}

// LoadWorkerFulfillmentConfig loads configuration for worker-fulfillment
func LoadWorkerFulfillmentConfig(configFile string, envPath string) (*WorkerFulfillmentConfig, error) {
	v := configureViper("worker-fulfillment", configFile, envPath)

	// Set defaults
	setDatabaseDefaults(v)
	setTemporalDefaults(v)
	v.SetDefault("print_provider.base_url", "https://api.printful.com")
	v.SetDefault("print_provider.timeout", "30s")

	if err := readInConfig(v); err != nil {
		return nil, err
	}

	var config WorkerFulfillmentConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// LoadSweeperConfig loads configuration for the sweeper program
func LoadSweeperConfig(configFile string, envPath string) (*SweeperConfig, error) {
	v := configureViper("sweeper", configFile, envPath)

	// Set defaults
	setDatabaseDefaults(v)
	setTemporalDefaults(v)
	v.SetDefault("database.max_open_conns", 5)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("fulfillment_sweeper.interval", "5m")
	v.SetDefault("fulfillment_sweeper.batch_size", 50)
	v.SetDefault("fulfillment_sweeper.retry_after", "15m")
	v.SetDefault("fulfillment_sweeper.worker.pool_size", 5)
	v.SetDefault("fulfillment_sweeper.worker.queue_size", 50)
	v.SetDefault("expiry_sweeper.interval", "10m")

	if err := readInConfig(v); err != nil {
		return nil, err
	}

	var cfg SweeperConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate required fields
	if cfg.Database.Host == "" {
		return nil, errors.New("database.host is required")
	}
	if cfg.Database.DBName == "" {
		return nil, errors.New("database.dbname is required")
	}

	return &cfg, nil
}

func setDatabaseDefaults(v *viper.Viper) {
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.conn_max_lifetime", "5m")
	v.SetDefault("database.conn_max_idle_time", "10m")
}

func setTemporalDefaults(v *viper.Viper) {
	v.SetDefault("temporal.host_port", "localhost:7233")
	v.SetDefault("temporal.namespace", "default")
	v.SetDefault("temporal.fulfillment_task_queue", "print-fulfillment")
	v.SetDefault("temporal.max_concurrent_activity_execution_size", 20)
	v.SetDefault("temporal.worker_activities_per_second", 10)
}

// readInConfig reads the config file, tolerating its absence
func readInConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// applyDefaults derives the not-found and expired pages from the site URL when unset
func (c *RoutingConfig) applyDefaults() {
	c.SiteURL = strings.TrimRight(c.SiteURL, "/")
	if c.NotFoundURL == "" {
		c.NotFoundURL = c.SiteURL + "/qr/not-found"
	}
	if c.DefaultExpiredURL == "" {
		c.DefaultExpiredURL = c.SiteURL + "/expired"
	}
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("QR_ROUTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"environment",
		"sentry_dsn",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		// Redis
		"redis.addr",
		"redis.password",
		"redis.db",
		"redis.cache_ttl",
		"redis.scan_rate_per_minute",
		"redis.scan_rate_local_fallback",
		// Temporal
		"temporal.host_port",
		"temporal.namespace",
		"temporal.fulfillment_task_queue",
		"temporal.max_concurrent_activity_execution_size",
		"temporal.worker_activities_per_second",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.allowed_origins",
		// Auth
		"auth.jwt_public_key",
		// Routing
		"routing.site_url",
		"routing.not_found_url",
		"routing.default_expired_url",
		// Payments
		"payments.provider",
		"payments.webhook_secret",
		"payments.signature_tolerance",
		// Provisioning
		"provisioning.default_content_ttl_days",
		"provisioning.default_timezone",
		"quick_start.default_total_duration",
		"quick_start.max_challenges",
		"scan_recorder.pool_size",
		"scan_recorder.queue_size",
		// Print provider
		"print_provider.base_url",
		"print_provider.api_key",
		"print_provider.store_id",
		"print_provider.timeout",
		// Sweepers
		"fulfillment_sweeper.interval",
		"fulfillment_sweeper.batch_size",
		"fulfillment_sweeper.retry_after",
		"fulfillment_sweeper.worker.pool_size",
		"fulfillment_sweeper.worker.queue_size",
		"expiry_sweeper.interval",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
