package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, secrets)
// - default: Values common across all environments (timezone, timeout, etc.)
// - optional integrations (Redis, Kafka, tracing) are disabled when left empty
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	Identity  IdentityConfig
	Shop      ShopConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	Tracing   TracingConfig
	Scheduler SchedulerConfig
}

type ServerConfig struct {
	Port            string        `envconfig:"PORT" required:"true"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Tokyo"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	MinConns int32  `envconfig:"DB_MIN_CONNS" default:"2"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

// IdentityConfig describes the external identity provider. Session tokens are
// HS256 JWTs carrying sub, name and email claims.
type IdentityConfig struct {
	JWTSecret     string        `envconfig:"IDENTITY_JWT_SECRET" required:"true"`
	Issuer        string        `envconfig:"IDENTITY_ISSUER" default:""`
	Leeway        time.Duration `envconfig:"IDENTITY_LEEWAY" default:"30s"`
	WebhookSecret string        `envconfig:"IDENTITY_WEBHOOK_SECRET" required:"true"`
}

type ShopConfig struct {
	TimeZone        string   `envconfig:"SHOP_TIMEZONE" default:"Asia/Tokyo"`
	SlotCatalog     []string `envconfig:"SLOT_CATALOG" default:""`
	ReopenCancelled bool     `envconfig:"SHOP_REOPEN_CANCELLED_SLOTS" default:"false"`
}

type RedisConfig struct {
	Addr            string        `envconfig:"REDIS_ADDR" default:""`
	Password        string        `envconfig:"REDIS_PASSWORD" default:""`
	DB              int           `envconfig:"REDIS_DB" default:"0"`
	RateLimit       int           `envconfig:"RATE_LIMIT_REQUESTS" default:"20"`
	RateLimitWindow time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`
	FailOpen        bool          `envconfig:"RATE_LIMIT_FAIL_OPEN" default:"true"`
}

func (c RedisConfig) Enabled() bool {
	return strings.TrimSpace(c.Addr) != ""
}

type KafkaConfig struct {
	Brokers      []string      `envconfig:"KAFKA_BROKERS" default:""`
	PollInterval time.Duration `envconfig:"KAFKA_POLL_INTERVAL" default:"2s"`
	BatchSize    int           `envconfig:"KAFKA_BATCH_SIZE" default:"50"`
}

func (c KafkaConfig) Enabled() bool {
	for _, b := range c.Brokers {
		if strings.TrimSpace(b) != "" {
			return true
		}
	}
	return false
}

type TracingConfig struct {
	Enabled      bool    `envconfig:"OTEL_ENABLED" default:"false"`
	ServiceName  string  `envconfig:"OTEL_SERVICE_NAME" default:"barbershop-booking"`
	OTLPEndpoint string  `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:"localhost:4317"`
	SampleRatio  float64 `envconfig:"OTEL_SAMPLING_RATIO" default:"1"`
}

type SchedulerConfig struct {
	CleanupSchedule  string        `envconfig:"CLEANUP_SCHEDULE" default:"0 3 * * *"`
	CleanupRetention time.Duration `envconfig:"CLEANUP_RETENTION" default:"720h"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:            "8889", // Test port
			ShutdownTimeout: 5 * time.Second,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Tokyo",
			MaxConns: 10,
			MinConns: 1,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
			MaxAge:       time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		Identity: IdentityConfig{
			JWTSecret:     "test-identity-secret-0123456789abcdef",
			Issuer:        "https://identity.test",
			Leeway:        30 * time.Second,
			WebhookSecret: "whsec_MfKQ9r8GKYqrTwjUPD8ILPZIo2LaLaSw",
		},
		Shop: ShopConfig{
			TimeZone: "Asia/Tokyo",
		},
		Redis: RedisConfig{
			RateLimit:       20,
			RateLimitWindow: time.Minute,
			FailOpen:        true,
		},
		Kafka: KafkaConfig{
			PollInterval: 2 * time.Second,
			BatchSize:    50,
		},
		Tracing: TracingConfig{
			ServiceName: "barbershop-booking-test",
			SampleRatio: 1,
		},
		Scheduler: SchedulerConfig{
			CleanupSchedule:  "0 3 * * *",
			CleanupRetention: 720 * time.Hour,
		},
	}
}
