package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, secrets)
// - default: Values common across all environments (timezone, timeouts, topic names)
// - optional integrations (AMQP, Kafka) are disabled when their address is empty
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Cache    CacheConfig
	RabbitMQ RabbitMQConfig
	Kafka    KafkaConfig
	Payment  PaymentConfig
	Booking  BookingConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" required:"true"`
	Password    string `envconfig:"DB_PASSWORD" required:"true"`
	DBName      string `envconfig:"DB_NAME" required:"true"`
	SSLMode     string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone    string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns    int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"false"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location,Idempotent-Replayed,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Issuer   string        `envconfig:"JWT_ISSUER" default:"hotel-booking"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
}

// CacheConfig covers the room-type listing cache. Availability never goes through it.
type CacheConfig struct {
	Enabled  bool          `envconfig:"CACHE_ENABLED" default:"true"`
	Addr     string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string        `envconfig:"REDIS_PASSWORD"`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	TTL      time.Duration `envconfig:"ROOM_TYPE_CACHE_TTL" default:"5m"`
	Prefix   string        `envconfig:"CACHE_PREFIX" default:"hotel-booking"`
}

type RabbitMQConfig struct {
	URL   string `envconfig:"AMQP_URL"`
	Queue string `envconfig:"AMQP_NOTIFICATION_QUEUE" default:"booking.notifications"`
}

type KafkaConfig struct {
	Brokers      []string `envconfig:"KAFKA_BROKERS"`
	PaymentTopic string   `envconfig:"KAFKA_PAYMENT_TOPIC" default:"payment.events"`
	GroupID      string   `envconfig:"KAFKA_GROUP_ID" default:"hotel-booking"`
}

type PaymentConfig struct {
	Provider      string `envconfig:"PAYMENT_PROVIDER" default:"sandbox"`
	Currency      string `envconfig:"PAYMENT_CURRENCY" default:"usd"`
	StripeKey     string `envconfig:"STRIPE_SECRET_KEY"`
	WebhookSecret string `envconfig:"STRIPE_WEBHOOK_SECRET"`
}

type BookingConfig struct {
	IdempotencyTTL time.Duration `envconfig:"BOOKING_IDEMPOTENCY_TTL" default:"24h"`
	NotifyTimeout  time.Duration `envconfig:"BOOKING_NOTIFY_TIMEOUT" default:"2s"`
}

const (
	PaymentProviderStripe  = "stripe"
	PaymentProviderSandbox = "sandbox"
)

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c KafkaConfig) Enabled() bool {
	return len(c.Brokers) > 0 && c.Brokers[0] != ""
}

func (c RabbitMQConfig) Enabled() bool {
	return c.URL != ""
}

// LoadConfig reads an optional .env file, then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Payment.Provider {
	case PaymentProviderSandbox:
	case PaymentProviderStripe:
		if c.Payment.StripeKey == "" {
			return fmt.Errorf("STRIPE_SECRET_KEY is required when PAYMENT_PROVIDER=%s", PaymentProviderStripe)
		}
	default:
		return fmt.Errorf("unknown PAYMENT_PROVIDER %q", c.Payment.Provider)
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-unit-and-e2e-tests",
			Issuer:   "hotel-booking",
			Duration: time.Hour,
		},
		Cache: CacheConfig{
			Enabled: false,
			TTL:     time.Minute,
			Prefix:  "hotel-booking-test",
		},
		RabbitMQ: RabbitMQConfig{
			Queue: "booking.notifications",
		},
		Kafka: KafkaConfig{
			PaymentTopic: "payment.events",
			GroupID:      "hotel-booking-test",
		},
		Payment: PaymentConfig{
			Provider:      PaymentProviderSandbox,
			Currency:      "usd",
			WebhookSecret: "whsec_test",
		},
		Booking: BookingConfig{
			IdempotencyTTL: 24 * time.Hour,
			NotifyTimeout:  2 * time.Second,
		},
	}
}
