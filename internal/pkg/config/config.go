package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, secrets)
// - default: Values common across all environments (timezone, timeouts, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Device   DeviceConfig
	Payment  PaymentConfig
	Notifier NotifierConfig
	Referral ReferralConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Europe/Kyiv"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	// reconciliation transactions must not hang on a stuck lock
	StatementTimeout time.Duration `envconfig:"DB_STATEMENT_TIMEOUT" default:"15s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Kyiv"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"7200"` // 2*60*60
}

// Tokens are issued by the auth service; this process only validates them.
type JWTConfig struct {
	Secret string        `envconfig:"JWT_SECRET" required:"true"`
	Issuer string        `envconfig:"JWT_ISSUER"`
	Leeway time.Duration `envconfig:"JWT_LEEWAY" default:"30s"`
}

type DeviceConfig struct {
	// bcrypt hashes of the controller tokens allowed to connect
	TokenHashes      []string      `envconfig:"DEVICE_TOKEN_HASHES" required:"true"`
	HandshakeTimeout time.Duration `envconfig:"DEVICE_HANDSHAKE_TIMEOUT" default:"10s"`
	PingInterval     time.Duration `envconfig:"DEVICE_PING_INTERVAL" default:"30s"`
	WriteTimeout     time.Duration `envconfig:"DEVICE_WRITE_TIMEOUT" default:"5s"`
}

type PaymentConfig struct {
	AcquirerBaseURL   string        `envconfig:"PAYMENT_ACQUIRER_BASE_URL" default:"https://api.monobank.ua"`
	AcquirerToken     string        `envconfig:"PAYMENT_ACQUIRER_TOKEN"`
	AcquirerPublicKey string        `envconfig:"PAYMENT_ACQUIRER_PUBLIC_KEY"` // base64 PEM; fetched from the provider when empty
	WebhookBaseURL    string        `envconfig:"PAYMENT_WEBHOOK_BASE_URL" default:"http://localhost:8080"`
	RedirectURL       string        `envconfig:"PAYMENT_REDIRECT_URL" default:"http://localhost:3000/thanks"`
	InternalSecret    string        `envconfig:"PAYMENT_INTERNAL_SECRET" required:"true"`
	ProviderTimeout   time.Duration `envconfig:"PAYMENT_PROVIDER_TIMEOUT" default:"10s"`
}

type NotifierConfig struct {
	Enabled       bool          `envconfig:"NOTIFIER_ENABLED" default:"false"`
	BaseURL       string        `envconfig:"NOTIFIER_BASE_URL" default:"https://api.telegram.org"`
	BotToken      string        `envconfig:"NOTIFIER_BOT_TOKEN"`
	Timeout       time.Duration `envconfig:"NOTIFIER_TIMEOUT" default:"5s"`
	RetryBase     time.Duration `envconfig:"NOTIFIER_RETRY_BASE" default:"500ms"`
	RetryCap      time.Duration `envconfig:"NOTIFIER_RETRY_CAP" default:"30s"`
	RetryMaxTries uint64        `envconfig:"NOTIFIER_RETRY_MAX" default:"5"`
}

type ReferralConfig struct {
	// percent of the sale amount credited to the referrer
	DefaultCommissionPercent string `envconfig:"REFERRAL_COMMISSION_PERCENT" default:"10"`
	// points granted per whole currency unit of commission
	PointsPerUnit int64 `envconfig:"REFERRAL_POINTS_PER_UNIT" default:"1"`
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
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Europe/Kyiv",
			MaxConns: 10,

			StatementTimeout: 5 * time.Second,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Kyiv",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 7200,
		},
		JWT: JWTConfig{
			Secret: "test-secret",
			Issuer: "ortomat-auth-test",
		},
		Device: DeviceConfig{
			HandshakeTimeout: 2 * time.Second,
			PingInterval:     30 * time.Second,
			WriteTimeout:     time.Second,
		},
		Payment: PaymentConfig{
			WebhookBaseURL:  "http://localhost:8889",
			RedirectURL:     "http://localhost:3000/thanks",
			InternalSecret:  "internal-test-secret",
			ProviderTimeout: 2 * time.Second,
		},
		Notifier: NotifierConfig{
			Enabled:       false,
			Timeout:       time.Second,
			RetryBase:     10 * time.Millisecond,
			RetryCap:      50 * time.Millisecond,
			RetryMaxTries: 2,
		},
		Referral: ReferralConfig{
			DefaultCommissionPercent: "10",
			PointsPerUnit:            1,
		},
	}
}
