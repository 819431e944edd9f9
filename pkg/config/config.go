package config

import (
	"time"
)

type DB struct {
	Url             string        `envconfig:"URL"`
	MaxOpenConns    int           `envconfig:"MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"MAX_IDLE_CONNS" default:"25"`
	ConnMaxLifetime time.Duration `envconfig:"CONN_MAX_LIFETIME" default:"1h"`
	AutoMigrate     bool          `envconfig:"AUTO_MIGRATE" default:"true"`
}

type Jwt struct {
	Secret string        `envconfig:"SECRET" required:"true"`
	Expiry time.Duration `envconfig:"EXPIRY" default:"24h"`
}
type Auth struct {
	Strategy string `envconfig:"STRATEGY" default:"jwt"`
	Jwt      *Jwt   `envconfig:"JWT"`
}

type Redis struct {
	URL          string        `envconfig:"URL"`
	KeyPrefix    string        `envconfig:"KEY_PREFIX" default:"payrecon"`
	PoolSize     int           `envconfig:"POOL_SIZE" default:"10"`
	DialTimeout  time.Duration `envconfig:"DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"READ_TIMEOUT" default:"3s"`
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"3s"`
}

type Kafka struct {
	Brokers      string `envconfig:"BROKERS"`
	GroupID      string `envconfig:"GROUP_ID" default:"payrecon"`
	TopicPrefix  string `envconfig:"TOPIC_PREFIX" default:"payrecon.events"`
	SASLUsername string `envconfig:"SASL_USERNAME"`
	SASLPassword string `envconfig:"SASL_PASSWORD"`
	TLSEnabled   bool   `envconfig:"TLS_ENABLED" default:"false"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

type Paystack struct {
	SecretKey string `envconfig:"SECRET_KEY"`
	BaseURL   string `envconfig:"BASE_URL" default:"https://api.paystack.co"`
}

//revive:disable
type Stripe struct {
	Env           string `envconfig:"ENV" default:"test"`
	ApiKey        string `envconfig:"API_KEY"`
	SigningSecret string `envconfig:"SIGNING_SECRET"`
}

//revive:enable
type Mock struct {
	Enabled bool   `envconfig:"ENABLED" default:"false"`
	Secret  string `envconfig:"SECRET" default:"mock-secret"`
}

type Gateways struct {
	Paystack *Paystack `envconfig:"PAYSTACK"`
	Stripe   *Stripe   `envconfig:"STRIPE"`
	Mock     *Mock     `envconfig:"MOCK"`
}

// Verification bounds calls to a gateway verify endpoint.
// MaxAttempts counts the first call.
type Verification struct {
	MaxAttempts    int           `envconfig:"MAX_ATTEMPTS" default:"3"`
	InitialBackoff time.Duration `envconfig:"INITIAL_BACKOFF" default:"200ms"`
	MaxBackoff     time.Duration `envconfig:"MAX_BACKOFF" default:"2s"`
	HTTPTimeout    time.Duration `envconfig:"HTTP_TIMEOUT" default:"5s"`
}

// RetryBudget is the longest a full verify can take when every attempt
// times out: MaxAttempts round trips plus the randomized waits between them.
func (v *Verification) RetryBudget() time.Duration {
	attempts := time.Duration(max(v.MaxAttempts, 1))
	return attempts*v.HTTPTimeout + (attempts-1)*v.MaxBackoff*3/2
}

type Reconciliation struct {
	SweepSLA       time.Duration `envconfig:"SWEEP_SLA" default:"15m"`
	SweepInterval  time.Duration `envconfig:"SWEEP_INTERVAL" default:"5m"`
	SweepBatchSize int           `envconfig:"SWEEP_BATCH_SIZE" default:"100"`
	SweepWorkers   int           `envconfig:"SWEEP_WORKERS" default:"4"`
	WebhookTimeout time.Duration `envconfig:"WEBHOOK_TIMEOUT" default:"30s"`
	// DeliveryTTL is how long processed webhook event ids are remembered.
	DeliveryTTL time.Duration `envconfig:"DELIVERY_TTL" default:"24h"`
	// AmountTolerance is in minor units. Only exact matching is supported.
	AmountTolerance int64 `envconfig:"AMOUNT_TOLERANCE" default:"0"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"json"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[payrecon]"`
}

type Server struct {
	Scheme string `envconfig:"SCHEME" default:"http"`
	Host   string `envconfig:"HOST" default:"localhost"`
	Port   int    `envconfig:"PORT" default:"3000"`
}

type App struct {
	Env            string          `envconfig:"APP_ENV" default:"development"`
	Server         *Server         `envconfig:"SERVER"`
	Log            *Log            `envconfig:"LOG"`
	DB             *DB             `envconfig:"DATABASE"`
	Auth           *Auth           `envconfig:"AUTH"`
	Redis          *Redis          `envconfig:"REDIS"`
	Kafka          *Kafka          `envconfig:"KAFKA"`
	RateLimit      *RateLimit      `envconfig:"RATE_LIMIT"`
	Gateways       *Gateways       `envconfig:"GATEWAY"`
	Verification   *Verification   `envconfig:"VERIFICATION"`
	Reconciliation *Reconciliation `envconfig:"RECONCILIATION"`
}
