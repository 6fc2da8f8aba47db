package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultMaxRequestBodySize = "100KB"
	defaultTokenTTL           = 14 * 24 * time.Hour
	defaultOTPEmailSubject    = "Your Zen Easy verification code"
	defaultMaxUploadSize      = 5 << 20
	defaultQRCodeSize         = 256
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Admin is the single admin identity; there is no admin record in the database.
	Admin AdminConfig `json:"admin" yaml:"admin"`

	OTP *OTPConfig `json:"otp" yaml:"otp"`

	Rating *RatingConfig `json:"rating" yaml:"rating"`

	// Mail configures SMTP delivery. Without a host, emails are only logged.
	Mail *MailConfig `json:"mail" yaml:"mail"`

	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// Redis backs the OTP attempt limiter. Optional.
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	RabbitMQ *RabbitMQConfig `json:"rabbitmq" yaml:"rabbitmq"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// QRCode configuration for rent listing share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`

	Tracing *TracingConfig `json:"tracing" yaml:"tracing"`
}

// AuthConfig defines session token configuration
type AuthConfig struct {
	TokenTTL   time.Duration `json:"tokenTTL" yaml:"tokenTTL"`
	BcryptCost int           `json:"bcryptCost" yaml:"bcryptCost"`
}

// AdminConfig holds the admin credentials. PasswordHash (bcrypt) wins over Password when set.
type AdminConfig struct {
	Email        string `json:"email" yaml:"email"`
	Password     string `json:"password" yaml:"password"`
	PasswordHash string `json:"passwordHash" yaml:"passwordHash"`
}

// OTPConfig defines the one-time code policy. Zero values keep the permissive defaults:
// unlimited attempts and no expiry.
type OTPConfig struct {
	MaxAttempts   int           `json:"maxAttempts" yaml:"maxAttempts"`
	LockoutWindow time.Duration `json:"lockoutWindow" yaml:"lockoutWindow"`
	TTL           time.Duration `json:"ttl" yaml:"ttl"`
	SweepSchedule string        `json:"sweepSchedule" yaml:"sweepSchedule"`
	EmailSubject  string        `json:"emailSubject" yaml:"emailSubject"`
}

// RatingConfig defines rating submission rules
type RatingConfig struct {
	DedupPerClient bool `json:"dedupPerClient" yaml:"dedupPerClient"`
}

// MailConfig defines SMTP settings
type MailConfig struct {
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	From     string `json:"from" yaml:"from"`
}

// StorageConfig selects the object storage provider for uploads
type StorageConfig struct {
	// Provider type: "cloudinary" or "blob"
	Provider      string `json:"provider" yaml:"provider"`
	MaxUploadSize int64  `json:"maxUploadSize" yaml:"maxUploadSize"`

	Cloudinary struct {
		CloudName string `json:"cloudName" yaml:"cloudName"`
		APIKey    string `json:"apiKey" yaml:"apiKey"`
		APISecret string `json:"apiSecret" yaml:"apiSecret"`
	} `json:"cloudinary" yaml:"cloudinary"`

	Blob struct {
		// BucketURL is a gocloud.dev URL such as file:///var/uploads, gs://bucket or s3://bucket?region=x
		BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
		// PublicBaseURL is prefixed to object keys to build the returned URL
		PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
	} `json:"blob" yaml:"blob"`
}

// RedisConfig defines the Redis client settings
type RedisConfig struct {
	Addr         string        `json:"addr" yaml:"addr"`
	Username     string        `json:"username" yaml:"username"`
	Password     string        `json:"password" yaml:"password"`
	DB           int           `json:"db" yaml:"db"`
	MaxRetries   int           `json:"maxRetries" yaml:"maxRetries"`
	DialTimeout  time.Duration `json:"dialTimeout" yaml:"dialTimeout"`
	ReadTimeout  time.Duration `json:"readTimeout" yaml:"readTimeout"`
	WriteTimeout time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
}

// RateLimitConfig defines per-client request limits
type RateLimitConfig struct {
	OTP RateLimitRule `json:"otp" yaml:"otp"`
}

// RateLimitRule is a token bucket. RPS 0 disables the limiter.
type RateLimitRule struct {
	RPS   float64       `json:"rps" yaml:"rps"`
	Burst int           `json:"burst" yaml:"burst"`
	TTL   time.Duration `json:"ttl" yaml:"ttl"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local", "google" or "rabbitmq"
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// PushAudience is the expected OIDC audience of push requests received by the worker
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`
}

// RabbitMQConfig defines the AMQP broker used by the rabbitmq provider
type RabbitMQConfig struct {
	URL          string        `json:"url" yaml:"url"`
	Exchange     string        `json:"exchange" yaml:"exchange"`
	Queue        string        `json:"queue" yaml:"queue"`
	RoutingKey   string        `json:"routingKey" yaml:"routingKey"`
	Prefetch     int           `json:"prefetch" yaml:"prefetch"`
	DialRetries  int           `json:"dialRetries" yaml:"dialRetries"`
	DialInterval time.Duration `json:"dialInterval" yaml:"dialInterval"`
}

// MetricsConfig defines the Prometheus endpoint
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// TracingConfig defines the OTLP trace exporter. An empty endpoint disables tracing.
type TracingConfig struct {
	Endpoint    string  `json:"endpoint" yaml:"endpoint"`
	Insecure    bool    `json:"insecure" yaml:"insecure"`
	SampleRatio float64 `json:"sampleRatio" yaml:"sampleRatio"`
}

// New reads config.yaml from the working directory or a nearby config/
// directory, then applies environment overrides and defaults.
func New() (*Config, error) {
	// A missing .env file is normal outside local development.
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = replicasFromEnv(os.Getenv)
	}

	return cfg, nil
}

// applyDefaults fills optional sections so consumers never deal with nil policy structs.
func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if c.Auth == nil {
		c.Auth = &AuthConfig{}
	}
	if c.Auth.TokenTTL <= 0 {
		c.Auth.TokenTTL = defaultTokenTTL
	}

	if c.OTP == nil {
		c.OTP = &OTPConfig{}
	}
	if c.OTP.EmailSubject == "" {
		c.OTP.EmailSubject = defaultOTPEmailSubject
	}

	if c.Rating == nil {
		c.Rating = &RatingConfig{}
	}

	if c.Storage != nil && c.Storage.MaxUploadSize <= 0 {
		c.Storage.MaxUploadSize = defaultMaxUploadSize
	}

	if c.QRCode == nil {
		c.QRCode = &QRCodeConfig{ErrorCorrectionLevel: "M"}
	}
	if c.QRCode.Size <= 0 {
		c.QRCode.Size = defaultQRCodeSize
	}
}
