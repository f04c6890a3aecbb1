package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Postgres Postgres `validate:"required"`

	Kafka  Kafka
	Mirror Mirror

	Cache Cache

	JWT       JWT `validate:"required"`
	Passwords Passwords

	Storage Storage

	Admin Admin
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`

	ConnectAttempts int `validate:"gte=1"`
}

// Kafka carries the order mirror feed. With Enabled=false orders are not mirrored at all.
type Kafka struct {
	Enabled bool
	Brokers []string `validate:"required,min=1,dive,hostname_port"`
	Topic   string   `validate:"required"`

	BatchTimeout time.Duration `validate:"gte=0"`
}

type Mirror struct {
	QueueSize      int           `validate:"gte=1"`
	PublishTimeout time.Duration `validate:"gt=0"`
}

type Cache struct {
	Capacity int           `validate:"gte=1"`
	TTL      time.Duration `validate:"gt=0"`
}

type JWT struct {
	Secret string        `validate:"required,min=32"`
	TTL    time.Duration `validate:"gt=0"`
	Issuer string        `validate:"required"`
}

type Passwords struct {
	Cost int `validate:"gte=4,lte=31"`
}

// Storage configures the S3 bucket for documents. Without credentials uploads are simulated.
type Storage struct {
	Bucket          string `validate:"required"`
	Region          string `validate:"required"`
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string `validate:"omitempty,url"`
}

type Admin struct {
	Email    string `validate:"omitempty,email"`
	Password string `validate:"required_with=Email"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "huertohogar"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),

			ConnectAttempts: envInt("POSTGRES_CONNECT_ATTEMPTS", 5),
		},

		Kafka: Kafka{
			Enabled: envBool("KAFKA_ENABLED", false),
			Topic:   env("KAFKA_MIRROR_TOPIC", "orders-mirror"),
			Brokers: strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			BatchTimeout: envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Mirror: Mirror{
			QueueSize:      envInt("MIRROR_QUEUE_SIZE", 256),
			PublishTimeout: envDuration("MIRROR_PUBLISH_TIMEOUT", 5*time.Second),
		},

		Cache: Cache{
			Capacity: envInt("CACHE_CAPACITY", 1000),
			TTL:      envDuration("CACHE_TTL", 5*time.Minute),
		},

		JWT: JWT{
			Secret: env("JWT_SECRET", ""),
			TTL:    envDuration("JWT_TTL", 24*time.Hour),
			Issuer: env("JWT_ISSUER", "huertohogar-api"),
		},

		Passwords: Passwords{
			Cost: envInt("BCRYPT_COST", 10),
		},

		Storage: Storage{
			Bucket:          env("AWS_S3_BUCKET", "huerto-hogar-documentos"),
			Region:          env("AWS_S3_REGION", "us-east-1"),
			AccessKeyID:     env("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: env("AWS_SECRET_ACCESS_KEY", ""),
			Endpoint:        env("AWS_S3_ENDPOINT", ""),
		},

		Admin: Admin{
			Email:    env("ADMIN_EMAIL", ""),
			Password: env("ADMIN_PASSWORD", ""),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
