package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config contains server configuration parameters.
type Config struct {
	LogLevel  int       `env:"LOG_LEVEL" envDefault:"0"`
	HTTP      HTTP      `envPrefix:"HTTP_"`
	GRPC      GRPC      `envPrefix:"GRPC_"`
	Database  Database  `envPrefix:"DB_"`
	Session   Session   `envPrefix:"SESSION_"`
	Redis     Redis     `envPrefix:"REDIS_"`
	Bcrypt    Bcrypt    `envPrefix:"BCRYPT_"`
	Telemetry Telemetry `envPrefix:"OTEL_"`
}

// HTTP contains REST server parameters.
type HTTP struct {
	Port               string        `env:"PORT" envDefault:"8080"`
	EnableHTTPS        bool          `env:"ENABLE_HTTPS" envDefault:"false"`
	CertFileName       string        `env:"CERT_FILE_NAME" envDefault:"cert.pem"`
	PrivateKeyFileName string        `env:"PRIVATE_KEY_FILE_NAME" envDefault:"key.pem"`
	ReadTimeout        time.Duration `env:"READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout       time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
}

// GRPC contains parameters of the gRPC health server.
type GRPC struct {
	Enabled bool   `env:"ENABLED" envDefault:"true"`
	Port    string `env:"PORT" envDefault:"50051"`
}

// Database contains database connection parameters. Either DSN or the
// Name/User/Password triple must be set.
type Database struct {
	DSN              string        `env:"DSN"`
	Name             string        `env:"NAME"`
	User             string        `env:"USER"`
	Password         string        `env:"PASSWORD"`
	Host             string        `env:"HOST" envDefault:"localhost"`
	Port             int           `env:"PORT" envDefault:"5432"`
	SSLMode          string        `env:"SSLMODE" envDefault:"disable"`
	MaxConns         int32         `env:"MAX_CONNS" envDefault:"10"`
	ConnectTimeout   time.Duration `env:"CONNECT_TIMEOUT" envDefault:"5s"`
	StatementTimeout time.Duration `env:"STATEMENT_TIMEOUT" envDefault:"5s"`
}

// Session contains cookie session parameters.
type Session struct {
	CookieName   string        `env:"COOKIE_NAME" envDefault:"session_id"`
	CookieSecure bool          `env:"COOKIE_SECURE" envDefault:"false"`
	Expiration   time.Duration `env:"EXPIRATION" envDefault:"24h"`
}

// Redis contains session storage parameters. Empty Addr keeps sessions in memory.
type Redis struct {
	Addr     string `env:"ADDR"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
	Prefix   string `env:"PREFIX" envDefault:"bookshelf:session:"`
}

// Bcrypt contains password hashing parameters.
type Bcrypt struct {
	Cost int `env:"COST" envDefault:"10"`
}

// Telemetry contains tracing parameters. Empty Endpoint disables tracing.
type Telemetry struct {
	Endpoint    string `env:"EXPORTER_OTLP_ENDPOINT"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"bookshelf-server"`
}

var errMissingDatabaseCredentials = errors.New("database credentials are not set: provide DB_DSN or DB_NAME, DB_USER and DB_PASSWORD")

// NewConfig loads configuration from an optional .env file and environment variables.
func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Database.validate(); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

func (d Database) validate() error {
	if d.DSN != "" {
		return nil
	}
	if d.Name == "" || d.User == "" || d.Password == "" {
		return errMissingDatabaseCredentials
	}
	return nil
}

// ConnString returns the DSN, building it from parts when DSN is not set.
func (d Database) ConnString() string {
	if d.DSN != "" {
		return d.DSN
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:     "/" + d.Name,
		RawQuery: url.Values{"sslmode": []string{d.SSLMode}}.Encode(),
	}
	return u.String()
}
