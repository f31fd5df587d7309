package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config contains server configuration parameters.
type Config struct {
	LogLevel int     `env:"LOG_LEVEL" envDefault:"0"`
	HTTP     HTTP    `envPrefix:"HTTP_"`
	JWT      JWT     `envPrefix:"JWT_"`
	Storage  Storage `envPrefix:"MINIO_"`
	Notes    Notes   `envPrefix:"NOTES_"`
}

// HTTP contains HTTP server parameters.
type HTTP struct {
	Port               string `env:"PORT" envDefault:"8080"`
	EnableHTTPS        bool   `env:"ENABLE_HTTPS" envDefault:"false"`
	CertFileName       string `env:"CERT_FILE_NAME" envDefault:"cert.pem"`
	PrivateKeyFileName string `env:"PRIVATE_KEY_FILE_NAME" envDefault:"key.pem"`
	AllowedOrigin      string `env:"ALLOWED_ORIGIN" envDefault:"https://ougotti.github.io"`
}

// JWT contains bearer-token verification parameters.
type JWT struct {
	Secret string `env:"SECRET" envDefault:"devsecret"`
}

// Storage contains object storage parameters.
type Storage struct {
	Endpoint  string `env:"ENDPOINT" envDefault:"localhost:9000"`
	AccessKey string `env:"ACCESS_KEY" envDefault:"simplenotebook-access-key"`
	SecretKey string `env:"SECRET_KEY" envDefault:"simplenotebook-secret-key"`
	Bucket    string `env:"BUCKET_NAME" envDefault:"simplenotebook-notes"`
	UseSSL    bool   `env:"USE_SSL" envDefault:"false"`
}

// Notes contains note storage layout parameters. Prefix is the
// environment namespace every per-user prefix hangs under.
type Notes struct {
	Prefix string `env:"PREFIX" envDefault:"prod/"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
