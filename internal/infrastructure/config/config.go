package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// TokenTTL bounds the lifetime of issued session tokens.
	TokenTTL time.Duration `env:"TOKEN_TTL, default=24h"`
	// DefaultPassword is assigned to admin-provisioned accounts.
	DefaultPassword string `env:"DEFAULT_PASSWORD, default=changeme123"`
	// AdminEmail is the bootstrap administrator account, created at
	// startup when no admin exists yet.
	AdminEmail    string `env:"ADMIN_EMAIL,    default=admin@ats.local"`
	AdminUsername string `env:"ADMIN_USERNAME, default=admin"`

	Mongo   MongoConfig
	Redis   RedisConfig
	Storage StorageConfig
	Scoring ScoringConfig
	Audit   AuditConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=ats_system"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type StorageConfig struct {
	// UploadDir is the directory resume blobs are written under.
	UploadDir string `env:"UPLOAD_DIR, default=./uploads"`
	// FileTokenTTL bounds the lifetime of resume access tokens.
	FileTokenTTL time.Duration `env:"FILE_TOKEN_TTL, default=5m"`
}

type ScoringConfig struct {
	// URL is the resume scoring endpoint. Empty disables scoring; every
	// submission is then stored unscored.
	URL     string        `env:"SCORING_URL"`
	Timeout time.Duration `env:"SCORING_TIMEOUT, default=10s"`
}

type AuditConfig struct {
	Workers   int `env:"AUDIT_WORKERS,    default=4"`
	QueueSize int `env:"AUDIT_QUEUE_SIZE, default=256"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}
