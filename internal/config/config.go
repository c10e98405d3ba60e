package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Enrichment modes. Inline mode reads html from the broadcast detail
// endpoint; correlate mode reconstructs it from the sent-email
// collection by (subject, from) matching.
const (
	ModeInline    = "inline"
	ModeCorrelate = "correlate"
)

// Storage backends.
const (
	BackendS3       = "s3"
	BackendPostgres = "postgres"
)

type Config struct {
	API      APIConfig      `yaml:"api"`
	Sync     SyncConfig     `yaml:"sync"`
	Server   ServerConfig   `yaml:"server"`
	Feed     FeedConfig     `yaml:"feed"`
	Storage  StorageConfig  `yaml:"storage"`
	RabbitMQ RabbitMQConfig `yaml:"rabbitmq"`
	LogLevel string         `yaml:"log_level"`
}

type APIConfig struct {
	BaseURL     string        `yaml:"base_url"`
	Key         string        `yaml:"key"`
	PageSize    int           `yaml:"page_size"`
	Timeout     time.Duration `yaml:"timeout"`
	MinInterval time.Duration `yaml:"min_interval"`
}

type SyncConfig struct {
	Mode       string `yaml:"mode"`
	AudienceID string `yaml:"audience_id"`
	// Interval enables the internal scheduler; 0 leaves triggering to
	// the HTTP endpoint alone.
	Interval   time.Duration `yaml:"interval"`
	RunTimeout time.Duration `yaml:"run_timeout"`
}

type ServerConfig struct {
	Addr          string `yaml:"addr"`
	TriggerSecret string `yaml:"trigger_secret"`
}

type FeedConfig struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	BaseURL     string `yaml:"base_url"`
}

type StorageConfig struct {
	Backend  string         `yaml:"backend"`
	S3       S3Config       `yaml:"s3"`
	Postgres DatabaseConfig `yaml:"postgres"`
}

type S3Config struct {
	Bucket       string `yaml:"bucket"`
	Prefix       string `yaml:"prefix"`
	Region       string `yaml:"region"`
	UsePathStyle bool   `yaml:"use_path_style"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

type RabbitMQConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
	QueueName  string `yaml:"queue_name"`
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.API.BaseURL == "" {
		c.API.BaseURL = "https://api.resend.com"
	}
	if c.API.PageSize == 0 {
		c.API.PageSize = 100
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = 30 * time.Second
	}
	if c.API.MinInterval == 0 {
		c.API.MinInterval = 500 * time.Millisecond
	}
	if c.Sync.Mode == "" {
		c.Sync.Mode = ModeInline
	}
	if c.Sync.RunTimeout == 0 {
		c.Sync.RunTimeout = 5 * time.Minute
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Feed.Title == "" {
		c.Feed.Title = "Newsletter"
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = BackendS3
	}
	if c.RabbitMQ.Exchange == "" {
		c.RabbitMQ.Exchange = "newsletter_sync"
	}
	if c.RabbitMQ.RoutingKey == "" {
		c.RabbitMQ.RoutingKey = "broadcasts"
	}
	if c.RabbitMQ.QueueName == "" {
		c.RabbitMQ.QueueName = "broadcast_events"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate rejects incomplete configuration before any network or
// storage call is made.
func (c *Config) Validate() error {
	if c.API.Key == "" {
		return fmt.Errorf("config: api.key is required")
	}
	if c.Sync.AudienceID == "" {
		return fmt.Errorf("config: sync.audience_id is required")
	}
	if c.Server.TriggerSecret == "" {
		return fmt.Errorf("config: server.trigger_secret is required")
	}
	if c.Sync.Mode != ModeInline && c.Sync.Mode != ModeCorrelate {
		return fmt.Errorf("config: unknown sync.mode %q", c.Sync.Mode)
	}
	switch c.Storage.Backend {
	case BackendS3:
		if c.Storage.S3.Bucket == "" {
			return fmt.Errorf("config: storage.s3.bucket is required")
		}
	case BackendPostgres:
		if c.Storage.Postgres.Host == "" {
			return fmt.Errorf("config: storage.postgres.host is required")
		}
	default:
		return fmt.Errorf("config: unknown storage.backend %q", c.Storage.Backend)
	}
	return nil
}
