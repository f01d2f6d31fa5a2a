package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config represents the watcher configuration
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Ethereum   EthereumConfig   `yaml:"ethereum"`
	Oracle     OracleConfig     `yaml:"oracle"`
	Queue      QueueConfig      `yaml:"queue"`
	Cache      CacheConfig      `yaml:"cache"`
	Subscriber SubscriberConfig `yaml:"subscriber"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host             string        `yaml:"host" default:"0.0.0.0"`
	Port             int           `yaml:"port" default:"8080" validate:"min=1,max=65535"`
	ReadTimeout      time.Duration `yaml:"read_timeout" default:"15s"`
	WriteTimeout     time.Duration `yaml:"write_timeout" default:"60s"`
	IdleTimeout      time.Duration `yaml:"idle_timeout" default:"60s"`
	ShutdownTimeout  time.Duration `yaml:"shutdown_timeout" default:"30s"`
	BatchConcurrency int           `yaml:"batch_concurrency" default:"8" validate:"min=1"`
	MaxBatchSize     int           `yaml:"max_batch_size" default:"500" validate:"min=1"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host" default:"localhost" validate:"required"`
	Port     int    `yaml:"port" default:"5432" validate:"min=1,max=65535"`
	User     string `yaml:"user" default:"postgres"`
	Password string `yaml:"password"`
	Database string `yaml:"database" default:"fees" validate:"required"`
	SSLMode  string `yaml:"ssl_mode" default:"disable" validate:"oneof=disable require verify-ca verify-full"`
	PoolSize int    `yaml:"pool_size" default:"10" validate:"min=1"`
}

// EthereumConfig contains chain RPC and pool settings
type EthereumConfig struct {
	RPCURL       string             `yaml:"rpc_url" validate:"required,url"`
	WSURL        string             `yaml:"ws_url" validate:"omitempty,url"`
	PoolAddress  string             `yaml:"pool_address" default:"0x88e6A0c2dDD26FEEb64F039a2c41296FcB3f5640" validate:"eth_addr"`
	SwapTopic    string             `yaml:"swap_topic" default:"0xc42079f94a6350d7e6235f29174924f928cc2ac818eb64fed8004e115fbcca67" validate:"len=66,startswith=0x"`
	ReceiptRetry ReceiptRetryConfig `yaml:"receipt_retry"`
}

// ReceiptRetryConfig controls polling for receipts that are not indexed yet
type ReceiptRetryConfig struct {
	MaxAttempts int           `yaml:"max_attempts" default:"5" validate:"min=1"`
	Interval    time.Duration `yaml:"interval" default:"1s"`
}

// OracleConfig contains market-data settings
type OracleConfig struct {
	BaseURL string `yaml:"base_url" default:"https://api.binance.com" validate:"required,url"`
	Symbol  string `yaml:"symbol" default:"ETHUSDT" validate:"required"`
}

// QueueConfig contains persistence queue settings
type QueueConfig struct {
	PollInterval time.Duration `yaml:"poll_interval" default:"100ms"`
}

// CacheConfig contains read-through cache settings
type CacheConfig struct {
	// LRUSize enables an in-process cache of computed fees when > 0.
	LRUSize      int  `yaml:"lru_size" default:"0" validate:"min=0"`
	SingleFlight bool `yaml:"single_flight" default:"false"`
}

// SubscriberConfig contains swap subscription settings
type SubscriberConfig struct {
	Enabled bool   `yaml:"enabled" default:"true"`
	Pricing string `yaml:"pricing" default:"block" validate:"oneof=block spot"`
}

// MonitoringConfig contains monitoring and metrics settings
type MonitoringConfig struct {
	Enabled bool `yaml:"enabled" default:"true"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `yaml:"level" default:"info"`
	Format     string `yaml:"format" default:"json" validate:"oneof=json console"`
	OutputPath string `yaml:"output_path" default:"stdout"`
}

// Load loads configuration from a YAML file. ${VAR} references are expanded
// from the environment before decoding.
func Load(configPath string) (*Config, error) {
	raw, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(raw)
}

// Parse decodes, defaults and validates a YAML document
func Parse(raw []byte) (*Config, error) {
	var cfg Config
	if err := defaults.Set(&cfg); err != nil {
		return nil, fmt.Errorf("failed to set config defaults: %w", err)
	}

	expanded := os.ExpandEnv(string(raw))
	dec := yaml.NewDecoder(bytes.NewBufferString(expanded))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Addr returns the host:port the database listens on
func (c *DatabaseConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
