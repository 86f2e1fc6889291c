// Package config loads the process configuration from WEB3LAB_* environment
// variables.
//
// The configuration is split in two so that offline commands run without a
// node: Config holds what every command needs (logging, telemetry) and is
// loaded at startup, while SessionConfig holds the node, wallet and
// coordinator settings and is loaded only when a session is built.
package config

import (
	"fmt"
	"time"

	"github.com/gabapcia/web3lab/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

// Prefix of every environment variable read by this package.
const Prefix = "WEB3LAB"

// Wallet backends accepted by WALLET_BACKEND.
const (
	WalletBackendKeystore = "keystore"
	WalletBackendRPC      = "rpc"
	WalletBackendNone     = "none"
)

// Config contains the settings shared by every command.
type Config struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`

	TelemetryEnabled bool   `envconfig:"TELEMETRY_ENABLED" default:"false"`
	ServiceName      string `envconfig:"SERVICE_NAME" default:"web3lab" validate:"required"`
}

// SessionConfig contains the settings of a session: the node endpoint, the
// wallet backend, the coordinator tuning and the optional Redis fan-out.
type SessionConfig struct {
	RPCURL     string        `envconfig:"RPC_URL" validate:"required,url"`
	RPCTimeout time.Duration `envconfig:"RPC_TIMEOUT" default:"30s" validate:"gt=0"`

	WalletBackend   string        `envconfig:"WALLET_BACKEND" default:"keystore" validate:"oneof=keystore rpc none"`
	KeystoreDir     string        `envconfig:"KEYSTORE_DIR" validate:"required_if=WalletBackend keystore"`
	KeystoreAccount string        `envconfig:"KEYSTORE_ACCOUNT" validate:"omitempty,eth_addr"`
	SignerURL       string        `envconfig:"SIGNER_URL" validate:"required_if=WalletBackend rpc"`
	SignerTimeout   time.Duration `envconfig:"SIGNER_TIMEOUT" default:"2m" validate:"gt=0"`

	NotificationTTL time.Duration `envconfig:"NOTIFICATION_TTL" default:"5s" validate:"gt=0"`
	EventLogSize    int           `envconfig:"EVENT_LOG_SIZE" default:"20" validate:"gt=0"`
	SwapDeadline    time.Duration `envconfig:"SWAP_DEADLINE" default:"20m" validate:"gt=0"`
	DisplayDecimals uint8         `envconfig:"DISPLAY_DECIMALS" default:"18" validate:"max=77"`

	RedisAddr     string `envconfig:"REDIS_ADDR" validate:"omitempty,hostname_port"`
	RedisUsername string `envconfig:"REDIS_USERNAME"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0" validate:"gte=0"`
	RedisChannel  string `envconfig:"REDIS_CHANNEL" default:"web3lab:transfers" validate:"required"`
}

func load(spec any) error {
	if err := envconfig.Process(Prefix, spec); err != nil {
		return fmt.Errorf("failed to process config: %w", err)
	}
	return validator.Validate(spec)
}

// Load reads and validates the settings shared by every command.
//
// Returns:
//   - The loaded Config.
//   - An error wrapping validator.ErrValidationFailed when a value is out of
//     range, or the envconfig error when a variable cannot be parsed.
func Load() (Config, error) {
	var cfg Config
	if err := load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadSession reads and validates the session settings. It is called when
// a command first needs the node, so offline commands never require
// RPC_URL or wallet settings.
//
// Returns:
//   - The loaded SessionConfig.
//   - An error wrapping validator.ErrValidationFailed when a required
//     setting is missing or malformed.
func LoadSession() (SessionConfig, error) {
	var cfg SessionConfig
	if err := load(&cfg); err != nil {
		return SessionConfig{}, err
	}
	return cfg, nil
}

// RedisEnabled reports whether transfer events are published to Redis.
func (c SessionConfig) RedisEnabled() bool {
	return c.RedisAddr != ""
}
