package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Storage    StorageConfig    `mapstructure:"storage"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	JWT        JWTConfig        `mapstructure:"jwt"`
	Log        LogConfig        `mapstructure:"log"`
	Ledger     LedgerConfig     `mapstructure:"ledger"`
	Bitcoin    BitcoinConfig    `mapstructure:"bitcoin"`
	KeyDeriv   KeyDerivConfig   `mapstructure:"keyderiv"`
	Settlement SettlementConfig `mapstructure:"settlement"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// StorageConfig selects the will registry backend.
type StorageConfig struct {
	Driver string `mapstructure:"driver"` // postgres, memory
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"` // false = rate limiting disabled
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// JWTConfig configures verification of caller identity tokens issued by the hosting environment.
type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// LedgerConfig points at the liquid-asset ledger used during claim settlement.
type LedgerConfig struct {
	BaseURL        string        `mapstructure:"base_url"` // empty = ledger unavailable
	TokenID        string        `mapstructure:"token_id"`
	SharedSecret   string        `mapstructure:"shared_secret"`
	Timeout        time.Duration `mapstructure:"timeout"`
	TransferAmount uint64        `mapstructure:"transfer_amount"`
}

type BitcoinConfig struct {
	Network    string        `mapstructure:"network"` // mainnet, testnet, regtest
	EsploraURL string        `mapstructure:"esplora_url"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

// KeyDerivConfig configures the local derivation service.
type KeyDerivConfig struct {
	MasterSeed string `mapstructure:"master_seed"` // hex, >= 32 bytes
	KeyName    string `mapstructure:"key_name"`
}

type SettlementConfig struct {
	Workers   int `mapstructure:"workers"`
	QueueSize int `mapstructure:"queue_size"`
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: IHV_ (InHeritance Vault).
// Nested keys use underscore: IHV_DATABASE_HOST, IHV_JWT_SECRET, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("storage.driver", "postgres")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "inheritance_vault")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.enabled", true)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "1h")
	v.SetDefault("jwt.issuer", "inheritance-vault")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("ledger.base_url", "")
	v.SetDefault("ledger.token_id", "mxzaz-hqaaa-aaaar-qaada-cai")
	v.SetDefault("ledger.shared_secret", "")
	v.SetDefault("ledger.timeout", "10s")
	v.SetDefault("ledger.transfer_amount", 1000)
	v.SetDefault("bitcoin.network", "testnet")
	v.SetDefault("bitcoin.esplora_url", "https://blockstream.info/testnet/api")
	v.SetDefault("bitcoin.timeout", "10s")
	v.SetDefault("keyderiv.master_seed", "")
	v.SetDefault("keyderiv.key_name", "dfx_test_key")
	v.SetDefault("settlement.workers", 2)
	v.SetDefault("settlement.queue_size", 64)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// IHV_DATABASE_HOST -> database.host
	v.SetEnvPrefix("IHV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config file is optional; env vars can suffice.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Validate rejects configurations the service cannot start with.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case "postgres", "memory":
	default:
		return fmt.Errorf("unsupported storage driver %q", c.Storage.Driver)
	}
	switch c.Bitcoin.Network {
	case "mainnet", "testnet", "regtest":
	default:
		return fmt.Errorf("unsupported bitcoin network %q", c.Bitcoin.Network)
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("jwt.secret is required")
	}
	if c.Settlement.Workers <= 0 || c.Settlement.QueueSize <= 0 {
		return fmt.Errorf("settlement.workers and settlement.queue_size must be positive")
	}
	return nil
}
