package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/DruxAMB/AroundTheWorld-sub001/internal/domain"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	Version     string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	APIKey     string // API key for authentication
	CronSecret string // shared secret for the automated distribution trigger

	WalletAPIURL string
	WalletAPIKey string

	NotifyURL    string
	NotifyAPIKey string

	// Reward distribution settings
	RewardPoolAmount  int64 // default pool size in smallest units, overridable in settings
	PayoutConcurrency int   // max in-flight recipient transfers during fan-out

	// Delegated spend permission, signed out of band by the authorizer
	AuthorizerAddress string
	OperatorAddress   string
	AssetAddress      string
	ChainID           int64
	GrantCapAmount    int64
	GrantPeriodDays   int
	GrantSignature    string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", "INFO"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		Version:     getEnv("VERSION", "dev"),

		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     getEnv("DB_NAME", "aroundtheworld"),

		APIKey:     getEnv("API_KEY", ""),
		CronSecret: getEnv("CRON_SECRET", ""),

		WalletAPIURL: getEnv("WALLET_API_URL", ""),
		WalletAPIKey: getEnv("WALLET_API_KEY", ""),

		NotifyURL:    getEnv("NOTIFY_URL", ""),
		NotifyAPIKey: getEnv("NOTIFY_API_KEY", ""),

		AuthorizerAddress: getEnv("REWARDS_AUTHORIZER_ADDRESS", ""),
		OperatorAddress:   getEnv("REWARDS_OPERATOR_ADDRESS", ""),
		AssetAddress:      getEnv("REWARDS_ASSET_ADDRESS", ""),
		GrantSignature:    getEnv("SPEND_PERMISSION_SIGNATURE", ""),
	}

	port, err := getEnvInt("PORT", 8080)
	if err != nil {
		return nil, err
	}
	cfg.Port = port

	cfg.RewardPoolAmount, err = getEnvInt64("REWARD_POOL_AMOUNT", 0)
	if err != nil {
		return nil, err
	}

	concurrency, err := getEnvInt("PAYOUT_CONCURRENCY", 4)
	if err != nil {
		return nil, err
	}
	if concurrency < 1 {
		return nil, fmt.Errorf("PAYOUT_CONCURRENCY must be at least 1")
	}
	cfg.PayoutConcurrency = concurrency

	cfg.ChainID, err = getEnvInt64("CHAIN_ID", 8453)
	if err != nil {
		return nil, err
	}

	cfg.GrantCapAmount, err = getEnvInt64("SPEND_PERMISSION_CAP", 0)
	if err != nil {
		return nil, err
	}

	cfg.GrantPeriodDays, err = getEnvInt("SPEND_PERMISSION_PERIOD_DAYS", 7)
	if err != nil {
		return nil, err
	}

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	if cfg.WalletAPIURL == "" {
		return nil, fmt.Errorf("WALLET_API_URL environment variable must be set")
	}

	return cfg, nil
}

// SpendingGrant assembles the externally signed spend permission from
// configuration. The engine consumes it as-is and never mutates it.
func (c *Config) SpendingGrant() domain.SpendingGrant {
	return domain.SpendingGrant{
		Authorizer: c.AuthorizerAddress,
		Operator:   c.OperatorAddress,
		Asset:      c.AssetAddress,
		ChainID:    c.ChainID,
		CapAmount:  c.GrantCapAmount,
		PeriodDays: c.GrantPeriodDays,
		Signature:  c.GrantSignature,
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return v, nil
}

func getEnvInt64(key string, defaultValue int64) (int64, error) {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return v, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
