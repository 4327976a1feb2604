package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("API_KEY", "test-key")
	t.Setenv("WALLET_API_URL", "http://localhost:9000")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, int64(8453), cfg.ChainID)
	assert.Equal(t, 4, cfg.PayoutConcurrency)
	assert.Equal(t, 7, cfg.GrantPeriodDays)
}

func TestLoad_RequiresAPIKey(t *testing.T) {
	t.Setenv("API_KEY", "")
	t.Setenv("WALLET_API_URL", "http://localhost:9000")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RequiresWalletURL(t *testing.T) {
	t.Setenv("API_KEY", "test-key")
	t.Setenv("WALLET_API_URL", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_InvalidNumbers(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "not-a-number")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RejectsNonPositiveConcurrency(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PAYOUT_CONCURRENCY", "0")

	_, err := Load()
	assert.Error(t, err)
}

func TestGetDBConnString(t *testing.T) {
	cfg := &Config{
		DBUser:     "rewards",
		DBPassword: "pw",
		DBHost:     "db.internal",
		DBPort:     "5432",
		DBName:     "aroundtheworld",
	}
	assert.Equal(t,
		"postgres://rewards:pw@db.internal:5432/aroundtheworld?sslmode=disable",
		cfg.GetDBConnString())
}

func TestSpendingGrant(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("REWARDS_AUTHORIZER_ADDRESS", "0xauth")
	t.Setenv("REWARDS_OPERATOR_ADDRESS", "0xop")
	t.Setenv("REWARDS_ASSET_ADDRESS", "0xasset")
	t.Setenv("SPEND_PERMISSION_CAP", "500000000")
	t.Setenv("SPEND_PERMISSION_SIGNATURE", "0xsig")

	cfg, err := Load()
	require.NoError(t, err)

	grant := cfg.SpendingGrant()
	assert.Equal(t, "0xauth", grant.Authorizer)
	assert.Equal(t, "0xop", grant.Operator)
	assert.Equal(t, "0xasset", grant.Asset)
	assert.Equal(t, int64(500000000), grant.CapAmount)
	assert.Equal(t, "0xsig", grant.Signature)
}
