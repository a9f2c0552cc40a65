package config_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/config"
)

func validConfig() config.Server {
	cfg := config.DefaultServiceConfigFromEnv()
	cfg.Chain.RPCURLs = []string{"http://127.0.0.1:8545"}
	cfg.Chain.UserManagement = "0x1111111111111111111111111111111111111111"
	cfg.Chain.BattleManagement = "0x2222222222222222222222222222222222222222"
	cfg.Chain.SeasonManagement = "0x3333333333333333333333333333333333333333"
	cfg.Chain.Moonsters = "0x4444444444444444444444444444444444444444"
	cfg.Chain.DefaultToken = ""
	cfg.Lists.MaxCaptureList = 6

	return cfg
}

func TestPrintServiceEnv(t *testing.T) {
	config := config.DefaultServiceConfigFromEnv()
	_, err := json.MarshalIndent(config, "", "  ")

	if err != nil {
		t.Fatal(err)
	}
}

func TestSecretsAreNotSerialized(t *testing.T) {
	cfg := validConfig()
	cfg.Signature.PrivateKey = "deadbeef"
	cfg.Wallet.Password = "hunter22"

	out, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "deadbeef")
	assert.NotContains(t, string(out), "hunter22")
}

func TestValidate(t *testing.T) {
	require.NoError(t, config.Validate(validConfig()))

	cfg := validConfig()
	cfg.Chain.Moonsters = "not-an-address"
	assert.Error(t, config.Validate(cfg))

	cfg = validConfig()
	cfg.Lists.MaxCaptureList = 12
	assert.Error(t, config.Validate(cfg))

	cfg = validConfig()
	cfg.Chain.RPCURLs = nil
	assert.Error(t, config.Validate(cfg))
}

func TestApplyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moonsters.yaml")
	content := []byte(`chain:
  expected_chain_id: 1135
  moonsters: "0x5555555555555555555555555555555555555555"
orchestrator:
  join_timeout: 45s
lists:
  max_capture_list: 9
logger:
  level: debug
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg := validConfig()
	require.NoError(t, config.ApplyFile(&cfg, path))

	assert.Equal(t, int64(1135), cfg.Chain.ExpectedChainID)
	assert.Equal(t, "0x5555555555555555555555555555555555555555", cfg.Chain.Moonsters)
	assert.Equal(t, 45*time.Second, cfg.Orchestrator.JoinTimeout)
	assert.Equal(t, 9, cfg.Lists.MaxCaptureList)
	assert.Equal(t, "debug", cfg.Logger.Level.String())
	// untouched keys keep env values
	assert.Equal(t, "0x1111111111111111111111111111111111111111", cfg.Chain.UserManagement)
}

func TestConnectionString(t *testing.T) {
	db := config.Database{
		Host:     "localhost",
		Port:     5432,
		Username: "user",
		Password: "pass",
		Database: "moonsters",
		AdditionalParams: map[string]string{
			"sslmode":          "require",
			"application_name": "moonsters",
		},
	}

	assert.Equal(t, "host=localhost port=5432 user=user password=pass dbname=moonsters application_name=moonsters sslmode=require", db.ConnectionString())
}
