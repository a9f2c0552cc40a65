package config

import (
	"strings"

	validator "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/util"
)

// ConfigFileEnvKey points to an optional YAML/TOML/JSON file overlaying the env config.
const ConfigFileEnvKey = "MOONSTERS_CONFIG_FILE"

// Load builds the config from env, applies the optional config file and validates the result.
func Load() (Server, error) {
	cfg := DefaultServiceConfigFromEnv()

	if path := util.GetEnv(ConfigFileEnvKey, ""); path != "" {
		if err := ApplyFile(&cfg, path); err != nil {
			return cfg, err
		}
	}

	if err := Validate(cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// ApplyFile overlays the keys present in the given file onto cfg. Keys absent from the
// file keep their env-derived values.
func ApplyFile(cfg *Server, path string) error {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "failed to read config file %s", path)
	}

	applyOverlay(cfg, v)

	return nil
}

func applyOverlay(cfg *Server, v *viper.Viper) {
	if v.IsSet("chain.rpc_urls") {
		cfg.Chain.RPCURLs = v.GetStringSlice("chain.rpc_urls")
	}
	if v.IsSet("chain.expected_chain_id") {
		cfg.Chain.ExpectedChainID = v.GetInt64("chain.expected_chain_id")
	}
	if v.IsSet("chain.user_management") {
		cfg.Chain.UserManagement = v.GetString("chain.user_management")
	}
	if v.IsSet("chain.battle_management") {
		cfg.Chain.BattleManagement = v.GetString("chain.battle_management")
	}
	if v.IsSet("chain.season_management") {
		cfg.Chain.SeasonManagement = v.GetString("chain.season_management")
	}
	if v.IsSet("chain.moonsters") {
		cfg.Chain.Moonsters = v.GetString("chain.moonsters")
	}
	if v.IsSet("chain.default_token") {
		cfg.Chain.DefaultToken = v.GetString("chain.default_token")
	}
	if v.IsSet("chain.explorer_url") {
		cfg.Chain.ExplorerURL = v.GetString("chain.explorer_url")
	}
	if v.IsSet("chain.image_base_url") {
		cfg.Chain.ImageBaseURL = v.GetString("chain.image_base_url")
	}

	if v.IsSet("orchestrator.approve_timeout") {
		cfg.Orchestrator.ApproveTimeout = v.GetDuration("orchestrator.approve_timeout")
	}
	if v.IsSet("orchestrator.capture_timeout") {
		cfg.Orchestrator.CaptureTimeout = v.GetDuration("orchestrator.capture_timeout")
	}
	if v.IsSet("orchestrator.evolve_timeout") {
		cfg.Orchestrator.EvolveTimeout = v.GetDuration("orchestrator.evolve_timeout")
	}
	if v.IsSet("orchestrator.join_timeout") {
		cfg.Orchestrator.JoinTimeout = v.GetDuration("orchestrator.join_timeout")
	}

	if v.IsSet("signature.rate_per_minute") {
		cfg.Signature.RatePerMinute = v.GetInt("signature.rate_per_minute")
	}
	if v.IsSet("signature.burst") {
		cfg.Signature.Burst = v.GetInt("signature.burst")
	}

	if v.IsSet("lists.max_capture_list") {
		cfg.Lists.MaxCaptureList = v.GetInt("lists.max_capture_list")
	}
	if v.IsSet("lists.session_ttl") {
		cfg.Lists.SessionTTL = v.GetDuration("lists.session_ttl")
	}

	if v.IsSet("wallet.keystore_path") {
		cfg.Wallet.KeystorePath = v.GetString("wallet.keystore_path")
	}
	if v.IsSet("wallet.derivation_path") {
		cfg.Wallet.DerivationPath = v.GetString("wallet.derivation_path")
	}

	if v.IsSet("logger.level") {
		if level, err := zerolog.ParseLevel(strings.ToLower(v.GetString("logger.level"))); err == nil {
			cfg.Logger.Level = level
		}
	}
}

// Validate checks the struct tags of the config.
func Validate(cfg Server) error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	return nil
}
