package config

import (
	"time"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/util"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
)

// LiskSepoliaChainID is the only network the Moonsters contracts are deployed on.
const LiskSepoliaChainID int64 = 4202

type EchoServer struct {
	Debug                          bool
	ListenAddress                  string
	HideInternalServerErrorDetails bool
	BaseURL                        string
	EnableCORSMiddleware           bool
	EnableLoggerMiddleware         bool
	EnableRecoverMiddleware        bool
	EnableRequestIDMiddleware      bool
	EnableTrailingSlashMiddleware  bool
}

type LoggerServer struct {
	Level              zerolog.Level
	RequestLevel       zerolog.Level
	LogRequestBody     bool
	LogResponseBody    bool
	PrettyPrintConsole bool
	Caller             bool
	File               string
	FileMaxSizeMB      int
	FileMaxBackups     int
	FileMaxAgeDays     int
}

type Management struct {
	ReadinessTimeout time.Duration
	LivenessTimeout  time.Duration
}

// Chain holds the network and contract addresses the service talks to.
type Chain struct {
	RPCURLs          []string `validate:"min=1,dive,url"`
	ExpectedChainID  int64    `validate:"gt=0"`
	UserManagement   string   `validate:"required,eth_addr"`
	BattleManagement string   `validate:"required,eth_addr"`
	SeasonManagement string   `validate:"required,eth_addr"`
	Moonsters        string   `validate:"required,eth_addr"`
	DefaultToken     string   `validate:"omitempty,eth_addr"`
	ExplorerURL      string
	ImageBaseURL     string
	CallTimeout      time.Duration
}

type Signature struct {
	PrivateKey    string `json:"-"`
	RatePerMinute int    `validate:"gte=0"`
	Burst         int    `validate:"gte=0"`
}

type Wallet struct {
	Enabled        bool
	KeystorePath   string
	DerivationPath string
	Password       string `json:"-"`
}

// Orchestrator configures receipt waits and polling for on-chain flows.
type Orchestrator struct {
	ApproveTimeout time.Duration `validate:"gt=0"`
	CaptureTimeout time.Duration `validate:"gt=0"`
	EvolveTimeout  time.Duration `validate:"gt=0"`
	JoinTimeout    time.Duration `validate:"gt=0"`
	SubmitTimeout  time.Duration `validate:"gt=0"`
	InitialBackoff time.Duration `validate:"gt=0"`
	MaxBackoff     time.Duration `validate:"gt=0"`
	MaxAttempts    int           `validate:"gt=0"`
}

type Redis struct {
	Enabled   bool
	Addr      string
	Password  string `json:"-"`
	DB        int
	KeyPrefix string
}

type Cache struct {
	UserIDsTTL   time.Duration
	EvolutionTTL time.Duration
}

type Lists struct {
	MaxCaptureList int `validate:"min=5,max=9"`
	SessionTTL     time.Duration
}

type I18n struct {
	DefaultLanguage language.Tag
}

type Server struct {
	Database     Database
	Echo         EchoServer
	Logger       LoggerServer
	Management   Management
	Chain        Chain
	Signature    Signature
	Wallet       Wallet
	Orchestrator Orchestrator
	Redis        Redis
	Cache        Cache
	Lists        Lists
	I18n         I18n
}

// DefaultServiceConfigFromEnv returns the server config as parsed from environment variables
// and their respective defaults defined below.
// We don't expect that ENV_VARs change while we are running our application or our tests
// (and it would be a bad thing to do anyways with parallel testing).
// Do NOT use os.Setenv / os.Unsetenv in tests utilizing DefaultServiceConfigFromEnv()!
func DefaultServiceConfigFromEnv() Server {
	return Server{
		Database: Database{
			Enabled:  util.GetEnvAsBool("MOONSTERS_DB_ENABLED", false),
			Host:     util.GetEnv("PGHOST", "postgres"),
			Port:     util.GetEnvAsInt("PGPORT", 5432),
			Database: util.GetEnv("PGDATABASE", "moonsters"),
			Username: util.GetEnv("PGUSER", "dbuser"),
			Password: util.GetEnv("PGPASSWORD", ""),
			AdditionalParams: map[string]string{
				"sslmode": util.GetEnv("PGSSLMODE", "disable"),
			},
			MaxOpenConns:    util.GetEnvAsInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    util.GetEnvAsInt("DB_MAX_IDLE_CONNS", 2),
			ConnMaxLifetime: util.GetEnvAsDuration("DB_CONN_MAX_LIFETIME", 60*time.Second),
		},
		Echo: EchoServer{
			Debug:                          util.GetEnvAsBool("SERVER_ECHO_DEBUG", false),
			ListenAddress:                  util.GetEnv("SERVER_ECHO_LISTEN_ADDRESS", ":8080"),
			HideInternalServerErrorDetails: util.GetEnvAsBool("SERVER_ECHO_HIDE_INTERNAL_SERVER_ERROR_DETAILS", true),
			BaseURL:                        util.GetEnv("SERVER_ECHO_BASE_URL", "http://localhost:8080"),
			EnableCORSMiddleware:           util.GetEnvAsBool("SERVER_ECHO_ENABLE_CORS_MIDDLEWARE", true),
			EnableLoggerMiddleware:         util.GetEnvAsBool("SERVER_ECHO_ENABLE_LOGGER_MIDDLEWARE", true),
			EnableRecoverMiddleware:        util.GetEnvAsBool("SERVER_ECHO_ENABLE_RECOVER_MIDDLEWARE", true),
			EnableRequestIDMiddleware:      util.GetEnvAsBool("SERVER_ECHO_ENABLE_REQUEST_ID_MIDDLEWARE", true),
			EnableTrailingSlashMiddleware:  util.GetEnvAsBool("SERVER_ECHO_ENABLE_TRAILING_SLASH_MIDDLEWARE", true),
		},
		Logger: LoggerServer{
			Level:              util.GetEnvAsLogLevel("SERVER_LOGGER_LEVEL", zerolog.InfoLevel),
			RequestLevel:       util.GetEnvAsLogLevel("SERVER_LOGGER_REQUEST_LEVEL", zerolog.DebugLevel),
			LogRequestBody:     util.GetEnvAsBool("SERVER_LOGGER_LOG_REQUEST_BODY", false),
			LogResponseBody:    util.GetEnvAsBool("SERVER_LOGGER_LOG_RESPONSE_BODY", false),
			PrettyPrintConsole: util.GetEnvAsBool("SERVER_LOGGER_PRETTY_PRINT_CONSOLE", false),
			Caller:             util.GetEnvAsBool("SERVER_LOGGER_CALLER", false),
			File:               util.GetEnv("SERVER_LOGGER_FILE", ""),
			FileMaxSizeMB:      util.GetEnvAsInt("SERVER_LOGGER_FILE_MAX_SIZE_MB", 100),
			FileMaxBackups:     util.GetEnvAsInt("SERVER_LOGGER_FILE_MAX_BACKUPS", 3),
			FileMaxAgeDays:     util.GetEnvAsInt("SERVER_LOGGER_FILE_MAX_AGE_DAYS", 28),
		},
		Management: Management{
			ReadinessTimeout: util.GetEnvAsDuration("SERVER_MANAGEMENT_READINESS_TIMEOUT", 4*time.Second),
			LivenessTimeout:  util.GetEnvAsDuration("SERVER_MANAGEMENT_LIVENESS_TIMEOUT", 9*time.Second),
		},
		Chain: Chain{
			RPCURLs:          util.GetEnvAsStringArr("CHAIN_RPC_URLS", []string{"https://rpc.sepolia-api.lisk.com"}),
			ExpectedChainID:  util.GetEnvAsInt64("CHAIN_EXPECTED_CHAIN_ID", LiskSepoliaChainID),
			UserManagement:   util.GetEnv("CHAIN_USER_MANAGEMENT_ADDRESS", ""),
			BattleManagement: util.GetEnv("CHAIN_BATTLE_MANAGEMENT_ADDRESS", ""),
			SeasonManagement: util.GetEnv("CHAIN_SEASON_MANAGEMENT_ADDRESS", ""),
			Moonsters:        util.GetEnv("CHAIN_MOONSTERS_ADDRESS", ""),
			DefaultToken:     util.GetEnv("CHAIN_DEFAULT_TOKEN_ADDRESS", ""),
			ExplorerURL:      util.GetEnv("CHAIN_EXPLORER_URL", "https://sepolia-blockscout.lisk.com"),
			ImageBaseURL:     util.GetEnv("CHAIN_IMAGE_BASE_URL", ""),
			CallTimeout:      util.GetEnvAsDuration("CHAIN_CALL_TIMEOUT", 15*time.Second),
		},
		Signature: Signature{
			PrivateKey:    util.GetEnv("SIGNER_PRIVATE_KEY", ""),
			RatePerMinute: util.GetEnvAsInt("SIGNER_RATE_PER_MINUTE", 30),
			Burst:         util.GetEnvAsInt("SIGNER_BURST", 5),
		},
		Wallet: Wallet{
			Enabled:        util.GetEnvAsBool("WALLET_ENABLED", false),
			KeystorePath:   util.GetEnv("WALLET_KEYSTORE_PATH", "./keystore.json"),
			DerivationPath: util.GetEnv("WALLET_DERIVATION_PATH", "m/44'/60'/0'/0/0"),
			Password:       util.GetEnv("WALLET_PASSWORD", ""),
		},
		Orchestrator: Orchestrator{
			ApproveTimeout: util.GetEnvAsDuration("ORCHESTRATOR_APPROVE_TIMEOUT", 60*time.Second),
			CaptureTimeout: util.GetEnvAsDuration("ORCHESTRATOR_CAPTURE_TIMEOUT", 120*time.Second),
			EvolveTimeout:  util.GetEnvAsDuration("ORCHESTRATOR_EVOLVE_TIMEOUT", 120*time.Second),
			JoinTimeout:    util.GetEnvAsDuration("ORCHESTRATOR_JOIN_TIMEOUT", 30*time.Second),
			SubmitTimeout:  util.GetEnvAsDuration("ORCHESTRATOR_SUBMIT_TIMEOUT", 60*time.Second),
			InitialBackoff: util.GetEnvAsDuration("ORCHESTRATOR_INITIAL_BACKOFF", time.Second),
			MaxBackoff:     util.GetEnvAsDuration("ORCHESTRATOR_MAX_BACKOFF", 8*time.Second),
			MaxAttempts:    util.GetEnvAsInt("ORCHESTRATOR_MAX_ATTEMPTS", 40),
		},
		Redis: Redis{
			Enabled:   util.GetEnvAsBool("REDIS_ENABLED", false),
			Addr:      util.GetEnv("REDIS_ADDR", "redis:6379"),
			Password:  util.GetEnv("REDIS_PASSWORD", ""),
			DB:        util.GetEnvAsInt("REDIS_DB", 0),
			KeyPrefix: util.GetEnv("REDIS_KEY_PREFIX", "moonsters:"),
		},
		Cache: Cache{
			UserIDsTTL:   util.GetEnvAsDuration("CACHE_USER_IDS_TTL", 30*time.Second),
			EvolutionTTL: util.GetEnvAsDuration("CACHE_EVOLUTION_TTL", 24*time.Hour),
		},
		Lists: Lists{
			MaxCaptureList: util.GetEnvAsInt("LISTS_MAX_CAPTURE_LIST", 6),
			SessionTTL:     util.GetEnvAsDuration("LISTS_SESSION_TTL", 12*time.Hour),
		},
		I18n: I18n{
			DefaultLanguage: util.GetEnvAsLanguageTag("SERVER_I18N_DEFAULT_LANGUAGE", language.English),
		},
	}
}
