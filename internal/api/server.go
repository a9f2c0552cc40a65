package api

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/dropbox/godropbox/time2"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/action"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/admin"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/cache"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/chain"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/config"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/facade"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/i18n"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/journal"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/lists"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/metrics"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/ratelimit"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/signature"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/wallet"
)

type Router struct {
	Routes          []*echo.Route
	Root            *echo.Group
	Management      *echo.Group
	APIV1Signatures *echo.Group
	APIV1Moonsters  *echo.Group
	APIV1Users      *echo.Group
	APIV1Seasons    *echo.Group
	APIV1Rounds     *echo.Group
	APIV1Lists      *echo.Group
	APIV1Actions    *echo.Group
	APIV1Admin      *echo.Group
}

// Lists holds the session-scoped selections.
type Lists struct {
	Capture    lists.Service
	Comparison lists.Service
}

// Server is a central struct keeping all the dependencies.
// It is initialized with wire, which handles making the new instances of the components
// in the right order. To add a new component, 3 steps are required:
// - declaring it in this struct
// - adding a provider function in providers.go
// - adding the provider's function name to the arguments of wire.Build() in wire.go
//
// Components labeled as `wire:"-"` will be skipped and have to be initialized after the InitNewServer* call.
// For more information about wire refer to https://pkg.go.dev/github.com/google/wire
type Server struct {
	// skip wire:
	// -> initialized with router.Init(s) function
	Echo   *echo.Echo `wire:"-"`
	Router *Router    `wire:"-"`

	Config       config.Server
	DB           *sql.DB // nil unless the flow journal is enabled
	Clock        time2.Clock
	Chain        chain.Backend
	Contracts    *chain.Contracts
	Cache        cache.Store
	Facade       facade.Service
	Signer       signature.Service
	Wallet       *wallet.Account
	Orchestrator *action.Orchestrator
	Admin        *admin.Service
	Lists        *Lists
	Journal      *journal.Store // nil unless the flow journal is enabled
	Registry     *prometheus.Registry
	Metrics      *metrics.Collector
	Limiter      *ratelimit.KeyedLimiter
	I18n         *i18n.Bundle
}

// newServerWithComponents is used by wire to initialize the server components.
// Components not listed here won't be handled by wire and should be initialized separately.
// Components which shouldn't be handled must be labeled `wire:"-"` in Server struct.
func newServerWithComponents(
	cfg config.Server,
	db *sql.DB,
	clock time2.Clock,
	backend chain.Backend,
	contracts *chain.Contracts,
	store cache.Store,
	reads facade.Service,
	signer signature.Service,
	account *wallet.Account,
	orchestrator *action.Orchestrator,
	adminService *admin.Service,
	sessionLists *Lists,
	journalStore *journal.Store,
	registry *prometheus.Registry,
	collector *metrics.Collector,
	limiter *ratelimit.KeyedLimiter,
	bundle *i18n.Bundle,
) *Server {
	return &Server{
		Config:       cfg,
		DB:           db,
		Clock:        clock,
		Chain:        backend,
		Contracts:    contracts,
		Cache:        store,
		Facade:       reads,
		Signer:       signer,
		Wallet:       account,
		Orchestrator: orchestrator,
		Admin:        adminService,
		Lists:        sessionLists,
		Journal:      journalStore,
		Registry:     registry,
		Metrics:      collector,
		Limiter:      limiter,
		I18n:         bundle,
	}
}

func NewServer(config config.Server) *Server {
	s := &Server{
		Config: config,
	}

	return s
}

// Ready reports whether every required component is initialized. DB and Journal are optional.
func (s *Server) Ready() bool {
	missing := ""
	switch {
	case s.Echo == nil:
		missing = "echo"
	case s.Router == nil:
		missing = "router"
	case s.Chain == nil:
		missing = "chain"
	case s.Contracts == nil:
		missing = "contracts"
	case s.Cache == nil:
		missing = "cache"
	case s.Facade == nil:
		missing = "facade"
	case s.Signer == nil:
		missing = "signer"
	case s.Wallet == nil:
		missing = "wallet"
	case s.Orchestrator == nil:
		missing = "orchestrator"
	case s.Admin == nil:
		missing = "admin"
	case s.Lists == nil:
		missing = "lists"
	case s.Metrics == nil:
		missing = "metrics"
	case s.Limiter == nil:
		missing = "limiter"
	case s.I18n == nil:
		missing = "i18n"
	}

	if len(missing) > 0 {
		log.Debug().Str("component", missing).Msg("Server is not fully initialized")
		return false
	}

	return true
}

// Localizer returns the localizer for an Accept-Language header value.
func (s *Server) Localizer(acceptLanguage string) *i18n.Localizer {
	return s.I18n.Localizer(acceptLanguage, s.Config.I18n.DefaultLanguage.String())
}

func (s *Server) Start() error {
	if !s.Ready() {
		return errors.New("server is not ready")
	}

	if err := s.Echo.Start(s.Config.Echo.ListenAddress); err != nil {
		return fmt.Errorf("failed to start echo server: %w", err)
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context) []error {
	log.Warn().Msg("Shutting down server")

	var errs []error

	if s.DB != nil {
		log.Debug().Msg("Closing database connection")

		if err := s.DB.Close(); err != nil && !errors.Is(err, sql.ErrConnDone) {
			log.Error().Err(err).Msg("Failed to close database connection")
			errs = append(errs, err)
		}
	}

	if closer, ok := s.Chain.(interface{ Close() }); ok {
		log.Debug().Msg("Closing chain RPC clients")
		closer.Close()
	}

	if redisStore, ok := s.Cache.(*cache.RedisStore); ok {
		log.Debug().Msg("Closing redis connection")

		if err := redisStore.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close redis connection")
			errs = append(errs, err)
		}
	}

	if s.Echo != nil {
		log.Debug().Msg("Shutting down echo server")

		if err := s.Echo.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Failed to shutdown echo server")
			errs = append(errs, err)
		}
	}

	return errs
}
