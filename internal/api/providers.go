package api

import (
	"context"
	"database/sql"

	"github.com/dropbox/godropbox/time2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
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

// PROVIDERS - define here only providers that for various reasons (e.g. cyclic dependency) can't live in their corresponding packages
// or for wrapping providers that only accept sub-configs to prevent the requirement for defining providers for sub-configs.
// https://github.com/google/wire/blob/main/docs/guide.md#defining-providers

// NewDB opens the flow journal database. It returns nil when the journal is disabled.
func NewDB(cfg config.Server) (*sql.DB, error) {
	if !cfg.Database.Enabled {
		log.Info().Msg("Flow journal disabled, running without database")
		return nil, nil //nolint:nilnil
	}

	return journal.Open(context.Background(), cfg.Database)
}

//nolint:ireturn
func NewClock() time2.Clock {
	return time2.DefaultClock
}

//nolint:ireturn
func NewChainBackend(cfg config.Server) (chain.Backend, error) {
	client, err := chain.NewRPCClient(cfg.Chain.RPCURLs)
	if err != nil {
		return nil, err
	}

	return client, nil
}

func NewContracts(cfg config.Server) (*chain.Contracts, error) {
	return chain.NewContracts(cfg.Chain)
}

// NewCacheStore returns Redis backed storage when enabled and an in-process store otherwise.
//
//nolint:ireturn
func NewCacheStore(cfg config.Server, clock time2.Clock) (cache.Store, error) {
	if !cfg.Redis.Enabled {
		return cache.NewMemoryStore(clock), nil
	}

	client, err := cache.NewRedisClient(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}

	return cache.NewRedisStore(client, cfg.Redis.KeyPrefix), nil
}

//nolint:ireturn
func NewFacade(cfg config.Server, backend chain.Backend, contracts *chain.Contracts, store cache.Store) facade.Service {
	return facade.NewService(backend, contracts, store, cfg.Cache)
}

func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

func NewMetrics(reg *prometheus.Registry) *metrics.Collector {
	return metrics.New(reg)
}

//nolint:ireturn
func NewSigner(cfg config.Server, clock time2.Clock, collector *metrics.Collector) (signature.Service, error) {
	return signature.NewService(cfg.Signature, clock, collector)
}

func NewWallet(cfg config.Server, backend chain.Backend) (*wallet.Account, error) {
	return wallet.Open(cfg.Wallet, backend)
}

func NewI18N(cfg config.Server) (*i18n.Bundle, error) {
	return i18n.NewBundle(cfg.I18n.DefaultLanguage)
}

// NewJournal returns nil when db is nil.
func NewJournal(db *sql.DB, clock time2.Clock) *journal.Store {
	if db == nil {
		return nil
	}

	return journal.New(db, clock)
}

func NewOrchestrator(
	cfg config.Server,
	account *wallet.Account,
	reads facade.Service,
	signer signature.Service,
	backend chain.Backend,
	contracts *chain.Contracts,
	bundle *i18n.Bundle,
	journalStore *journal.Store,
	collector *metrics.Collector,
) (*action.Orchestrator, error) {
	deps := action.Deps{
		Wallet:    account,
		Reads:     reads,
		Signer:    signer,
		Receipts:  backend,
		Contracts: contracts,
		Localizer: bundle.Localizer(cfg.I18n.DefaultLanguage.String()),
		Observer:  collector,
	}

	if journalStore != nil {
		deps.Recorder = journalStore
	}

	return action.NewOrchestrator(action.NewConfig(cfg.Chain, cfg.Orchestrator), deps)
}

func NewAdmin(cfg config.Server, orchestrator *action.Orchestrator, reads facade.Service, bundle *i18n.Bundle) *admin.Service {
	return admin.NewService(orchestrator, reads, bundle.Localizer(cfg.I18n.DefaultLanguage.String()))
}

func NewLists(cfg config.Server, store cache.Store) *Lists {
	return &Lists{
		Capture:    lists.NewCaptureList(store, cfg.Lists),
		Comparison: lists.NewComparisonList(store, cfg.Lists),
	}
}

func NewLimiter(cfg config.Server, clock time2.Clock) *ratelimit.KeyedLimiter {
	return ratelimit.NewFromConfig(cfg.Signature, clock)
}
