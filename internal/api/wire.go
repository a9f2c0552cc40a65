//go:build wireinject

package api

import (
	"database/sql"

	"github.com/google/wire"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/chain"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/config"
)

// INJECTORS - https://github.com/google/wire/blob/main/docs/guide.md#injectors

// serviceSet groups the default set of providers that are required for initing a server
var serviceSet = wire.NewSet(
	newServerWithComponents,
	NewClock,
	NewContracts,
	NewCacheStore,
	NewFacade,
	NewRegistry,
	NewMetrics,
	NewSigner,
	NewWallet,
	NewI18N,
	NewJournal,
	NewOrchestrator,
	NewAdmin,
	NewLists,
	NewLimiter,
)

// InitNewServer returns a new Server instance.
func InitNewServer(
	_ config.Server,
) (*Server, error) {
	wire.Build(serviceSet, NewDB, NewChainBackend)
	return new(Server), nil
}

// InitNewServerWithBackend returns a new Server instance talking to the given chain backend.
// db may be nil to run without the flow journal.
// All the other components are initialized via go wire according to the configuration.
func InitNewServerWithBackend(
	_ config.Server,
	_ *sql.DB,
	_ chain.Backend,
) (*Server, error) {
	wire.Build(serviceSet)
	return new(Server), nil
}
