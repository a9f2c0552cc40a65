package test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api/router"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/chain/chaintest"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/config"
)

// SignerPrivateKey is the well known first development account. Tests recover signatures against SignerAddress.
const (
	SignerPrivateKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	SignerAddress    = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
)

// DefaultTestConfig returns the server config tests run with: the chaintest contract addresses, a known
// signing key, no database, no redis and no player wallet.
func DefaultTestConfig() config.Server {
	cfg := config.DefaultServiceConfigFromEnv()

	cfg.Database.Enabled = false
	cfg.Redis.Enabled = false
	cfg.Wallet.Enabled = false
	cfg.Chain = chaintest.ChainConfig()
	cfg.Signature.PrivateKey = SignerPrivateKey
	cfg.Logger.Level = zerolog.WarnLevel
	cfg.Logger.PrettyPrintConsole = false

	return cfg
}

// WithTestServer runs closure against a fully routed server backed by a read-only chaintest backend.
func WithTestServer(t *testing.T, closure func(s *api.Server)) {
	t.Helper()

	WithTestServerConfigurable(t, DefaultTestConfig(), closure)
}

// WithTestServerConfigurable is WithTestServer with a caller supplied config.
func WithTestServerConfigurable(t *testing.T, cfg config.Server, closure func(s *api.Server)) {
	t.Helper()

	backend := chaintest.NewBackend(t)
	backend.NetworkID = cfg.Chain.ExpectedChainID

	s, err := api.InitNewServerWithBackend(cfg, nil, backend)
	if err != nil {
		t.Fatalf("Failed to init server: %v", err)
	}

	if err := router.Init(s); err != nil {
		t.Fatalf("Failed to init router: %v", err)
	}

	closure(s)

	if errs := s.Shutdown(context.Background()); len(errs) > 0 {
		t.Fatalf("Failed to shutdown server: %v", errs)
	}
}

// Backend returns the chaintest backend the server of WithTestServer reads from.
func Backend(t *testing.T, s *api.Server) *chaintest.Backend {
	t.Helper()

	backend, ok := s.Chain.(*chaintest.Backend)
	if !ok {
		t.Fatalf("Server is not backed by chaintest: %T", s.Chain)
	}

	return backend
}
