package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	migrate "github.com/rubenv/sql-migrate"
	"github.com/spf13/cobra"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api/router"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/config"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/logging"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/migrations"
)

const (
	migrateFlag     = "migrate"
	shutdownTimeout = 30 * time.Second
)

type Flags struct {
	ApplyMigrations bool
}

func New() *cobra.Command {
	var flags Flags

	cmd := &cobra.Command{
		Use:   "server",
		Short: "Starts the server",
		Long: `Starts the HTTP API.

Requires configuration through ENV and
a fully migrated database when the flow journal is enabled.`,
		Run: func(_ *cobra.Command, _ []string) {
			runServer(flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.ApplyMigrations, migrateFlag, "m", false, "Apply migrations before starting the server")

	return cmd
}

func runServer(flags Flags) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	closer := logging.Configure(cfg.Logger)
	defer closer.Close()

	s, err := api.InitNewServer(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize server")
	}

	if flags.ApplyMigrations {
		if s.DB == nil {
			log.Warn().Msg("Skipping migrations, the flow journal is disabled")
		} else {
			n, err := migrate.Exec(s.DB, "postgres", migrations.Source(), migrate.Up)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to apply migrations")
			}
			log.Info().Int("count", n).Msg("Applied migrations")
		}
	}

	if err := router.Init(s); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize router")
	}

	go func() {
		if err := s.Start(); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				log.Info().Msg("Server closed")
			} else {
				log.Fatal().Err(err).Msg("Failed to start server")
			}
		}
	}()

	log.Info().
		Str("listen", cfg.Echo.ListenAddress).
		Str("wallet", s.Wallet.Address().Hex()).
		Bool("walletConnected", s.Wallet.Connected()).
		Bool("journal", s.Journal != nil).
		Msg("Server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if errs := s.Shutdown(ctx); len(errs) > 0 {
		log.Fatal().Errs("shutdownErrors", errs).Msg("Failed to gracefully shut down server")
	}

	log.Info().Msg("Server shutdown")
}
