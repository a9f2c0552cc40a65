package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"
	migrate "github.com/rubenv/sql-migrate"
	"github.com/spf13/cobra"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/config"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/journal"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/migrations"
)

const dialect = "postgres"

func newMigrate() *cobra.Command {
	var down int

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Executes all pending flow journal migrations",
		Long: `Executes all pending flow journal migrations.
With --down N the last N migrations are rolled back instead.`,
		Run: func(cmd *cobra.Command, _ []string) {
			withDB(cmd.Context(), func(db *sql.DB) {
				direction := migrate.Up
				limit := 0
				if down > 0 {
					direction = migrate.Down
					limit = down
				}

				n, err := migrate.ExecMax(db, dialect, migrations.Source(), direction, limit)
				if err != nil {
					log.Fatal().Err(err).Msg("Failed to run migrations")
				}

				log.Info().Int("count", n).Bool("down", down > 0).Msg("Successfully ran migrations")
			})
		},
	}

	cmd.Flags().IntVar(&down, "down", 0, "Roll back the last N migrations")

	return cmd
}

func newStatus() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Prints the applied and pending migrations",
		Run: func(cmd *cobra.Command, _ []string) {
			withDB(cmd.Context(), func(db *sql.DB) {
				all, err := migrations.Source().FindMigrations()
				if err != nil {
					log.Fatal().Err(err).Msg("Failed to list migrations")
				}

				records, err := migrate.GetMigrationRecords(db, dialect)
				if err != nil {
					log.Fatal().Err(err).Msg("Failed to read migration records")
				}

				applied := make(map[string]bool, len(records))
				for _, record := range records {
					applied[record.Id] = true
				}

				for _, m := range all {
					state := "pending"
					if applied[m.Id] {
						state = "applied"
					}
					fmt.Printf("%-8s %s\n", state, m.Id) //nolint:forbidigo
				}
			})
		},
	}
}

func withDB(ctx context.Context, f func(db *sql.DB)) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	db, err := journal.Open(ctx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	f(db)
}
