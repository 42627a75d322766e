package cli

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"
	"kverse-gamification-service/internal/config"
	pgmigrations "kverse-gamification-service/internal/infra/postgres/migrations"
)

// NewMigrateCmd applies database migrations and seeds the default catalog.
func NewMigrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations and seed the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrations(cmd.Context(), *configPath)
		},
	}
}

func runMigrations(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	return runMigrationsWithConfig(ctx, cfg)
}

func runMigrationsWithConfig(ctx context.Context, cfg config.Config) error {
	if cfg.Postgres.URL == "" {
		return fmt.Errorf("postgres url not configured")
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.Postgres.URL)))
	db := bun.NewDB(sqldb, pgdialect.New())
	defer db.Close()

	migrator := migrate.NewMigrator(db, pgmigrations.Migrations)

	if err := migrator.Init(ctx); err != nil {
		return err
	}

	if _, err := migrator.Migrate(ctx); err != nil {
		return err
	}

	if err := seedCatalog(ctx, db); err != nil {
		return err
	}
	log.Printf("migrations applied")
	return nil
}

// seedCatalog upserts the default catalog so a fresh database serves the
// shipped content. Existing rows win: edits made through other tooling stay.
func seedCatalog(ctx context.Context, db *bun.DB) error {
	upsert := func(table, id string, entry any) error {
		data, err := json.Marshal(entry)
		if err != nil {
			return err
		}
		query := fmt.Sprintf(`INSERT INTO %s (id, data) VALUES (?, ?::jsonb) ON CONFLICT (id) DO NOTHING`, table)
		_, err = db.ExecContext(ctx, query, id, string(data))
		return err
	}

	for id, quiz := range defaultQuizzes() {
		if err := upsert("quizzes", id, quiz); err != nil {
			return err
		}
	}
	for id, reward := range defaultRewards() {
		if err := upsert("rewards", id, reward); err != nil {
			return err
		}
	}
	for id, challenge := range defaultChallenges() {
		if err := upsert("challenges", id, challenge); err != nil {
			return err
		}
	}
	return nil
}
