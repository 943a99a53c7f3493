package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"github.com/ygoproxy/ygoproxy/printer"
	"github.com/ygoproxy/ygoproxy/printer/database"
	"github.com/ygoproxy/ygoproxy/printer/database/mongostore"
	"github.com/ygoproxy/ygoproxy/printer/database/repositories"
	"github.com/ygoproxy/ygoproxy/printer/migration"
)

var migrateCMD = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the record stores",
}

var migrateSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Create the PostgreSQL tables and indexes",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		db, err := connectPostgres(ctx, cfg.DB)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := db.Ping(ctx); err != nil {
			return err
		}
		if err := db.InitializeSchema(ctx); err != nil {
			slog.Error("Failed to initialize database schema", slog.Any("error", err))
			return err
		}

		counts, err := db.TableCounts(ctx)
		if err != nil {
			return err
		}
		tables := make([]string, 0, len(counts))
		for table := range counts {
			tables = append(tables, table)
		}
		sort.Strings(tables)
		for _, table := range tables {
			fmt.Fprintf(cmd.OutOrStdout(), "%-20s %d rows\n", table, counts[table])
		}
		return nil
	},
}

var migrateCopyCmd = &cobra.Command{
	Use:   "copy",
	Short: "Copy custom cards, decks and history between stores",
	RunE: func(cmd *cobra.Command, args []string) error {
		from, _ := cmd.Flags().GetString("from")
		to, _ := cmd.Flags().GetString("to")
		if from == to {
			return fmt.Errorf("source and target store are both %q", from)
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		source, closeSource, err := openStores(ctx, cfg, from)
		if err != nil {
			return err
		}
		defer closeSource()

		target, closeTarget, err := openStores(ctx, cfg, to)
		if err != nil {
			return err
		}
		defer closeTarget()

		stats, err := migration.NewMigrator(source, target, cfg.User.ID).MigrateAll(ctx)
		if err != nil {
			slog.Error("Migration failed", slog.Any("error", err))
			return err
		}

		out := cmd.OutOrStdout()
		for _, table := range []string{"custom_cards", "saved_decks", "generation_history"} {
			ts, ok := stats.Tables[table]
			if !ok {
				continue
			}
			fmt.Fprintf(out, "%-20s %d copied, %d skipped, %d errors\n", table, ts.Successful, ts.Skipped, ts.Errors)
		}
		fmt.Fprintf(out, "Finished in %s\n", stats.EndTime.Sub(stats.StartTime).Round(time.Millisecond))
		return nil
	},
}

func init() {
	migrateCopyCmd.Flags().String("from", printer.StoreMongo, "source store (postgres or mongo)")
	migrateCopyCmd.Flags().String("to", printer.StorePostgres, "target store (postgres or mongo)")

	migrateCMD.AddCommand(migrateSchemaCmd, migrateCopyCmd)
	rootCmd.AddCommand(migrateCMD)
}

func connectPostgres(ctx context.Context, cfg printer.DBConfig) (*database.DB, error) {
	start := time.Now()
	db, err := database.New(ctx, database.DBConfig{
		Host:     cfg.Host,
		Port:     cfg.Port,
		User:     cfg.User,
		Password: cfg.Password,
		Database: cfg.Database,
		PoolSize: cfg.PoolSize,
	})
	if err != nil {
		slog.Error("Database connection failed",
			slog.String("error", err.Error()),
			slog.Duration("attempted_for", time.Since(start)))
		return nil, err
	}
	return db, nil
}

// openStores connects one backend for the migrator.
func openStores(ctx context.Context, cfg *printer.Config, driver string) (migration.Stores, func(), error) {
	switch driver {
	case printer.StorePostgres:
		db, err := connectPostgres(ctx, cfg.DB)
		if err != nil {
			return migration.Stores{}, nil, err
		}
		if err := db.InitializeSchema(ctx); err != nil {
			db.Close()
			return migration.Stores{}, nil, err
		}
		bunDB := db.BunDB()
		return migration.Stores{
			CustomCards: repositories.NewCustomCardRepository(bunDB),
			Decks:       repositories.NewDeckRepository(bunDB),
			History:     repositories.NewHistoryRepository(bunDB),
		}, db.Close, nil

	case printer.StoreMongo:
		store, err := mongostore.Connect(ctx, cfg.Store.MongoURI, cfg.Store.MongoDatabase)
		if err != nil {
			return migration.Stores{}, nil, err
		}
		if err := store.EnsureIndexes(ctx); err != nil {
			_ = store.Close(ctx)
			return migration.Stores{}, nil, err
		}
		closer := func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = store.Close(ctx)
		}
		return migration.Stores{
			CustomCards: store.CustomCards(),
			Decks:       store.Decks(),
			History:     store.History(),
		}, closer, nil
	}
	return migration.Stores{}, nil, fmt.Errorf("unknown store %q", driver)
}
