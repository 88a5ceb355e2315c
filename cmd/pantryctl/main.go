package main

import (
	"context"
	"os"

	"log/slog"

	"github.com/pantrybook/pantry-server/pantryserver"
	"github.com/pantrybook/pantry-server/pantryserver/database"
	"github.com/pantrybook/pantry-server/pantryserver/logger"
	"github.com/pantrybook/pantry-server/pantryserver/migration"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "pantryctl",
	Short: "operational tooling for the pantry server",
}

var importLegacyCmd = &cobra.Command{
	Use:   "import-legacy",
	Short: "import households, recipes and collections from the legacy MongoDB backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := pantryserver.LoadConfig(configPath)
		if err != nil {
			return err
		}

		db, err := database.New(ctx, database.DBConfig{
			Host:     cfg.DB.Host,
			Port:     cfg.DB.Port,
			User:     cfg.DB.User,
			Password: cfg.DB.Password,
			Database: cfg.DB.Database,
			PoolSize: cfg.DB.PoolSize,
		})
		if err != nil {
			slog.Error("Failed to connect to database", slog.Any("error", err))
			return err
		}
		defer db.Close()

		if err := db.InitializeSchema(ctx); err != nil {
			return err
		}

		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Legacy.URI))
		if err != nil {
			slog.Error("Failed to connect to legacy MongoDB", slog.Any("error", err))
			return err
		}
		defer client.Disconnect(ctx)

		importer := migration.NewImporter(db.BunDB(), client.Database(cfg.Legacy.Database))
		if err := importer.ImportAll(ctx); err != nil {
			slog.Error("Import failed", slog.Any("error", err))
			return err
		}

		slog.Info("Legacy import completed successfully")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.toml", "path to config")
	rootCmd.AddCommand(importLegacyCmd)
}

func main() {
	slog.SetDefault(slog.New(logger.NewHandler()))
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
