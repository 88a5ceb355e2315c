package database

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"os"
	"time"

	"log/slog"

	"github.com/pantrybook/pantry-server/pantryserver/config"
	"github.com/pantrybook/pantry-server/pantryserver/database/models"
	"github.com/uptrace/bun"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

const defaultRetryInterval = time.Second

type DBConfig struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	User         string `toml:"user"`
	Password     string `toml:"password"`
	Database     string `toml:"database"`
	PoolSize     int    `toml:"pool_size"`
	MaxIdleConns int    `toml:"max_idle_conns"`
	MaxLifetime  int    `toml:"max_lifetime"`
}

type DB struct {
	pool  *pgxpool.Pool
	bunDB *bun.DB
}

func New(ctx context.Context, cfg DBConfig) (*DB, error) {
	// Retry logic for initial connection
	var conn net.Conn
	var err error

	tryDial := func() (net.Conn, error) {
		addr := net.JoinHostPort(cfg.Host, fmt.Sprintf("%d", cfg.Port))
		force4 := os.Getenv("DB_DIAL_FORCE_IPV4") == "1"
		force6 := os.Getenv("DB_DIAL_FORCE_IPV6") == "1"

		if force4 {
			return net.DialTimeout("tcp4", addr, config.NetworkDialTimeout)
		}
		if force6 {
			return net.DialTimeout("tcp6", addr, config.NetworkDialTimeout)
		}

		// Prefer IPv4, then fall back to IPv6
		if c, e := net.DialTimeout("tcp4", addr, config.NetworkDialTimeout); e == nil {
			return c, nil
		}
		return net.DialTimeout("tcp6", addr, config.NetworkDialTimeout)
	}

	for i := 0; i < config.MaxRetries; i++ {
		conn, err = tryDial()
		if err == nil {
			break
		}
		time.Sleep(defaultRetryInterval)
	}
	if err != nil {
		return nil, fmt.Errorf("database server unreachable after %d attempts: %w", config.MaxRetries, err)
	}
	conn.Close()

	poolConfig, err := pgxpool.ParseConfig(buildConnString(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to parse pool config: %w", err)
	}
	if cfg.PoolSize > 0 {
		poolConfig.MaxConns = int32(cfg.PoolSize)
	}

	db, err := createDB(ctx, poolConfig)
	if err != nil {
		return nil, err
	}

	if err := db.pool.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	slog.Info("Database pool established",
		slog.String("type", "DB"),
		slog.String("host", cfg.Host),
		slog.String("database", cfg.Database))

	return db, nil
}

// Helper function to build connection string
func buildConnString(cfg DBConfig) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?connect_timeout=5",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database,
	)
}

// Helper function to create DB instance
func createDB(ctx context.Context, poolConfig *pgxpool.Config) (*DB, error) {
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	bunDB := newBunDB(pool)
	return &DB{pool: pool, bunDB: bunDB}, nil
}

func (db *DB) GetPool() *pgxpool.Pool {
	return db.pool
}

func (db *DB) BunDB() *bun.DB {
	return db.bunDB
}

func newBunDB(pool *pgxpool.Pool) *bun.DB {
	// Default to disabling SSL for Bun unless explicitly overridden by env
	sslMode := os.Getenv("PG_SSLMODE")
	if sslMode == "" {
		sslMode = "disable"
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		pool.Config().ConnConfig.User,
		pool.Config().ConnConfig.Password,
		pool.Config().ConnConfig.Host,
		pool.Config().ConnConfig.Port,
		pool.Config().ConnConfig.Database,
		sslMode,
	)

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	bunDB := bun.NewDB(sqldb, pgdialect.New())

	// m2m joins need explicit registration before first use
	bunDB.RegisterModel(
		(*models.CollectionRecipe)(nil),
		(*models.RecipeIngredient)(nil),
	)
	return bunDB
}

// InitializeSchema creates all required database tables and indexes
func (db *DB) InitializeSchema(ctx context.Context) error {
	// Create tables in the correct order to handle foreign key constraints
	tables := []interface{}{
		(*models.Household)(nil),
		(*models.Collection)(nil),
		(*models.Recipe)(nil),
		(*models.Ingredient)(nil),
		(*models.CollectionSubscription)(nil),
		(*models.CollectionRecipe)(nil),
		(*models.RecipeIngredient)(nil),
	}

	for _, model := range tables {
		query := db.bunDB.NewCreateTable().
			Model(model).
			IfNotExists()

		_, err := query.Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	// Partial unique indexes on the fork provenance marker are the backstop
	// for duplicate-fork races: a second concurrent fork of the same source
	// for the same household fails with a detectable conflict instead of
	// silently diverging.
	indexes := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS collections_fork_provenance_idx
			ON collections (household_id, forked_from) WHERE forked_from IS NOT NULL`,
		`CREATE UNIQUE INDEX IF NOT EXISTS recipes_fork_provenance_idx
			ON recipes (household_id, forked_from) WHERE forked_from IS NOT NULL`,
		`CREATE INDEX IF NOT EXISTS collection_recipes_recipe_idx
			ON collection_recipes (recipe_id)`,
		`CREATE INDEX IF NOT EXISTS recipe_ingredients_ingredient_idx
			ON recipe_ingredients (ingredient_id)`,
		`CREATE INDEX IF NOT EXISTS collection_subscriptions_collection_idx
			ON collection_subscriptions (collection_id)`,
	}
	for _, stmt := range indexes {
		if _, err := db.bunDB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	slog.Info("Database schema initialized",
		slog.String("type", "DB"),
		slog.Int("tables", len(tables)),
		slog.Int("indexes", len(indexes)))

	return nil
}

func (db *DB) Close() {
	if db.bunDB != nil {
		db.bunDB.Close()
	}
	if db.pool != nil {
		db.pool.Close()
	}
}
