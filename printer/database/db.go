package database

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/ygoproxy/ygoproxy/printer/database/models"
	"github.com/ygoproxy/ygoproxy/printer/logger"
)

const (
	dialTimeout   = 5 * time.Second
	dialAttempts  = 3
	dialRetryWait = time.Second
)

type DBConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	Database string `toml:"database"`
	PoolSize int    `toml:"pool_size"`
}

func (c DBConfig) address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// dsn builds the connection URL; sslmode comes from PG_SSLMODE and is
// disabled by default for local servers.
func (c DBConfig) dsn() string {
	sslMode := os.Getenv("PG_SSLMODE")
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s&connect_timeout=5",
		c.User, c.Password, c.address(), c.Database, sslMode)
}

// DB pairs a pgx pool for raw statements with a bun handle for the
// repositories. Both point at the same database.
type DB struct {
	pool  *pgxpool.Pool
	bunDB *bun.DB
}

func New(ctx context.Context, cfg DBConfig) (*DB, error) {
	if err := waitReachable(ctx, cfg.address()); err != nil {
		return nil, err
	}

	poolConfig, err := pgxpool.ParseConfig(cfg.dsn())
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}
	if cfg.PoolSize > 0 {
		poolConfig.MaxConns = int32(cfg.PoolSize)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.dsn())))
	if cfg.PoolSize > 0 {
		sqldb.SetMaxOpenConns(cfg.PoolSize)
	}

	return &DB{pool: pool, bunDB: bun.NewDB(sqldb, pgdialect.New())}, nil
}

// waitReachable dials addr a few times so a container that is still
// starting does not fail the first command.
func waitReachable(ctx context.Context, addr string) error {
	var err error
	for attempt := 1; attempt <= dialAttempts; attempt++ {
		var conn net.Conn
		if conn, err = net.DialTimeout("tcp", addr, dialTimeout); err == nil {
			conn.Close()
			return nil
		}
		if attempt == dialAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(dialRetryWait):
		}
	}
	return fmt.Errorf("database server %s unreachable after %d attempts: %w", addr, dialAttempts, err)
}

func (db *DB) BunDB() *bun.DB {
	return db.bunDB
}

func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
	if db.bunDB != nil {
		db.bunDB.Close()
	}
}

// exec runs a statement on the pool and logs its timing.
func (db *DB) exec(ctx context.Context, stmt string) error {
	start := time.Now()
	_, err := db.pool.Exec(ctx, stmt)
	logger.LogQuery(stmt, time.Since(start), err)
	return err
}

var schemaIndexes = []string{
	"CREATE INDEX IF NOT EXISTS idx_custom_cards_user_id ON custom_cards(user_id)",
	"CREATE INDEX IF NOT EXISTS idx_custom_cards_created_at ON custom_cards(created_at DESC)",
	"CREATE INDEX IF NOT EXISTS idx_custom_cards_name_lower ON custom_cards(lower(name))",
	"CREATE INDEX IF NOT EXISTS idx_saved_decks_user_updated ON saved_decks(user_id, updated_at DESC)",
	"CREATE INDEX IF NOT EXISTS idx_generation_history_user_created ON generation_history(user_id, created_at DESC)",
}

// InitializeSchema creates the custom card, saved deck and history tables
// with their indexes. It is idempotent.
func (db *DB) InitializeSchema(ctx context.Context) error {
	for _, model := range []interface{}{
		(*models.CustomCard)(nil),
		(*models.SavedDeck)(nil),
		(*models.GenerationHistory)(nil),
	} {
		if _, err := db.bunDB.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	for _, idx := range schemaIndexes {
		if err := db.exec(ctx, idx); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}
	return nil
}

// Ping checks the pool and the bun handle.
func (db *DB) Ping(ctx context.Context) error {
	if err := db.pool.Ping(ctx); err != nil {
		return fmt.Errorf("pgxpool ping failed: %w", err)
	}
	if err := db.bunDB.PingContext(ctx); err != nil {
		return fmt.Errorf("bun ping failed: %w", err)
	}
	return nil
}

const tableCountsQuery = `
SELECT 'custom_cards', count(*) FROM custom_cards
UNION ALL SELECT 'saved_decks', count(*) FROM saved_decks
UNION ALL SELECT 'generation_history', count(*) FROM generation_history`

// TableCounts reports the row count of each application table.
func (db *DB) TableCounts(ctx context.Context) (map[string]int64, error) {
	start := time.Now()
	rows, err := db.pool.Query(ctx, tableCountsQuery)
	logger.LogQuery("table counts", time.Since(start), err)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int64, 3)
	for rows.Next() {
		var (
			table string
			n     int64
		)
		if err := rows.Scan(&table, &n); err != nil {
			return nil, err
		}
		counts[table] = n
	}
	return counts, rows.Err()
}
