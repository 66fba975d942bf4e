package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

var _ KeyValue = (*SQLKV)(nil)

const undefinedTableCode = "42P01"

type sqlDialect struct {
	schema string
	upsert string
}

var (
	ansiDialect = sqlDialect{
		schema: `
			CREATE TABLE IF NOT EXISTS kv_store (
				store_key   VARCHAR(191) PRIMARY KEY,
				store_value TEXT NOT NULL,
				updated_at  TIMESTAMP NOT NULL
			)`,
		upsert: `
			INSERT INTO kv_store (store_key, store_value, updated_at)
			VALUES (?, ?, ?)
			ON CONFLICT (store_key) DO UPDATE
			SET store_value = excluded.store_value,
			    updated_at = excluded.updated_at`,
	}

	mysqlDialect = sqlDialect{
		schema: `
			CREATE TABLE IF NOT EXISTS kv_store (
				store_key   VARCHAR(191) PRIMARY KEY,
				store_value LONGTEXT NOT NULL,
				updated_at  DATETIME(6) NOT NULL
			)`,
		upsert: `
			INSERT INTO kv_store (store_key, store_value, updated_at)
			VALUES (?, ?, ?)
			ON DUPLICATE KEY UPDATE
			    store_value = VALUES(store_value),
			    updated_at = VALUES(updated_at)`,
	}
)

func dialectFor(driver string) (sqlDialect, error) {
	switch driver {
	case "sqlite3", "pgx", "postgres":
		return ansiDialect, nil
	case "mysql":
		return mysqlDialect, nil
	default:
		return sqlDialect{}, fmt.Errorf("unsupported sql driver %q", driver)
	}
}

// SQLKV keeps every key as one row of the kv_store table. It works with the
// sqlite3, pgx/postgres and mysql drivers.
type SQLKV struct {
	db      *sqlx.DB
	dialect sqlDialect
}

func NewSQLKV(db *sqlx.DB) (*SQLKV, error) {
	d, err := dialectFor(db.DriverName())
	if err != nil {
		return nil, err
	}
	return &SQLKV{db: db, dialect: d}, nil
}

// ConnectSQL opens the database and tunes its connection pool. The schema is
// created separately by Migrate.
func ConnectSQL(ctx context.Context, driver, dsn string) (*sqlx.DB, error) {
	if _, err := dialectFor(driver); err != nil {
		return nil, err
	}

	db, err := sqlx.ConnectContext(ctx, driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", driver, err)
	}

	if driver == "sqlite3" {
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	return db, nil
}

func (r *SQLKV) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, r.dialect.schema); err != nil {
		return fmt.Errorf("failed to create kv_store table: %w", err)
	}
	return nil
}

func (r *SQLKV) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	query := r.db.Rebind(`SELECT store_value FROM kv_store WHERE store_key = ?`)

	err := r.db.GetContext(ctx, &value, query, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		if isUndefinedTable(err) {
			log.Printf("[STORE] kv_store table missing, reading %s as empty", key)
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

func (r *SQLKV) Set(ctx context.Context, key, value string) error {
	query := r.db.Rebind(r.dialect.upsert)

	_, err := r.db.ExecContext(ctx, query, key, value, time.Now().UTC())
	return err
}

func (r *SQLKV) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func isUndefinedTable(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == undefinedTableCode
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == undefinedTableCode
	}
	return false
}
