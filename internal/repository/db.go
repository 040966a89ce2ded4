package repository

import (
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/mysqldialect"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// NewDB creates a database connection pool for the given driver and DSN and
// wraps it in a bun.DB with the matching dialect. Supported drivers are
// sqlite, mysql and postgres.
func NewDB(driver, dsn string) (*bun.DB, error) {
	driverName := driver
	// The pgx stdlib driver registers itself under the name "pgx".
	if driver == "postgres" {
		driverName = "pgx"
	}

	sqlDB, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	// An in-memory SQLite database lives per connection; with more than one
	// open connection the schema would be invisible to the others.
	if driver == "sqlite" && strings.Contains(dsn, ":memory:") {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	}

	if err := sqlDB.Ping(); err != nil {
		slog.Warn("database ping failed", "driver", driver, "error", err)
	}

	switch driver {
	case "sqlite":
		return bun.NewDB(sqlDB, sqlitedialect.New()), nil
	case "postgres":
		return bun.NewDB(sqlDB, pgdialect.New()), nil
	case "mysql":
		return bun.NewDB(sqlDB, mysqldialect.New()), nil
	default:
		_ = sqlDB.Close()
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}
