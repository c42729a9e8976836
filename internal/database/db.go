package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"

	"github.com/iliyamo/no-pressure/internal/config"
)

// Connector holds a driver name and DSN and opens a fresh connection for
// every storage call.  The readings table sees a single short-lived statement
// per call, so there is no shared handle and no pool; callers close the
// returned *sql.DB on all exit paths.
type Connector struct {
	driver string
	dsn    string
}

// NewConnector builds the DSN for the configured driver.  DB_DSN, when set,
// is passed through untouched.
func NewConnector(cfg config.Config) (*Connector, error) {
	switch cfg.DBDriver {
	case "mysql", "sqlite3":
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	dsn := cfg.DBDSN
	if dsn == "" {
		var err error
		dsn, err = buildDSN(cfg)
		if err != nil {
			return nil, err
		}
	}
	return &Connector{driver: cfg.DBDriver, dsn: dsn}, nil
}

// Driver reports the database/sql driver name this connector opens.
func (c *Connector) Driver() string { return c.driver }

// Open returns a new connection handle capped at one underlying connection.
// Connection failures surface on the first statement, not here.
func (c *Connector) Open() (*sql.DB, error) {
	db, err := sql.Open(c.driver, c.dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", c.driver, err)
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

func buildDSN(cfg config.Config) (string, error) {
	switch cfg.DBDriver {
	case "mysql":
		auth := cfg.DBUser
		if cfg.DBPass != "" {
			auth = fmt.Sprintf("%s:%s", cfg.DBUser, cfg.DBPass)
		}
		// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
		return fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
			auth, cfg.DBHost, cfg.DBPort, cfg.DBName), nil
	case "sqlite3":
		if cfg.DBPath == "" {
			return "", fmt.Errorf("sqlite3 driver requires DB_PATH")
		}
		if dir := filepath.Dir(cfg.DBPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return "", fmt.Errorf("mkdir %s: %w", dir, err)
			}
		}
		// busy_timeout matters here: every storage call opens its own handle,
		// so concurrent submissions briefly contend for the file lock.
		return fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", cfg.DBPath), nil
	}
	return "", fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
}
