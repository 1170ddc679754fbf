package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

var (
	ErrUnsupportedDSN = errors.New("unsupported connection string")
)

// DB envuelve el pool y el dialecto detectado desde el DSN.
type DB struct {
	*sql.DB
	dialect dialect
}

// Open detecta el driver (pgx o sqlite) a partir del DSN, abre el pool y hace ping.
func Open(dsn string) (*DB, error) {
	d, driverDSN, err := detect(dsn)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(d.driver, driverDSN)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", d.name, err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	// cada conexión a :memory: es una base distinta
	if d.name == dialectSQLite.name && strings.Contains(driverDSN, ":memory:") {
		db.SetMaxOpenConns(1)
		db.SetConnMaxIdleTime(0)
		db.SetConnMaxLifetime(0)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", d.name, err)
	}

	log.Debug().Str("driver", d.name).Msg("database connection established")

	return &DB{DB: db, dialect: d}, nil
}

// Driver devuelve "postgres" o "sqlite".
func (db *DB) Driver() string {
	return db.dialect.name
}

// Transaction ejecuta fn dentro de una transacción; rollback si fn falla.
func (db *DB) Transaction(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error().Err(rbErr).Msg("failed to rollback transaction")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// detect mapea el connection string al dialecto y al DSN que entiende el driver.
func detect(dsn string) (dialect, string, error) {
	dsn = strings.TrimSpace(dsn)
	lower := strings.ToLower(dsn)

	switch {
	case dsn == "":
		return dialect{}, "", fmt.Errorf("%w: empty", ErrUnsupportedDSN)
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return dialectPostgres, dsn, nil
	case strings.Contains(lower, "host=") || strings.Contains(lower, "dbname="):
		return dialectPostgres, dsn, nil
	case strings.HasPrefix(lower, "sqlite://"):
		return dialectSQLite, withSQLitePragmas(dsn[len("sqlite://"):]), nil
	case strings.HasPrefix(lower, "sqlite:"):
		return dialectSQLite, withSQLitePragmas(dsn[len("sqlite:"):]), nil
	case strings.HasPrefix(lower, "file:"), lower == ":memory:":
		return dialectSQLite, withSQLitePragmas(dsn), nil
	case strings.HasSuffix(lower, ".db"), strings.HasSuffix(lower, ".sqlite"), strings.HasSuffix(lower, ".sqlite3"):
		return dialectSQLite, withSQLitePragmas(dsn), nil
	default:
		return dialect{}, "", fmt.Errorf("%w: %q", ErrUnsupportedDSN, redact(dsn))
	}
}

// WAL + busy_timeout como en el resto de los servicios con sqlite.
// Si el DSN ya trae parámetros, se respetan tal cual.
func withSQLitePragmas(path string) string {
	if strings.Contains(path, "?") || strings.Contains(path, ":memory:") {
		return path
	}
	return path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
}

var secretKV = regexp.MustCompile(`(?i)\b(password|pwd)\s*=\s*('[^']*'|"[^"]*"|[^;\s]*)`)

// redact evita loguear credenciales de un DSN inválido:
// userinfo de URLs (user:pass@host) y password=/pwd= en formato key=value.
func redact(dsn string) string {
	dsn = secretKV.ReplaceAllString(dsn, "${1}=***")
	if !strings.Contains(dsn, "://") {
		return dsn
	}
	if i := strings.LastIndex(dsn, "@"); i >= 0 {
		scheme := dsn[:strings.Index(dsn, "://")+3]
		return scheme + "***" + dsn[i:]
	}
	return dsn
}
