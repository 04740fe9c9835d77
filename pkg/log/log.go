// Package log provides the zerolog-based logger used by the bstr tool. Logs go
// nowhere until SetStd or Init is called; Init persists JSON log lines to an
// SQLite database that can be read back with GetLastNLogs.
package log

import (
	"database/sql"
	"errors"
	"fmt"
	stdlog "log"
	"os"
	"sync"
	"time"

	"bstr-go/pkg/appdir"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

var (
	pkgLogger = zerolog.Nop()
	dbWriter  *sqliteWriter
	mu        sync.RWMutex

	// ErrNotInitialized is returned by the retrieval functions before Init.
	ErrNotInitialized = errors.New("log: logger not initialized, call log.Init() first")
)

// DefaultLimit is the number of entries GetLastNLogs returns for n <= 0.
const DefaultLimit = 100

type sqliteWriter struct {
	db   *sql.DB
	stmt *sql.Stmt
	mu   sync.Mutex
}

func newSQLiteWriter(dbPath string) (*sqliteWriter, error) {
	dsn := fmt.Sprintf("%s?_pragma=journal_mode=wal&_pragma=busy_timeout=5000", dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db %s: %w", dbPath, err)
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite db %s: %w", dbPath, err)
	}

	_, err = db.Exec(`
    CREATE TABLE IF NOT EXISTS logs (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        inserted_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP NOT NULL,
        log_data TEXT NOT NULL
    );`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create logs table: %w", err)
	}

	stmt, err := db.Prepare(`INSERT INTO logs (log_data) VALUES (?)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to prepare insert statement: %w", err)
	}
	return &sqliteWriter{db: db, stmt: stmt}, nil
}

func (w *sqliteWriter) Write(p []byte) (n int, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stmt == nil {
		return 0, errors.New("log: write to closed SQLite logger")
	}
	if _, err = w.stmt.Exec(string(p)); err != nil {
		stdlog.Printf("ERROR writing log to SQLite: %v\n", err)
		return 0, err
	}
	return len(p), nil
}

func (w *sqliteWriter) close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	var errs []error
	if w.stmt != nil {
		if err := w.stmt.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing statement: %w", err))
		}
		w.stmt = nil
	}
	if w.db != nil {
		if err := w.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing db: %w", err))
		}
		w.db = nil
	}
	return errors.Join(errs...)
}

// SetStd logs human readable lines to stderr at the given level.
func SetStd(level zerolog.Level) {
	mu.Lock()
	defer mu.Unlock()
	pkgLogger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// Init persists JSON log lines at the given level to the SQLite database
// dbFile. Relative paths live in the application directory.
func Init(dbFile string, level zerolog.Level) error {
	if dbFile == "" {
		return fmt.Errorf("logger need an explicit dbFile")
	}
	dbPath, err := appdir.Resolve(dbFile)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	if dbWriter != nil {
		return fmt.Errorf("logger already initialized")
	}

	w, err := newSQLiteWriter(dbPath)
	if err != nil {
		return fmt.Errorf("failed to create SQLite writer: %w", err)
	}
	dbWriter = w
	zerolog.TimeFieldFormat = time.RFC3339Nano
	pkgLogger = zerolog.New(dbWriter).Level(level).With().Timestamp().Logger()
	return nil
}

// Close flushes and closes the SQLite sink, if any, and mutes the logger.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	pkgLogger = zerolog.Nop()
	if dbWriter == nil {
		return nil
	}
	w := dbWriter
	dbWriter = nil
	if err := w.close(); err != nil {
		return fmt.Errorf("error closing SQLite logger: %w", err)
	}
	return nil
}

// Logger returns the current package logger, for handing to libraries.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return pkgLogger
}

func Debug() *zerolog.Event { l := Logger(); return l.Debug() }
func Info() *zerolog.Event  { l := Logger(); return l.Info() }
func Warn() *zerolog.Event  { l := Logger(); return l.Warn() }
func Error() *zerolog.Event { l := Logger(); return l.Error() }

// Entry is one persisted log line.
type Entry struct {
	ID         int64
	InsertedAt time.Time
	LogData    string // raw JSON
}

// GetLastNLogs returns the n most recent entries, oldest first.
// A n <= 0 means DefaultLimit.
func GetLastNLogs(n int) ([]Entry, error) {
	mu.RLock()
	w := dbWriter
	mu.RUnlock()
	if w == nil {
		return nil, ErrNotInitialized
	}
	if n <= 0 {
		n = DefaultLimit
	}

	rows, err := w.db.Query(`SELECT id, inserted_at, log_data FROM logs ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query last %d logs: %w", n, err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var insertedAt string
		if err := rows.Scan(&e.ID, &insertedAt, &e.LogData); err != nil {
			return nil, fmt.Errorf("failed to scan log entry: %w", err)
		}
		e.InsertedAt = parseDBTimestamp(insertedAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating log rows: %w", err)
	}

	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

// parseDBTimestamp tries the timestamp layouts SQLite hands back.
func parseDBTimestamp(ts string) time.Time {
	for _, layout := range []string{time.DateTime, time.RFC3339, time.RFC3339Nano, "2006-01-02 15:04:05.999"} {
		if t, err := time.Parse(layout, ts); err == nil {
			return t
		}
	}
	return time.Time{}
}
