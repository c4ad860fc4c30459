// Package store persists per-widget style overrides in a local SQLite file.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver, WAL-friendly

	"swatch/internal/debug"
	appErrors "swatch/internal/errors"
	"swatch/internal/style"
)

const schema = `
	CREATE TABLE IF NOT EXISTS overrides (
		widget TEXT NOT NULL,
		sheet TEXT NOT NULL,
		name TEXT NOT NULL,
		value TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		PRIMARY KEY (widget, name)
	);
	CREATE INDEX IF NOT EXISTS overrides_sheet ON overrides (sheet);
`

// stampLayout is fixed width so updated_at strings sort chronologically.
const stampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Widget summarizes the stored overrides of one widget instance.
type Widget struct {
	ID        string
	Sheet     string
	Count     int
	UpdatedAt time.Time
}

// Store reads and writes overrides keyed by widget id.
type Store struct {
	db   *sql.DB
	path string
	now  func() time.Time
}

// buildDSN creates a read-write WAL DSN for the given path.
func buildDSN(dbPath string) string {
	q := url.Values{}
	q.Add("_pragma", "journal_mode(WAL)")
	q.Add("_pragma", "busy_timeout(3000)")
	q.Add("_pragma", "foreign_keys(on)")
	return filepath.ToSlash(dbPath) + "?" + q.Encode()
}

// Open opens or creates the store at path and applies the schema.
func Open(ctx context.Context, path string) (*Store, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, appErrors.New(appErrors.CodeConfigurationError, "override store path is empty", nil)
	}
	//nolint:gosec // G301: User data directory needs standard permissions
	if err := os.MkdirAll(filepath.Dir(trimmed), 0755); err != nil {
		return nil, storageErr("create store directory", err)
	}

	db, err := sql.Open("sqlite", buildDSN(trimmed))
	if err != nil {
		return nil, storageErr("open override store", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, storageErr("ping override store", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, storageErr("apply schema", err)
	}
	debug.Logf("store: opened %s", trimmed)
	return &Store{db: db, path: trimmed, now: time.Now}, nil
}

// Path returns the database file backing the store.
func (s *Store) Path() string {
	return s.path
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Load returns the overrides saved for widget. Unknown widgets yield an
// empty, non-nil map.
func (s *Store) Load(ctx context.Context, widget string) (style.Overrides, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, value FROM overrides WHERE widget = ? ORDER BY name`, widget)
	if err != nil {
		return nil, storageErr("query overrides", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	out := make(style.Overrides)
	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return nil, storageErr("scan override", err)
		}
		out[name] = value
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("read overrides", err)
	}
	return out, nil
}

// Save merges overrides into the stored set for widget. Empty values delete
// the stored entry, matching how the resolver treats them as unset. A widget
// belongs to one sheet: saving under a different sheet drops the entries
// stored for the previous one.
func (s *Store) Save(ctx context.Context, widget, sheet string, overrides style.Overrides) error {
	if strings.TrimSpace(widget) == "" {
		return appErrors.New(appErrors.CodeInvalidOverride, "widget id is required", nil)
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storageErr("begin save", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM overrides WHERE widget = ? AND sheet <> ?`, widget, sheet); err != nil {
		return storageErr("drop overrides of previous sheet", err)
	}

	stamp := s.now().UTC().Format(stampLayout)
	for name, value := range overrides {
		if value == "" {
			if _, err := tx.ExecContext(ctx,
				`DELETE FROM overrides WHERE widget = ? AND name = ?`, widget, name); err != nil {
				return storageErr("delete override", err)
			}
			continue
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO overrides (widget, sheet, name, value, updated_at)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT (widget, name) DO UPDATE SET
				sheet = excluded.sheet,
				value = excluded.value,
				updated_at = excluded.updated_at
		`, widget, sheet, name, value, stamp); err != nil {
			return storageErr("upsert override", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return storageErr("commit save", err)
	}
	debug.Event("store: saved overrides", map[string]any{"widget": widget, "sheet": sheet, "count": len(overrides)})
	return nil
}

// Reset removes every stored override of widget.
func (s *Store) Reset(ctx context.Context, widget string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM overrides WHERE widget = ?`, widget); err != nil {
		return storageErr("reset overrides", err)
	}
	return nil
}

// List summarizes every widget with stored overrides, most recently updated
// first.
func (s *Store) List(ctx context.Context) ([]Widget, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT widget, MAX(sheet), COUNT(*), MAX(updated_at)
		FROM overrides
		GROUP BY widget
		ORDER BY MAX(updated_at) DESC, widget
	`)
	if err != nil {
		return nil, storageErr("query widgets", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var widgets []Widget
	for rows.Next() {
		var w Widget
		var updated string
		if err := rows.Scan(&w.ID, &w.Sheet, &w.Count, &updated); err != nil {
			return nil, storageErr("scan widget", err)
		}
		if ts, err := time.Parse(stampLayout, updated); err == nil {
			w.UpdatedAt = ts
		}
		widgets = append(widgets, w)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("read widgets", err)
	}
	return widgets, nil
}

func storageErr(msg string, err error) error {
	return appErrors.New(appErrors.CodeStorageFailed, fmt.Sprintf("%s: %v", msg, err), err)
}
