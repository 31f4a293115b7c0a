// Package storage provides the SQLite-backed level library.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/world"
)

// ErrPackNotFound is returned when a named pack is not in the library.
var ErrPackNotFound = errors.New("storage: pack not found")

// Store manages the SQLite database connection for the level library.
type Store struct {
	db *sql.DB
}

// Pack is a named, ordered group of imported levels.
type Pack struct {
	ID         int64
	ImportID   string // Fresh UUID for every import
	Name       string
	LevelCount int
	CreatedAt  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS packs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			import_id TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL UNIQUE,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS levels (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			pack_id INTEGER NOT NULL REFERENCES packs(id),
			level_id TEXT NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			plan TEXT NOT NULL,
			position INTEGER NOT NULL,
			UNIQUE (pack_id, level_id)
		);
		CREATE INDEX IF NOT EXISTS idx_levels_pack ON levels(pack_id, position);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// ImportPack stores lvls as the pack called name, in the given order.
// Importing under an existing name replaces that pack.
func (s *Store) ImportPack(ctx context.Context, name string, lvls []levels.Level) (Pack, error) {
	if name == "" {
		return Pack{}, errors.New("storage: pack name is empty")
	}
	if len(lvls) == 0 {
		return Pack{}, fmt.Errorf("storage: pack %s has no levels", name)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Pack{}, fmt.Errorf("storage: cannot begin import: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if err := deletePack(ctx, tx, name); err != nil && !errors.Is(err, ErrPackNotFound) {
		return Pack{}, err
	}

	pack := Pack{ImportID: uuid.NewString(), Name: name, LevelCount: len(lvls)}
	res, err := tx.ExecContext(ctx,
		"INSERT INTO packs (import_id, name) VALUES (?, ?)",
		pack.ImportID, pack.Name,
	)
	if err != nil {
		return Pack{}, fmt.Errorf("storage: cannot save pack: %w", err)
	}
	if pack.ID, err = res.LastInsertId(); err != nil {
		return Pack{}, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	for i, lvl := range lvls {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO levels (pack_id, level_id, name, plan, position)
			 VALUES (?, ?, ?, ?, ?)`,
			pack.ID, lvl.ID, lvl.Name, strings.Join(lvl.Plan, "\n"), i,
		)
		if err != nil {
			return Pack{}, fmt.Errorf("storage: cannot save level %s: %w", lvl.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Pack{}, fmt.Errorf("storage: cannot commit import: %w", err)
	}
	return pack, nil
}

// Packs lists the library's packs by name.
func (s *Store) Packs(ctx context.Context) ([]Pack, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT p.id, p.import_id, p.name, p.created_at, COUNT(l.id)
		 FROM packs p
		 LEFT JOIN levels l ON l.pack_id = p.id
		 GROUP BY p.id
		 ORDER BY p.name`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query packs: %w", err)
	}
	defer rows.Close()

	var packs []Pack
	for rows.Next() {
		var p Pack
		var createdAt any
		if err := rows.Scan(&p.ID, &p.ImportID, &p.Name, &createdAt, &p.LevelCount); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		p.CreatedAt = parseTime(createdAt)
		packs = append(packs, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return packs, nil
}

// PackLevels returns the levels of a pack in import order.
func (s *Store) PackLevels(ctx context.Context, name string) ([]levels.Level, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT l.level_id, l.name, l.plan
		 FROM levels l
		 JOIN packs p ON p.id = l.pack_id
		 WHERE p.name = ?
		 ORDER BY l.position`,
		name,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query levels: %w", err)
	}
	defer rows.Close()

	var out []levels.Level
	for rows.Next() {
		var lvl levels.Level
		var plan string
		if err := rows.Scan(&lvl.ID, &lvl.Name, &plan); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		lvl.Plan = world.Plan(strings.Split(plan, "\n"))
		lvl.FilePath = name + "/" + lvl.ID
		out = append(out, lvl)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrPackNotFound, name)
	}

	return out, nil
}

// DeletePack removes a pack and its levels.
func (s *Store) DeletePack(ctx context.Context, name string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("storage: cannot begin delete: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if err := deletePack(ctx, tx, name); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit delete: %w", err)
	}
	return nil
}

func deletePack(ctx context.Context, tx *sql.Tx, name string) error {
	var id int64
	err := tx.QueryRowContext(ctx, "SELECT id FROM packs WHERE name = ?", name).Scan(&id)
	if err == sql.ErrNoRows {
		return fmt.Errorf("%w: %s", ErrPackNotFound, name)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot query pack: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM levels WHERE pack_id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete levels: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM packs WHERE id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete pack: %w", err)
	}
	return nil
}

// PackSource serves one library pack as a campaign.
type PackSource struct {
	store *Store
	name  string
}

// Source returns a levels.Source for the named pack.
func (s *Store) Source(name string) *PackSource {
	return &PackSource{store: s, name: name}
}

// LoadLevels implements levels.Source.
func (p *PackSource) LoadLevels(ctx context.Context) ([]levels.Level, error) {
	return p.store.PackLevels(ctx, p.name)
}

var _ levels.Source = (*PackSource)(nil)

// parseTime handles both time.Time and string datetime columns.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
