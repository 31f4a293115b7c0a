// Package levels provides level loading functionality for the platformer.
// This package depends on world but world does not depend on levels.
package levels

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels/formats"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/world"
)

// Level represents a complete level definition.
type Level struct {
	ID       string
	Name     string
	Plan     world.Plan
	Metadata map[string]string
	FilePath string
}

// Title returns the display name, falling back to the ID.
func (l Level) Title() string {
	if l.Name != "" {
		return l.Name
	}
	return l.ID
}

// Source supplies an ordered campaign of levels.
type Source interface {
	LoadLevels(ctx context.Context) ([]Level, error)
}

// Loader handles loading levels from a directory tree.
type Loader struct {
	Root string
	fsys fs.FS
}

// NewLoader creates a new level loader for a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{Root: root, fsys: os.DirFS(root)}
}

// NewFSLoader creates a loader over an arbitrary file system, such as an
// embedded one. Root is only used to build FilePath values.
func NewFSLoader(fsys fs.FS, root string) *Loader {
	return &Loader{Root: root, fsys: fsys}
}

// LoadLevels implements Source.
func (l *Loader) LoadLevels(ctx context.Context) ([]Level, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return l.LoadAll()
}

// LoadAll recursively scans and loads all level files.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		if !IsLevelFile(p) {
			return nil
		}

		data, err := fs.ReadFile(l.fsys, p)
		if err != nil {
			return nil
		}
		level, err := parseLevel(p, data)
		if err != nil {
			// Skip invalid files
			return nil
		}
		level.FilePath = filepath.Join(l.Root, filepath.FromSlash(p))

		levels = append(levels, level)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	// Sort by ID for determinism
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

// LoadFile loads a single level file from disk.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}

	level, err := parseLevel(p, data)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}
	level.FilePath = p
	return level, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("level not found: %s", id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// IsLevelFile reports whether a path has a supported level extension.
func IsLevelFile(p string) bool {
	ext := strings.ToLower(path.Ext(filepath.ToSlash(p)))
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseLevel routes to the correct parser. YAML levels without an ID take
// it from the file name.
func parseLevel(p string, data []byte) (Level, error) {
	var (
		parsed formats.Level
		err    error
	)
	switch strings.ToLower(path.Ext(filepath.ToSlash(p))) {
	case ".yaml", ".yml":
		parsed, err = formats.ParseYAML(data)
	case ".txt":
		parsed, err = formats.ParseText(p, data)
	default:
		err = fmt.Errorf("unsupported extension: %s", path.Ext(p))
	}
	if err != nil {
		return Level{}, err
	}
	if parsed.ID == "" {
		parsed.ID = formats.IDFromPath(p)
	}

	return Level{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Plan:     world.Plan(parsed.Plan),
		Metadata: parsed.Metadata,
	}, nil
}

// Find returns the level with the given ID from a loaded campaign.
func Find(levels []Level, id string) (Level, int, bool) {
	for i, lvl := range levels {
		if lvl.ID == id {
			return lvl, i, true
		}
	}
	return Level{}, -1, false
}
