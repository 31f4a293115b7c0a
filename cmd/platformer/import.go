package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/world"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	flagImportName   string
	flagImportDelete bool
)

var importCmd = &cobra.Command{
	Use:   "import <dir>",
	Short: "Import a level directory into the level library",
	Long: `Loads every level file under dir, validates it and stores the valid
levels as one pack in the library (--db). Importing under an existing pack
name replaces that pack. Invalid levels are reported and skipped.

Examples:
  platformer import ./my-levels
  platformer import ./my-levels --name mine
  platformer import --delete --name mine`,
	Args: cobra.RangeArgs(0, 1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&flagImportName, "name", "", "Pack name (default: directory name)")
	importCmd.Flags().BoolVar(&flagImportDelete, "delete", false, "Delete the pack given by --name instead")
}

// openStore opens the level library from --db.
func openStore() (*storage.Store, func(), error) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, nil, err
	}
	return store, func() { store.Close() }, nil
}

func runImport(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(os.Stderr, "import")
	if err != nil {
		return err
	}

	store, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	if flagImportDelete {
		if flagImportName == "" {
			return fmt.Errorf("--delete needs --name")
		}
		if err := store.DeletePack(cmd.Context(), flagImportName); err != nil {
			return err
		}
		fmt.Printf("Deleted pack %s\n", flagImportName)
		return nil
	}

	if len(args) != 1 {
		return fmt.Errorf("import needs a directory")
	}
	dir := args[0]
	name := flagImportName
	if name == "" {
		name = filepath.Base(filepath.Clean(dir))
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	dict, err := registry.Dictionary(cfg.Symbols)
	if err != nil {
		return err
	}
	parser := world.NewParser(dict, nil)

	all, err := levels.NewLoader(dir).LoadLevels(cmd.Context())
	if err != nil {
		return err
	}
	valid := make([]levels.Level, 0, len(all))
	for _, lvl := range all {
		if err := levels.Validate(lvl, parser); err != nil {
			logger.Warn("skipping level", "level", lvl.ID, "file", lvl.FilePath, "err", err)
			continue
		}
		valid = append(valid, lvl)
	}
	if len(valid) == 0 {
		return fmt.Errorf("no valid levels in %s", dir)
	}

	pack, err := store.ImportPack(cmd.Context(), name, valid)
	if err != nil {
		return err
	}
	logger.Info("imported", "pack", pack.Name, "import_id", pack.ImportID, "levels", pack.LevelCount, "skipped", len(all)-len(valid))
	fmt.Printf("Imported %d levels as pack %s\n", pack.LevelCount, pack.Name)
	return nil
}
