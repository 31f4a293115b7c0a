package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var (
	flagListKinds bool
	flagListPacks bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List levels, actor kinds or library packs",
	Long: `Shows the levels of the selected campaign (built-in, --levels or --pack).

With --kinds, shows the registered actor kinds and the plan symbols the
current config maps to them. With --packs, shows the level library.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&flagListKinds, "kinds", false, "List actor kinds and plan symbols")
	listCmd.Flags().BoolVar(&flagListPacks, "packs", false, "List level library packs")
}

func runList(cmd *cobra.Command, args []string) error {
	switch {
	case flagListKinds:
		return listKinds()
	case flagListPacks:
		return listPacks(cmd)
	}

	campaign, err := loadCampaign(cmd.Context())
	if err != nil {
		return err
	}

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, lvl := range campaign {
		maxIDLen = max(maxIDLen, len(lvl.ID))
	}

	fmt.Println("Levels:")
	fmt.Println()
	fmt.Printf("  %-*s  %-5s  %s\n", maxIDLen, "ID", "Rows", "Name")
	fmt.Printf("  %-*s  %-5s  %s\n", maxIDLen, "--", "----", "----")
	for _, lvl := range campaign {
		fmt.Printf("  %-*s  %-5d  %s\n", maxIDLen, lvl.ID, len(lvl.Plan), lvl.Title())
	}

	fmt.Println()
	fmt.Println("Run 'platformer play <id>' to start from a level.")
	return nil
}

func listKinds() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Invert the symbol table for display
	symbols := make(map[string][]string)
	for sym, name := range cfg.Symbols {
		symbols[name] = append(symbols[name], sym)
	}

	fmt.Println("Actor kinds:")
	fmt.Println()
	for _, k := range registry.List() {
		syms := symbols[k.Name]
		sort.Strings(syms)
		fmt.Printf("  %-20s %-8s %v  %s\n", k.Name, k.Kind, syms, k.Description)
	}
	fmt.Println()
	fmt.Println("Fixed symbols: 'x' wall, '!' lava. Anything else is empty space.")
	return nil
}

func listPacks(cmd *cobra.Command) error {
	store, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	packs, err := store.Packs(cmd.Context())
	if err != nil {
		return err
	}
	if len(packs) == 0 {
		fmt.Println("The level library is empty. Use 'platformer import <dir>'.")
		return nil
	}

	fmt.Println("Level packs:")
	fmt.Println()
	for _, p := range packs {
		fmt.Printf("  %-20s %3d levels  imported %s  (%s)\n",
			p.Name, p.LevelCount, p.CreatedAt.Format("2006-01-02 15:04"), p.ImportID)
	}
	return nil
}
