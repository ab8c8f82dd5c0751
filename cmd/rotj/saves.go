package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/rotj-game/rotj/internal/config"
	"github.com/rotj-game/rotj/internal/storage"
)

var savesCmd = &cobra.Command{
	Use:   "saves",
	Short: "Manage the save slots",
	Long: `List, erase or copy the three save slots.

Examples:
  rotj saves list
  rotj saves erase 2
  rotj saves copy 1 3`,
}

var savesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the save slots",
	Args:  cobra.NoArgs,
	RunE:  runSavesList,
}

var savesEraseCmd = &cobra.Command{
	Use:   "erase <slot>",
	Short: "Erase a save slot",
	Args:  cobra.ExactArgs(1),
	RunE:  runSavesErase,
}

var savesCopyCmd = &cobra.Command{
	Use:   "copy <from> <to>",
	Short: "Copy a save slot over another",
	Args:  cobra.ExactArgs(2),
	RunE:  runSavesCopy,
}

func init() {
	savesCmd.AddCommand(savesListCmd)
	savesCmd.AddCommand(savesEraseCmd)
	savesCmd.AddCommand(savesCopyCmd)
}

// openSaves opens the configured save database. The slot commands need no
// game data.
func openSaves() (*storage.Store, config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, cfg, err
	}
	store, err := storage.Open(cfg.SaveDB)
	if err != nil {
		return nil, cfg, fmt.Errorf("open save slots: %w", err)
	}
	return store, cfg, nil
}

func parseSlot(arg string) (int, error) {
	slot, err := strconv.Atoi(arg)
	if err != nil || slot < 1 || slot > storage.SlotCount {
		return 0, fmt.Errorf("slot must be 1-%d, got %q", storage.SlotCount, arg)
	}
	return slot, nil
}

func runSavesList(cmd *cobra.Command, args []string) error {
	store, cfg, err := openSaves()
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.LoadAll()
	if err != nil {
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("SLOT", "NAME", "LV", "MAP").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for i, rec := range records {
		slot := strconv.Itoa(i + 1)
		if rec.Empty() {
			t.Row(slot, emptyStyle.Render("empty"), "", "")
			continue
		}
		where, _ := rec["current_map"].(string)
		t.Row(slot, rec.Name(), strconv.Itoa(rec.Level()), where)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, cfg.SaveDB)
	fmt.Fprintln(out, t.Render())
	return nil
}

func runSavesErase(cmd *cobra.Command, args []string) error {
	slot, err := parseSlot(args[0])
	if err != nil {
		return err
	}
	store, _, err := openSaves()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Erase(slot); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Slot %d erased.\n", slot)
	return nil
}

func runSavesCopy(cmd *cobra.Command, args []string) error {
	from, err := parseSlot(args[0])
	if err != nil {
		return err
	}
	to, err := parseSlot(args[1])
	if err != nil {
		return err
	}
	store, _, err := openSaves()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Copy(from, to); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Slot %d copied to slot %d.\n", from, to)
	return nil
}
