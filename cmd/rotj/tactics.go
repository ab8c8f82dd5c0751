package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/rotj-game/rotj/internal/battle"
)

var (
	flagLevel    int
	flagMaxLevel int
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	emptyStyle  = cellStyle.Foreground(lipgloss.Color("8"))
)

var tacticsCmd = &cobra.Command{
	Use:   "tactics <character>",
	Short: "Show the tactic slots a character learns",
	Long: `Resolve the six tactic slots of a character from its intelligence,
level by level. TP is the tactical point limit at that level and NEW the
tactic first taught at that level.

Examples:
  rotj tactics moroni
  rotj tactics moroni --level 12
  rotj tactics teancum --max-level 30`,
	Args: cobra.ExactArgs(1),
	RunE: runTactics,
}

func init() {
	tacticsCmd.Flags().IntVar(&flagLevel, "level", 0, "Show a single level")
	tacticsCmd.Flags().IntVar(&flagMaxLevel, "max-level", 20, "Last level shown when --level is not set")
}

func runTactics(cmd *cobra.Command, args []string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.close()

	id := args[0]
	intel, err := a.deps.Stats.Intelligence(id)
	if err != nil {
		return err
	}

	first, last := 1, flagMaxLevel
	if flagLevel > 0 {
		first, last = flagLevel, flagLevel
	}

	headers := []string{"LV", "TP"}
	for slot := 1; slot <= battle.SlotCount; slot++ {
		headers = append(headers, strconv.Itoa(slot))
	}
	headers = append(headers, "NEW")
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for level := first; level <= last; level++ {
		tp, err := a.deps.Stats.MaxTacticalPoints(id, level)
		if err != nil {
			return err
		}
		row := []string{strconv.Itoa(level), strconv.Itoa(tp)}
		row = append(row, slotCells(a.deps.Tactics.ResolveAll(intel, level))...)
		learned := ""
		if name, ok := a.deps.Tactics.TacticForLevel(level); ok {
			learned = battle.Pretty(name)
		}
		t.Row(append(row, learned)...)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (intelligence %d)\n", battle.Pretty(id), intel)
	fmt.Fprintln(out, t.Render())
	return nil
}

// slotCells formats resolved slots for the table. Empty slots show a dash.
func slotCells(slots battle.Slots) []string {
	cells := make([]string, 0, len(slots))
	for _, name := range slots {
		if name == "" {
			cells = append(cells, emptyStyle.Render("-"))
			continue
		}
		cells = append(cells, battle.Pretty(name))
	}
	return cells
}
