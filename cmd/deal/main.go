package main

import (
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"logogrid/internal/grid"
	"logogrid/internal/logos"
)

var (
	poolFile  string
	poolCSV   string
	fixedLogo string
	seed      uint32
	count     int
	fullPaths bool
)

var (
	cellStyle = lipgloss.NewStyle().
			Width(18).
			Height(1).
			Align(lipgloss.Center).
			Border(lipgloss.RoundedBorder())
	fixedStyle      = cellStyle.Bold(true).BorderForeground(lipgloss.Color("86"))
	decorativeStyle = cellStyle.Faint(true)
)

var rootCmd = &cobra.Command{
	Use:   "deal",
	Short: "Deal logo grids to the terminal",
	Long: `deal shuffles the logo pool and prints the resulting 4x4 grid.

The pool is read from --pool, then --pool-file, then the built-in default.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if count < 1 {
			return fmt.Errorf("--count must be at least 1, got %d", count)
		}
		pool, err := logos.Resolve(poolCSV, poolFile)
		if err != nil {
			return err
		}
		var rng logos.Source
		if seed != 0 {
			rng = logos.NewXorShift32(seed)
		} else {
			rng = logos.NewRandomSource()
		}
		selector := logos.NewSelector(pool, rng)
		out := cmd.OutOrStdout()
		for i := 0; i < count; i++ {
			if i > 0 {
				fmt.Fprintln(out)
			}
			printGrid(out, grid.Render(fixedLogo, selector.Deal().Logos))
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&poolFile, "pool-file", os.Getenv("LOGO_POOL_FILE"), "YAML file listing the logo pool")
	rootCmd.Flags().StringVar(&poolCSV, "pool", os.Getenv("LOGO_POOL"), "comma separated logo pool")
	rootCmd.Flags().StringVar(&fixedLogo, "fixed", "/img/logo.png", "fixed logo reference")
	rootCmd.Flags().Uint32Var(&seed, "seed", 0, "shuffle seed (0 = random)")
	rootCmd.Flags().IntVarP(&count, "count", "n", 1, "number of deals to print")
	rootCmd.Flags().BoolVar(&fullPaths, "full", false, "print full references instead of base names")
}

func printGrid(w io.Writer, cells [grid.CellCount]grid.Cell) {
	rows := make([]string, 0, grid.Rows)
	for r := 0; r < grid.Rows; r++ {
		row := make([]string, 0, grid.Columns)
		for _, c := range cells[r*grid.Columns : (r+1)*grid.Columns] {
			row = append(row, renderCell(c))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func renderCell(c grid.Cell) string {
	switch c.Role {
	case grid.RoleFixed:
		return fixedStyle.Render(label(c.Image))
	case grid.RoleDynamic:
		return cellStyle.Render(label(c.Image))
	default:
		return decorativeStyle.Render(grid.Marker)
	}
}

func label(ref string) string {
	if ref == "" || fullPaths {
		return ref
	}
	return path.Base(strings.TrimRight(ref, "/"))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
