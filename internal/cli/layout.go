// pattern: Imperative Shell
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	flag "github.com/spf13/pflag"

	"twoface/internal/config"
	"twoface/internal/layout"
	"twoface/internal/resize"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// errLayoutProblems is returned when a layout does not partition its terminal.
var errLayoutProblems = errors.New("layout has geometry problems")

// RegisterLayoutCommands registers the layout command group commands.
func RegisterLayoutCommands(group *Group, configDir string) {
	group.AddCommand(&Command{
		Name:    "show",
		Summary: "Print the layout as designed",
		Usage:   "Usage: twoface layout show",
		Run: func(args []string) error {
			runShow(os.Stdout, mustLoadConfig(configDir))
			return nil
		},
	})

	group.AddCommand(&Command{
		Name:    "check",
		Summary: "Validate config and report gaps or overlaps",
		Usage:   "Usage: twoface layout check",
		Run: func(args []string) error {
			cfg, err := LoadConfig(configDir)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			if err := runCheck(os.Stdout, cfg); err != nil {
				os.Exit(1)
			}
			return nil
		},
	})

	group.AddCommand(&Command{
		Name:    "preview",
		Summary: "Resize the layout once and print the result",
		Usage:   "Usage: twoface layout preview [--rows N] [--cols N]",
		Run: func(args []string) error {
			fs := flag.NewFlagSet("layout preview", flag.ContinueOnError)
			rows := fs.Int("rows", 0, "target terminal rows (default: current terminal)")
			cols := fs.Int("cols", 0, "target terminal columns (default: current terminal)")
			if err := fs.Parse(args); err != nil {
				fmt.Fprintf(os.Stderr, "Usage: twoface layout preview [--rows N] [--cols N]\n")
				os.Exit(1)
			}

			if *rows <= 0 || *cols <= 0 {
				liveRows, liveCols, err := terminalSize()
				if err != nil {
					fmt.Fprintf(os.Stderr, "Error: cannot read terminal size (%v); pass --rows and --cols\n", err)
					os.Exit(1)
				}
				if *rows <= 0 {
					*rows = liveRows
				}
				if *cols <= 0 {
					*cols = liveCols
				}
			}

			runPreview(os.Stdout, mustLoadConfig(configDir), *rows, *cols)
			return nil
		},
	})
}

// runShow prints the configured layout without resizing it.
func runShow(w io.Writer, cfg config.Config) {
	fmt.Fprintf(w, "Layout designed for %dx%d\n", cfg.Layout.Rows, cfg.Layout.Cols)
	fmt.Fprintln(w, renderGeometry(cfg.Layout.Build()))
}

// runCheck prints any partition problems of the layout as designed and
// returns errLayoutProblems when there are some.
func runCheck(w io.Writer, cfg config.Config) error {
	problems := layout.Check(cfg.Layout.Build(), cfg.Layout.Rows, cfg.Layout.Cols)
	if len(problems) == 0 {
		fmt.Fprintf(w, "Layout OK: %d windows tile %dx%d\n", len(cfg.Layout.Windows), cfg.Layout.Rows, cfg.Layout.Cols)
		return nil
	}
	writeProblems(w, problems)
	return errLayoutProblems
}

// runPreview runs a single resize pass from the design size to rows x cols
// and prints the resulting geometry.
func runPreview(w io.Writer, cfg config.Config, rows, cols int) resize.Pass {
	windows := cfg.Layout.Build()
	engine := resize.NewEngine(windows, cfg.Layout.Rows, cfg.Layout.Cols, nil)
	pass := engine.Resize(rows, cols)

	fmt.Fprintf(w, "%dx%d -> %dx%d\n", pass.From.Rows, pass.From.Cols, pass.To.Rows, pass.To.Cols)
	fmt.Fprintln(w, renderPass(windows, pass))
	writeProblems(w, layout.Check(windows, rows, cols))
	return pass
}

func writeProblems(w io.Writer, problems []layout.Problem) {
	if len(problems) == 0 {
		return
	}
	fmt.Fprintf(w, "%d problem(s):\n", len(problems))
	for _, p := range problems {
		fmt.Fprintf(w, "  %s\n", p)
	}
}

// renderGeometry renders one table row per window.
func renderGeometry(windows []*layout.Window) string {
	t := newTable("ID", "ROW", "COL", "ROWS", "COLS", "CONSTRAINTS")
	for _, win := range windows {
		t.Row(win.ID, strconv.Itoa(win.Row), strconv.Itoa(win.Col),
			strconv.Itoa(win.Rows), strconv.Itoa(win.Cols), constraints(win))
	}
	return t.Render()
}

// renderPass is renderGeometry plus the deltas each window was assigned.
func renderPass(windows []*layout.Window, pass resize.Pass) string {
	t := newTable("ID", "ROW", "COL", "ROWS", "COLS", "ΔH", "ΔW")
	for _, win := range windows {
		t.Row(win.ID, strconv.Itoa(win.Row), strconv.Itoa(win.Col),
			strconv.Itoa(win.Rows), strconv.Itoa(win.Cols),
			signed(pass.HeightDeltas[win]), signed(pass.WidthDeltas[win]))
	}
	return t.Render()
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func constraints(w *layout.Window) string {
	var parts []string
	if w.MinRows > 0 {
		parts = append(parts, fmt.Sprintf("min_rows=%d", w.MinRows))
	}
	if w.MaxRows > 0 {
		parts = append(parts, fmt.Sprintf("max_rows=%d", w.MaxRows))
	}
	if w.MinCols > 0 {
		parts = append(parts, fmt.Sprintf("min_cols=%d", w.MinCols))
	}
	if w.MaxCols > 0 {
		parts = append(parts, fmt.Sprintf("max_cols=%d", w.MaxCols))
	}
	switch {
	case w.Fixed():
		parts = append(parts, "fixed")
	case w.StaticHeight:
		parts = append(parts, "static_height")
	case w.StaticWidth:
		parts = append(parts, "static_width")
	}
	return strings.Join(parts, " ")
}

func signed(n int) string {
	if n > 0 {
		return "+" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
