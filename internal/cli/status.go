package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/provkit/provision/internal/catalog"
	"github.com/provkit/provision/internal/core"
	"github.com/provkit/provision/internal/engine"
)

func init() {
	rootCmd.AddCommand(statusCmd)
}

var (
	styleUpToDate  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	styleUpdate    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	styleMissing   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	styleErr       = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	styleHeader    = lipgloss.NewStyle().Bold(true)
	styleTool      = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	styleManager   = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	styleInstalled = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	styleLatest    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	styleDim       = lipgloss.NewStyle().Faint(true)
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check installed and latest versions of every managed tool",
	RunE: func(cmd *cobra.Command, args []string) error {
		tools := catalog.Tools()
		eng := engine.New(managerTable())

		results := eng.Reconcile(cmd.Context(), tools)
		renderStatusTable(results)

		// Per-tool problems are reported in the table; status itself
		// always succeeds.
		return nil
	},
}

func statusIcon(s core.Status) string {
	switch s {
	case core.StatusUpToDate:
		return styleUpToDate.Render("✓")
	case core.StatusUpdateAvailable:
		return styleUpdate.Render("↻")
	case core.StatusNotInstalled:
		return styleMissing.Render("✗")
	case core.StatusError:
		return styleErr.Render("!")
	default:
		return styleDim.Render("?")
	}
}

func renderStatusTable(results []core.ProbeResult) {
	headers := []string{" ", "Tool", "Manager", "Current", "Latest", "Description"}
	rows := make([][]string, 0, len(results))
	for _, res := range results {
		current, latest := res.Installed, res.Latest
		if res.Status == core.StatusError {
			current, latest = "Err", "Err"
		}
		if current == "" {
			current = "-"
		}
		if latest == "" {
			latest = "unknown"
		}
		rows = append(rows, []string{
			statusIcon(res.Status),
			res.Tool.Name,
			res.Tool.Manager,
			current,
			latest,
			res.Tool.Description,
		})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i == 0 {
				continue // icon column is styled, fixed width
			}
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var header strings.Builder
	for i, h := range headers {
		header.WriteString(pad(h, widths[i]) + "  ")
	}
	fmt.Println(styleHeader.Render(strings.TrimRight(header.String(), " ")))

	styles := []lipgloss.Style{{}, styleTool, styleManager, styleInstalled, styleLatest, {}}
	for _, row := range rows {
		var line strings.Builder
		line.WriteString(row[0] + "  ")
		for i := 1; i < len(row); i++ {
			line.WriteString(styles[i].Render(pad(row[i], widths[i])) + "  ")
		}
		fmt.Println(strings.TrimRight(line.String(), " "))
	}

	fmt.Println()
	fmt.Println(styleDim.Render("Legend: ✓ up-to-date  ↻ update available  ✗ not installed  ? unknown  ! unknown manager"))
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
