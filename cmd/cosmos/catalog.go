package main

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/cosmos/catalog"
)

var (
	catalogBorder = lipgloss.NewStyle().Foreground(lipgloss.Color("#787fa8"))
	catalogHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffc878")).Padding(0, 1)
	catalogCell   = lipgloss.NewStyle().Padding(0, 1)
	catalogNumber = catalogCell.Align(lipgloss.Right)
)

var catalogHeaders = []string{"Body", "Radius", "Distance", "Period (d)", "Spin/tick", "Ecc", "Rings", "Color"}

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Print the body registry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeCatalog(cmd.OutOrStdout(), catalog.Bodies())
		},
	}
}

func catalogRow(b catalog.BodySpec) []string {
	period := "-"
	if !b.IsCentral() {
		period = strconv.FormatFloat(math.Round(b.OrbitalPeriod()), 'f', 0, 64)
	}
	rings := ""
	if b.HasRings {
		rings = "yes"
	}
	return []string{
		b.Name,
		strconv.FormatFloat(b.Radius, 'f', -1, 64),
		strconv.FormatFloat(b.Distance, 'f', -1, 64),
		period,
		strconv.FormatFloat(b.SpinSpeed, 'f', -1, 64),
		strconv.FormatFloat(b.Eccentricity, 'f', 3, 64),
		rings,
		fmt.Sprintf("#%06x", b.Color),
	}
}

// writeCatalog renders the registry as a bordered table, the color column tinted with the body color
func writeCatalog(w io.Writer, bodies []catalog.BodySpec) error {
	rows := make([][]string, len(bodies))
	for i, b := range bodies {
		rows[i] = catalogRow(b)
	}

	colorCol := len(catalogHeaders) - 1
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(catalogBorder).
		Headers(catalogHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return catalogHeader
			case col == colorCol:
				return catalogCell.Foreground(lipgloss.Color(rows[row][colorCol]))
			case col == 0 || col == colorCol-1:
				return catalogCell
			default:
				return catalogNumber
			}
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
