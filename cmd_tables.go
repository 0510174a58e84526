package main

import (
	"fmt"
	"io"
	"strconv"

	"worldcup-dash/worldcup"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
)

func newTablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "Print the winners, runner-ups and year results tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printTables(cmd.OutOrStdout(), worldcup.Default())
		},
	}
}

func printTables(w io.Writer, d *worldcup.Dataset) error {
	var winners [][]string
	for _, r := range d.Winners() {
		winners = append(winners, []string{r.Country, strconv.Itoa(r.Wins)})
	}
	var runnerUps [][]string
	for _, r := range d.RunnerUps() {
		runnerUps = append(runnerUps, []string{r.Country, strconv.Itoa(r.RunnerUps)})
	}
	var results [][]string
	for _, r := range d.Results() {
		results = append(results, []string{strconv.Itoa(r.Year), r.Winner, r.RunnerUp})
	}

	sections := []struct {
		title   string
		headers []string
		rows    [][]string
	}{
		{"Winners", []string{"Country", "Wins"}, winners},
		{"Runner-Ups", []string{"Country", "RunnerUps"}, runnerUps},
		{"Finals", []string{"Year", "Winner", "Runner-up"}, results},
	}

	for _, s := range sections {
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers(s.headers...).
			Rows(s.rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle
				}
				return cellStyle
			})
		if _, err := fmt.Fprintln(w, headingStyle.Render(s.title)); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, t.Render()); err != nil {
			return err
		}
	}
	return nil
}
