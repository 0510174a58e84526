package main

import (
	"fmt"
	"strconv"

	"worldcup-dash/worldcup"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var answerStyle = lipgloss.NewStyle().Bold(true)

// newLookupCmd runs the dashboard's dropdown lookups from the terminal.
func newLookupCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup",
		Short: "Answer a dashboard lookup from the terminal",
	}

	show := func(cmd *cobra.Command, text string, err error) error {
		if err != nil {
			a.logger.Debug("lookup failed", zap.String("command", cmd.Name()), zap.Error(err))
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), answerStyle.Render(text))
		return nil
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "wins [country]",
			Short: "How many times a country has won",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				text, err := worldcup.Default().WinsFor(args[0])
				return show(cmd, text, err)
			},
		},
		&cobra.Command{
			Use:   "runner-ups [country]",
			Short: "How many times a country finished runner-up",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				text, err := worldcup.Default().RunnerUpsFor(args[0])
				return show(cmd, text, err)
			},
		},
		&cobra.Command{
			Use:   "year [year]",
			Short: "Winner and runner-up of a tournament",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				year, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid year %q: %w", args[0], err)
				}
				text, err := worldcup.Default().ResultFor(year)
				return show(cmd, text, err)
			},
		},
	)
	return cmd
}
