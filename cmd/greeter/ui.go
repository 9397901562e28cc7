package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/janisto/huma-greeter/internal/consumer"
	applog "github.com/janisto/huma-greeter/internal/platform/logging"
	"github.com/janisto/huma-greeter/internal/theme"
)

func newUICmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Launch the terminal greeting view",
		Long: `ui starts a Bubble Tea view that fetches the greeting once and shows it
above a button. Press enter or space on the button, q to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}
			// The view owns the terminal, so client logs are discarded.
			ctx := applog.WithLogger(cmd.Context(), zap.NewNop())

			return consumer.Run(ctx, client, theme.Default(),
				tea.WithAltScreen(),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
		},
	}
}
