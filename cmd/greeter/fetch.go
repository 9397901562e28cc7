package main

import (
	"fmt"

	"github.com/spf13/cobra"

	applog "github.com/janisto/huma-greeter/internal/platform/logging"
)

func newFetchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "fetch",
		Short: "Fetch and print the greeting once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}
			logger := opts.stderrLogger(cmd.ErrOrStderr())
			defer func() { _ = logger.Sync() }()
			ctx := applog.WithLogger(cmd.Context(), logger)

			g, err := client.Hello(ctx)
			if err != nil {
				return fmt.Errorf("fetch greeting from %s: %w", client.BaseURL(), err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), g.Message)
			return err
		},
	}
}
