package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"prosecoach/internal/workspace"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the workspace with a default config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := workspace.EnsureDefault()
			if err != nil {
				return fmt.Errorf("workspace initialization failed: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ProseCoach workspace ready at: %s\n", filepath.Clean(root))
			fmt.Fprintf(out, "Config: %s\n", workspace.ConfigPath(root))
			fmt.Fprintf(out, "Run store: %s\n", workspace.DBPath(root))
			return nil
		},
	}
}
