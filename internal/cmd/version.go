package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vkcom/vk-cli/internal/iocontext"
	"github.com/vkcom/vk-cli/internal/update"
)

// version is set at build time via ldflags
var version = "dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Aliases: []string{"v"},
		Short:   "Print version information",
		Args:    cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			// Fails silently; Check returns nil for dev builds and on errors.
			result := update.NewChecker().Check(cmdContext(cmd), version)

			if isJSON(cmd) {
				payload := map[string]any{"version": version}
				if result != nil {
					payload["update"] = result
				}
				return printJSON(cmd, payload)
			}

			streams := iocontext.GetIO(cmd.Context())
			_, _ = fmt.Fprintf(streams.Out, "vk-cli version %s\n", version)
			if result != nil && result.UpdateAvailable {
				_, _ = fmt.Fprintf(streams.ErrOut, "\nUpdate available: %s -> %s\n", result.CurrentVersion, result.LatestVersion)
				_, _ = fmt.Fprintf(streams.ErrOut, "Download: %s\n", result.UpdateURL)
			}
			return nil
		}),
	}
}
