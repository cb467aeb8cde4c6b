package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/sanity/internal/app"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [snapshots...]",
		Short: "Check field cache snapshots for insanity",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			estimateSize, _ := cmd.Flags().GetBool("estimate-size")
			configPath, _ := cmd.Flags().GetString("config")
			_, err := c.app.Check(cmd.Context(), args, app.CheckOptions{
				ConfigPath:   configPath,
				EstimateSize: estimateSize,
			})
			return err
		},
	}
	cmd.Flags().BoolP("estimate-size", "s", false, "Estimate the RAM used by every cache entry")
	cmd.Flags().StringP("config", "c", "", "Path to the configuration file (default sanity.yaml)")
	return cmd
}
