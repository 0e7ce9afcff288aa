package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"sermonvault/internal/application/commands"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Rescan the vault and rebuild the index",
	Long: `Walk the vault's year folders, parse every metadata sidecar, and write
a fresh index snapshot. Sidecars that fail to parse are skipped with a
warning.

Examples:
  sermonvault-cli scan
  sermonvault-cli --vault ~/Sermons scan`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		snapshot, err := commands.NewRebuildIndexCommand(sermonIndex).Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("Indexed %d sermons at %s\n",
			snapshot.TotalCount,
			time.UnixMilli(snapshot.LastScanned).Format(time.RFC3339),
		)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
