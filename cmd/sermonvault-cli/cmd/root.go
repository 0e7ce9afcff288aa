package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sermonvault/internal/adapters/filesystem"
	"sermonvault/internal/adapters/index"
	"sermonvault/internal/adapters/vaultdata"
	"sermonvault/internal/config"
	"sermonvault/internal/ports"
)

var (
	vaultPath string

	fs          ports.FileSystem
	sermonIndex ports.SermonIndex
	dataStore   ports.VaultDataStore
)

var rootCmd = &cobra.Command{
	Use:   "sermonvault-cli",
	Short: "CLI for managing a sermon archive",
	Long: `sermonvault-cli is a command-line interface for a local sermon archive.

The vault holds sermon files (Keynote, Pages, PDF, ...) in year folders,
each described by a markdown metadata sidecar. The CLI scans the vault,
searches the resulting index, and imports new sermons.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		dataDir, err := config.EnsureAppDataDir()
		if err != nil {
			return err
		}

		fs = filesystem.New()
		vaultPath = filesystem.ExpandHome(vaultPath)
		sermonIndex = index.NewCache(fs, vaultPath)
		dataStore = vaultdata.NewStore(fs, dataDir)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&vaultPath, "vault", "v", config.VaultPath(), "path to the sermon vault")
}
