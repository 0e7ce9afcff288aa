package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"sermonvault/internal/application"
	"sermonvault/internal/application/commands"
)

var vaultDataCmd = &cobra.Command{
	Use:   "vault-data",
	Short: "Manage the tagging vocabularies",
	Long: `Manage the controlled vocabularies offered when tagging sermons:
tags, locations, and services.

Examples:
  sermonvault-cli vault-data list
  sermonvault-cli vault-data add tags Advent
  sermonvault-cli vault-data remove locations "GBI Kristus"`,
}

var vaultDataListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all vocabulary values",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		data, err := commands.NewListVaultDataCommand(dataStore).Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("Tags:      %s\n", strings.Join(data.Tags, ", "))
		fmt.Printf("Locations: %s\n", strings.Join(data.Locations, ", "))
		fmt.Printf("Services:  %s\n", strings.Join(data.Services, ", "))
		return nil
	},
}

var vaultDataAddCmd = &cobra.Command{
	Use:   "add <field> <value>",
	Short: "Add a value to a vocabulary",
	Long:  `Add a value to one of the vocabularies: tags, locations, or services.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		field := application.VaultDataField(args[0])

		if err := commands.NewAddVaultEntryCommand(dataStore, field, args[1]).Execute(ctx); err != nil {
			return err
		}
		fmt.Printf("Added %q to %s\n", args[1], field)
		return nil
	},
}

var vaultDataRemoveCmd = &cobra.Command{
	Use:   "remove <field> <value>",
	Short: "Remove a value from a vocabulary",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		field := application.VaultDataField(args[0])

		if err := commands.NewRemoveVaultEntryCommand(dataStore, field, args[1]).Execute(ctx); err != nil {
			return err
		}
		fmt.Printf("Removed %q from %s\n", args[1], field)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(vaultDataCmd)
	vaultDataCmd.AddCommand(vaultDataListCmd)
	vaultDataCmd.AddCommand(vaultDataAddCmd)
	vaultDataCmd.AddCommand(vaultDataRemoveCmd)
}
