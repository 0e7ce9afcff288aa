package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"sermonvault/internal/application"
	"sermonvault/internal/application/commands"
)

var (
	importDate       string
	importTags       []string
	importSeries     string
	importReferences []string
	importNotes      string
	importLocation   string
	importServices   []string
)

var importCmd = &cobra.Command{
	Use:   "import <file> <title>",
	Short: "Import a sermon file into the vault",
	Long: `Copy a sermon file into the vault's year folder and write its metadata
sidecar next to it. The year folder is derived from the preparation date.

Examples:
  sermonvault-cli import ~/Desktop/easter.key "Easter Message"
  sermonvault-cli import talk.pdf "On Grace" --date 2024-03-31 --tag Paskah`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		importCmd := commands.NewImportSermonCommand(fs, vaultPath, args[0], args[1])
		importCmd.Date = importDate
		importCmd.Tags = importTags
		importCmd.Series = importSeries
		importCmd.References = importReferences
		importCmd.Notes = importNotes
		if importLocation != "" || len(importServices) > 0 {
			date := importDate
			if date == "" {
				date = application.Today()
			}
			importCmd.Deliveries = []application.DeliverySession{{
				Date:     date,
				Location: importLocation,
				Services: importServices,
			}}
		}

		result, err := importCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Message)

		// imported sermons only appear after the next scan
		if _, err := commands.NewRebuildIndexCommand(sermonIndex).Execute(ctx); err != nil {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().StringVar(&importDate, "date", "", "preparation date as YYYY-MM-DD (defaults to today)")
	importCmd.Flags().StringSliceVar(&importTags, "tag", nil, "tags for the sermon")
	importCmd.Flags().StringVar(&importSeries, "series", "", "series the sermon belongs to")
	importCmd.Flags().StringSliceVar(&importReferences, "reference", nil, "scripture references")
	importCmd.Flags().StringVar(&importNotes, "notes", "", "free-form notes")
	importCmd.Flags().StringVar(&importLocation, "location", "", "delivery location")
	importCmd.Flags().StringSliceVar(&importServices, "service", nil, "delivery services")
}
