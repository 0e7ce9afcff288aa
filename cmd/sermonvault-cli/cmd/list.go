package cmd

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"sermonvault/internal/application/commands"
	"sermonvault/internal/domain"
)

var listYear int

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List indexed sermons",
	Long: `List sermons from the index, newest-first, optionally scoped to one
year.

Examples:
  sermonvault-cli list
  sermonvault-cli list --year 2024`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		records, err := commands.NewListSermonsCommand(sermonIndex, listYear).Execute(ctx)
		if err != nil {
			return err
		}

		if len(records) == 0 {
			fmt.Println("No sermons found")
			return nil
		}

		if listYear != 0 {
			for _, r := range records {
				printRecord(r)
			}
			return nil
		}

		groups := domain.GroupByYear(records)
		years := make([]int, 0, len(groups))
		for year := range groups {
			years = append(years, year)
		}
		sort.Sort(sort.Reverse(sort.IntSlice(years)))

		for _, year := range years {
			fmt.Printf("%d\n", year)
			for _, r := range groups[year] {
				printRecord(r)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().IntVar(&listYear, "year", 0, "only list sermons from this year")
}
