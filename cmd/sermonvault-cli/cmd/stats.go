package cmd

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"sermonvault/internal/application/commands"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show archive statistics",
	Long: `Show aggregate counts over the indexed archive: sermons per year,
per file format, per delivery location, and per service.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		result, err := commands.NewStatsCommand(sermonIndex).Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("Total sermons: %d\n", result.TotalCount)
		fmt.Printf("Last scanned:  %s\n", time.UnixMilli(result.LastScanned).Format(time.RFC3339))

		fmt.Println("\nBy year:")
		years := make([]int, 0, len(result.Stats.ByYear))
		for year := range result.Stats.ByYear {
			years = append(years, year)
		}
		sort.Sort(sort.Reverse(sort.IntSlice(years)))
		for _, year := range years {
			fmt.Printf("  %d  %d\n", year, result.Stats.ByYear[year])
		}

		fmt.Println("\nBy format:")
		for _, format := range result.Options.Formats {
			fmt.Printf("  %-12s %d\n", format.DisplayName(), result.Stats.ByFormat[format])
		}

		fmt.Println("\nBy location:")
		for _, location := range result.Options.Locations {
			fmt.Printf("  %-24s %d\n", location, result.Stats.ByLocation[location])
		}

		fmt.Println("\nBy service:")
		for _, service := range result.Options.Services {
			fmt.Printf("  %-24s %d\n", service, result.Stats.ByService[service])
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
