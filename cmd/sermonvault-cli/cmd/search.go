package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"sermonvault/internal/application"
	"sermonvault/internal/application/commands"
)

var (
	searchFormats   []string
	searchLocations []string
	searchServices  []string
	searchTags      []string
	searchSeries    []string
	searchYearFrom  int
	searchYearTo    int
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the sermon archive",
	Long: `Search indexed sermons by keyword and filters. The keyword matches
titles, locations, services, tags, scripture references, and notes. All
given filters must match; results print newest-first.

Examples:
  sermonvault-cli search grace
  sermonvault-cli search --format pdf --year-from 2023
  sermonvault-cli search natal --location "GBI Haleluya"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		query := ""
		if len(args) == 1 {
			query = args[0]
		}

		filters := application.SearchFilters{
			Query:     query,
			Formats:   toFormats(searchFormats),
			Locations: sliceOrNil(searchLocations),
			Services:  sliceOrNil(searchServices),
			Tags:      sliceOrNil(searchTags),
			Series:    sliceOrNil(searchSeries),
			YearFrom:  searchYearFrom,
			YearTo:    searchYearTo,
		}

		results, err := commands.NewSearchCommand(sermonIndex, filters).Execute(ctx)
		if err != nil {
			return err
		}

		if len(results) == 0 {
			fmt.Println("No sermons found")
			return nil
		}

		for _, r := range results {
			printRecord(r)
		}
		return nil
	},
}

func toFormats(names []string) []application.FileFormat {
	if len(names) == 0 {
		return nil
	}
	formats := make([]application.FileFormat, 0, len(names))
	for _, name := range names {
		formats = append(formats, application.FileFormat(strings.ToLower(name)))
	}
	return formats
}

// sliceOrNil keeps "flag not given" distinct from an empty filter
func sliceOrNil(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	return values
}

func printRecord(r application.SermonRecord) {
	line := fmt.Sprintf("%s  %-40s [%s]", r.Date, r.Title, r.FileFormat.DisplayName())
	if locations := r.DeliveryLocations(); len(locations) > 0 {
		line += "  @ " + strings.Join(locations, ", ")
	}
	if len(r.Tags) > 0 {
		line += "  #" + strings.Join(r.Tags, " #")
	}
	fmt.Println(line)
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringSliceVar(&searchFormats, "format", nil, "file formats to keep (keynote, pages, pdf, ...)")
	searchCmd.Flags().StringSliceVar(&searchLocations, "location", nil, "delivery locations to keep")
	searchCmd.Flags().StringSliceVar(&searchServices, "service", nil, "delivery services to keep")
	searchCmd.Flags().StringSliceVar(&searchTags, "tag", nil, "tags to keep")
	searchCmd.Flags().StringSliceVar(&searchSeries, "series", nil, "series names to keep")
	searchCmd.Flags().IntVar(&searchYearFrom, "year-from", 0, "earliest year to include")
	searchCmd.Flags().IntVar(&searchYearTo, "year-to", 0, "latest year to include")
}
