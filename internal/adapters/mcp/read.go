package mcp

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"sermonvault/internal/application/commands"
	"sermonvault/internal/domain"
	"sermonvault/internal/ports"
)

// RegisterReadTools adds all read-only sermon tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, index ports.SermonIndex, store ports.VaultDataStore) {
	s.AddTool(searchTool(), searchHandler(index))
	s.AddTool(listTool(), listHandler(index))
	s.AddTool(getTool(), getHandler(index))
	s.AddTool(statsTool(), statsHandler(index))
	s.AddTool(filterOptionsTool(), filterOptionsHandler(index))
	s.AddTool(vaultDataTool(), vaultDataHandler(store))
}

// --- search_sermons ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search_sermons",
		mcp.WithDescription("Search the sermon archive. All given filters must match; omitted filters match everything."),
		mcp.WithString("query",
			mcp.Description("Keyword matched against title, locations, services, tags, references and notes"),
		),
		mcp.WithString("formats",
			mcp.Description("Comma-separated file formats to keep (keynote, pages, pdf, word, powerpoint, notes, markdown)"),
		),
		mcp.WithString("locations",
			mcp.Description("Comma-separated delivery locations to keep"),
		),
		mcp.WithString("services",
			mcp.Description("Comma-separated delivery services to keep"),
		),
		mcp.WithString("tags",
			mcp.Description("Comma-separated tags to keep"),
		),
		mcp.WithString("series",
			mcp.Description("Comma-separated series names to keep"),
		),
		mcp.WithNumber("year_from",
			mcp.Description("Earliest year to include"),
		),
		mcp.WithNumber("year_to",
			mcp.Description("Latest year to include"),
		),
	)
}

func searchHandler(index ports.SermonIndex) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		filters := domain.SearchFilters{
			Query:     req.GetString("query", ""),
			Formats:   formatList(req.GetString("formats", "")),
			Locations: splitList(req.GetString("locations", "")),
			Services:  splitList(req.GetString("services", "")),
			Tags:      splitList(req.GetString("tags", "")),
			Series:    splitList(req.GetString("series", "")),
			YearFrom:  req.GetInt("year_from", 0),
			YearTo:    req.GetInt("year_to", 0),
		}

		results, err := commands.NewSearchCommand(index, filters).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatRecords(results)
	}
}

// --- list_sermons ---

func listTool() mcp.Tool {
	return mcp.NewTool("list_sermons",
		mcp.WithDescription("List indexed sermons newest-first, optionally scoped to one year."),
		mcp.WithNumber("year",
			mcp.Description("Year to list (e.g. 2024). Omit to list every year."),
		),
	)
}

func listHandler(index ports.SermonIndex) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		year := req.GetInt("year", 0)

		results, err := commands.NewListSermonsCommand(index, year).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatRecords(results)
	}
}

// --- get_sermon ---

func getTool() mcp.Tool {
	return mcp.NewTool("get_sermon",
		mcp.WithDescription("Show one sermon's full metadata by its record ID."),
		mcp.WithString("id",
			mcp.Description("Sermon record ID (e.g. sermon-5f2a...)"),
			mcp.Required(),
		),
	)
}

func getHandler(index ports.SermonIndex) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		record, err := commands.NewGetSermonCommand(index, req.GetString("id", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "ID: %s\n", record.ID)
		fmt.Fprintf(&sb, "Title: %s\n", record.Title)
		fmt.Fprintf(&sb, "Date: %s\n", record.Date)
		fmt.Fprintf(&sb, "Format: %s\n", record.FileFormat.DisplayName())
		fmt.Fprintf(&sb, "File: %s\n", record.FilePath)
		if record.Series != "" {
			fmt.Fprintf(&sb, "Series: %s\n", record.Series)
		}
		if len(record.Tags) > 0 {
			fmt.Fprintf(&sb, "Tags: %s\n", strings.Join(record.Tags, ", "))
		}
		if len(record.References) > 0 {
			fmt.Fprintf(&sb, "References: %s\n", strings.Join(record.References, ", "))
		}
		for _, d := range record.Deliveries {
			fmt.Fprintf(&sb, "Delivered: %s at %s (%s)\n", d.Date, d.Location, strings.Join(d.Services, ", "))
		}
		if record.Notes != "" {
			fmt.Fprintf(&sb, "\n%s\n", record.Notes)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- vault_stats ---

func statsTool() mcp.Tool {
	return mcp.NewTool("vault_stats",
		mcp.WithDescription("Show aggregate statistics over the sermon archive: counts by year, format, location and service."),
	)
}

func statsHandler(index ports.SermonIndex) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewStatsCommand(index).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "Total sermons: %d\n", result.TotalCount)
		fmt.Fprintf(&sb, "Last scanned: %s\n", time.UnixMilli(result.LastScanned).Format(time.RFC3339))

		sb.WriteString("\nBy year:\n")
		years := make([]int, 0, len(result.Stats.ByYear))
		for year := range result.Stats.ByYear {
			years = append(years, year)
		}
		sort.Sort(sort.Reverse(sort.IntSlice(years)))
		for _, year := range years {
			fmt.Fprintf(&sb, "  %d  %d\n", year, result.Stats.ByYear[year])
		}

		writeCountSection(&sb, "By format", formatCounts(result.Stats.ByFormat))
		writeCountSection(&sb, "By location", result.Stats.ByLocation)
		writeCountSection(&sb, "By service", result.Stats.ByService)

		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- filter_options ---

func filterOptionsTool() mcp.Tool {
	return mcp.NewTool("filter_options",
		mcp.WithDescription("List the distinct filter values present in the archive: years, formats, locations, services, series and tags."),
	)
}

func filterOptionsHandler(index ports.SermonIndex) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewStatsCommand(index).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		opts := result.Options

		var sb strings.Builder
		years := make([]string, 0, len(opts.Years))
		for _, y := range opts.Years {
			years = append(years, fmt.Sprintf("%d", y))
		}
		formats := make([]string, 0, len(opts.Formats))
		for _, f := range opts.Formats {
			formats = append(formats, string(f))
		}
		fmt.Fprintf(&sb, "Years: %s\n", strings.Join(years, ", "))
		fmt.Fprintf(&sb, "Formats: %s\n", strings.Join(formats, ", "))
		fmt.Fprintf(&sb, "Locations: %s\n", strings.Join(opts.Locations, ", "))
		fmt.Fprintf(&sb, "Services: %s\n", strings.Join(opts.Services, ", "))
		fmt.Fprintf(&sb, "Series: %s\n", strings.Join(opts.Series, ", "))
		fmt.Fprintf(&sb, "Tags: %s\n", strings.Join(opts.Tags, ", "))
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- vault_data ---

func vaultDataTool() mcp.Tool {
	return mcp.NewTool("vault_data",
		mcp.WithDescription("List the controlled vocabularies offered when tagging sermons: tags, locations and services."),
	)
}

func vaultDataHandler(store ports.VaultDataStore) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		data, err := commands.NewListVaultDataCommand(store).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "Tags: %s\n", strings.Join(data.Tags, ", "))
		fmt.Fprintf(&sb, "Locations: %s\n", strings.Join(data.Locations, ", "))
		fmt.Fprintf(&sb, "Services: %s\n", strings.Join(data.Services, ", "))
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatRecords(records []domain.SermonRecord) (*mcp.CallToolResult, error) {
	if len(records) == 0 {
		return mcp.NewToolResultText("No sermons found."), nil
	}
	var sb strings.Builder
	for _, r := range records {
		sb.WriteString(formatRecord(r))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatRecord(r domain.SermonRecord) string {
	line := fmt.Sprintf("%s  %s  [%s]", r.Date, r.Title, r.FileFormat.DisplayName())
	if locations := r.DeliveryLocations(); len(locations) > 0 {
		line += "  @ " + strings.Join(locations, ", ")
	}
	if len(r.Tags) > 0 {
		line += "  #" + strings.Join(r.Tags, " #")
	}
	return line
}

func writeCountSection(sb *strings.Builder, title string, counts map[string]int) {
	sb.WriteString("\n" + title + ":\n")
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(sb, "  %s  %d\n", k, counts[k])
	}
}

func formatCounts(counts map[domain.FileFormat]int) map[string]int {
	out := make(map[string]int, len(counts))
	for format, n := range counts {
		out[string(format)] = n
	}
	return out
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			values = append(values, v)
		}
	}
	return values
}

func formatList(raw string) []domain.FileFormat {
	parts := splitList(raw)
	if parts == nil {
		return nil
	}
	formats := make([]domain.FileFormat, 0, len(parts))
	for _, p := range parts {
		formats = append(formats, domain.FileFormat(strings.ToLower(p)))
	}
	return formats
}
