package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"sermonvault/internal/application/commands"
	"sermonvault/internal/domain"
	"sermonvault/internal/ports"
)

// RegisterWriteTools adds all mutating sermon tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, index ports.SermonIndex, store ports.VaultDataStore, fs ports.FileSystem, vaultPath string) {
	s.AddTool(rebuildTool(), rebuildHandler(index))
	s.AddTool(importTool(), importHandler(fs, vaultPath))
	s.AddTool(addVaultEntryTool(), addVaultEntryHandler(store))
	s.AddTool(removeVaultEntryTool(), removeVaultEntryHandler(store))
}

// --- rebuild_index ---

func rebuildTool() mcp.Tool {
	return mcp.NewTool("rebuild_index",
		mcp.WithDescription("Rescan the vault and rebuild the sermon index from the metadata sidecars."),
	)
}

func rebuildHandler(index ports.SermonIndex) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		snapshot, err := commands.NewRebuildIndexCommand(index).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf(
			"Indexed %d sermons at %s.",
			snapshot.TotalCount,
			time.UnixMilli(snapshot.LastScanned).Format(time.RFC3339),
		)), nil
	}
}

// --- import_sermon ---

func importTool() mcp.Tool {
	return mcp.NewTool("import_sermon",
		mcp.WithDescription("Copy a sermon file into the vault's year folder and write its metadata sidecar."),
		mcp.WithString("source_path",
			mcp.Description("Path of the sermon file to import"),
			mcp.Required(),
		),
		mcp.WithString("title",
			mcp.Description("Sermon title"),
			mcp.Required(),
		),
		mcp.WithString("date",
			mcp.Description("Preparation date as YYYY-MM-DD. Defaults to today."),
		),
		mcp.WithString("tags",
			mcp.Description("Comma-separated tags"),
		),
		mcp.WithString("series",
			mcp.Description("Series the sermon belongs to"),
		),
		mcp.WithString("references",
			mcp.Description("Comma-separated scripture references"),
		),
		mcp.WithString("notes",
			mcp.Description("Free-form notes"),
		),
	)
}

func importHandler(fs ports.FileSystem, vaultPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewImportSermonCommand(fs, vaultPath,
			req.GetString("source_path", ""),
			req.GetString("title", ""),
		)
		cmd.Date = req.GetString("date", "")
		cmd.Tags = splitList(req.GetString("tags", ""))
		cmd.Series = req.GetString("series", "")
		cmd.References = splitList(req.GetString("references", ""))
		cmd.Notes = req.GetString("notes", "")

		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- add_vault_entry / remove_vault_entry ---

func addVaultEntryTool() mcp.Tool {
	return mcp.NewTool("add_vault_entry",
		mcp.WithDescription("Add a value to one of the vault vocabularies (tags, locations, services)."),
		mcp.WithString("field",
			mcp.Description("Vocabulary to change: tags, locations, or services"),
			mcp.Required(),
		),
		mcp.WithString("value",
			mcp.Description("Value to add"),
			mcp.Required(),
		),
	)
}

func addVaultEntryHandler(store ports.VaultDataStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		field := domain.VaultDataField(req.GetString("field", ""))
		value := req.GetString("value", "")

		if err := commands.NewAddVaultEntryCommand(store, field, value).Execute(ctx); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("Added %q to %s.", value, field)), nil
	}
}

func removeVaultEntryTool() mcp.Tool {
	return mcp.NewTool("remove_vault_entry",
		mcp.WithDescription("Remove a value from one of the vault vocabularies (tags, locations, services)."),
		mcp.WithString("field",
			mcp.Description("Vocabulary to change: tags, locations, or services"),
			mcp.Required(),
		),
		mcp.WithString("value",
			mcp.Description("Value to remove"),
			mcp.Required(),
		),
	)
}

func removeVaultEntryHandler(store ports.VaultDataStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		field := domain.VaultDataField(req.GetString("field", ""))
		value := req.GetString("value", "")

		if err := commands.NewRemoveVaultEntryCommand(store, field, value).Execute(ctx); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("Removed %q from %s.", value, field)), nil
	}
}
