package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"sermonvault/internal/adapters/filesystem"
	"sermonvault/internal/adapters/index"
	mcpadapter "sermonvault/internal/adapters/mcp"
	"sermonvault/internal/adapters/vaultdata"
	"sermonvault/internal/config"
)

func main() {
	vaultFlag := flag.String("vault", config.VaultPath(), "path to the sermon vault")
	flag.Parse()

	dataDir, err := config.EnsureAppDataDir()
	if err != nil {
		log.Fatalf("sermonvault-mcp: %v", err)
	}

	fs := filesystem.New()
	vaultPath := filesystem.ExpandHome(*vaultFlag)
	sermonIndex := index.NewCache(fs, vaultPath)
	dataStore := vaultdata.NewStore(fs, dataDir)

	mcpServer := server.NewMCPServer(
		"sermonvault-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, sermonIndex, dataStore)
	mcpadapter.RegisterWriteTools(mcpServer, sermonIndex, dataStore, fs, vaultPath)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("sermonvault-mcp: %v", err)
	}
}
