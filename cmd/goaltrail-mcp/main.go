package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mark3labs/mcp-go/server"

	"github.com/goaltrail/goaltrail-mcp/internal/common"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: goaltrail-mcp [flags] <api-base-url> <api-token>")
	flag.PrintDefaults()
}

func main() {
	httpMode := flag.Bool("http", false, "Serve MCP over streamable HTTP instead of stdio")
	configFile := flag.String("config", "goaltrail-mcp.toml", "Path to config file")
	flag.Usage = usage
	flag.Parse()

	// The backend base URL and bearer token are mandatory positional
	// arguments — without both there is nothing to serve.
	args := flag.Args()
	if len(args) < 2 || args[0] == "" || args[1] == "" {
		usage()
		os.Exit(1)
	}
	baseURL := strings.TrimRight(args[0], "/")
	token := args[1]

	cfg, err := common.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	common.LoadVersionFromFile()

	logger := common.NewLoggerFromConfig(cfg.Logging)

	client := NewAPIClient(baseURL, token, logger)
	dispatcher := NewDispatcher(newCatalog(), client, logger)

	mcpServer := server.NewMCPServer(
		cfg.Server.Name,
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)

	registerTools(mcpServer, dispatcher)

	logger.Info().
		Str("backend", baseURL).
		Str("version", common.GetFullVersion()).
		Msg("Goaltrail MCP gateway starting")

	if *httpMode {
		// Streamable HTTP transport — listens on the configured port
		httpServer := server.NewStreamableHTTPServer(mcpServer,
			server.WithStateLess(true),
		)
		fmt.Fprintf(os.Stderr, "Starting MCP Streamable HTTP on :%s\n", cfg.Server.Port)
		if err := httpServer.Start(":" + cfg.Server.Port); err != nil {
			fmt.Fprintf(os.Stderr, "http server error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Stdio transport — reads stdin, writes stdout
	if err := server.ServeStdio(mcpServer); err != nil {
		fmt.Fprintf(os.Stderr, "stdio server error: %v\n", err)
		os.Exit(1)
	}
}
