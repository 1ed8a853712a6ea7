package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/TGALLOWAY1/Refract/internal/config"
	"github.com/TGALLOWAY1/Refract/internal/logging"
	"github.com/TGALLOWAY1/Refract/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("refract-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("refract-mcp - MCP server for kaleidoscope mirror patterns")
			fmt.Println()
			fmt.Println("Usage: refract-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  REFRACT_CONFIG=/path/to/config.yaml  Config file location")
			fmt.Println("  REFRACT_LOG_LEVEL=debug              Override log level")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	cfg, err := config.Load(os.Getenv("REFRACT_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	level := cfg.Log.Level
	if env := os.Getenv("REFRACT_LOG_LEVEL"); env != "" {
		level = env
	}

	// Logging never goes to stdout, that stream carries the MCP protocol.
	var logDest = io.Writer(os.Stderr)
	if cfg.Log.File != "" {
		logDest = logging.RotatingWriter(cfg.Log.File, cfg.Log.MaxSizeMB, cfg.Log.MaxBackups, cfg.Log.MaxAgeDays)
	}
	logger := logging.Logger(logDest, cfg.Log.JSON, logging.ParseLevel(level))
	slog.SetDefault(logger)

	slog.Info("starting refract-mcp",
		"version", Version,
		"build_time", BuildTime,
		"commit", GitCommit)

	srv := server.New()
	if err := srv.Run(os.Stdin, os.Stdout); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
