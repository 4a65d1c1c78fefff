package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/bookhub/bookhub/internal/auth"
	"github.com/bookhub/bookhub/internal/core"
	httpsvr "github.com/bookhub/bookhub/internal/http"
	"github.com/bookhub/bookhub/internal/journal"
	mcpsvr "github.com/bookhub/bookhub/internal/mcp"
	"github.com/bookhub/bookhub/internal/tools"
)

var (
	version   = ""
	gitCommit = ""
	buildTime = ""
)

func main() {
	// .env is a development convenience; the real environment always wins.
	godotenv.Load()

	// stdout can carry the MCP stdio transport, so logs go to stderr.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel()}))

	if len(os.Args) > 1 && os.Args[1] == "mint-token" {
		if err := mintToken(os.Args[2:]); err != nil {
			logger.Error("mint-token failed", "err", err)
			os.Exit(1)
		}
		return
	}

	policy := core.NewPolicy(
		os.Getenv("BOOKHUB_ALLOWED_TOOLS"),
		os.Getenv("BOOKHUB_ALLOWED_CATEGORIES"),
	)

	var recorder tools.Recorder
	var calls httpsvr.CallJournal
	if databaseURL := os.Getenv("BOOKHUB_DATABASE_URL"); databaseURL != "" {
		store, err := journal.Open(databaseURL)
		if err != nil {
			logger.Error("journal init failed", "err", err)
			os.Exit(1)
		}
		defer store.Close()
		recorder = store
		calls = store
	}

	exec := tools.NewExecutor(tools.NewRegistry(), policy, recorder, logger)

	var verifier *auth.Verifier
	if secret := os.Getenv("BOOKHUB_API_JWT_SECRET"); secret != "" {
		verifier = auth.NewVerifier([]byte(secret))
	}

	// BOOKHUB_HTTP_ADDR set to the empty string disables the HTTP API.
	httpAddr := ":8080"
	if v, ok := os.LookupEnv("BOOKHUB_HTTP_ADDR"); ok {
		httpAddr = strings.TrimSpace(v)
	}
	mcpAddr := strings.TrimSpace(os.Getenv("BOOKHUB_MCP_ADDR"))

	mcpMode := mcpAddr
	if mcpMode == "" {
		mcpMode = "stdio"
	}
	logger.Info("effective config",
		"http_addr", httpAddr,
		"mcp", mcpMode,
		"journal", recorder != nil,
		"auth", verifier != nil,
		"tools", exec.Registry().Len(),
	)

	errCh := make(chan error, 2)

	var httpServer *httpsvr.Server
	if httpAddr != "" {
		httpServer = httpsvr.NewServer(httpAddr, exec, calls, verifier, logger, httpsvr.BuildInfo{
			Version:   version,
			GitCommit: gitCommit,
			BuildTime: buildTime,
		})
		go func() { errCh <- httpServer.ListenAndServe() }()
	}

	mcpServer := mcpsvr.NewServer(mcpAddr, exec, version, logger)
	if mcpAddr != "" {
		go func() { errCh <- mcpServer.ListenAndServe() }()
	} else {
		go func() { errCh <- mcpServer.Serve(os.Stdin, os.Stdout) }()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("shutting down", "signal", sig.String())
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", "err", err)
		} else {
			logger.Info("transport closed, shutting down")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if httpServer != nil {
		httpServer.Shutdown(ctx)
	}
	mcpServer.Shutdown(ctx)
	logger.Info("shutdown complete")
}

// mintToken prints a bearer token for the HTTP API. The signing secret comes
// from BOOKHUB_API_JWT_SECRET, never from a flag.
func mintToken(args []string) error {
	fs := flag.NewFlagSet("mint-token", flag.ContinueOnError)
	subject := fs.String("sub", "ops", "token subject")
	ttl := fs.Duration("ttl", 24*time.Hour, "token lifetime")
	if err := fs.Parse(args); err != nil {
		return err
	}

	secret := os.Getenv("BOOKHUB_API_JWT_SECRET")
	if secret == "" {
		return fmt.Errorf("BOOKHUB_API_JWT_SECRET is not set")
	}

	token, err := auth.NewVerifier([]byte(secret)).Mint(*subject, *ttl)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}

func logLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("BOOKHUB_LOG_LEVEL"))) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
