// go_jobcoach is a job-search assistant MCP server.
//
// Turns CV text into a job-seeker profile, scores job ads against it, answers
// conversational requests and keeps saved profiles and an application
// tracker. Runs as an HTTP MCP server (serve, the default) or as a one-shot
// CLI (analyze, match, skills).
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/anatolykoptev/go_jobcoach/internal/engine"
	"github.com/anatolykoptev/go_jobcoach/internal/engine/i18n"
	"github.com/anatolykoptev/go_jobcoach/internal/engine/jobs"
	"github.com/anatolykoptev/go_jobcoach/internal/jobserver"
	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:           "go_jobcoach",
	Short:         "Job-search assistant: CV analysis, job-ad matching and application tracking",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server (default)",
	RunE:  runServe,
}

func main() {
	_ = godotenv.Load()

	rootCmd.AddCommand(serveCmd, analyzeCmd, matchCmd, skillsCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	c := loadConfig()
	engine.Init(c)
	initEngine(cmd.Context(), c)

	mcpPort := env.Str("MCP_PORT", "8893")
	slog.Info("starting go_jobcoach",
		slog.String("port", mcpPort),
		slog.String("language", string(c.DefaultLanguage)),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_jobcoach",
		Version: version,
	}, nil)

	jobserver.RegisterTools(server, loadPortals(c.PortalsFile))

	defer closeStore()
	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "go_jobcoach",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 60 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
		return err
	}
	return nil
}

func loadConfig() engine.Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return engine.Config{
		DataDir:              env.Str("DATA_DIR", filepath.Join(home, ".go_jobcoach")),
		DatabaseURL:          env.Str("DATABASE_URL", ""),
		DefaultLanguage:      i18n.Parse(env.Str("DEFAULT_LANGUAGE", "de"), i18n.DE),
		ReplyDelay:           env.Duration("REPLY_DELAY", 500*time.Millisecond),
		SessionIdleTTL:       env.Duration("SESSION_IDLE_TTL", 2*time.Hour),
		SessionsPerMinute:    env.Int("SESSIONS_PER_MINUTE", 120),
		PortalsFile:          env.Str("PORTALS_FILE", ""),
		MaxCVBytes:           env.Int("MAX_CV_BYTES", 10<<20),
		DefaultLocation:      env.Str("DEFAULT_LOCATION", "Deutschland"),
		RedisURL:             env.Str("REDIS_URL", ""),
		CacheTTL:             env.Duration("CACHE_TTL", 30*time.Minute),
		CacheMaxEntries:      env.Int("CACHE_MAX_ENTRIES", 1000),
		CacheCleanupInterval: env.Duration("CACHE_CLEANUP_INTERVAL", 300*time.Second),
	}
}

func initEngine(ctx context.Context, c engine.Config) {
	if ctx == nil {
		ctx = context.Background()
	}
	if c.MaxCVBytes > 0 {
		jobs.MaxCVBytes = c.MaxCVBytes
	}
	if c.DefaultLocation != "" {
		jobs.DefaultLocation = c.DefaultLocation
	}

	// Profiles and applications (SQLite by default, Postgres when configured)
	store, err := jobs.OpenStore(ctx, c)
	if err != nil {
		slog.Warn("store init failed, profiles and tracker disabled", slog.Any("error", err))
	} else {
		jobs.SetStore(store)
		slog.Info("store initialized", slog.Bool("postgres", c.DatabaseURL != ""))
	}

	engine.InitCache(c.RedisURL, c.CacheTTL, c.CacheMaxEntries, c.CacheCleanupInterval)
}

func closeStore() {
	if s := jobs.GetStore(); s != nil {
		if err := s.Close(); err != nil {
			slog.Warn("store close failed", slog.Any("error", err))
		}
	}
}

func loadPortals(path string) []jobs.Portal {
	if path == "" {
		return nil
	}
	portals, err := jobs.LoadPortals(path)
	if err != nil {
		slog.Warn("custom portals not loaded", slog.String("file", path), slog.Any("error", err))
		return nil
	}
	slog.Info("custom portals loaded", slog.Int("count", len(portals)))
	return portals
}
