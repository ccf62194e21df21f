package jobserver

import (
	"context"
	"log/slog"
	"time"

	"github.com/anatolykoptev/go_jobcoach/internal/engine"
	"github.com/anatolykoptev/go_jobcoach/internal/engine/assistant"
	"github.com/anatolykoptev/go_jobcoach/internal/engine/jobs"
	"github.com/anatolykoptev/go_jobcoach/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var (
	// portals are the configured custom job boards, added to every link set.
	portals []jobs.Portal
	// sessions holds open assistant conversations.
	sessions = assistant.NewSessions(assistant.SessionsConfig{Lang: toolutil.Lang("")})
	// stopSweep ends the idle-session sweep of the previous registration.
	stopSweep context.CancelFunc = func() {}
)

// RegisterTools registers all job-coach tools on the given MCP server and
// returns how many were added.
func RegisterTools(server *mcp.Server, customPortals []jobs.Portal) int {
	portals = customPortals
	sessions = assistant.NewSessions(assistant.SessionsConfig{
		Lang:            toolutil.Lang(""),
		ReplyDelay:      engine.Cfg.ReplyDelay,
		IdleTTL:         engine.Cfg.SessionIdleTTL,
		CreatePerMinute: engine.Cfg.SessionsPerMinute,
	})
	stopSweep()
	var sweepCtx context.Context
	sweepCtx, stopSweep = context.WithCancel(context.Background())
	go sessions.Run(sweepCtx, engine.Cfg.SessionIdleTTL/4)

	registrations := []func(*mcp.Server){
		registerCVExtractText,
		registerCVAnalyze,
		registerCVSkills,
		registerJobAdKeywords,
		registerJobMatch,
		registerAssistantMessage,
		registerSearchLinks,
		registerCompanyLinks,
		registerProfileSave,
		registerProfileLoad,
		registerProfileList,
		registerProfileDelete,
		registerProfileExport,
		registerProfileImport,
		registerApplicationAdd,
		registerApplicationList,
		registerApplicationUpdate,
		registerApplicationDelete,
	}
	for _, register := range registrations {
		register(server)
	}
	slog.Info("jobserver: tools registered",
		slog.Int("count", len(registrations)),
		slog.Int("custom_portals", len(portals)),
		slog.Duration("reply_delay", engine.Cfg.ReplyDelay.Round(time.Millisecond)),
		slog.Duration("session_idle_ttl", engine.Cfg.SessionIdleTTL),
	)
	return len(registrations)
}
