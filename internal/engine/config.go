package engine

import (
	"time"

	"github.com/anatolykoptev/go_jobcoach/internal/engine/i18n"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	DataDir              string // SQLite file location when DatabaseURL is empty
	DatabaseURL          string // Postgres DSN; empty = embedded SQLite
	DefaultLanguage      i18n.Lang
	ReplyDelay           time.Duration // assistant "thinking" delay per reply, 0 = immediate
	SessionIdleTTL       time.Duration // assistant sessions unused this long are evicted
	SessionsPerMinute    int           // cap on new assistant sessions, 0 = unlimited
	PortalsFile          string        // optional YAML list of custom job portals
	MaxCVBytes           int
	DefaultLocation      string
	RedisURL             string // optional L2 for the analysis cache
	CacheTTL             time.Duration
	CacheMaxEntries      int
	CacheCleanupInterval time.Duration
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages (jobs, jobserver).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	cfg = c
	Cfg = &cfg
}
