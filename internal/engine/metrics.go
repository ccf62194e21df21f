package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	CVAnalyses           atomic.Int64
	SkillExtractions     atomic.Int64
	JobMatches           atomic.Int64
	AssistantMessages    atomic.Int64
	FileExtractions      atomic.Int64
	FileExtractionErrors atomic.Int64
	LinkGenerations      atomic.Int64
	StoreReads           atomic.Int64
	StoreWrites          atomic.Int64
}

var metricKeys = []string{
	"cv_analyses", "skill_extractions", "job_matches",
	"assistant_messages",
	"file_extractions", "file_extraction_errors",
	"link_generations",
	"store_reads", "store_writes",
	"cache_hits", "cache_misses",
}

// GetMetrics returns a snapshot of all metrics including cache stats.
func GetMetrics() map[string]int64 {
	hits, misses := CacheStats()
	return map[string]int64{
		"cv_analyses":            metrics.CVAnalyses.Load(),
		"skill_extractions":      metrics.SkillExtractions.Load(),
		"job_matches":            metrics.JobMatches.Load(),
		"assistant_messages":     metrics.AssistantMessages.Load(),
		"file_extractions":       metrics.FileExtractions.Load(),
		"file_extraction_errors": metrics.FileExtractionErrors.Load(),
		"link_generations":       metrics.LinkGenerations.Load(),
		"store_reads":            metrics.StoreReads.Load(),
		"store_writes":           metrics.StoreWrites.Load(),
		"cache_hits":             hits,
		"cache_misses":           misses,
	}
}

// FormatMetrics returns metrics as a simple text format for HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	for _, k := range metricKeys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

func IncrCVAnalyses()           { metrics.CVAnalyses.Add(1) }
func IncrSkillExtractions()     { metrics.SkillExtractions.Add(1) }
func IncrJobMatches()           { metrics.JobMatches.Add(1) }
func IncrAssistantMessages()    { metrics.AssistantMessages.Add(1) }
func IncrLinkGenerations()      { metrics.LinkGenerations.Add(1) }

// Incrementors for jobs/ sub-package.
func IncrFileExtractions()      { metrics.FileExtractions.Add(1) }
func IncrFileExtractionErrors() { metrics.FileExtractionErrors.Add(1) }
func IncrStoreReads()           { metrics.StoreReads.Add(1) }
func IncrStoreWrites()          { metrics.StoreWrites.Add(1) }

// TrackOperation logs a warning if an operation takes longer than threshold.
func TrackOperation(ctx context.Context, name string, fn func(context.Context) error) error {
	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)
	if elapsed > 2*time.Second {
		slog.Warn("slow operation", slog.String("op", name), slog.Duration("elapsed", elapsed))
	}
	return err
}
