package jobserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anatolykoptev/go_jobcoach/internal/engine"
	"github.com/anatolykoptev/go_jobcoach/internal/engine/cv"
	"github.com/anatolykoptev/go_jobcoach/internal/engine/jobs"
	"github.com/anatolykoptev/go_jobcoach/internal/engine/match"
	"github.com/anatolykoptev/go_jobcoach/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerJobAdKeywords(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "job_ad_keywords",
		Description: "List the technology and skill terms found in a job ad, in vocabulary order, one entry per canonical label. HTML ads are converted to text first.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input JobAdKeywordsInput) (*mcp.CallToolResult, JobAdKeywordsOutput, error) {
		if strings.TrimSpace(input.AdText) == "" {
			return nil, JobAdKeywordsOutput{}, fmt.Errorf("job_ad_keywords: %w: ad_text is required", jobs.ErrValidation)
		}
		tokens := match.ExtractTokens(jobs.AdText(input.AdText))
		return nil, JobAdKeywordsOutput{Tokens: tokens, Count: len(tokens)}, nil
	})
}

func registerJobMatch(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "job_match",
		Description: "Compare a job ad against a candidate profile. Returns match percentage, tier (Poor to Excellent), covered and missing requirements, the ad's direction tags and a formatted German or English assessment with application tips. Uses the given profile, a saved profile, or one built from cv_text.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input JobMatchInput) (*mcp.CallToolResult, match.Result, error) {
		out, err := matchJob(ctx, input)
		if err != nil {
			return nil, match.Result{}, err
		}
		return nil, out, nil
	})
}

func matchJob(ctx context.Context, input JobMatchInput) (match.Result, error) {
	if strings.TrimSpace(input.AdText) == "" {
		return match.Result{}, fmt.Errorf("job_match: %w: ad_text is required", jobs.ErrValidation)
	}
	profile, cvText, err := resolveProfile(ctx, input.Profile, input.ProfileName, input.CVText)
	if err != nil {
		return match.Result{}, fmt.Errorf("job_match: %w", err)
	}
	lang := toolutil.Lang(input.Language)
	adText := jobs.AdText(input.AdText)

	var result match.Result
	err = engine.TrackOperation(ctx, "job_match", func(context.Context) error {
		engine.IncrJobMatches()
		result = match.Analyze(adText, profile, lang, cvText)
		return nil
	})
	slog.Debug("job_match: analyzed",
		slog.Int("percent", result.MatchPercent),
		slog.Int("labels", len(result.Labels)),
		slog.String("level", string(result.MatchLevel)))
	return result, err
}

// resolveProfile picks the profile to match against: an explicit one, then a
// named saved profile, then one built from cvText, then the default saved
// profile. A saved profile contributes its CV text when none is given.
func resolveProfile(ctx context.Context, explicit *cv.Profile, name, cvText string) (cv.Profile, string, error) {
	if explicit != nil {
		return *explicit, cvText, nil
	}
	if strings.TrimSpace(name) != "" {
		book, err := jobs.Profiles()
		if err != nil {
			return cv.Profile{}, "", err
		}
		saved, err := book.Load(ctx, name)
		if err != nil {
			return cv.Profile{}, "", err
		}
		if cvText == "" {
			cvText = saved.CVText
		}
		return saved.Profile, cvText, nil
	}
	if strings.TrimSpace(cvText) != "" {
		return buildProfile(ctx, cvText), cvText, nil
	}
	book, err := jobs.Profiles()
	if err != nil {
		// No store and nothing else to go on: match against an empty profile.
		return cv.Profile{}, "", nil
	}
	saved, err := book.Load(ctx, jobs.DefaultProfileName)
	if err != nil && !errors.Is(err, jobs.ErrValidation) {
		return cv.Profile{}, "", err
	}
	if saved == nil {
		return cv.Profile{}, "", nil
	}
	return saved.Profile, saved.CVText, nil
}
