package jobserver

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anatolykoptev/go_jobcoach/internal/engine"
	"github.com/anatolykoptev/go_jobcoach/internal/engine/cv"
	"github.com/anatolykoptev/go_jobcoach/internal/engine/jobs"
	"github.com/anatolykoptev/go_jobcoach/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerCVExtractText(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "cv_extract_text",
		Description: "Extract plain text from an uploaded CV (PDF, DOCX or text). Pass the file as base64. PDF pages are separated by a blank line. Feed the text into cv_analyze or job_match.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input CVExtractTextInput) (*mcp.CallToolResult, CVExtractTextOutput, error) {
		out, err := extractCV(input)
		if err != nil {
			return nil, CVExtractTextOutput{}, err
		}
		return nil, out, nil
	})
}

func extractCV(input CVExtractTextInput) (CVExtractTextOutput, error) {
	if strings.TrimSpace(input.FileBase64) == "" {
		return CVExtractTextOutput{}, fmt.Errorf("cv_extract_text: %w: file_base64 is required", jobs.ErrValidation)
	}
	data, dataMime, err := toolutil.DecodeFile(input.FileBase64)
	if err != nil {
		return CVExtractTextOutput{}, fmt.Errorf("cv_extract_text: %w: %v", jobs.ErrExtraction, err)
	}
	mime := input.MimeType
	if mime == "" {
		mime = dataMime
	}
	text, err := jobs.ExtractCVText(mime, input.FileName, data)
	if err != nil {
		slog.Warn("cv_extract_text: extraction failed",
			slog.String("file", input.FileName), slog.Int("bytes", len(data)), slog.Any("error", err))
		return CVExtractTextOutput{}, err
	}
	return CVExtractTextOutput{
		Text:  text,
		Type:  jobs.DetectCVType(mime, input.FileName, data),
		Chars: len([]rune(text)),
	}, nil
}

func registerCVAnalyze(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "cv_analyze",
		Description: "Build a job-seeker profile from CV text: suggested job titles, alternative titles, direction tags, experience level (Junior, Mid-level, Senior), spoken languages, remote preference and location. Skills are not inferred here: they are kept from the previous profile (use cv_skills to pull candidates from the CV). Optionally merges into a previous profile and saves it by name.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input CVAnalyzeInput) (*mcp.CallToolResult, CVAnalyzeOutput, error) {
		out, err := analyzeCV(ctx, input)
		if err != nil {
			return nil, CVAnalyzeOutput{}, err
		}
		return nil, out, nil
	})
}

func analyzeCV(ctx context.Context, input CVAnalyzeInput) (CVAnalyzeOutput, error) {
	if strings.TrimSpace(input.CVText) == "" {
		return CVAnalyzeOutput{}, fmt.Errorf("cv_analyze: %w: cv_text is required", jobs.ErrValidation)
	}
	var prev cv.Profile
	if input.PreviousProfile != nil {
		prev = *input.PreviousProfile
	}
	profile := prev.MergeAnalysis(buildProfile(ctx, input.CVText))
	if profile.Skills == nil {
		profile.Skills = []cv.Skill{}
	}

	out := CVAnalyzeOutput{Profile: profile}
	if name := strings.TrimSpace(input.SaveAs); name != "" {
		book, err := jobs.Profiles()
		if err != nil {
			return CVAnalyzeOutput{}, fmt.Errorf("cv_analyze: %w", err)
		}
		saved, err := book.Save(ctx, jobs.SavedProfile{Name: name, Profile: profile, CVText: input.CVText})
		if err != nil {
			return CVAnalyzeOutput{}, err
		}
		out.SavedAs = saved.Name
	}
	return out, nil
}

// buildProfile classifies cvText. Skills stay empty: they are entered by the
// user or pulled explicitly through cv_skills. Classification is pure, so
// results are cached by text.
func buildProfile(ctx context.Context, cvText string) cv.Profile {
	return engine.Cached(ctx, engine.CacheKey("cv_classify", cvText), func() cv.Profile {
		engine.IncrCVAnalyses()
		p := cv.Classify(cvText)
		slog.Debug("cv_analyze: profile built",
			slog.Int("titles", len(p.Titles)),
			slog.String("level", string(p.ExperienceLevel)))
		return p
	})
}

func registerCVSkills(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "cv_skills",
		Description: "Extract canonical skill keywords from CV text (languages, frameworks, tools, soft skills, domain terms, German and English). Each skill appears once.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input CVSkillsInput) (*mcp.CallToolResult, CVSkillsOutput, error) {
		if strings.TrimSpace(input.CVText) == "" {
			return nil, CVSkillsOutput{}, fmt.Errorf("cv_skills: %w: cv_text is required", jobs.ErrValidation)
		}
		engine.IncrSkillExtractions()
		skills := cv.ExtractSkills(input.CVText)
		return nil, CVSkillsOutput{Skills: skills, Count: len(skills)}, nil
	})
}
