package jobserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_jobcoach/internal/engine"
	"github.com/anatolykoptev/go_jobcoach/internal/engine/jobs"
	"github.com/anatolykoptev/go_jobcoach/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerSearchLinks(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_links",
		Description: "Build job-search URLs for each job title: Indeed, StepStone, LinkedIn (title plus top skills) and any configured custom portals. Titles, skills and location can come from a saved profile.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input SearchLinksInput) (*mcp.CallToolResult, SearchLinksOutput, error) {
		out, err := searchLinks(ctx, input)
		if err != nil {
			return nil, SearchLinksOutput{}, err
		}
		return nil, out, nil
	})
}

func searchLinks(ctx context.Context, input SearchLinksInput) (SearchLinksOutput, error) {
	titles := toolutil.SplitList(input.Titles, input.TitlesText)
	skills := input.Skills
	location := input.Location
	custom := portals

	if strings.TrimSpace(input.ProfileName) != "" {
		book, err := jobs.Profiles()
		if err != nil {
			return SearchLinksOutput{}, fmt.Errorf("search_links: %w", err)
		}
		saved, err := book.Load(ctx, input.ProfileName)
		if err != nil {
			return SearchLinksOutput{}, fmt.Errorf("search_links: %w", err)
		}
		if len(titles) == 0 {
			titles = saved.Profile.Titles
		}
		if len(skills) == 0 {
			skills = saved.Profile.Skills
		}
		if location == "" {
			location = saved.Profile.Location
		}
		custom = append(append([]jobs.Portal{}, custom...), saved.CustomPortals...)
	}

	links, err := jobs.BuildSearchLinks(titles, location, skills, custom)
	if err != nil {
		return SearchLinksOutput{}, err
	}
	engine.IncrLinkGenerations()

	return SearchLinksOutput{Location: jobs.CleanLocation(location), Links: links, Count: len(links)}, nil
}

func registerCompanyLinks(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "company_research_links",
		Description: "Build research links for an employer: LinkedIn company search and Glassdoor reviews.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input CompanyLinksInput) (*mcp.CallToolResult, *jobs.CompanyLinks, error) {
		links, err := jobs.BuildCompanyLinks(input.Company)
		if err != nil {
			return nil, nil, err
		}
		engine.IncrLinkGenerations()
		return nil, links, nil
	})
}
