package jobserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_jobcoach/internal/engine/jobs"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerApplicationAdd(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "application_add",
		Description: "Record a job application. Company and position are required. Status options: applied (default), interview, offer, rejected. Returns the assigned ID for future updates.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input jobs.ApplicationInput) (*mcp.CallToolResult, *jobs.Application, error) {
		t, err := jobs.Applications()
		if err != nil {
			return nil, nil, fmt.Errorf("application_add: %w", err)
		}
		app, err := t.Add(ctx, input)
		if err != nil {
			return nil, nil, err
		}
		return nil, app, nil
	})
}

func registerApplicationList(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "application_list",
		Description: "List tracked job applications, optionally filtered by status: applied, interview, offer, rejected.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input ApplicationListInput) (*mcp.CallToolResult, *jobs.ApplicationList, error) {
		t, err := jobs.Applications()
		if err != nil {
			return nil, nil, fmt.Errorf("application_list: %w", err)
		}
		list, err := t.List(ctx, input.Status)
		if err != nil {
			return nil, nil, err
		}
		return nil, list, nil
	})
}

func registerApplicationUpdate(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "application_update",
		Description: "Replace the fields of a tracked application by ID. Get IDs from application_list.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input ApplicationUpdateInput) (*mcp.CallToolResult, *jobs.Application, error) {
		if strings.TrimSpace(input.ID) == "" {
			return nil, nil, fmt.Errorf("application_update: %w: id is required", jobs.ErrValidation)
		}
		t, err := jobs.Applications()
		if err != nil {
			return nil, nil, fmt.Errorf("application_update: %w", err)
		}
		app, err := t.Update(ctx, input.ID, jobs.ApplicationInput{
			Company:     input.Company,
			Position:    input.Position,
			AppliedDate: input.AppliedDate,
			Status:      input.Status,
			Notes:       input.Notes,
			JobLink:     input.JobLink,
		})
		if err != nil {
			return nil, nil, err
		}
		return nil, app, nil
	})
}

func registerApplicationDelete(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "application_delete",
		Description: "Remove a tracked application by ID.",
		Annotations: &mcp.ToolAnnotations{DestructiveHint: boolPtr(true)},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input ApplicationDeleteInput) (*mcp.CallToolResult, ApplicationDeleteOutput, error) {
		if strings.TrimSpace(input.ID) == "" {
			return nil, ApplicationDeleteOutput{}, fmt.Errorf("application_delete: %w: id is required", jobs.ErrValidation)
		}
		t, err := jobs.Applications()
		if err != nil {
			return nil, ApplicationDeleteOutput{}, fmt.Errorf("application_delete: %w", err)
		}
		if err := t.Delete(ctx, input.ID); err != nil {
			return nil, ApplicationDeleteOutput{}, err
		}
		return nil, ApplicationDeleteOutput{Deleted: input.ID}, nil
	})
}
