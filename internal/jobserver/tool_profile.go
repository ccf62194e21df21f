package jobserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_jobcoach/internal/engine/jobs"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerProfileSave(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "profile_save",
		Description: "Save a profile under a name, replacing any previous version. Stores the profile, its CV text and custom job portals.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input ProfileSaveInput) (*mcp.CallToolResult, *jobs.SavedProfile, error) {
		book, err := jobs.Profiles()
		if err != nil {
			return nil, nil, fmt.Errorf("profile_save: %w", err)
		}
		saved, err := book.Save(ctx, jobs.SavedProfile{
			Name:          input.Name,
			Profile:       input.Profile,
			CVText:        input.CVText,
			CustomPortals: input.CustomPortals,
		})
		if err != nil {
			return nil, nil, err
		}
		return nil, saved, nil
	})
}

func registerProfileLoad(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "profile_load",
		Description: "Load a saved profile by name (default: default). The default profile is empty until first saved.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input ProfileNameInput) (*mcp.CallToolResult, *jobs.SavedProfile, error) {
		book, err := jobs.Profiles()
		if err != nil {
			return nil, nil, fmt.Errorf("profile_load: %w", err)
		}
		saved, err := book.Load(ctx, input.Name)
		if err != nil {
			return nil, nil, err
		}
		return nil, saved, nil
	})
}

func registerProfileList(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "profile_list",
		Description: "List the names of all saved profiles.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, ProfileListOutput, error) {
		book, err := jobs.Profiles()
		if err != nil {
			return nil, ProfileListOutput{}, fmt.Errorf("profile_list: %w", err)
		}
		names, err := book.List(ctx)
		if err != nil {
			return nil, ProfileListOutput{}, err
		}
		return nil, ProfileListOutput{Profiles: names, Total: len(names)}, nil
	})
}

func registerProfileDelete(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "profile_delete",
		Description: "Delete a saved profile by name. The default profile cannot be deleted.",
		Annotations: &mcp.ToolAnnotations{DestructiveHint: boolPtr(true)},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input ProfileNameInput) (*mcp.CallToolResult, ProfileDeleteOutput, error) {
		book, err := jobs.Profiles()
		if err != nil {
			return nil, ProfileDeleteOutput{}, fmt.Errorf("profile_delete: %w", err)
		}
		if err := book.Delete(ctx, input.Name); err != nil {
			return nil, ProfileDeleteOutput{}, err
		}
		return nil, ProfileDeleteOutput{Deleted: strings.TrimSpace(input.Name)}, nil
	})
}

func registerProfileExport(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "profile_export",
		Description: "Export a saved profile as JSON (profile, CV text, custom portals, export timestamp) for backup or transfer with profile_import.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input ProfileNameInput) (*mcp.CallToolResult, ProfileExportOutput, error) {
		book, err := jobs.Profiles()
		if err != nil {
			return nil, ProfileExportOutput{}, fmt.Errorf("profile_export: %w", err)
		}
		data, err := book.Export(ctx, input.Name)
		if err != nil {
			return nil, ProfileExportOutput{}, err
		}
		name := strings.TrimSpace(input.Name)
		if name == "" {
			name = jobs.DefaultProfileName
		}
		return nil, ProfileExportOutput{Name: name, JSON: string(data)}, nil
	})
}

func registerProfileImport(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "profile_import",
		Description: "Import a profile previously produced by profile_export. Saved under its own name unless name is given.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input ProfileImportInput) (*mcp.CallToolResult, *jobs.SavedProfile, error) {
		saved, err := importProfile(ctx, input)
		if err != nil {
			return nil, nil, err
		}
		return nil, saved, nil
	})
}

func importProfile(ctx context.Context, input ProfileImportInput) (*jobs.SavedProfile, error) {
	if strings.TrimSpace(input.JSON) == "" {
		return nil, fmt.Errorf("profile_import: %w: json is required", jobs.ErrValidation)
	}
	book, err := jobs.Profiles()
	if err != nil {
		return nil, fmt.Errorf("profile_import: %w", err)
	}
	p, err := book.Import(ctx, []byte(input.JSON))
	if err != nil {
		return nil, err
	}
	if name := strings.TrimSpace(input.Name); name != "" && name != p.Name {
		p.Name = name
		return book.Save(ctx, *p)
	}
	if p.Name == "" {
		return nil, fmt.Errorf("profile_import: %w: profile has no name, pass one", jobs.ErrValidation)
	}
	return p, nil
}

func boolPtr(b bool) *bool { return &b }
