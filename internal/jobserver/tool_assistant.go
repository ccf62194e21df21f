package jobserver

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anatolykoptev/go_jobcoach/internal/engine"
	"github.com/anatolykoptev/go_jobcoach/internal/engine/assistant"
	"github.com/anatolykoptev/go_jobcoach/internal/engine/jobs"
	"github.com/anatolykoptev/go_jobcoach/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerAssistantMessage(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "assistant_message",
		Description: "Chat with the job-search assistant. Paste a job ad to get a match assessment, ask for alternative job titles, or state preferences (less coding, remote, calmer, creative) to extend the profile's titles. Keep session_id to continue a conversation.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input AssistantMessageInput) (*mcp.CallToolResult, AssistantMessageOutput, error) {
		out, err := sendMessage(ctx, input)
		if err != nil {
			return nil, AssistantMessageOutput{}, err
		}
		return nil, out, nil
	})
}

func sendMessage(ctx context.Context, input AssistantMessageInput) (AssistantMessageOutput, error) {
	if strings.TrimSpace(input.Message) == "" {
		return AssistantMessageOutput{}, fmt.Errorf("assistant_message: %w: message is required", jobs.ErrValidation)
	}

	s, created, err := sessions.Open(ctx, input.SessionID)
	if err != nil {
		return AssistantMessageOutput{}, fmt.Errorf("assistant_message: %w", err)
	}
	msg := assistant.Message{
		Text:    jobs.AdText(input.Message),
		CVText:  input.CVText,
		Profile: input.Profile,
	}
	if input.Language != "" {
		msg.Lang = toolutil.Lang(input.Language)
	}
	if created && strings.TrimSpace(input.ProfileName) != "" {
		saved, err := loadProfile(ctx, input.ProfileName)
		if err != nil {
			sessions.Close(s.ID)
			return AssistantMessageOutput{}, fmt.Errorf("assistant_message: %w", err)
		}
		if msg.Profile == nil {
			msg.Profile = &saved.Profile
		}
		if msg.CVText == "" {
			msg.CVText = saved.CVText
		}
	}

	reply, err := s.Send(ctx, msg)
	if err != nil {
		return AssistantMessageOutput{}, fmt.Errorf("assistant_message: %w", err)
	}
	engine.IncrAssistantMessages()
	slog.Debug("assistant_message: replied",
		slog.String("session", s.ID),
		slog.String("message", engine.Preview(input.Message)),
		slog.Bool("profile_updated", reply.UpdatedProfile != nil))

	if reply.UpdatedProfile != nil && strings.TrimSpace(input.SaveAs) != "" {
		if err := saveSessionProfile(ctx, s, input.SaveAs); err != nil {
			return AssistantMessageOutput{}, fmt.Errorf("assistant_message: %w", err)
		}
	}

	out := AssistantMessageOutput{
		SessionID:      s.ID,
		Reply:          reply.Message,
		UpdatedProfile: reply.UpdatedProfile,
		Turns:          len(s.History()),
	}
	if created {
		out.Greeting = assistant.Greeting(s.Lang())
	}
	return out, nil
}

func loadProfile(ctx context.Context, name string) (*jobs.SavedProfile, error) {
	book, err := jobs.Profiles()
	if err != nil {
		return nil, err
	}
	return book.Load(ctx, name)
}

func saveSessionProfile(ctx context.Context, s *assistant.Session, name string) error {
	book, err := jobs.Profiles()
	if err != nil {
		return err
	}
	_, err = book.Save(ctx, jobs.SavedProfile{Name: name, Profile: s.Profile(), CVText: s.CVText()})
	return err
}
