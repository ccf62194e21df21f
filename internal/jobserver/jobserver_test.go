package jobserver

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anatolykoptev/go_jobcoach/internal/engine"
	"github.com/anatolykoptev/go_jobcoach/internal/engine/cv"
	"github.com/anatolykoptev/go_jobcoach/internal/engine/i18n"
	"github.com/anatolykoptev/go_jobcoach/internal/engine/jobs"
	"github.com/anatolykoptev/go_jobcoach/internal/engine/match"
)

// setupStore installs a fresh SQLite store for one test.
func setupStore(t *testing.T) {
	t.Helper()
	s, err := jobs.OpenSQLiteStore(filepath.Join(t.TempDir(), "jobcoach.db"))
	require.NoError(t, err)
	prev := jobs.GetStore()
	jobs.SetStore(s)
	t.Cleanup(func() {
		jobs.SetStore(prev)
		s.Close()
	})
}

func TestExtractCV(t *testing.T) {
	out, err := extractCV(CVExtractTextInput{
		FileBase64: "data:text/plain;base64," + base64.StdEncoding.EncodeToString([]byte("Go Entwickler")),
	})
	require.NoError(t, err)
	assert.Equal(t, "Go Entwickler", out.Text)
	assert.Equal(t, jobs.MimeText, out.Type)
	assert.Equal(t, 13, out.Chars)

	_, err = extractCV(CVExtractTextInput{})
	assert.ErrorIs(t, err, jobs.ErrValidation)

	_, err = extractCV(CVExtractTextInput{FileBase64: "###"})
	assert.ErrorIs(t, err, jobs.ErrExtraction)
}

func TestAnalyzeCV_BuildsProfile(t *testing.T) {
	out, err := analyzeCV(context.Background(), CVAnalyzeInput{
		CVText: "Senior Frontend Developer mit Erfahrung in React, TypeScript und CSS. Wohnhaft in Berlin.",
	})
	require.NoError(t, err)

	p := out.Profile
	assert.Empty(t, p.Skills, "skills are not inferred by cv_analyze")
	assert.NotEmpty(t, p.Titles)
	assert.NotEmpty(t, p.Directions)
	assert.Equal(t, cv.Senior, p.ExperienceLevel)
	assert.Equal(t, "Berlin", p.Location)
	assert.Empty(t, out.SavedAs)
}

func TestAnalyzeCV_MergeKeepsPreviousLocation(t *testing.T) {
	prev := &cv.Profile{
		Skills:   []string{"Cobol"},
		Titles:   []string{"Old Title"},
		Location: "Hamburg",
	}
	out, err := analyzeCV(context.Background(), CVAnalyzeInput{
		CVText:          "Python developer with Django experience",
		PreviousProfile: prev,
	})
	require.NoError(t, err)

	assert.Equal(t, "Hamburg", out.Profile.Location)
	assert.NotContains(t, out.Profile.Titles, "Old Title")
	assert.Equal(t, []string{"Cobol"}, out.Profile.Skills, "user skills survive a re-analysis")
	assert.NotContains(t, out.Profile.Skills, "Python")
	assert.Equal(t, []string{"Cobol"}, prev.Skills, "input profile must not be mutated")
}

func TestAnalyzeCV_SaveAs(t *testing.T) {
	setupStore(t)
	ctx := context.Background()

	out, err := analyzeCV(ctx, CVAnalyzeInput{CVText: "Docker und Kubernetes", SaveAs: "ops"})
	require.NoError(t, err)
	assert.Equal(t, "ops", out.SavedAs)

	book, err := jobs.Profiles()
	require.NoError(t, err)
	saved, err := book.Load(ctx, "ops")
	require.NoError(t, err)
	assert.Equal(t, "Docker und Kubernetes", saved.CVText)
	assert.Equal(t, out.Profile, saved.Profile)
}

func TestAnalyzeCV_RequiresText(t *testing.T) {
	_, err := analyzeCV(context.Background(), CVAnalyzeInput{CVText: "  "})
	assert.ErrorIs(t, err, jobs.ErrValidation)
}

func TestMatchJob_ExplicitProfile(t *testing.T) {
	res, err := matchJob(context.Background(), JobMatchInput{
		AdText:   "Docker and Terraform",
		Profile:  &cv.Profile{Skills: []string{"Docker"}, Titles: []string{"DevOps Engineer"}},
		Language: "en",
	})
	require.NoError(t, err)
	assert.Equal(t, 50, res.MatchPercent)
	assert.Equal(t, []string{"Docker"}, res.Overlap)
	assert.Equal(t, []string{"Terraform"}, res.Missing)
}

func TestMatchJob_HTMLAd(t *testing.T) {
	res, err := matchJob(context.Background(), JobMatchInput{
		AdText:  "<ul><li>Docker</li><li>Terraform</li></ul>",
		Profile: &cv.Profile{Skills: []string{"Docker"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 50, res.MatchPercent)
}

func TestMatchJob_SavedProfile(t *testing.T) {
	setupStore(t)
	ctx := context.Background()
	book, err := jobs.Profiles()
	require.NoError(t, err)
	_, err = book.Save(ctx, jobs.SavedProfile{
		Name:    "ops",
		Profile: cv.Profile{Skills: []string{"Docker", "Terraform"}, Titles: []string{"DevOps Engineer"}},
	})
	require.NoError(t, err)

	res, err := matchJob(ctx, JobMatchInput{AdText: "Docker and Terraform", ProfileName: "ops"})
	require.NoError(t, err)
	assert.Equal(t, 100, res.MatchPercent)
	assert.Equal(t, match.Excellent, res.MatchLevel)

	_, err = matchJob(ctx, JobMatchInput{AdText: "Docker", ProfileName: "missing"})
	assert.ErrorIs(t, err, jobs.ErrValidation)
}

func TestMatchJob_RequiresAd(t *testing.T) {
	_, err := matchJob(context.Background(), JobMatchInput{})
	assert.ErrorIs(t, err, jobs.ErrValidation)
}

func TestSendMessage_Conversation(t *testing.T) {
	ctx := context.Background()

	first, err := sendMessage(ctx, AssistantMessageInput{
		Message:  "Ich möchte weniger programmieren",
		Language: "de",
		Profile:  &cv.Profile{Titles: []string{"Frontend Developer"}},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, first.SessionID)
	assert.NotEmpty(t, first.Greeting)
	require.NotNil(t, first.UpdatedProfile)
	assert.Contains(t, first.UpdatedProfile.Titles, "UX/UI Designer")
	assert.Equal(t, 3, first.Turns)

	second, err := sendMessage(ctx, AssistantMessageInput{SessionID: first.SessionID, Message: "hallo"})
	require.NoError(t, err)
	assert.Equal(t, first.SessionID, second.SessionID)
	assert.Empty(t, second.Greeting)
	assert.Nil(t, second.UpdatedProfile)
	assert.Equal(t, 5, second.Turns)

	s, ok := sessions.Get(first.SessionID)
	require.True(t, ok)
	assert.Contains(t, s.Profile().Titles, "Webdesigner")
	assert.Equal(t, i18n.DE, s.Lang())
}

func TestSendMessage_ProfileNameSeedsNewSession(t *testing.T) {
	setupStore(t)
	ctx := context.Background()
	book, err := jobs.Profiles()
	require.NoError(t, err)
	_, err = book.Save(ctx, jobs.SavedProfile{
		Name:    "anna",
		Profile: cv.Profile{Titles: []string{"Frontend Developer"}},
		CVText:  "React developer",
	})
	require.NoError(t, err)

	out, err := sendMessage(ctx, AssistantMessageInput{
		Message:     "Ich möchte weniger programmieren",
		Language:    "de",
		ProfileName: "anna",
	})
	require.NoError(t, err)
	require.NotNil(t, out.UpdatedProfile)
	assert.Contains(t, out.UpdatedProfile.Titles, "UX/UI Designer")

	s, ok := sessions.Get(out.SessionID)
	require.True(t, ok)
	assert.Equal(t, "React developer", s.CVText())
	assert.Contains(t, s.Profile().Titles, "Frontend Developer")
}

func TestSendMessage_SaveAs(t *testing.T) {
	setupStore(t)
	ctx := context.Background()

	_, err := sendMessage(ctx, AssistantMessageInput{
		Message: "I want something creative",
		Profile: &cv.Profile{Titles: []string{"Web Developer"}},
		SaveAs:  "creative",
	})
	require.NoError(t, err)

	book, err := jobs.Profiles()
	require.NoError(t, err)
	saved, err := book.Load(ctx, "creative")
	require.NoError(t, err)
	assert.Contains(t, saved.Profile.Titles, "Creative Technologist")
}

func TestSendMessage_Validation(t *testing.T) {
	_, err := sendMessage(context.Background(), AssistantMessageInput{Message: " "})
	assert.ErrorIs(t, err, jobs.ErrValidation)
}

func TestSearchLinks_FromProfile(t *testing.T) {
	setupStore(t)
	ctx := context.Background()
	book, err := jobs.Profiles()
	require.NoError(t, err)
	_, err = book.Save(ctx, jobs.SavedProfile{
		Name:          "fe",
		Profile:       cv.Profile{Titles: []string{"Frontend Developer", "UI Developer"}, Skills: []string{"React"}, Location: "Köln"},
		CustomPortals: []jobs.Portal{{Name: "Regio", URL: "https://example.de/?q={query}"}},
	})
	require.NoError(t, err)

	out, err := searchLinks(ctx, SearchLinksInput{ProfileName: "fe"})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Count)
	assert.Equal(t, "Köln", out.Location)
	assert.Equal(t, "https://www.stepstone.de/jobs/ui-developer/in-koln", out.Links[1].StepStone)
	require.Len(t, out.Links[0].Custom, 1)
	assert.Equal(t, "https://example.de/?q=Frontend+Developer+React", out.Links[0].Custom[0].URL)
}

func TestSearchLinks_TitlesText(t *testing.T) {
	out, err := searchLinks(context.Background(), SearchLinksInput{TitlesText: "Data Analyst, BI Developer"})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Count)
	assert.Equal(t, "Deutschland", out.Location)

	_, err = searchLinks(context.Background(), SearchLinksInput{})
	assert.ErrorIs(t, err, jobs.ErrValidation)
}

func TestImportProfile_Rename(t *testing.T) {
	setupStore(t)
	ctx := context.Background()

	data, err := json.Marshal(jobs.SavedProfile{Name: "old", Profile: cv.Profile{Skills: []string{"Go"}}})
	require.NoError(t, err)

	p, err := importProfile(ctx, ProfileImportInput{JSON: string(data), Name: "new"})
	require.NoError(t, err)
	assert.Equal(t, "new", p.Name)

	book, err := jobs.Profiles()
	require.NoError(t, err)
	names, err := book.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"new", "old"}, names)

	_, err = importProfile(ctx, ProfileImportInput{JSON: `{"profile":{}}`})
	assert.ErrorIs(t, err, jobs.ErrValidation)
}

func TestRegisterTools_EndToEnd(t *testing.T) {
	setupStore(t)
	engine.Init(engine.Config{})
	ctx := context.Background()

	server := mcp.NewServer(&mcp.Implementation{Name: "go_jobcoach", Version: "test"}, nil)
	assert.Equal(t, 18, RegisterTools(server, nil))

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	ss, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	defer ss.Close()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "test"}, nil)
	cs, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	defer cs.Close()

	tools, err := cs.ListTools(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, tools.Tools, 18)

	res, err := cs.CallTool(ctx, &mcp.CallToolParams{
		Name:      "application_add",
		Arguments: map[string]any{"company": "SAP", "position": "Frontend Developer"},
	})
	require.NoError(t, err)
	assert.False(t, res.IsError)

	res, err = cs.CallTool(ctx, &mcp.CallToolParams{Name: "application_list", Arguments: map[string]any{}})
	require.NoError(t, err)
	require.False(t, res.IsError)

	raw, err := json.Marshal(res.StructuredContent)
	require.NoError(t, err)
	var list jobs.ApplicationList
	require.NoError(t, json.Unmarshal(raw, &list))
	assert.Equal(t, 1, list.Total)
	assert.Equal(t, "SAP", list.Applications[0].Company)

	res, err = cs.CallTool(ctx, &mcp.CallToolParams{
		Name:      "profile_delete",
		Arguments: map[string]any{"name": "default"},
	})
	require.NoError(t, err)
	assert.True(t, res.IsError, "deleting the default profile must fail")
}
