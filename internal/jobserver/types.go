package jobserver

import (
	"github.com/anatolykoptev/go_jobcoach/internal/engine/cv"
	"github.com/anatolykoptev/go_jobcoach/internal/engine/jobs"
	"github.com/anatolykoptev/go_jobcoach/internal/engine/match"
)

// --- CV tools ---

type CVExtractTextInput struct {
	FileBase64 string `json:"file_base64" jsonschema:"File content, base64 or a data URL"`
	FileName   string `json:"file_name,omitempty" jsonschema:"Original file name, used to detect the type (e.g. lebenslauf.pdf)"`
	MimeType   string `json:"mime_type,omitempty" jsonschema:"application/pdf, DOCX or text/plain. Detected from name or content when empty"`
}

type CVExtractTextOutput struct {
	Text     string `json:"text"`
	Type     string `json:"type"`
	Chars    int    `json:"chars"`
	Language string `json:"language,omitempty"`
}

type CVAnalyzeInput struct {
	CVText          string      `json:"cv_text" jsonschema:"Plain CV text"`
	PreviousProfile *cv.Profile `json:"previous_profile,omitempty" jsonschema:"Profile to merge into. Its skills are kept, location falls back to it"`
	SaveAs          string      `json:"save_as,omitempty" jsonschema:"Store the result under this profile name"`
}

type CVAnalyzeOutput struct {
	Profile cv.Profile `json:"profile"`
	SavedAs string     `json:"saved_as,omitempty"`
}

type CVSkillsInput struct {
	CVText string `json:"cv_text" jsonschema:"Plain CV text"`
}

type CVSkillsOutput struct {
	Skills []cv.Skill `json:"skills"`
	Count  int        `json:"count"`
}

// --- Job ad tools ---

type JobAdKeywordsInput struct {
	AdText string `json:"ad_text" jsonschema:"Job ad text, plain or HTML"`
}

type JobAdKeywordsOutput struct {
	Tokens []match.Token `json:"tokens"`
	Count  int           `json:"count"`
}

type JobMatchInput struct {
	AdText      string      `json:"ad_text" jsonschema:"Job ad text, plain or HTML"`
	CVText      string      `json:"cv_text,omitempty" jsonschema:"Plain CV text. Used as evidence and to build a profile when none is given"`
	Profile     *cv.Profile `json:"profile,omitempty" jsonschema:"Candidate profile. Takes precedence over profile_name"`
	ProfileName string      `json:"profile_name,omitempty" jsonschema:"Saved profile to match against (default: default)"`
	Language    string      `json:"language,omitempty" jsonschema:"Message language: de (default) or en"`
}

// --- Assistant ---

type AssistantMessageInput struct {
	SessionID   string      `json:"session_id,omitempty" jsonschema:"Conversation ID. Empty starts a new conversation"`
	Message     string      `json:"message" jsonschema:"User message or pasted job ad"`
	Language    string      `json:"language,omitempty" jsonschema:"de or en. Changes the session language"`
	CVText      string      `json:"cv_text,omitempty" jsonschema:"Replaces the session CV text"`
	Profile     *cv.Profile `json:"profile,omitempty" jsonschema:"Replaces the session profile"`
	ProfileName string      `json:"profile_name,omitempty" jsonschema:"Load a saved profile into a new session"`
	SaveAs      string      `json:"save_as,omitempty" jsonschema:"Persist profile changes under this name"`
}

type AssistantMessageOutput struct {
	SessionID      string      `json:"session_id"`
	Greeting       string      `json:"greeting,omitempty"`
	Reply          string      `json:"reply"`
	UpdatedProfile *cv.Profile `json:"updated_profile,omitempty"`
	Turns          int         `json:"turns"`
}

// --- Links ---

type SearchLinksInput struct {
	Titles      []string `json:"titles,omitempty" jsonschema:"Job titles to search for"`
	TitlesText  string   `json:"titles_text,omitempty" jsonschema:"Titles separated by commas or newlines"`
	Location    string   `json:"location,omitempty" jsonschema:"City or region (default: Deutschland)"`
	Skills      []string `json:"skills,omitempty" jsonschema:"Skills to add to LinkedIn and custom portal queries"`
	ProfileName string   `json:"profile_name,omitempty" jsonschema:"Fill titles, skills, location and custom portals from a saved profile"`
}

type SearchLinksOutput struct {
	Location string             `json:"location"`
	Links    []jobs.SearchLinks `json:"links"`
	Count    int                `json:"count"`
}

type CompanyLinksInput struct {
	Company string `json:"company" jsonschema:"Company name"`
}

// --- Profiles ---

type ProfileSaveInput struct {
	Name          string        `json:"name" jsonschema:"Profile name"`
	Profile       cv.Profile    `json:"profile"`
	CVText        string        `json:"cv_text,omitempty"`
	CustomPortals []jobs.Portal `json:"custom_portals,omitempty" jsonschema:"Job portals; URL may use {query}, {title} and {location}"`
}

type ProfileNameInput struct {
	Name string `json:"name,omitempty" jsonschema:"Profile name (default: default)"`
}

type ProfileListOutput struct {
	Profiles []string `json:"profiles"`
	Total    int      `json:"total"`
}

type ProfileDeleteOutput struct {
	Deleted string `json:"deleted"`
}

type ProfileExportOutput struct {
	Name string `json:"name"`
	JSON string `json:"json"`
}

type ProfileImportInput struct {
	JSON string `json:"json" jsonschema:"Exported profile JSON"`
	Name string `json:"name,omitempty" jsonschema:"Save under this name instead of the one in the file"`
}

// --- Applications ---

type ApplicationListInput struct {
	Status string `json:"status,omitempty" jsonschema:"Filter: applied, interview, offer, rejected"`
}

type ApplicationUpdateInput struct {
	ID          string `json:"id" jsonschema:"Application ID from application_list"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	AppliedDate string `json:"applied_date,omitempty" jsonschema:"YYYY-MM-DD, defaults to today"`
	Status      string `json:"status,omitempty" jsonschema:"applied, interview, offer or rejected"`
	Notes       string `json:"notes,omitempty"`
	JobLink     string `json:"job_link,omitempty"`
}

type ApplicationDeleteInput struct {
	ID string `json:"id" jsonschema:"Application ID from application_list"`
}

type ApplicationDeleteOutput struct {
	Deleted string `json:"deleted"`
}
