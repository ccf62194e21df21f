package jobs

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ApplicationStatus is the stage of a job application.
type ApplicationStatus string

const (
	StatusApplied   ApplicationStatus = "applied"
	StatusInterview ApplicationStatus = "interview"
	StatusOffer     ApplicationStatus = "offer"
	StatusRejected  ApplicationStatus = "rejected"
)

// applicationsKey holds the whole application list as one document.
const applicationsKey = "applications"

// applicationsMu serializes read-modify-write cycles on applicationsKey.
var applicationsMu sync.Mutex

// Application is a single entry in the application tracker.
type Application struct {
	ID          string            `json:"id"`
	Company     string            `json:"company"`
	Position    string            `json:"position"`
	AppliedDate string            `json:"appliedDate"`
	Status      ApplicationStatus `json:"status"`
	Notes       string            `json:"notes,omitempty"`
	JobLink     string            `json:"jobLink,omitempty"`
	CreatedAt   string            `json:"createdAt"`
	UpdatedAt   string            `json:"updatedAt,omitempty"`
}

// ApplicationInput carries the user-editable fields of an application.
type ApplicationInput struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	AppliedDate string `json:"applied_date,omitempty" jsonschema:"YYYY-MM-DD, defaults to today"`
	Status      string `json:"status,omitempty" jsonschema:"applied, interview, offer or rejected (default applied)"`
	Notes       string `json:"notes,omitempty"`
	JobLink     string `json:"job_link,omitempty"`
}

// ApplicationList is the output of list operations.
type ApplicationList struct {
	Applications []Application `json:"applications"`
	Total        int           `json:"total"`
}

// Tracker keeps applications under a single store key, read-all/write-all.
type Tracker struct {
	s   Store
	now func() time.Time
}

// NewTracker wraps s.
func NewTracker(s Store) *Tracker { return &Tracker{s: s, now: time.Now} }

// Applications returns a tracker on the package-level store.
func Applications() (*Tracker, error) {
	s, err := requireStore()
	if err != nil {
		return nil, err
	}
	return NewTracker(s), nil
}

func parseStatus(s string) (ApplicationStatus, error) {
	switch st := ApplicationStatus(strings.ToLower(strings.TrimSpace(s))); st {
	case "":
		return StatusApplied, nil
	case StatusApplied, StatusInterview, StatusOffer, StatusRejected:
		return st, nil
	default:
		return "", fmt.Errorf("%w: invalid status %q (valid: applied, interview, offer, rejected)", ErrValidation, s)
	}
}

func (t *Tracker) load(ctx context.Context) ([]Application, error) {
	var apps []Application
	if _, err := getJSON(ctx, t.s, applicationsKey, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (t *Tracker) build(in ApplicationInput) (Application, error) {
	company := strings.TrimSpace(in.Company)
	position := strings.TrimSpace(in.Position)
	if company == "" || position == "" {
		return Application{}, fmt.Errorf("%w: company and position are required", ErrValidation)
	}
	status, err := parseStatus(in.Status)
	if err != nil {
		return Application{}, err
	}
	date := strings.TrimSpace(in.AppliedDate)
	if date == "" {
		date = t.now().UTC().Format(time.DateOnly)
	} else if _, err := time.Parse(time.DateOnly, date); err != nil {
		return Application{}, fmt.Errorf("%w: applied date %q is not YYYY-MM-DD", ErrValidation, date)
	}
	return Application{
		Company:     company,
		Position:    position,
		AppliedDate: date,
		Status:      status,
		Notes:       strings.TrimSpace(in.Notes),
		JobLink:     strings.TrimSpace(in.JobLink),
	}, nil
}

// Add records a new application.
func (t *Tracker) Add(ctx context.Context, in ApplicationInput) (*Application, error) {
	applicationsMu.Lock()
	defer applicationsMu.Unlock()

	app, err := t.build(in)
	if err != nil {
		return nil, fmt.Errorf("application_add: %w", err)
	}
	apps, err := t.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("application_add: %w", err)
	}
	app.ID = uuid.NewString()
	app.CreatedAt = t.now().UTC().Format(time.RFC3339)
	apps = append(apps, app)
	if err := putJSON(ctx, t.s, applicationsKey, apps); err != nil {
		return nil, fmt.Errorf("application_add: %w", err)
	}
	return &app, nil
}

// List returns applications in insertion order, optionally filtered by status.
func (t *Tracker) List(ctx context.Context, status string) (*ApplicationList, error) {
	apps, err := t.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("application_list: %w", err)
	}
	out := []Application{}
	if status == "" {
		out = append(out, apps...)
	} else {
		st, err := parseStatus(status)
		if err != nil {
			return nil, fmt.Errorf("application_list: %w", err)
		}
		for _, a := range apps {
			if a.Status == st {
				out = append(out, a)
			}
		}
	}
	return &ApplicationList{Applications: out, Total: len(out)}, nil
}

// Update replaces the editable fields of the application with id, keeping
// its ID and creation time.
func (t *Tracker) Update(ctx context.Context, id string, in ApplicationInput) (*Application, error) {
	applicationsMu.Lock()
	defer applicationsMu.Unlock()

	app, err := t.build(in)
	if err != nil {
		return nil, fmt.Errorf("application_update: %w", err)
	}
	apps, err := t.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("application_update: %w", err)
	}
	i := slices.IndexFunc(apps, func(a Application) bool { return a.ID == id })
	if i < 0 {
		return nil, fmt.Errorf("application_update: %w: no application with id %q", ErrValidation, id)
	}
	app.ID = apps[i].ID
	app.CreatedAt = apps[i].CreatedAt
	app.UpdatedAt = t.now().UTC().Format(time.RFC3339)
	apps[i] = app
	if err := putJSON(ctx, t.s, applicationsKey, apps); err != nil {
		return nil, fmt.Errorf("application_update: %w", err)
	}
	return &app, nil
}

// Delete removes the application with id.
func (t *Tracker) Delete(ctx context.Context, id string) error {
	applicationsMu.Lock()
	defer applicationsMu.Unlock()

	apps, err := t.load(ctx)
	if err != nil {
		return fmt.Errorf("application_delete: %w", err)
	}
	n := len(apps)
	apps = slices.DeleteFunc(apps, func(a Application) bool { return a.ID == id })
	if len(apps) == n {
		return fmt.Errorf("application_delete: %w: no application with id %q", ErrValidation, id)
	}
	if err := putJSON(ctx, t.s, applicationsKey, apps); err != nil {
		return fmt.Errorf("application_delete: %w", err)
	}
	return nil
}
