package jobs

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

// newTestTracker returns a tracker on a fresh store with a fixed clock.
func newTestTracker(t *testing.T) *Tracker {
	t.Helper()
	tr := NewTracker(newTestStore(t))
	tr.now = func() time.Time { return time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC) }
	return tr
}

func TestTrackerAdd_Basic(t *testing.T) {
	tr := newTestTracker(t)
	ctx := context.Background()

	app, err := tr.Add(ctx, ApplicationInput{
		Company:     "SAP",
		Position:    "Frontend Developer",
		AppliedDate: "2024-03-01",
		Status:      "interview",
		Notes:       "Referral via Anna",
		JobLink:     "https://jobs.sap.com/123",
	})
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if app.ID == "" {
		t.Error("expected an ID")
	}
	if app.Status != StatusInterview {
		t.Errorf("status = %q, want interview", app.Status)
	}
	if app.CreatedAt != "2024-03-15T09:30:00Z" {
		t.Errorf("createdAt = %q", app.CreatedAt)
	}
}

func TestTrackerAdd_Defaults(t *testing.T) {
	tr := newTestTracker(t)

	app, err := tr.Add(context.Background(), ApplicationInput{Company: "Zalando", Position: "Backend Developer"})
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if app.Status != StatusApplied {
		t.Errorf("default status = %q, want applied", app.Status)
	}
	if app.AppliedDate != "2024-03-15" {
		t.Errorf("default date = %q, want today", app.AppliedDate)
	}
}

func TestTrackerAdd_Validation(t *testing.T) {
	tr := newTestTracker(t)
	ctx := context.Background()

	tests := []struct {
		name string
		in   ApplicationInput
	}{
		{"missing company", ApplicationInput{Position: "Dev"}},
		{"missing position", ApplicationInput{Company: "SAP"}},
		{"blank company", ApplicationInput{Company: "  ", Position: "Dev"}},
		{"invalid status", ApplicationInput{Company: "SAP", Position: "Dev", Status: "ghosted"}},
		{"invalid date", ApplicationInput{Company: "SAP", Position: "Dev", AppliedDate: "15.03.2024"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tr.Add(ctx, tt.in)
			if !errors.Is(err, ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}

	list, err := tr.List(ctx, "")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if list.Total != 0 {
		t.Errorf("rejected inputs were stored: %d", list.Total)
	}
}

func TestTrackerList_StatusFilter(t *testing.T) {
	tr := newTestTracker(t)
	ctx := context.Background()

	for _, in := range []ApplicationInput{
		{Company: "A", Position: "Dev", Status: "applied"},
		{Company: "B", Position: "Dev", Status: "offer"},
		{Company: "C", Position: "Dev", Status: "applied"},
	} {
		if _, err := tr.Add(ctx, in); err != nil {
			t.Fatalf("Add error: %v", err)
		}
	}

	all, err := tr.List(ctx, "")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if all.Total != 3 || all.Applications[0].Company != "A" || all.Applications[2].Company != "C" {
		t.Errorf("expected 3 in insertion order, got %+v", all.Applications)
	}

	applied, err := tr.List(ctx, "Applied")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if applied.Total != 2 {
		t.Errorf("applied = %d, want 2", applied.Total)
	}

	rejected, err := tr.List(ctx, "rejected")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if rejected.Applications == nil || rejected.Total != 0 {
		t.Errorf("expected empty non-nil list, got %+v", rejected)
	}

	if _, err := tr.List(ctx, "unknown"); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for unknown status, got %v", err)
	}
}

func TestTrackerUpdate(t *testing.T) {
	tr := newTestTracker(t)
	ctx := context.Background()

	app, err := tr.Add(ctx, ApplicationInput{Company: "SAP", Position: "Dev"})
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}

	updated, err := tr.Update(ctx, app.ID, ApplicationInput{
		Company: "SAP", Position: "Senior Dev", Status: "offer", Notes: "60k",
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.ID != app.ID || updated.CreatedAt != app.CreatedAt {
		t.Error("update must keep ID and creation time")
	}
	if updated.Status != StatusOffer || updated.Position != "Senior Dev" || updated.UpdatedAt == "" {
		t.Errorf("unexpected update result: %+v", updated)
	}

	list, _ := tr.List(ctx, "offer")
	if list.Total != 1 || list.Applications[0].Notes != "60k" {
		t.Errorf("update not persisted: %+v", list)
	}

	if _, err := tr.Update(ctx, "no-such-id", ApplicationInput{Company: "X", Position: "Y"}); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for unknown id, got %v", err)
	}
}

func TestTrackerDelete(t *testing.T) {
	tr := newTestTracker(t)
	ctx := context.Background()

	a, _ := tr.Add(ctx, ApplicationInput{Company: "A", Position: "Dev"})
	b, _ := tr.Add(ctx, ApplicationInput{Company: "B", Position: "Dev"})

	if err := tr.Delete(ctx, a.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	list, _ := tr.List(ctx, "")
	if list.Total != 1 || list.Applications[0].ID != b.ID {
		t.Errorf("expected only B left, got %+v", list.Applications)
	}
	if err := tr.Delete(ctx, a.ID); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation on second delete, got %v", err)
	}
}

func TestTrackerConcurrentAdds(t *testing.T) {
	tr := newTestTracker(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := tr.Add(ctx, ApplicationInput{Company: "C", Position: "Dev"}); err != nil {
				t.Errorf("Add error: %v", err)
			}
		}()
	}
	wg.Wait()

	list, _ := tr.List(ctx, "")
	seen := make(map[string]bool)
	for _, a := range list.Applications {
		if seen[a.ID] {
			t.Errorf("duplicate ID %s", a.ID)
		}
		seen[a.ID] = true
	}
	if len(seen) != 10 {
		t.Errorf("stored %d applications, want 10", len(seen))
	}
}
