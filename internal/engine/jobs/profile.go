package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/anatolykoptev/go_jobcoach/internal/engine/cv"
)

// DefaultProfileName is the profile that always exists and cannot be deleted.
const DefaultProfileName = "default"

const profileKeyPrefix = "profile/"

// SavedProfile is a named snapshot of a profile together with the CV text
// and custom portals it was built with.
type SavedProfile struct {
	Name          string     `json:"name"`
	Profile       cv.Profile `json:"profile"`
	CVText        string     `json:"cvText,omitempty"`
	CustomPortals []Portal   `json:"customPortals,omitempty"`
	SavedAt       string     `json:"savedAt,omitempty"`
	ExportedAt    string     `json:"exportedAt,omitempty"`
}

// ProfileBook stores named profiles, one key per name.
type ProfileBook struct {
	s Store
}

// NewProfileBook wraps s.
func NewProfileBook(s Store) *ProfileBook { return &ProfileBook{s: s} }

// Profiles returns a book on the package-level store.
func Profiles() (*ProfileBook, error) {
	s, err := requireStore()
	if err != nil {
		return nil, err
	}
	return NewProfileBook(s), nil
}

func profileKey(name string) string { return profileKeyPrefix + name }

// Save stores p under p.Name, replacing any previous version.
func (b *ProfileBook) Save(ctx context.Context, p SavedProfile) (*SavedProfile, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return nil, fmt.Errorf("profile_save: %w: profile name is required", ErrValidation)
	}
	p.SavedAt = time.Now().UTC().Format(time.RFC3339)
	p.ExportedAt = ""
	if err := putJSON(ctx, b.s, profileKey(p.Name), p); err != nil {
		return nil, fmt.Errorf("profile_save: %w", err)
	}
	return &p, nil
}

// Load returns the profile stored under name. The default profile loads as
// an empty profile when it was never saved.
func (b *ProfileBook) Load(ctx context.Context, name string) (*SavedProfile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultProfileName
	}
	var p SavedProfile
	found, err := getJSON(ctx, b.s, profileKey(name), &p)
	if err != nil {
		return nil, fmt.Errorf("profile_load: %w", err)
	}
	if !found {
		if name == DefaultProfileName {
			return &SavedProfile{Name: DefaultProfileName}, nil
		}
		return nil, fmt.Errorf("profile_load: %w: no profile named %q", ErrValidation, name)
	}
	return &p, nil
}

// List returns the saved profile names in ascending order.
func (b *ProfileBook) List(ctx context.Context) ([]string, error) {
	keys, err := b.s.Keys(ctx, profileKeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("profile_list: %w", err)
	}
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, strings.TrimPrefix(k, profileKeyPrefix))
	}
	return names, nil
}

// Delete removes a named profile. The default profile is protected.
func (b *ProfileBook) Delete(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("profile_delete: %w: profile name is required", ErrValidation)
	}
	if name == DefaultProfileName {
		return fmt.Errorf("profile_delete: %w: the default profile cannot be deleted", ErrValidation)
	}
	if err := b.s.Delete(ctx, profileKey(name)); err != nil {
		return fmt.Errorf("profile_delete: %w", err)
	}
	return nil
}

// Export renders a profile as indented JSON stamped with the export time.
func (b *ProfileBook) Export(ctx context.Context, name string) ([]byte, error) {
	p, err := b.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	p.ExportedAt = time.Now().UTC().Format(time.RFC3339)
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("profile_export: %w", err)
	}
	return data, nil
}

// Import parses an exported profile. When it carries a name it is also
// saved under that name.
func (b *ProfileBook) Import(ctx context.Context, data []byte) (*SavedProfile, error) {
	var p SavedProfile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("profile_import: %w: %v", ErrValidation, err)
	}
	if strings.TrimSpace(p.Name) == "" {
		return &p, nil
	}
	return b.Save(ctx, p)
}
