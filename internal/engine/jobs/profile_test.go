package jobs

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anatolykoptev/go_jobcoach/internal/engine/cv"
)

func sampleProfile() cv.Profile {
	return cv.Profile{
		Skills:          []string{"React", "TypeScript"},
		Titles:          []string{"Frontend Developer"},
		Directions:      []cv.DirectionTag{cv.Frontend},
		ExperienceLevel: cv.Mid,
		Languages:       []string{"German", "English"},
		Location:        "Berlin",
	}
}

func TestProfileBook_SaveLoad(t *testing.T) {
	book := NewProfileBook(newTestStore(t))
	ctx := context.Background()

	saved, err := book.Save(ctx, SavedProfile{
		Name:          " frontend ",
		Profile:       sampleProfile(),
		CVText:        "React developer",
		CustomPortals: []Portal{{Name: "Regio", URL: "https://example.de/?q={query}"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "frontend", saved.Name)
	assert.NotEmpty(t, saved.SavedAt)

	got, err := book.Load(ctx, "frontend")
	require.NoError(t, err)
	assert.Equal(t, sampleProfile(), got.Profile)
	assert.Equal(t, "React developer", got.CVText)
	assert.Len(t, got.CustomPortals, 1)
}

func TestProfileBook_DefaultAlwaysLoads(t *testing.T) {
	book := NewProfileBook(newTestStore(t))

	got, err := book.Load(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, DefaultProfileName, got.Name)
	assert.False(t, got.Profile.HasContent())
}

func TestProfileBook_UnknownName(t *testing.T) {
	book := NewProfileBook(newTestStore(t))
	_, err := book.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestProfileBook_SaveRequiresName(t *testing.T) {
	book := NewProfileBook(newTestStore(t))
	_, err := book.Save(context.Background(), SavedProfile{Name: "  "})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestProfileBook_ListAndDelete(t *testing.T) {
	book := NewProfileBook(newTestStore(t))
	ctx := context.Background()

	for _, name := range []string{"zeta", DefaultProfileName, "alpha"} {
		_, err := book.Save(ctx, SavedProfile{Name: name})
		require.NoError(t, err)
	}

	names, err := book.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", DefaultProfileName, "zeta"}, names)

	assert.ErrorIs(t, book.Delete(ctx, DefaultProfileName), ErrValidation)
	assert.ErrorIs(t, book.Delete(ctx, ""), ErrValidation)
	require.NoError(t, book.Delete(ctx, "zeta"))

	names, err = book.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", DefaultProfileName}, names)
}

func TestProfileBook_ExportImport(t *testing.T) {
	src := NewProfileBook(newTestStore(t))
	ctx := context.Background()

	_, err := src.Save(ctx, SavedProfile{Name: "design", Profile: sampleProfile(), CVText: "Figma"})
	require.NoError(t, err)

	data, err := src.Export(ctx, "design")
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.NotEmpty(t, raw["exportedAt"])
	assert.Equal(t, "Figma", raw["cvText"])

	dst := NewProfileBook(newTestStore(t))
	imported, err := dst.Import(ctx, data)
	require.NoError(t, err)
	assert.Equal(t, "design", imported.Name)
	assert.Empty(t, imported.ExportedAt)

	got, err := dst.Load(ctx, "design")
	require.NoError(t, err)
	assert.Equal(t, sampleProfile(), got.Profile)
}

func TestProfileBook_ImportInvalid(t *testing.T) {
	book := NewProfileBook(newTestStore(t))
	_, err := book.Import(context.Background(), []byte("{not json"))
	assert.ErrorIs(t, err, ErrValidation)
}
