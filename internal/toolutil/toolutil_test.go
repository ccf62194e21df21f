package toolutil

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anatolykoptev/go_jobcoach/internal/engine"
	"github.com/anatolykoptev/go_jobcoach/internal/engine/i18n"
)

func TestLang(t *testing.T) {
	engine.Init(engine.Config{})
	assert.Equal(t, i18n.DE, Lang(""))
	assert.Equal(t, i18n.EN, Lang("English"))

	engine.Init(engine.Config{DefaultLanguage: i18n.EN})
	t.Cleanup(func() { engine.Init(engine.Config{}) })
	assert.Equal(t, i18n.EN, Lang("fr"))
	assert.Equal(t, i18n.DE, Lang("de"))
}

func TestDecodeFile(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("Lebenslauf"))

	data, mime, err := DecodeFile(payload)
	require.NoError(t, err)
	assert.Equal(t, "Lebenslauf", string(data))
	assert.Empty(t, mime)

	data, mime, err = DecodeFile("data:text/plain;base64," + payload)
	require.NoError(t, err)
	assert.Equal(t, "Lebenslauf", string(data))
	assert.Equal(t, "text/plain", mime)

	_, _, err = DecodeFile("data:text/plain;base64")
	assert.Error(t, err)

	_, _, err = DecodeFile("%%%")
	assert.Error(t, err)
}

func TestSplitList(t *testing.T) {
	got := SplitList([]string{" Frontend Developer ", ""}, "React Developer, Web Developer\nUI Developer")
	assert.Equal(t, []string{"Frontend Developer", "React Developer", "Web Developer", "UI Developer"}, got)
	assert.Empty(t, SplitList(nil, " , \n "))
}
