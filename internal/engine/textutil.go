package engine

import (
	"strings"

	"github.com/anatolykoptev/go-kit/strutil"
)

// previewRunes bounds message text written to logs.
const previewRunes = 80

// TruncateRunes caps s at limit runes, appending suffix if truncated.
// Pass suffix="" for no suffix. Safe for UTF-8 (umlauts, emoji).
func TruncateRunes(s string, limit int, suffix string) string {
	return strutil.TruncateWith(s, limit, suffix)
}

// Preview flattens whitespace and shortens s for a single log line.
func Preview(s string) string {
	return TruncateRunes(strings.Join(strings.Fields(s), " "), previewRunes, "…")
}
