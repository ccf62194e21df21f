// Package toolutil provides shared helper functions for go_jobcoach MCP tools.
package toolutil

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_jobcoach/internal/engine"
	"github.com/anatolykoptev/go_jobcoach/internal/engine/i18n"
)

// Lang resolves a tool's language field, falling back to the configured
// default and then to German.
func Lang(s string) i18n.Lang {
	def := engine.Cfg.DefaultLanguage
	if def == "" {
		def = i18n.DE
	}
	return i18n.Parse(s, def)
}

// DecodeFile decodes base64 file content. Data-URL prefixes
// ("data:application/pdf;base64,") are accepted and their MIME type returned.
func DecodeFile(raw string) (data []byte, mime string, err error) {
	raw = strings.TrimSpace(raw)
	if rest, ok := strings.CutPrefix(raw, "data:"); ok {
		header, payload, found := strings.Cut(rest, ",")
		if !found {
			return nil, "", fmt.Errorf("decode file: malformed data URL")
		}
		mime, _, _ = strings.Cut(header, ";")
		raw = payload
	}
	data, err = base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, "", fmt.Errorf("decode file: %w", err)
	}
	return data, mime, nil
}

// SplitList accepts either a JSON-style list or a single comma/newline
// separated string and returns trimmed, non-empty entries.
func SplitList(list []string, raw string) []string {
	var out []string
	for _, s := range list {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	for _, line := range strings.Split(raw, "\n") {
		for _, s := range strings.Split(line, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}
