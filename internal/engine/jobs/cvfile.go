package jobs

import (
	"bytes"
	"fmt"
	"html"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"github.com/anatolykoptev/go_jobcoach/internal/engine"
)

// Supported CV MIME types.
const (
	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeText = "text/plain"
)

// MaxCVBytes caps the size of an uploaded CV file.
var MaxCVBytes = 10 << 20

var (
	docxParagraphEnd = regexp.MustCompile(`</w:p>|<w:br\s*/>`)
	docxTab          = regexp.MustCompile(`<w:tab\s*/>`)
	xmlTagRe         = regexp.MustCompile(`<[^>]+>`)
)

// DetectCVType resolves the file type from an explicit MIME type, then the
// file extension, then the content.
func DetectCVType(mime, name string, data []byte) string {
	switch strings.ToLower(strings.TrimSpace(mime)) {
	case MimePDF, MimeDOCX, MimeText:
		return strings.ToLower(strings.TrimSpace(mime))
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return MimePDF
	case ".docx":
		return MimeDOCX
	case ".txt", ".md":
		return MimeText
	}
	switch {
	case bytes.HasPrefix(data, []byte("%PDF-")):
		return MimePDF
	case bytes.HasPrefix(data, []byte("PK\x03\x04")):
		return MimeDOCX
	case utf8.Valid(data):
		return MimeText
	}
	return ""
}

// ExtractCVText returns the plain text of a CV file. PDF pages are joined by
// a blank line. Unsupported, unparsable or empty files yield ErrExtraction.
func ExtractCVText(mime, name string, data []byte) (string, error) {
	engine.IncrFileExtractions()
	text, err := extractCVText(mime, name, data)
	if err != nil {
		engine.IncrFileExtractionErrors()
		return "", err
	}
	return text, nil
}

func extractCVText(mime, name string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("cv_extract_text: %w: empty file", ErrExtraction)
	}
	if len(data) > MaxCVBytes {
		return "", fmt.Errorf("cv_extract_text: %w: file exceeds %d bytes", ErrExtraction, MaxCVBytes)
	}

	var (
		text string
		err  error
	)
	switch kind := DetectCVType(mime, name, data); kind {
	case MimeText:
		text = string(data)
	case MimePDF:
		text, err = extractPDFText(data)
	case MimeDOCX:
		text, err = extractDocxText(data)
	default:
		return "", fmt.Errorf("cv_extract_text: %w: unsupported file type %q", ErrExtraction, mime)
	}
	if err != nil {
		return "", fmt.Errorf("cv_extract_text: %w: %v", ErrExtraction, err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("cv_extract_text: %w: no text content", ErrExtraction)
	}
	return text, nil
}

func extractPDFText(data []byte) (text string, err error) {
	// The PDF reader panics on some malformed documents.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("read pdf: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}
	pages := make([]string, 0, r.NumPage())
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		t, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if t = strings.TrimSpace(t); t != "" {
			pages = append(pages, t)
		}
	}
	return strings.Join(pages, "\n\n"), nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("parse docx: %w", err)
	}
	defer doc.Close()

	content := docxParagraphEnd.ReplaceAllString(doc.Editable().GetContent(), "\n")
	content = docxTab.ReplaceAllString(content, " ")
	content = xmlTagRe.ReplaceAllString(content, "")
	return html.UnescapeString(content), nil
}
