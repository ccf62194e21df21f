package jobs

import (
	"archive/zip"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildDocx assembles a minimal word-processing package around body XML.
func buildDocx(t *testing.T, body string) []byte {
	t.Helper()
	files := map[string]string{
		"[Content_Types].xml": `<?xml version="1.0" encoding="UTF-8"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="xml" ContentType="application/xml"/></Types>`,
		"word/_rels/document.xml.rels": `<?xml version="1.0" encoding="UTF-8"?><Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`,
		"word/header1.xml":             `<?xml version="1.0" encoding="UTF-8"?><w:hdr xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"></w:hdr>`,
		"word/footer1.xml":             `<?xml version="1.0" encoding="UTF-8"?><w:ftr xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"></w:ftr>`,
		"word/document.xml": `<?xml version="1.0" encoding="UTF-8"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
			body + `</w:body></w:document>`,
	}
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestDetectCVType(t *testing.T) {
	tests := []struct {
		name, mime, file string
		data             []byte
		want             string
	}{
		{"explicit mime", "Application/PDF", "", nil, MimePDF},
		{"pdf extension", "", "Lebenslauf.PDF", nil, MimePDF},
		{"docx extension", "", "cv.docx", nil, MimeDOCX},
		{"markdown as text", "", "cv.md", nil, MimeText},
		{"pdf magic", "", "upload", []byte("%PDF-1.7\n"), MimePDF},
		{"zip magic", "application/octet-stream", "", []byte("PK\x03\x04rest"), MimeDOCX},
		{"utf8 text", "", "", []byte("Erfahrung mit Go"), MimeText},
		{"binary", "", "", []byte{0xff, 0xfe, 0x00, 0x81}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectCVType(tt.mime, tt.file, tt.data))
		})
	}
}

func TestExtractCVText_PlainText(t *testing.T) {
	text, err := ExtractCVText(MimeText, "cv.txt", []byte("  Frontend Entwicklerin\nReact, TypeScript  \n"))
	require.NoError(t, err)
	assert.Equal(t, "Frontend Entwicklerin\nReact, TypeScript", text)
}

func TestExtractCVText_Docx(t *testing.T) {
	data := buildDocx(t,
		`<w:p><w:r><w:t>Berufserfahrung</w:t></w:r></w:p>`+
			`<w:p><w:r><w:t>React</w:t></w:r><w:r><w:tab/><w:t>TypeScript &amp; CSS</w:t></w:r></w:p>`)

	text, err := ExtractCVText("", "lebenslauf.docx", data)
	require.NoError(t, err)
	assert.Equal(t, "Berufserfahrung\nReact TypeScript & CSS", text)
}

func TestExtractCVText_Errors(t *testing.T) {
	tests := []struct {
		name string
		mime string
		file string
		data []byte
	}{
		{"empty file", MimeText, "cv.txt", nil},
		{"whitespace only", MimeText, "cv.txt", []byte(" \n\t ")},
		{"unsupported", "", "", []byte{0xff, 0xfe, 0x00, 0x81}},
		{"corrupt pdf", MimePDF, "cv.pdf", []byte("%PDF-1.4 this is not a pdf")},
		{"corrupt docx", MimeDOCX, "cv.docx", []byte("PK\x03\x04 broken")},
		{"empty docx", "", "cv.docx", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractCVText(tt.mime, tt.file, tt.data)
			if !errors.Is(err, ErrExtraction) {
				t.Errorf("expected ErrExtraction, got %v", err)
			}
		})
	}
}

func TestExtractCVText_SizeLimit(t *testing.T) {
	prev := MaxCVBytes
	MaxCVBytes = 16
	t.Cleanup(func() { MaxCVBytes = prev })

	_, err := ExtractCVText(MimeText, "cv.txt", []byte(strings.Repeat("a", 17)))
	assert.ErrorIs(t, err, ErrExtraction)
	assert.Contains(t, err.Error(), "exceeds")
}
