// Package extract converts resume files (text, PDF, Word) into plain text.
// Extraction is best-effort: failures become descriptive sentinel strings
// rather than errors, and downstream consumers see an explanatory string in
// place of content.
package extract

import (
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/simplifiedchinese"
)

// Sentinel results returned when a file yields no usable text.
const (
	NoTextInPDF  = "no text found in PDF"
	NoTextInDocx = "no text found in DOCX"
)

// Parse extracts plain text from a file's raw bytes, dispatching purely on
// the file extension of path. It never returns an error: parse failures
// become descriptive strings.
func Parse(path string, data []byte) string {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".txt":
		return decodeText(data)
	case ".pdf":
		text, err := parsePDF(data)
		if err != nil {
			return fmt.Sprintf("failed to parse PDF file: %v", err)
		}
		return text
	case ".docx":
		text, err := parseDOCX(data)
		if err != nil {
			return fmt.Sprintf("failed to parse DOCX file: %v", err)
		}
		return text
	case ".doc":
		// Legacy .doc needs a desktop word-processor bridge that has no Go
		// equivalent; fall back to a best-effort text decode.
		return decodeText(data)
	default:
		return decodeText(data)
	}
}

// decoders is the prioritized fallback chain for plain-text decoding.
// Latin-1 maps every byte, so the chain always terminates.
var decoders = []struct {
	name string
	enc  encoding.Encoding
}{
	{"gbk", simplifiedchinese.GBK},
	{"latin-1", charmap.ISO8859_1},
}

// decodeText decodes bytes as UTF-8, then through the encoding fallback
// chain, finally substituting invalid bytes. It never fails.
func decodeText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}

	for _, d := range decoders {
		out, err := d.enc.NewDecoder().Bytes(data)
		if err == nil && !bytes.ContainsRune(out, utf8.RuneError) {
			return string(out)
		}
	}

	return string(bytes.ToValidUTF8(data, []byte("�")))
}

// parsePDF extracts the text layer of each page, joined with line breaks.
// Scanned/image PDFs have no text layer and yield the sentinel string.
func parsePDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if strings.TrimSpace(text) != "" {
			sb.WriteString(text)
			sb.WriteString("\n")
		}
	}

	if strings.TrimSpace(sb.String()) == "" {
		return NoTextInPDF, nil
	}
	return sb.String(), nil
}

// parseDOCX extracts paragraph text from the document body.
func parseDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	defer doc.Close()

	text := stripDocxTags(doc.Editable().GetContent())
	if strings.TrimSpace(text) == "" {
		return NoTextInDocx, nil
	}
	return text, nil
}

var (
	docxParaEnd = regexp.MustCompile(`</w:p>`)
	docxTags    = regexp.MustCompile(`<[^>]+>`)
)

// stripDocxTags turns document.xml content into paragraph-per-line text.
func stripDocxTags(content string) string {
	content = docxParaEnd.ReplaceAllString(content, "\n")
	content = docxTags.ReplaceAllString(content, "")
	content = strings.ReplaceAll(content, "&amp;", "&")
	content = strings.ReplaceAll(content, "&lt;", "<")
	content = strings.ReplaceAll(content, "&gt;", ">")
	return strings.TrimSpace(content)
}

var (
	whitespaceRuns = regexp.MustCompile(`\s+`)
	controlChars   = regexp.MustCompile("[\x00-\x08\x0b\x0c\x0e-\x1f]")
)

// Clean strips non-printable control characters, collapses whitespace runs
// to single spaces, and trims the ends. Control characters go first so the
// spaces around a stripped one still collapse. Clean is idempotent.
func Clean(text string) string {
	text = controlChars.ReplaceAllString(text, "")
	text = whitespaceRuns.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
