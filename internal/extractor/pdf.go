package extractor

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractText reads a PDF from memory and returns the concatenated text of
// all pages. A page whose extraction fails (or panics inside the library)
// contributes an empty string for that page only; a document that cannot be
// opened at all yields "". Never returns an error.
func ExtractText(data []byte) string {
	reader, ok := openReader(data)
	if !ok {
		return ""
	}

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		pages = append(pages, extractPage(reader, i))
	}
	return strings.TrimSpace(strings.Join(pages, "\n"))
}

// openReader isolates the library's parsing of the PDF trailer, which can
// panic on malformed files.
func openReader(data []byte) (r *pdf.Reader, ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			r, ok = nil, false
		}
	}()
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, false
	}
	return reader, true
}

// extractPage pulls text from a single page, trying row-ordered extraction
// first and plain text second. Failures are per-page: a panic or error here
// leaves only this page empty.
func extractPage(reader *pdf.Reader, pageNum int) (text string) {
	defer func() {
		if rec := recover(); rec != nil {
			text = ""
		}
	}()

	page := reader.Page(pageNum)
	if page.V.IsNull() {
		return ""
	}

	if rows, err := page.GetTextByRow(); err == nil && len(rows) > 0 {
		var lines []string
		for _, row := range rows {
			var parts []string
			for _, word := range row.Content {
				parts = append(parts, word.S)
			}
			line := strings.TrimSpace(strings.Join(parts, " "))
			if line != "" {
				lines = append(lines, line)
			}
		}
		if len(lines) > 0 {
			return strings.Join(lines, "\n")
		}
	}

	fonts := make(map[string]*pdf.Font)
	for _, name := range page.Fonts() {
		f := page.Font(name)
		fonts[name] = &f
	}
	if plain, err := page.GetPlainText(fonts); err == nil {
		return strings.TrimSpace(plain)
	}
	return ""
}
