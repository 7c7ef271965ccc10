package util

import (
	"bytes"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

var (
	docxParagraphEnd = regexp.MustCompile(`</w:p>`)
	docxTag          = regexp.MustCompile(`<[^>]+>`)
)

// ExtractDOCXText returns the paragraph text of a Word document.
func ExtractDOCXText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadableDOCX, err)
	}
	defer doc.Close()

	// GetContent returns the raw document.xml body.
	content := docxParagraphEnd.ReplaceAllString(doc.Editable().GetContent(), "\n")
	content = html.UnescapeString(docxTag.ReplaceAllString(content, ""))

	text := strings.TrimSpace(content)
	if text == "" {
		return "", fmt.Errorf("%w: document is empty", ErrUnreadableDOCX)
	}
	return text, nil
}
