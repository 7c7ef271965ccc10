package util

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/gen2brain/go-fitz"
)

var (
	ErrUnreadablePDF     = errors.New("unreadable pdf")
	ErrUnreadableDOCX    = errors.New("unreadable docx")
	ErrUnsupportedFormat = errors.New("unsupported resume format")
)

const (
	PDFBackendFitz   = "fitz"
	PDFBackendNative = "native"
)

var pdfMagic = []byte("%PDF-")

// DocumentExtractor turns an uploaded resume into plain text.
type DocumentExtractor struct {
	pdf func(data []byte) (string, error)
}

// NewDocumentExtractor picks the PDF backend: "fitz" (MuPDF) or "native" (pure Go).
func NewDocumentExtractor(pdfBackend string) *DocumentExtractor {
	switch pdfBackend {
	case PDFBackendNative:
		return &DocumentExtractor{pdf: ExtractPDFTextNative}
	case "", PDFBackendFitz:
		return &DocumentExtractor{pdf: ExtractPDFText}
	default:
		log.Printf("Warning: unknown PDF_EXTRACTOR %q, using %s", pdfBackend, PDFBackendFitz)
		return &DocumentExtractor{pdf: ExtractPDFText}
	}
}

// Extract dispatches on the file extension.
func (e *DocumentExtractor) Extract(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return e.pdf(data)
	case ".docx":
		return ExtractDOCXText(data)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// ExtractPDFText concatenates the text of every page, in page order, using MuPDF.
// A document without a text layer, such as a scan, is reported as
// ErrUnreadablePDF rather than passed on as an empty resume.
func ExtractPDFText(data []byte) (string, error) {
	if !bytes.HasPrefix(data, pdfMagic) {
		return "", fmt.Errorf("%w: missing PDF header", ErrUnreadablePDF)
	}

	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadablePDF, err)
	}
	defer doc.Close()

	pages := make([]string, 0, doc.NumPage())
	for n := 0; n < doc.NumPage(); n++ {
		text, err := doc.Text(n)
		if err != nil {
			return "", fmt.Errorf("%w: page %d: %v", ErrUnreadablePDF, n+1, err)
		}
		pages = append(pages, text)
	}

	return joinPages(pages)
}

func joinPages(pages []string) (string, error) {
	result := strings.TrimSpace(strings.Join(pages, "\n"))
	if result == "" {
		return "", fmt.Errorf("%w: no extractable text (scanned document?)", ErrUnreadablePDF)
	}
	log.Printf("Extracted %d chars from %d pages", len(result), len(pages))
	return result, nil
}
