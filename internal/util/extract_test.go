package util

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractRejectsNonPDF(t *testing.T) {
	inputs := map[string][]byte{
		"empty":     nil,
		"plain":     []byte("5 years Go experience"),
		"png-ish":   {0x89, 'P', 'N', 'G', 0x0d, 0x0a},
		"truncated": []byte("%PDF-1.4\n1 0 obj\n<<"),
	}
	for name, data := range inputs {
		t.Run(name, func(t *testing.T) {
			_, err := ExtractPDFTextNative(data)
			assert.ErrorIs(t, err, ErrUnreadablePDF)
		})
	}
}

func TestFitzRejectsMissingHeader(t *testing.T) {
	_, err := ExtractPDFText([]byte("not a pdf"))
	assert.ErrorIs(t, err, ErrUnreadablePDF)
}

func TestDocumentExtractorDispatch(t *testing.T) {
	e := NewDocumentExtractor(PDFBackendNative)

	_, err := e.Extract("resume.txt", []byte("hello"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = e.Extract("RESUME.PDF", []byte("garbage"))
	assert.ErrorIs(t, err, ErrUnreadablePDF)

	_, err = e.Extract("resume.docx", []byte("garbage"))
	assert.ErrorIs(t, err, ErrUnreadableDOCX)
}

func TestJoinPages(t *testing.T) {
	text, err := joinPages([]string{"5 years Go", "experience\n"})
	require.NoError(t, err)
	assert.Equal(t, "5 years Go\nexperience", text)

	_, err = joinPages([]string{" ", "\n"})
	assert.ErrorIs(t, err, ErrUnreadablePDF)
}

// buildPDF writes a minimal PDF with one line of Helvetica text per page.
func buildPDF(pages ...string) []byte {
	var buf bytes.Buffer
	offsets := []int{}
	obj := func(body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", len(offsets), body)
	}

	buf.WriteString("%PDF-1.4\n")
	kids := make([]string, len(pages))
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}
	obj("<< /Type /Catalog /Pages 2 0 R >>")
	obj(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages)))
	obj("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")
	for i, text := range pages {
		obj(fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", 5+2*i))
		content := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
		obj(fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content))
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(offsets)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xref)
	return buf.Bytes()
}

func TestExtractPDFTextPageOrder(t *testing.T) {
	doc := buildPDF("5 years Go experience", "Kubernetes and Raft")
	backends := map[string]func([]byte) (string, error){
		PDFBackendFitz:   ExtractPDFText,
		PDFBackendNative: ExtractPDFTextNative,
	}
	for name, extract := range backends {
		t.Run(name, func(t *testing.T) {
			text, err := extract(doc)
			require.NoError(t, err)

			first := strings.Index(text, "5 years Go experience")
			second := strings.Index(text, "Kubernetes and Raft")
			require.GreaterOrEqual(t, first, 0, text)
			require.Greater(t, second, first, text)
			assert.Equal(t, strings.TrimSpace(text), text)
		})
	}
}

func TestExtractPDFWithoutText(t *testing.T) {
	doc := buildPDF("")
	_, err := ExtractPDFText(doc)
	assert.ErrorIs(t, err, ErrUnreadablePDF)
}

func TestDocumentExtractorReadsPDF(t *testing.T) {
	doc := buildPDF("5 years Go experience", "Kubernetes and Raft")
	for _, backend := range []string{PDFBackendFitz, PDFBackendNative} {
		text, err := NewDocumentExtractor(backend).Extract("resume.pdf", doc)
		require.NoError(t, err, backend)
		assert.Contains(t, text, "Kubernetes and Raft", backend)
	}
}
