// Package extract reads plain text out of uploaded documents.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrUnsupported is returned for documents that are neither text nor PDF
var ErrUnsupported = errors.New("unsupported document type")

const (
	mimeText = "text/plain"
	mimePDF  = "application/pdf"
)

// Text returns the text content of a document. The type is taken from the
// MIME type when known, otherwise from the file extension.
func Text(name, mime string, r io.Reader) (string, error) {
	switch kind(name, mime) {
	case mimeText:
		content, err := io.ReadAll(r)
		if err != nil {
			return "", fmt.Errorf("error reading text file: %w", err)
		}
		return string(content), nil
	case mimePDF:
		return pdfText(r)
	}
	return "", ErrUnsupported
}

func kind(name, mime string) string {
	mime = strings.ToLower(strings.TrimSpace(strings.SplitN(mime, ";", 2)[0]))
	if mime == mimeText || mime == mimePDF {
		return mime
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt", ".text", ".md":
		return mimeText
	case ".pdf":
		return mimePDF
	}
	return ""
}

func pdfText(r io.Reader) (string, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("error reading PDF file: %w", err)
	}

	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("error creating PDF reader: %w", err)
	}

	var text strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		text.WriteString(pageText)
		text.WriteString("\n")
	}

	return text.String(), nil
}
