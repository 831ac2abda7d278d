package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrNoText is returned when extraction succeeds but yields only whitespace.
var ErrNoText = errors.New("no text found in pdf")

// TextExtractor pulls plain text out of an uploaded resume file.
type TextExtractor interface {
	Extract(ctx context.Context, data []byte) (string, error)
}

// PDFExtractor implements TextExtractor for PDF payloads using
// github.com/ledongthuc/pdf.
type PDFExtractor struct{}

// Extract returns the plain text of the PDF, or ErrNoText when the document
// contains no extractable text.
func (PDFExtractor) Extract(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}

	text := buf.String()
	if strings.TrimSpace(text) == "" {
		return "", ErrNoText
	}
	return text, nil
}

var _ TextExtractor = PDFExtractor{}
