package extractor

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/ledongthuc/pdf"
)

func extractPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	var buf bytes.Buffer
	reader, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract text from %s: %w", filepath.Base(path), err)
	}
	if _, err := buf.ReadFrom(reader); err != nil {
		return "", fmt.Errorf("failed to read text from %s: %w", filepath.Base(path), err)
	}

	return buf.String(), nil
}
