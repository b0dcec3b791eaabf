package extractor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// TextExtractor pulls plain text out of an uploaded document.
type TextExtractor interface {
	Extract(path string) (string, error)
	Supports(filename string) bool
}

// AllowedExtensions lists the upload formats the extractor accepts.
var AllowedExtensions = []string{".pdf", ".doc", ".docx", ".txt"}

type extractor struct{}

func New() TextExtractor {
	return &extractor{}
}

func (e *extractor) Supports(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range AllowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

func (e *extractor) Extract(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return extractPDF(path)
	case ".docx":
		return extractDocx(path)
	case ".doc", ".txt":
		raw, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
		}
		return string(raw), nil
	default:
		return "", fmt.Errorf("unsupported file type: %s", filepath.Ext(path))
	}
}
