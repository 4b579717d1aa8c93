// Package ingestion extracts and cleans candidate text from resume files.
package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// minPDFTextLength is the minimum number of extracted characters below which
// a PDF extraction is considered failed (scanned or image-only documents).
const minPDFTextLength = 100

var (
	spaceRunPattern   = regexp.MustCompile(`[ \t]+`)
	newlineRunPattern = regexp.MustCompile(`\n{2,}`)
	controlPattern    = regexp.MustCompile("[\x00-\x08\x0b\x0c\x0e-\x1f]")
)

// CleanText normalizes extracted text: line endings, control characters,
// whitespace runs, and excess blank lines.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// Normalize line endings (CRLF -> LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	content = controlPattern.ReplaceAllString(content, " ")
	content = spaceRunPattern.ReplaceAllString(content, " ")

	// Trim trailing spaces per line, then collapse blank-line runs.
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	content = strings.Join(lines, "\n")
	content = newlineRunPattern.ReplaceAllString(content, "\n")

	return strings.TrimSpace(content)
}

// ExtractText reads a resume or job description file and returns its
// cleaned text. Plain text and markdown are read directly; PDFs go through
// the PDF extractor. A file yielding no usable text returns an
// *ExtractionError.
func ExtractText(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return extractPDFText(path)
	case ".txt", ".md", "":
		return extractPlainText(path)
	default:
		return "", &ExtractionError{File: path, Cause: fmt.Errorf("unsupported file type %q", filepath.Ext(path))}
	}
}

func extractPlainText(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", &ExtractionError{File: path, Cause: err}
	}

	cleaned := CleanText(string(content))
	if cleaned == "" {
		return "", &ExtractionError{File: path, Cause: fmt.Errorf("file is empty")}
	}

	return cleaned, nil
}
