package ingestion

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// extractPDFText pulls the plain text out of a PDF file. Extraction that
// yields fewer than minPDFTextLength characters is reported as failed;
// image-only scans produce no usable text. The parser panics on some
// malformed files, so a recover turns that into an ExtractionError.
func extractPDFText(path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = &ExtractionError{File: path, Cause: fmt.Errorf("malformed PDF: %v", r)}
		}
	}()

	file, reader, err := pdf.Open(path)
	if err != nil {
		return "", &ExtractionError{File: path, Cause: err}
	}
	defer file.Close()

	plainText, err := reader.GetPlainText()
	if err != nil {
		return "", &ExtractionError{File: path, Cause: err}
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plainText); err != nil {
		return "", &ExtractionError{File: path, Cause: err}
	}

	cleaned := CleanText(buf.String())
	if len(cleaned) < minPDFTextLength {
		return "", &ExtractionError{
			File:  path,
			Cause: fmt.Errorf("extracted only %d characters, document may be scanned", len(cleaned)),
		}
	}

	return cleaned, nil
}
