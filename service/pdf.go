// Package service contains the PDF processing done for uploads
package service

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/ledongthuc/pdf"
)

var (
	ErrNoFile        = errors.New("no file provided")
	ErrInvalidFormat = errors.New("only PDF files are accepted")
	ErrEmptyResult   = errors.New("could not extract any text from the PDF")
)

// ExtractionError wraps whatever the PDF library failed with so the upload
// handler can hand the message back to the client
type ExtractionError struct {
	Err error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract text from PDF, %v", e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// ProcessUpload validates that the uploaded file is named like a PDF, reads
// it fully into memory and extracts its text. Returns the extracted text and
// the byte size of the original file.
//
// Only simple text PDFs are supported. Scans, image-only documents and PDFs
// with complex layouts may come out garbled or empty, in which case
// ErrEmptyResult is returned
func ProcessUpload(fh *multipart.FileHeader) (text string, size int64, err error) {
	if fh == nil {
		return "", 0, ErrNoFile
	}

	if fh.Filename == "" || !strings.HasSuffix(strings.ToLower(fh.Filename), ".pdf") {
		return "", 0, ErrInvalidFormat
	}

	f, err := fh.Open()
	if err != nil {
		return "", 0, err
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return "", 0, err
	}

	text, err = ExtractText(content)
	if err != nil {
		return "", 0, err
	}

	return text, int64(len(content)), nil
}

// ExtractText pulls the plain text out of every page of a PDF, joining page
// texts with newlines and trimming surrounding whitespace
func ExtractText(content []byte) (text string, err error) {
	// The pdf library panics on some malformed inputs instead of
	// returning an error
	defer func() {
		if r := recover(); r != nil {
			err = &ExtractionError{Err: fmt.Errorf("%v", r)}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", &ExtractionError{Err: err}
	}

	var b strings.Builder

	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", &ExtractionError{Err: err}
		}

		b.WriteString(pageText)
		b.WriteString("\n")
	}

	text = strings.TrimSpace(b.String())
	if text == "" {
		return "", ErrEmptyResult
	}

	return text, nil
}
