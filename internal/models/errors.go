package models

import "fmt"

// ValidationError reports bad or missing client input: wrong file type,
// empty job description, empty extracted text. Always surfaced as a 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError with a formatted message.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ExtractionError wraps a failure from the PDF/DOCX text extraction
// libraries. Surfaced as a 400 with the underlying message.
type ExtractionError struct {
	Err error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("error extracting text from file: %v", e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// AnalysisError wraps an unexpected failure inside the analysis pipeline.
// Surfaced as a 500 with a generic message; the detail is only logged.
type AnalysisError struct {
	Stage string
	Err   error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("analysis failed at %s: %v", e.Stage, e.Err)
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}
