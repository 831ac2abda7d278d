package applications

import "errors"

var (
	// ErrInvalidInput signals bad or missing caller input; never retried.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound signals a missing application record.
	ErrNotFound = errors.New("application not found")
	// ErrStorage signals a rejected resume upload.
	ErrStorage = errors.New("resume upload failed")
	// ErrExtraction signals that no usable text came out of the resume file.
	ErrExtraction = errors.New("resume text extraction failed")
	// ErrPersistence signals a rejected database write; always fatal.
	ErrPersistence = errors.New("application write rejected")
)
