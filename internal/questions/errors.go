package questions

import "errors"

var (
	// ErrInvalidInput signals bad caller input or a blank generated question.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound signals a missing application or interview for the scope.
	ErrNotFound = errors.New("not found")
	// ErrGeneration signals a failed or empty question generation; nothing
	// is persisted in that case.
	ErrGeneration = errors.New("question generation failed")
	// ErrPersistence signals a rejected batch insert; always fatal.
	ErrPersistence = errors.New("question batch write rejected")
)
