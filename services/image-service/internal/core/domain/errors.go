package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidParameter   = errors.New("invalid parameter")
	ErrTooManyFiles       = errors.New("too many files")
	ErrNoFiles            = errors.New("no files uploaded")
	ErrNoValidFiles       = errors.New("no valid image files")
	ErrNotFound           = errors.New("image not found")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// InvalidParameterError параметр пути не удалось разобрать
type InvalidParameterError struct {
	Field string
	Value string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid value %q for parameter %s", e.Value, e.Field)
}

func (e *InvalidParameterError) Unwrap() error { return ErrInvalidParameter }

// TooManyFilesError пакет отклонен целиком
type TooManyFilesError struct {
	Count int
}

func (e *TooManyFilesError) Error() string {
	return fmt.Sprintf("%d files uploaded, at most %d allowed", e.Count, MaxFilesPerUpload)
}

func (e *TooManyFilesError) Unwrap() error { return ErrTooManyFiles }

// RejectedFilesError ни один файл пакета не принят
type RejectedFilesError struct {
	Rejected []RejectedFile
}

func (e *RejectedFilesError) Error() string {
	return fmt.Sprintf("%s: %d file(s) rejected", ErrNoValidFiles, len(e.Rejected))
}

func (e *RejectedFilesError) Unwrap() error { return ErrNoValidFiles }
