package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrNotPDF              = errors.New("file must be a PDF")
	ErrEmptyFile           = errors.New("file is empty")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrInvalidJurisdiction = errors.New("unknown jurisdiction")
	ErrInvalidDisclaimer   = errors.New("invalid approved disclaimer record")
)
