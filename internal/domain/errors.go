package domain

import "errors"

var (
	ErrDocumentNotFound    = errors.New("document not found")
	ErrDocumentUnreadable  = errors.New("document cannot be read")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file too large")
)
