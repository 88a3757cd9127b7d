package domain

import "errors"

var (
	// ErrEnumerationFailed means the published content set could not be listed.
	// It is fatal to a crawl job.
	ErrEnumerationFailed = errors.New("content enumeration failed")
	// ErrItemProcessingFailed wraps a per-item snapshot or analysis failure.
	ErrItemProcessingFailed = errors.New("item processing failed")
	ErrGenerationFailed     = errors.New("suggestion generation failed")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrWriteBackFailed      = errors.New("content write-back failed")

	ErrNotFound = errors.New("not found")
	// ErrConflict is returned by storage when a check-and-set update lost.
	ErrConflict = errors.New("concurrent update conflict")

	ErrInvalidAction      = errors.New("invalid resolve action")
	ErrEditedTextRequired = errors.New("edited text is required")
	ErrApproverRequired   = errors.New("approver is required")
	ErrInvalidScope       = errors.New("invalid crawl scope")
)
