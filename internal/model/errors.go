package model

import (
	"errors"
	"fmt"
)

var (
	// ErrUnrecognizedLink is returned for messages that are not a supported link
	ErrUnrecognizedLink = errors.New("unrecognized link")

	// ErrExpiredLink is returned when a format is selected for a user without a session
	ErrExpiredLink = errors.New("link expired")

	// ErrArtifactNotFound means the engine succeeded but left no matching file
	ErrArtifactNotFound = errors.New("artifact not found")
)

// ExtractionError wraps any failure of the extraction engine
type ExtractionError struct {
	Err error
}

func (e *ExtractionError) Error() string {
	return e.Err.Error()
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// DeliveryError is a failure between a successful extraction and a delivered file
type DeliveryError struct {
	Reason string
	Err    error
}

func (e *DeliveryError) Error() string {
	if e.Err == nil {
		return e.Reason
	}
	return fmt.Sprintf("%s: %v", e.Reason, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// CleanupError is a failed removal of a status message or a temporary file.
// It is logged and never shown to the user.
type CleanupError struct {
	Op  string
	Err error
}

func (e *CleanupError) Error() string {
	return fmt.Sprintf("cleanup %s: %v", e.Op, e.Err)
}

func (e *CleanupError) Unwrap() error {
	return e.Err
}
