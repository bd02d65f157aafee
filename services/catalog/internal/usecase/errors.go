package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrMissingEmail       = errors.New("email is required")
	ErrMissingFilename    = errors.New("filename is required")
	ErrInvalidContentType = errors.New("content type must be an image")
)

// Step names one store write of the pack creation pipeline.
type Step string

const (
	StepInsertPack        Step = "insert_pack"
	StepInsertPins        Step = "insert_pins"
	StepLinkPins          Step = "link_pins"
	StepReconcilePinCount Step = "reconcile_pin_count"
)

func (s Step) message() string {
	switch s {
	case StepInsertPack:
		return "Failed to create pack"
	case StepInsertPins:
		return "Failed to create pins"
	case StepLinkPins:
		return "Failed to link pins to pack"
	case StepReconcilePinCount:
		return "Failed to update pin count"
	default:
		return "Failed to create pack"
	}
}

// StepError reports the step that aborted pack creation. Writes made by
// earlier steps are left in place.
type StepError struct {
	Step   Step
	PackID string
	Err    error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step.message(), e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
