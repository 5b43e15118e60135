package wizard

import (
	"errors"
	"fmt"
	"strings"
)

// Error types for the conditions that abort a wizard run
var (
	ErrStorageUnavailable = errors.New("storage error")
	ErrDocumentInvalid    = errors.New("config file error")
	ErrWriteFailed        = errors.New("write error")
)

// SetupError represents a structured error with actionable guidance
type SetupError struct {
	Type     error
	Message  string
	Guidance string
	Cause    error
}

func (e *SetupError) Error() string {
	if e.Guidance != "" {
		return fmt.Sprintf("%s: %s\n\nSuggestion: %s", e.Type, e.Message, e.Guidance)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *SetupError) Unwrap() error {
	return e.Cause
}

// Error constructors with actionable guidance

// NewStorageError reports that storage for the config file could not be
// made ready within the bounded number of attempts.
func NewStorageError(path string, cause error) *SetupError {
	message := fmt.Sprintf("could not prepare storage for '%s'", path)
	guidance := fmt.Sprintf("Create the directory for '%s' yourself and check its permissions, "+
		"then run mcsetup again. Use --config to pick a different location.", path)

	return &SetupError{
		Type:     ErrStorageUnavailable,
		Message:  message,
		Guidance: guidance,
		Cause:    cause,
	}
}

// NewDocumentError reports an unreadable or unparseable config file. The
// file is left exactly as it was; the wizard never resets a config it
// cannot read.
func NewDocumentError(path string, cause error) *SetupError {
	message := fmt.Sprintf("could not read config file '%s'", path)
	guidance := fmt.Sprintf("Fix the YAML syntax in '%s' by hand, or move the file away "+
		"to run first-time setup from scratch.", path)

	if cause != nil && strings.Contains(cause.Error(), "permission") {
		guidance = fmt.Sprintf("Check file permissions for '%s'. "+
			"The wizard needs read and write access to the config file.", path)
	}

	return &SetupError{
		Type:     ErrDocumentInvalid,
		Message:  message,
		Guidance: guidance,
		Cause:    cause,
	}
}

// NewWriteError reports a failed config file write.
func NewWriteError(path string, cause error) *SetupError {
	message := fmt.Sprintf("could not write config file '%s'", path)
	guidance := fmt.Sprintf("Check that '%s' and its directory are writable and that the "+
		"disk is not full, then run mcsetup again. Your answers from this run were not saved.", path)

	return &SetupError{
		Type:     ErrWriteFailed,
		Message:  message,
		Guidance: guidance,
		Cause:    cause,
	}
}
