// Package errors provides standardized error handling for the scrape pipeline.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

// Fatal tier: only the registry listing can abort a run.
const (
	ErrCodeRegistryFetchFailed ErrorCode = "REGISTRY_FETCH_FAILED"
	ErrCodeRegistryParseFailed ErrorCode = "REGISTRY_PARSE_FAILED"
	ErrCodeConfigInvalid       ErrorCode = "CONFIG_INVALID"
)

// Recoverable tier: logged per component, never propagated.
const (
	ErrCodeComponentFetchFailed ErrorCode = "COMPONENT_FETCH_FAILED"
	ErrCodeComponentStatusNotOK ErrorCode = "COMPONENT_STATUS_NOT_OK"
	ErrCodeComponentParseFailed ErrorCode = "COMPONENT_PARSE_FAILED"
	ErrCodeComponentNoFiles     ErrorCode = "COMPONENT_NO_FILES"
	ErrCodeDocumentWriteFailed  ErrorCode = "DOCUMENT_WRITE_FAILED"
)

// Error categories returned by GetErrorCategory.
const (
	CategoryFatal       = "FATAL"
	CategoryRecoverable = "RECOVERABLE"
	CategoryInfo        = "INFO"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code       ErrorCode              `json:"code"`
	Message    string                 `json:"message"`
	Details    string                 `json:"details,omitempty"`
	Component  string                 `json:"component,omitempty"`
	StatusCode int                    `json:"statusCode,omitempty"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
	Timestamp  time.Time              `json:"timestamp"`
	Cause      error                  `json:"-"`
}

func (e *StandardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("StandardError[%s]: %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

func (e *StandardError) Unwrap() error {
	return e.Cause
}

// Fields returns the error as log fields.
func (e *StandardError) Fields() map[string]interface{} {
	fields := map[string]interface{}{
		"errorCode":     string(e.Code),
		"errorCategory": GetErrorCategory(e.Code),
		"message":       e.Message,
	}
	if e.Details != "" {
		fields["details"] = e.Details
	}
	if e.Component != "" {
		fields["component"] = e.Component
	}
	if e.StatusCode != 0 {
		fields["status"] = e.StatusCode
	}
	for k, v := range e.Metadata {
		fields[k] = v
	}
	return fields
}

// ==========================
// 2. Error Constructors
// ==========================

// NewRegistryFetchError reports that the registry request did not complete
// or returned a non-success status.
func NewRegistryFetchError(url string, statusCode int, err error) *StandardError {
	details := fmt.Sprintf("url: %s", url)
	if err != nil {
		details = fmt.Sprintf("url: %s: %v", url, err)
	} else if statusCode != 0 {
		details = fmt.Sprintf("url: %s: status %d", url, statusCode)
	}
	return &StandardError{
		Code:       ErrCodeRegistryFetchFailed,
		Message:    "Could not fetch the component registry",
		Details:    details,
		StatusCode: statusCode,
		Timestamp:  time.Now().UTC(),
		Cause:      err,
	}
}

// NewRegistryParseError reports a registry body that is not the expected JSON array.
func NewRegistryParseError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeRegistryParseFailed,
		Message:   "Could not parse the component registry",
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
		Cause:     err,
	}
}

// NewConfigInvalidError reports a configuration that failed validation.
func NewConfigInvalidError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeConfigInvalid,
		Message:   "Invalid configuration",
		Details:   details,
		Timestamp: time.Now().UTC(),
	}
}

// NewComponentFetchError reports a demo payload request that did not complete.
func NewComponentFetchError(component string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeComponentFetchFailed,
		Message:   "Failed to fetch component demo payload",
		Details:   err.Error(),
		Component: component,
		Timestamp: time.Now().UTC(),
		Cause:     err,
	}
}

// NewComponentStatusError reports a demo payload request answered with a non-success status.
func NewComponentStatusError(component string, statusCode int) *StandardError {
	return &StandardError{
		Code:       ErrCodeComponentStatusNotOK,
		Message:    "No demo file for component",
		Details:    fmt.Sprintf("status %d", statusCode),
		Component:  component,
		StatusCode: statusCode,
		Timestamp:  time.Now().UTC(),
	}
}

// NewComponentParseError reports a demo payload that is not valid JSON of the expected shape.
func NewComponentParseError(component string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeComponentParseFailed,
		Message:   "Failed to parse component demo payload",
		Details:   err.Error(),
		Component: component,
		Timestamp: time.Now().UTC(),
		Cause:     err,
	}
}

// NewComponentNoFilesError reports a demo payload without a files array.
func NewComponentNoFilesError(component string) *StandardError {
	return &StandardError{
		Code:      ErrCodeComponentNoFiles,
		Message:   "No 'files' array found for component",
		Component: component,
		Timestamp: time.Now().UTC(),
	}
}

// NewDocumentWriteError reports a failed write to the output document.
func NewDocumentWriteError(component string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDocumentWriteFailed,
		Message:   "Failed to write component section",
		Details:   err.Error(),
		Component: component,
		Timestamp: time.Now().UTC(),
		Cause:     err,
	}
}

// ==========================
// 3. Utility Functions
// ==========================

// AsStandardError extracts a StandardError from err's chain.
func AsStandardError(err error) (*StandardError, bool) {
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr, true
	}
	return nil, false
}

// CodeOf returns the error code in err's chain, or "" when there is none.
func CodeOf(err error) ErrorCode {
	if stdErr, ok := AsStandardError(err); ok {
		return stdErr.Code
	}
	return ""
}

// IsFetchError reports whether err is a transport or status failure.
func IsFetchError(err error) bool {
	switch CodeOf(err) {
	case ErrCodeRegistryFetchFailed, ErrCodeComponentFetchFailed, ErrCodeComponentStatusNotOK:
		return true
	}
	return false
}

// IsParseError reports whether err is a body decoding failure.
func IsParseError(err error) bool {
	switch CodeOf(err) {
	case ErrCodeRegistryParseFailed, ErrCodeComponentParseFailed:
		return true
	}
	return false
}

// IsFatal reports whether err must abort the whole run.
func IsFatal(err error) bool {
	return GetErrorCategory(CodeOf(err)) == CategoryFatal
}

// GetErrorCategory maps a code to its handling tier.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.HasPrefix(codeStr, "REGISTRY_") || code == ErrCodeConfigInvalid:
		return CategoryFatal
	case code == ErrCodeComponentNoFiles:
		return CategoryInfo
	default:
		return CategoryRecoverable
	}
}
