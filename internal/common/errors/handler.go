package errors

import (
	"time"
)

// Handler logs component failures with standardized fields.
type Handler struct {
	logger Logger
}

type Logger interface {
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle normalizes err and logs it at the level matching its tier.
// It returns the normalized error.
func (h *Handler) Handle(component string, err error) *StandardError {
	stdErr := h.normalizeError(component, err)
	fields := stdErr.Fields()

	switch stdErr.Code {
	case ErrCodeComponentNoFiles:
		h.logger.Info("component has no files", fields)
	case ErrCodeComponentStatusNotOK:
		h.logger.Warn("component skipped", fields)
	case ErrCodeComponentParseFailed, ErrCodeComponentFetchFailed:
		h.logger.Error("component failed", fields)
	case ErrCodeDocumentWriteFailed:
		h.logger.Error("component write failed", fields)
	default:
		if GetErrorCategory(stdErr.Code) == CategoryFatal {
			h.logger.Error("registry unavailable, aborting", fields)
		} else {
			h.logger.Error("unexpected error", fields)
		}
	}
	return stdErr
}

// normalizeError ensures we always have a StandardError
func (h *Handler) normalizeError(component string, err error) *StandardError {
	if stdErr, ok := AsStandardError(err); ok {
		if stdErr.Component == "" && component != "" {
			stdErr.Component = component
		}
		return stdErr
	}
	return &StandardError{
		Code:      "INTERNAL_ERROR",
		Message:   "Unexpected error",
		Details:   err.Error(),
		Component: component,
		Timestamp: time.Now().UTC(),
		Cause:     err,
	}
}
