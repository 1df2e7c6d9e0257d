// internal/common/errors/handler.go
package errors

import (
	"time"
)

// ErrorHandler normalizes and logs pipeline stage errors with standardized handling
type ErrorHandler struct {
	logger Logger
}

type Logger interface {
	Error(msg string, fields map[string]interface{})
}

func NewErrorHandler(logger Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// HandleStageError handles any error raised by a pipeline stage. It
// normalizes the error to a StandardError, logs it with its category and
// retry policy, and returns the normalized error for the caller to act on.
func (h *ErrorHandler) HandleStageError(stage string, err error) *StandardError {
	stdErr := h.normalizeError(err)
	h.logError(stage, stdErr)
	return stdErr
}

// ShouldRetry reports whether the error warrants another attempt of the
// failed stage.
func (h *ErrorHandler) ShouldRetry(err error) bool {
	stdErr := h.normalizeError(err)
	return stdErr.Retryable && GetRetryCount(stdErr.Code) > 0
}

// normalizeError ensures we always have a StandardError
func (h *ErrorHandler) normalizeError(err error) *StandardError {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr
	}
	return &StandardError{
		Code:      "INTERNAL_ERROR",
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func (h *ErrorHandler) logError(stage string, stdErr *StandardError) {
	h.logger.Error("Pipeline stage failed", map[string]interface{}{
		"stage":         stage,
		"errorCode":     string(stdErr.Code),
		"message":       stdErr.Message,
		"details":       stdErr.Details,
		"retryable":     stdErr.Retryable,
		"retries":       GetRetryCount(stdErr.Code),
		"errorCategory": GetErrorCategory(stdErr.Code),
	})
}
