package helpers

import (
	"fmt"

	"token-radar/src/logger"
)

// -----------------------------------------------------------------------------
// Custom Error Types
// -----------------------------------------------------------------------------

type TokenRadarError struct {
	Message string
	Cause   error
}

func (e *TokenRadarError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *TokenRadarError) Unwrap() error {
	return e.Cause
}

// Helper to define distinct error types for type assertions if needed
type ConfigurationError struct{ TokenRadarError }
type FeedError struct{ TokenRadarError }
type ValidationError struct{ TokenRadarError }

// -----------------------------------------------------------------------------

// NewFeedError wraps a feed failure. A load failure is terminal: callers
// surface the error and stop, there is no retry path.
func NewFeedError(message string, cause error) *FeedError {
	return &FeedError{TokenRadarError{Message: message, Cause: cause}}
}

// NewConfigurationError wraps a failure to read or parse configuration.
func NewConfigurationError(message string, cause error) *ConfigurationError {
	return &ConfigurationError{TokenRadarError{Message: message, Cause: cause}}
}

// NewValidationError marks a configuration value that fails its rule.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{TokenRadarError{Message: message}}
}

// -----------------------------------------------------------------------------
// Error Handler
// -----------------------------------------------------------------------------

type ErrorHandler struct {
	Logger     *logger.Logger
	ErrorCount int
}

func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{
		Logger: logger.NewLogger("", "ErrorHandler"),
	}
}

// -----------------------------------------------------------------------------

func (e *ErrorHandler) ResetErrorCount() {
	e.ErrorCount = 0
}

// -----------------------------------------------------------------------------

func (e *ErrorHandler) Handle(err error, context string) {
	if err != nil {
		e.ErrorCount++
		e.Logger.Error("Error in %s: %v", context, err)
	}
}
