// Package errors provides standardized error handling patterns for geochart
// components. It includes error classification, standard error variables, and
// helper functions for consistent error wrapping across the module.
package errors

import (
	"errors"
	"fmt"
)

// ErrorClass represents the classification of errors for handling purposes
type ErrorClass int

const (
	// ErrorTransient represents temporary errors that may be retried
	ErrorTransient ErrorClass = iota
	// ErrorInvalid represents errors due to invalid input or configuration
	ErrorInvalid
	// ErrorFatal represents unrecoverable errors that should stop processing
	ErrorFatal
)

// String returns the string representation of ErrorClass
func (ec ErrorClass) String() string {
	switch ec {
	case ErrorTransient:
		return "transient"
	case ErrorInvalid:
		return "invalid"
	case ErrorFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Standard error variables for common conditions
var (
	// Option and configuration errors
	ErrInvalidOption   = errors.New("invalid option")
	ErrMissingOption   = errors.New("missing required option")
	ErrInvalidConfig   = errors.New("invalid configuration")
	ErrConfigNotFound  = errors.New("configuration not found")
	ErrUnsupportedFile = errors.New("unsupported configuration format")

	// Registry errors
	ErrMapNotRegistered = errors.New("map not registered")
	ErrDuplicateMap     = errors.New("map already registered")
	ErrInvalidGeometry  = errors.New("invalid region geometry")
	ErrSourceFailed     = errors.New("map source failed")
)

// ClassifiedError wraps an error with its classification
type ClassifiedError struct {
	Class     ErrorClass
	Err       error
	Message   string
	Component string
	Operation string
}

// Error implements the error interface
func (ce *ClassifiedError) Error() string {
	if ce.Message != "" {
		return ce.Message
	}
	return ce.Err.Error()
}

// Unwrap returns the underlying error
func (ce *ClassifiedError) Unwrap() error {
	return ce.Err
}

// ResolutionError reports a failure while producing the region set for a map.
// It is the only error class the resolution path surfaces to the hosting
// configuration system; everything else (unknown map id, unknown region name)
// degrades to inert empty results instead.
type ResolutionError struct {
	MapName string // map identifier the resolution targeted
	Source  string // offending source detail, e.g. a region or provider name
	Err     error  // underlying cause
}

// Error implements the error interface
func (re *ResolutionError) Error() string {
	if re.Source != "" {
		return fmt.Sprintf("resolution failed for map %q (source %q): %v", re.MapName, re.Source, re.Err)
	}
	return fmt.Sprintf("resolution failed for map %q: %v", re.MapName, re.Err)
}

// Unwrap returns the underlying error
func (re *ResolutionError) Unwrap() error {
	return re.Err
}

// NewResolutionError builds a ResolutionError for the given map and source.
func NewResolutionError(mapName, source string, err error) *ResolutionError {
	return &ResolutionError{MapName: mapName, Source: source, Err: err}
}

// IsResolution checks whether an error chain contains a ResolutionError.
func IsResolution(err error) bool {
	var re *ResolutionError
	return errors.As(err, &re)
}

// IsInvalid checks if an error is due to invalid input
func IsInvalid(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorInvalid
	}

	return errors.Is(err, ErrInvalidOption) ||
		errors.Is(err, ErrInvalidConfig) ||
		errors.Is(err, ErrInvalidGeometry)
}

// IsFatal checks if an error is fatal and should stop processing
func IsFatal(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorFatal
	}

	return false
}

// Classify returns the error class for an error
func Classify(err error) ErrorClass {
	switch {
	case IsFatal(err):
		return ErrorFatal
	case IsInvalid(err):
		return ErrorInvalid
	default:
		return ErrorTransient
	}
}

// newClassified creates a new classified error
// This is an internal helper - use WrapInvalid() or WrapFatal() instead.
func newClassified(class ErrorClass, err error, component, operation, message string) *ClassifiedError {
	return &ClassifiedError{
		Class:     class,
		Err:       err,
		Message:   message,
		Component: component,
		Operation: operation,
	}
}

// Wrap creates a standardized error with context following the pattern:
// "component.method: action failed: %w"
func Wrap(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s.%s: %s failed: %w", component, method, action, err)
}

// WrapInvalid wraps an error as invalid with context
func WrapInvalid(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorInvalid, wrappedErr, component, method, wrappedErr.Error())
}

// WrapFatal wraps an error as fatal with context
func WrapFatal(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorFatal, wrappedErr, component, method, wrappedErr.Error())
}
