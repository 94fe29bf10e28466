package errors

import (
	stderrors "errors"
	"fmt"
)

// Application error types organized by category for better error handling

type ErrorType int

// Domain errors - the dataset cannot answer the query
const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeValidation
	ErrorTypeEmptyDataset
	ErrorTypeNoMatchingRecords
	ErrorTypeInvalidDate

	// Infrastructure Errors - errors related to the measurement store
	ErrorTypeStorageUnavailable

	// System/Configuration Errors - errors related to system setup and configuration
	ErrorTypeConfiguration
)

// String returns the string representation of error type
func (e ErrorType) String() string {
	switch e {
	case ErrorTypeValidation:
		return "VALIDATION_ERROR"
	case ErrorTypeEmptyDataset:
		return "EMPTY_DATASET_ERROR"
	case ErrorTypeNoMatchingRecords:
		return "NO_MATCHING_RECORDS_ERROR"
	case ErrorTypeInvalidDate:
		return "INVALID_DATE_ERROR"
	case ErrorTypeStorageUnavailable:
		return "STORAGE_UNAVAILABLE_ERROR"
	case ErrorTypeConfiguration:
		return "CONFIGURATION_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// Short aliases used throughout handlers and tests
const (
	ValidationError         = ErrorTypeValidation
	EmptyDatasetError       = ErrorTypeEmptyDataset
	NoMatchingRecordsError  = ErrorTypeNoMatchingRecords
	InvalidDateError        = ErrorTypeInvalidDate
	StorageUnavailableError = ErrorTypeStorageUnavailable
	ConfigurationError      = ErrorTypeConfiguration
)

type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

func Wrap(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// Domain Error Constructors
func NewValidationError(message string) *AppError {
	return New(ValidationError, message)
}

func NewEmptyDatasetError(message string) *AppError {
	return New(EmptyDatasetError, message)
}

func NewNoMatchingRecordsError(message string) *AppError {
	return New(NoMatchingRecordsError, message)
}

func NewInvalidDateError(message string, cause error) *AppError {
	return Wrap(InvalidDateError, message, cause)
}

// Infrastructure Error Constructors
func NewStorageUnavailableError(message string, cause error) *AppError {
	return Wrap(StorageUnavailableError, message, cause)
}

// System/Configuration Error Constructors
func NewConfigurationError(message string, cause error) *AppError {
	return Wrap(ConfigurationError, message, cause)
}

// TypeOf returns the type of the first AppError in err's chain.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeUnknown
}

// Helper functions for error type checking
func IsValidationError(err error) bool {
	return TypeOf(err) == ValidationError
}

func IsEmptyDatasetError(err error) bool {
	return TypeOf(err) == EmptyDatasetError
}

func IsNoMatchingRecordsError(err error) bool {
	return TypeOf(err) == NoMatchingRecordsError
}

func IsInvalidDateError(err error) bool {
	return TypeOf(err) == InvalidDateError
}

func IsStorageUnavailableError(err error) bool {
	return TypeOf(err) == StorageUnavailableError
}

func IsConfigurationError(err error) bool {
	return TypeOf(err) == ConfigurationError
}
