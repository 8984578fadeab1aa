// Package errors provides custom error types for the changeset library.
// These errors enable programmatic error checking by callers that surface
// recoverable, user-correctable upload conditions.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the changeset library
var (
	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates that a requested entry was not found
	ErrNotFound = errors.New("not found")

	// ErrUploadRejected indicates that an upload precondition failed and the
	// upload must not proceed until the user corrects the input
	ErrUploadRejected = errors.New("upload rejected")
)

// MissingTermsError reports mandatory terms absent from a comment or source value
type MissingTermsError struct {
	Subject string // "comment" or "source"
	Terms   []string
}

// Error implements the error interface
func (e *MissingTermsError) Error() string {
	return fmt.Sprintf("%s is missing required terms: %s", e.Subject, strings.Join(e.Terms, ", "))
}

// Is implements errors.Is support
func (e *MissingTermsError) Is(target error) bool {
	return target == ErrInvalidInput || target == ErrUploadRejected
}

// NewMissingTermsError creates a new MissingTermsError
func NewMissingTermsError(subject string, terms []string) *MissingTermsError {
	return &MissingTermsError{Subject: subject, Terms: terms}
}

// ForbiddenTermsError reports forbidden terms found in a comment or source value
type ForbiddenTermsError struct {
	Subject string
	Terms   []string
}

// Error implements the error interface
func (e *ForbiddenTermsError) Error() string {
	return fmt.Sprintf("%s contains forbidden terms: %s", e.Subject, strings.Join(e.Terms, ", "))
}

// Is implements errors.Is support
func (e *ForbiddenTermsError) Is(target error) bool {
	return target == ErrInvalidInput || target == ErrUploadRejected
}

// NewForbiddenTermsError creates a new ForbiddenTermsError
func NewForbiddenTermsError(subject string, terms []string) *ForbiddenTermsError {
	return &ForbiddenTermsError{Subject: subject, Terms: terms}
}

// ChunkSizeError reports a chunked upload strategy without a usable chunk size
type ChunkSizeError struct {
	ChunkSize int
}

// Error implements the error interface
func (e *ChunkSizeError) Error() string {
	if e.ChunkSize < 0 {
		return "chunked upload strategy requires a chunk size"
	}
	return fmt.Sprintf("chunked upload strategy requires a positive chunk size, got %d", e.ChunkSize)
}

// Is implements errors.Is support
func (e *ChunkSizeError) Is(target error) bool {
	return target == ErrInvalidInput || target == ErrUploadRejected
}

// NewChunkSizeError creates a new ChunkSizeError
func NewChunkSizeError(chunkSize int) *ChunkSizeError {
	return &ChunkSizeError{ChunkSize: chunkSize}
}

// EmptyTagError reports changeset tags whose key or value (but not both) is blank
type EmptyTagError struct {
	Pairs []string // formatted as "key=value"
}

// Error implements the error interface
func (e *EmptyTagError) Error() string {
	return fmt.Sprintf("changeset tags with an empty key or value: %s", strings.Join(e.Pairs, ", "))
}

// Is implements errors.Is support
func (e *EmptyTagError) Is(target error) bool {
	return target == ErrInvalidInput || target == ErrUploadRejected
}

// NewEmptyTagError creates a new EmptyTagError
func NewEmptyTagError(pairs []string) *EmptyTagError {
	return &EmptyTagError{Pairs: pairs}
}

// ValidationError represents a generic validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{Component: component, Message: message, Err: err}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "yaml", "strategy", "mode", etc.
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file, message string, err error) *ParseError {
	return &ParseError{Format: format, File: file, Message: message, Err: err}
}

// Helper functions for error checking

// IsInvalidInput checks if an error is an invalid input error
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUploadRejected checks if an error blocks an upload until corrected
func IsUploadRejected(err error) bool {
	return errors.Is(err, ErrUploadRejected)
}

// IsMissingTerms checks if an error reports missing mandatory terms
func IsMissingTerms(err error) bool {
	var e *MissingTermsError
	return errors.As(err, &e)
}

// IsForbiddenTerms checks if an error reports forbidden terms
func IsForbiddenTerms(err error) bool {
	var e *ForbiddenTermsError
	return errors.As(err, &e)
}

// IsChunkSize checks if an error reports an unusable chunk size
func IsChunkSize(err error) bool {
	var e *ChunkSizeError
	return errors.As(err, &e)
}

// IsEmptyTag checks if an error reports tags with an empty key or value
func IsEmptyTag(err error) bool {
	var e *EmptyTagError
	return errors.As(err, &e)
}
