package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorType represents the category of error
type ErrorType string

const (
	// ErrorTypeCatalog represents registry construction and lookup errors
	ErrorTypeCatalog ErrorType = "catalog"
	// ErrorTypeNotes represents notes store errors
	ErrorTypeNotes ErrorType = "notes"
	// ErrorTypeGraph represents graph database errors
	ErrorTypeGraph ErrorType = "graph"
	// ErrorTypeRoute represents route contract violations
	ErrorTypeRoute ErrorType = "route"
	// ErrorTypeDiscord represents Discord-related errors
	ErrorTypeDiscord ErrorType = "discord"
	// ErrorTypeConfig represents configuration errors
	ErrorTypeConfig ErrorType = "config"
)

// BaseError is the base error type with common fields
type BaseError struct {
	Type      ErrorType
	Message   string
	Timestamp time.Time
	Err       error // Wrapped error
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the wrapped error for error unwrapping
func (e *BaseError) Unwrap() error {
	return e.Err
}

// ErrorType reports the category. Promoted to every typed error below.
func (e *BaseError) ErrorType() ErrorType {
	return e.Type
}

// NewBaseError creates a new base error
func NewBaseError(errType ErrorType, message string, err error) *BaseError {
	return &BaseError{
		Type:      errType,
		Message:   message,
		Timestamp: time.Now(),
		Err:       err,
	}
}

// notFound is implemented by errors that describe a missing entity.
type notFound interface {
	NotFound() bool
}

// Catalog Errors

// ErrInvalidDescriptor is returned when a tool descriptor fails validation
type ErrInvalidDescriptor struct {
	*BaseError
	ToolID string
	Reason string
}

func NewInvalidDescriptor(toolID, reason string) *ErrInvalidDescriptor {
	return &ErrInvalidDescriptor{
		BaseError: NewBaseError(ErrorTypeCatalog, fmt.Sprintf("invalid descriptor %q: %s", toolID, reason), nil),
		ToolID:    toolID,
		Reason:    reason,
	}
}

// ErrDuplicateField is returned when an id or path appears twice in a registry
type ErrDuplicateField struct {
	*BaseError
	Field string
	Value string
}

func NewDuplicateField(field, value string) *ErrDuplicateField {
	return &ErrDuplicateField{
		BaseError: NewBaseError(ErrorTypeCatalog, fmt.Sprintf("duplicate %s: %s", field, value), nil),
		Field:     field,
		Value:     value,
	}
}

// ErrUnknownCategory is returned when a descriptor names a category outside the enumeration
type ErrUnknownCategory struct {
	*BaseError
	ToolID   string
	Category string
}

func NewUnknownCategory(toolID, category string) *ErrUnknownCategory {
	return &ErrUnknownCategory{
		BaseError: NewBaseError(ErrorTypeCatalog, fmt.Sprintf("tool %q has unknown category %q", toolID, category), nil),
		ToolID:    toolID,
		Category:  category,
	}
}

// ErrToolNotFound is returned when a requested tool is not in the registry
type ErrToolNotFound struct {
	*BaseError
	ToolID string
}

func NewToolNotFound(toolID string) *ErrToolNotFound {
	return &ErrToolNotFound{
		BaseError: NewBaseError(ErrorTypeCatalog, fmt.Sprintf("tool not found: %s", toolID), nil),
		ToolID:    toolID,
	}
}

func (e *ErrToolNotFound) NotFound() bool { return true }

// ErrCatalogLoadFailed is returned when a registry file cannot be read or decoded
type ErrCatalogLoadFailed struct {
	*BaseError
	Path string
}

func NewCatalogLoadFailed(path string, err error) *ErrCatalogLoadFailed {
	return &ErrCatalogLoadFailed{
		BaseError: NewBaseError(ErrorTypeCatalog, fmt.Sprintf("failed to load catalog: %s", path), err),
		Path:      path,
	}
}

// Notes Errors

// ErrNoteNotFound is returned when a note id does not exist
type ErrNoteNotFound struct {
	*BaseError
	NoteID string
}

func NewNoteNotFound(noteID string) *ErrNoteNotFound {
	return &ErrNoteNotFound{
		BaseError: NewBaseError(ErrorTypeNotes, fmt.Sprintf("note not found: %s", noteID), nil),
		NoteID:    noteID,
	}
}

func (e *ErrNoteNotFound) NotFound() bool { return true }

// ErrNoteInvalid is returned when a note is missing required content
type ErrNoteInvalid struct {
	*BaseError
	Field string
}

func NewNoteInvalid(field, reason string) *ErrNoteInvalid {
	return &ErrNoteInvalid{
		BaseError: NewBaseError(ErrorTypeNotes, fmt.Sprintf("invalid note: %s %s", field, reason), nil),
		Field:     field,
	}
}

// ErrNotesStoreFailed wraps sqlite failures
type ErrNotesStoreFailed struct {
	*BaseError
	Operation string
}

func NewNotesStoreFailed(operation string, err error) *ErrNotesStoreFailed {
	return &ErrNotesStoreFailed{
		BaseError: NewBaseError(ErrorTypeNotes, fmt.Sprintf("notes store %s failed", operation), err),
		Operation: operation,
	}
}

// Graph Errors

// ErrGraphConnectionFailed is returned when Neo4j connection fails
type ErrGraphConnectionFailed struct {
	*BaseError
	URI string
}

func NewGraphConnectionFailed(uri string, err error) *ErrGraphConnectionFailed {
	return &ErrGraphConnectionFailed{
		BaseError: NewBaseError(ErrorTypeGraph, fmt.Sprintf("failed to connect to Neo4j: %s", uri), err),
		URI:       uri,
	}
}

// ErrGraphQueryFailed is returned when a graph query fails
type ErrGraphQueryFailed struct {
	*BaseError
	Query string
}

func NewGraphQueryFailed(query string, err error) *ErrGraphQueryFailed {
	return &ErrGraphQueryFailed{
		BaseError: NewBaseError(ErrorTypeGraph, fmt.Sprintf("query failed: %s", query), err),
		Query:     query,
	}
}

// Route Errors

// ErrRouteMismatch is returned when a descriptor path is not served as its tool page
type ErrRouteMismatch struct {
	*BaseError
	Path   string
	Reason string
}

func NewRouteMismatch(path, reason string) *ErrRouteMismatch {
	return &ErrRouteMismatch{
		BaseError: NewBaseError(ErrorTypeRoute, fmt.Sprintf("route %s: %s", path, reason), nil),
		Path:      path,
		Reason:    reason,
	}
}

// Discord Errors

// ErrDiscordSessionUnavailable is returned when Discord session is not available
var ErrDiscordSessionUnavailable = NewBaseError(ErrorTypeDiscord, "Discord session not available", nil)

// ErrDiscordMessageSendFailed is returned when sending a Discord message fails
type ErrDiscordMessageSendFailed struct {
	*BaseError
	ChannelID string
}

func NewDiscordMessageSendFailed(channelID string, err error) *ErrDiscordMessageSendFailed {
	return &ErrDiscordMessageSendFailed{
		BaseError: NewBaseError(ErrorTypeDiscord, "failed to send message", err),
		ChannelID: channelID,
	}
}

// Config Errors

// ErrConfigValidationFailed is returned when configuration validation fails
type ErrConfigValidationFailed struct {
	*BaseError
	Field  string
	Reason string
}

func NewConfigValidationFailed(field, reason string) *ErrConfigValidationFailed {
	return &ErrConfigValidationFailed{
		BaseError: NewBaseError(ErrorTypeConfig, fmt.Sprintf("config validation failed: %s - %s", field, reason), nil),
		Field:     field,
		Reason:    reason,
	}
}

// ErrConfigMissingRequired is returned when a required config value is missing
type ErrConfigMissingRequired struct {
	*BaseError
	Field string
}

func NewConfigMissingRequired(field string) *ErrConfigMissingRequired {
	return &ErrConfigMissingRequired{
		BaseError: NewBaseError(ErrorTypeConfig, fmt.Sprintf("missing required config: %s", field), nil),
		Field:     field,
	}
}

// Helper functions

// IsErrorType checks if an error, or anything it wraps, is of a specific type
func IsErrorType(err error, errType ErrorType) bool {
	for err != nil {
		var typed interface{ ErrorType() ErrorType }
		if !stderrors.As(err, &typed) {
			return false
		}
		if typed.ErrorType() == errType {
			return true
		}
		// keep looking below the matched layer
		inner, ok := typed.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = inner.Unwrap()
	}
	return false
}

// IsNotFound reports whether err describes a missing tool or note
func IsNotFound(err error) bool {
	var nf notFound
	return stderrors.As(err, &nf) && nf.NotFound()
}

// IsValidation reports whether err is caused by bad caller input
func IsValidation(err error) bool {
	var invalidNote *ErrNoteInvalid
	var invalidDesc *ErrInvalidDescriptor
	return stderrors.As(err, &invalidNote) || stderrors.As(err, &invalidDesc)
}

// IsRetryable checks if an error is retryable
func IsRetryable(err error) bool {
	// Graph connection errors are retryable
	var conn *ErrGraphConnectionFailed
	if stderrors.As(err, &conn) {
		return true
	}
	// Discord send failures are usually transient
	var send *ErrDiscordMessageSendFailed
	return stderrors.As(err, &send)
}
