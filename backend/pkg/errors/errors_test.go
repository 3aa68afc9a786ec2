package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsErrorType_Embedded(t *testing.T) {
	err := NewToolNotFound("qr-code-generator")
	assert.True(t, IsErrorType(err, ErrorTypeCatalog))
	assert.False(t, IsErrorType(err, ErrorTypeNotes))
}

func TestIsErrorType_Wrapped(t *testing.T) {
	err := fmt.Errorf("handler: %w", NewNoteNotFound("abc"))
	assert.True(t, IsErrorType(err, ErrorTypeNotes))
	assert.False(t, IsErrorType(fmt.Errorf("plain"), ErrorTypeNotes))
	assert.False(t, IsErrorType(nil, ErrorTypeNotes))
}

func TestIsErrorType_InnerLayer(t *testing.T) {
	inner := NewGraphQueryFailed("MATCH (t:Tool)", stderrors.New("boom"))
	outer := NewCatalogLoadFailed("tools.yaml", inner)
	assert.True(t, IsErrorType(outer, ErrorTypeCatalog))
	assert.True(t, IsErrorType(outer, ErrorTypeGraph))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(NewToolNotFound("x")))
	assert.True(t, IsNotFound(fmt.Errorf("wrap: %w", NewNoteNotFound("y"))))
	assert.False(t, IsNotFound(NewDuplicateField("id", "x")))
}

func TestIsValidation(t *testing.T) {
	assert.True(t, IsValidation(NewNoteInvalid("title", "is required")))
	assert.True(t, IsValidation(NewInvalidDescriptor("x", "empty name")))
	assert.False(t, IsValidation(NewNoteNotFound("x")))
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(NewGraphConnectionFailed("bolt://localhost:7687", stderrors.New("refused"))))
	assert.True(t, IsRetryable(NewDiscordMessageSendFailed("123", stderrors.New("429"))))
	assert.False(t, IsRetryable(NewConfigMissingRequired("PORT")))
}

func TestBaseError_Message(t *testing.T) {
	err := NewNotesStoreFailed("insert", stderrors.New("disk full"))
	assert.Equal(t, "[notes] notes store insert failed: disk full", err.Error())
	assert.Equal(t, "[discord] Discord session not available", ErrDiscordSessionUnavailable.Error())
}
