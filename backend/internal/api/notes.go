package api

import (
	"context"
	"net/http"

	"toolshelf/backend/internal/notes"
	apperrors "toolshelf/backend/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NoteStore is the persistence used by the notepad endpoints
type NoteStore interface {
	Create(ctx context.Context, title, content string) (*notes.Note, error)
	Get(ctx context.Context, id string) (*notes.Note, error)
	List(ctx context.Context) ([]notes.Note, error)
	Update(ctx context.Context, id, title, content string) (*notes.Note, error)
	Delete(ctx context.Context, id string) error
}

type noteRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
}

func (s *server) noteError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		s.logger.Error("Notes store failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to access notes"})
	}
}

func (s *server) listNotes(c *gin.Context) {
	list, err := s.notes.List(c.Request.Context())
	if err != nil {
		s.noteError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *server) createNote(c *gin.Context) {
	var req noteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	n, err := s.notes.Create(c.Request.Context(), req.Title, req.Content)
	if err != nil {
		s.noteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, n)
}

func (s *server) getNote(c *gin.Context) {
	n, err := s.notes.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.noteError(c, err)
		return
	}
	c.JSON(http.StatusOK, n)
}

func (s *server) updateNote(c *gin.Context) {
	var req noteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	n, err := s.notes.Update(c.Request.Context(), c.Param("id"), req.Title, req.Content)
	if err != nil {
		s.noteError(c, err)
		return
	}
	c.JSON(http.StatusOK, n)
}

func (s *server) deleteNote(c *gin.Context) {
	if err := s.notes.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.noteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
