package handlers

import (
	"errors"
	"net/http"

	"student_dashboard/internal/ai"
	"student_dashboard/internal/domain"
	"student_dashboard/internal/http/middleware"
	"student_dashboard/internal/repository"
	"student_dashboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) ListSubtasks(c *gin.Context) {
	subtasks, err := h.Subtasks.ListByTask(c.Request.Context(), c.Param("taskId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list subtasks"})
		return
	}
	if subtasks == nil {
		subtasks = []domain.Subtask{}
	}
	c.JSON(http.StatusOK, subtasks)
}

func (h *Handler) CreateSubtask(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.BindJSON(&req); err != nil || req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	s := domain.Subtask{
		ID:     domain.SubtaskIDPrefix + uuid.NewString(),
		TaskID: c.Param("taskId"),
		Text:   req.Text,
	}
	if err := h.Subtasks.Create(c.Request.Context(), &s); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create subtask"})
		return
	}
	c.JSON(http.StatusCreated, s)
}

func (h *Handler) UpdateSubtask(c *gin.Context) {
	var req struct {
		Text      string `json:"text"`
		Completed bool   `json:"completed"`
	}
	if err := c.BindJSON(&req); err != nil || req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	id, taskID := c.Param("id"), c.Param("taskId")
	err := h.Subtasks.Update(c.Request.Context(), id, taskID, req.Text, req.Completed)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "subtask not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update subtask"})
		return
	}

	s, err := h.Subtasks.GetByID(c.Request.Context(), id, taskID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load subtask"})
		return
	}
	c.JSON(http.StatusOK, s)
}

// ToggleSubtask flips completion in one statement; two rapid toggles land as
// two flips, not a lost update.
func (h *Handler) ToggleSubtask(c *gin.Context) {
	s, err := h.Subtasks.Toggle(c.Request.Context(), c.Param("id"), c.Param("taskId"))
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "subtask not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to toggle subtask"})
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *Handler) DeleteSubtask(c *gin.Context) {
	err := h.Subtasks.Delete(c.Request.Context(), c.Param("id"), c.Param("taskId"))
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "subtask not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete subtask"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GenerateSubtasks asks the checklist model to break the assignment into
// steps and stores each one as an ordinary subtask. Title and description
// come from the request body; for a custom task an empty title falls back to
// the stored one.
func (h *Handler) GenerateSubtasks(c *gin.Context) {
	sess, _ := middleware.Session(c)
	taskID := c.Param("taskId")

	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	_ = c.BindJSON(&req)

	if req.Title == "" && domain.IsCustomID(taskID) {
		if t, err := h.Tasks.GetByID(c.Request.Context(), taskID); err == nil && t.OwnerEmail == sess.Email {
			req.Title = t.Title
		}
	}
	if req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	items, err := service.GenerateChecklist(c.Request.Context(), h.AI, req.Title, req.Description)
	if errors.Is(err, ai.ErrNotConfigured) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "checklist generation not configured"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "checklist generation failed"})
		return
	}

	var created []domain.Subtask
	for _, text := range items {
		s := domain.Subtask{
			ID:     domain.SubtaskIDPrefix + uuid.NewString(),
			TaskID: taskID,
			Text:   text,
		}
		if err := h.Subtasks.Create(c.Request.Context(), &s); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store subtasks"})
			return
		}
		created = append(created, s)
	}
	c.JSON(http.StatusCreated, created)
}
