package handlers

import (
	"errors"
	"net/http"

	"student_dashboard/internal/domain"
	"student_dashboard/internal/http/middleware"
	"student_dashboard/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type taskRequest struct {
	Title      string          `json:"title"`
	CourseID   string          `json:"course_id"`
	CourseName string          `json:"course_name"`
	DueDate    *domain.DueDate `json:"due_date"`
	DueText    string          `json:"due_text"`
	Status     domain.Status   `json:"status"`
}

// Tasks created without a course land in a catch-all bucket instead of an
// empty course name.
const defaultCourseName = "Custom"

// normalize applies the write defaults and validates what remains. Nothing
// may reach the store with an empty title or course name.
func (r *taskRequest) normalize() error {
	if r.Title == "" {
		return errTitleRequired
	}
	if r.CourseName == "" {
		r.CourseName = defaultCourseName
	}
	if r.Status == "" {
		r.Status = domain.StatusPending
	}
	if !domain.ValidStatus(r.Status) {
		return errInvalidStatus
	}
	return nil
}

var (
	errTitleRequired = errors.New("title is required")
	errInvalidStatus = errors.New("invalid status")
)

func (h *Handler) CreateCustomTask(c *gin.Context) {
	sess, _ := middleware.Session(c)

	var req taskRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}
	if err := req.normalize(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	t := domain.Task{
		ID:         domain.CustomIDPrefix + uuid.NewString(),
		OwnerEmail: sess.Email,
		Title:      req.Title,
		CourseID:   req.CourseID,
		CourseName: req.CourseName,
		DueDate:    req.DueDate,
		DueText:    req.DueText,
		Status:     req.Status,
		Origin:     domain.OriginCustom,
	}
	if err := h.Tasks.Create(c.Request.Context(), &t); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create task"})
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *Handler) ListCustomTasks(c *gin.Context) {
	sess, _ := middleware.Session(c)

	tasks, err := h.Tasks.ListByOwner(c.Request.Context(), sess.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list tasks"})
		return
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	c.JSON(http.StatusOK, tasks)
}

func (h *Handler) GetCustomTask(c *gin.Context) {
	sess, _ := middleware.Session(c)

	t, err := h.Tasks.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil || t.OwnerEmail != sess.Email {
		// Someone else's task reads the same as a missing one.
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *Handler) UpdateCustomTask(c *gin.Context) {
	sess, _ := middleware.Session(c)

	var req taskRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}
	if err := req.normalize(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := c.Param("id")
	t := domain.Task{
		Title:      req.Title,
		CourseID:   req.CourseID,
		CourseName: req.CourseName,
		DueDate:    req.DueDate,
		DueText:    req.DueText,
		Status:     req.Status,
	}
	err := h.Tasks.Update(c.Request.Context(), id, sess.Email, &t)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update task"})
		return
	}

	updated, err := h.Tasks.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load task"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteCustomTask removes the task and then its subtasks. The cascade is
// explicit: the store keeps no reference between the two tables.
func (h *Handler) DeleteCustomTask(c *gin.Context) {
	sess, _ := middleware.Session(c)
	id := c.Param("id")

	err := h.Tasks.Delete(c.Request.Context(), id, sess.Email)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete task"})
		return
	}
	if err := h.Subtasks.DeleteByTask(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete subtasks"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
