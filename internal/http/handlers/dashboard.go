package handlers

import (
	"errors"
	"net/http"
	"time"

	"student_dashboard/internal/classroom"
	"student_dashboard/internal/domain"
	"student_dashboard/internal/http/middleware"
	"student_dashboard/internal/logger"
	"student_dashboard/internal/repository"
	"student_dashboard/internal/service"

	"github.com/gin-gonic/gin"
)

// taskView is a merged task plus the presentation fields the board renders.
type taskView struct {
	domain.Task
	Bucket    service.Bucket `json:"bucket"`
	Color     string         `json:"color"`
	TextColor string         `json:"text_color"`
}

// board is everything one dashboard request needs, fetched once and shared
// by the filtered views.
type board struct {
	tasks     []domain.Task
	courses   []domain.Course
	resolver  service.ColorResolver
	remoteErr string
}

// loadBoard fetches remote assignments and custom tasks and merges them.
// A failing remote source degrades to custom tasks only, with the error
// carried on the response rather than replacing it.
func (h *Handler) loadBoard(c *gin.Context) (*board, error) {
	sess, _ := middleware.Session(c)
	ctx := c.Request.Context()

	var (
		remote    []classroom.CourseAssignments
		courses   []domain.Course
		remoteErr error
	)

	src, err := h.source(c)
	if err != nil {
		remoteErr = err
	} else {
		if remote, remoteErr = src.Assignments(ctx); remoteErr != nil {
			logger.Warn("remote assignments fetch failed", "err", remoteErr)
		}
		for _, group := range remote {
			courses = append(courses, group.Course)
		}
	}
	if remoteErr != nil {
		middleware.RemoteFetches.WithLabelValues("error").Inc()
	} else {
		middleware.RemoteFetches.WithLabelValues("ok").Inc()
	}

	custom, err := h.Tasks.ListByOwner(ctx, sess.Email)
	if err != nil {
		return nil, err
	}

	prefs, err := h.Colors.All(ctx, sess.Email)
	if err != nil {
		return nil, err
	}

	merged := service.Merge(service.MergeInput{
		Remote:    remote,
		RemoteErr: remoteErr,
		Custom:    custom,
	})

	return &board{
		tasks:     merged.Tasks,
		courses:   courses,
		resolver:  service.ColorResolver{Prefs: prefs, Live: courses},
		remoteErr: merged.RemoteErr,
	}, nil
}

func (b *board) views(tasks []domain.Task, now time.Time) []taskView {
	out := make([]taskView, 0, len(tasks))
	for _, t := range tasks {
		color := b.resolver.Resolve(t.CourseID, t.CourseName)
		out = append(out, taskView{
			Task:      t,
			Bucket:    service.Classify(t.DueDate, now),
			Color:     color,
			TextColor: service.ContrastingText(color),
		})
	}
	return out
}

func (b *board) respond(c *gin.Context, body gin.H) {
	if b.remoteErr != "" {
		body["remote_error"] = b.remoteErr
	}
	c.JSON(http.StatusOK, body)
}

// Dashboard returns the full merged board: every task with its due bucket and
// resolved colors, plus the headline summary.
func (h *Handler) Dashboard(c *gin.Context) {
	b, err := h.loadBoard(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load dashboard"})
		return
	}
	now := time.Now()
	b.respond(c, gin.H{
		"tasks":   b.views(b.tasks, now),
		"summary": service.Summarize(b.tasks, now),
	})
}

func (h *Handler) DashboardPending(c *gin.Context) {
	b, err := h.loadBoard(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load dashboard"})
		return
	}
	b.respond(c, gin.H{"tasks": b.views(service.PendingAssignments(b.tasks), time.Now())})
}

func (h *Handler) DashboardUpcoming(c *gin.Context) {
	b, err := h.loadBoard(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load dashboard"})
		return
	}
	now := time.Now()
	b.respond(c, gin.H{"tasks": b.views(service.UpcomingDeadlines(b.tasks, now), now)})
}

func (h *Handler) DashboardRecent(c *gin.Context) {
	b, err := h.loadBoard(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load dashboard"})
		return
	}
	now := time.Now()
	b.respond(c, gin.H{"tasks": b.views(service.RecentlySubmitted(b.tasks, now), now)})
}

// SubmitTask marks a task submitted. Custom tasks get a persisted status
// update; remote assignments get a transient echo only — the board reflects
// the submission for this response, but Classroom remains the source of
// truth and the next fetch wins.
func (h *Handler) SubmitTask(c *gin.Context) {
	sess, _ := middleware.Session(c)
	id := c.Param("taskId")

	if !domain.IsCustomID(id) {
		c.JSON(http.StatusOK, gin.H{
			"id":        id,
			"status":    domain.StatusSubmitted,
			"transient": true,
		})
		return
	}

	ctx := c.Request.Context()
	t, err := h.Tasks.GetByID(ctx, id)
	if err != nil || t.OwnerEmail != sess.Email {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}

	t.Status = domain.StatusSubmitted
	err = h.Tasks.Update(ctx, id, sess.Email, t)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit task"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": domain.StatusSubmitted})
}
