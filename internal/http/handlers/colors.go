package handlers

import (
	"errors"
	"net/http"
	"regexp"

	"student_dashboard/internal/domain"
	"student_dashboard/internal/http/middleware"
	"student_dashboard/internal/repository"
	"student_dashboard/internal/service"

	"github.com/gin-gonic/gin"
)

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func (h *Handler) GetCourseColors(c *gin.Context) {
	sess, _ := middleware.Session(c)

	colors, err := h.Colors.All(c.Request.Context(), sess.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load colors"})
		return
	}
	c.JSON(http.StatusOK, colors)
}

func (h *Handler) SetCourseColor(c *gin.Context) {
	sess, _ := middleware.Session(c)

	var req struct {
		CourseName string `json:"course_name"`
		Color      string `json:"color"`
	}
	if err := c.BindJSON(&req); err != nil || req.CourseName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "course_name is required"})
		return
	}
	if !hexColorRe.MatchString(req.Color) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "color must be #rrggbb"})
		return
	}

	pref := domain.CourseColor{
		OwnerEmail: sess.Email,
		CourseName: req.CourseName,
		Color:      req.Color,
	}
	if err := h.Colors.Set(c.Request.Context(), &pref); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save color"})
		return
	}
	c.JSON(http.StatusOK, pref)
}

func (h *Handler) DeleteCourseColor(c *gin.Context) {
	sess, _ := middleware.Session(c)

	err := h.Colors.Delete(c.Request.Context(), sess.Email, c.Param("courseName"))
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "color not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete color"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Courses returns the current source's course list with resolved display
// colors and a readable text color for each.
func (h *Handler) Courses(c *gin.Context) {
	sess, _ := middleware.Session(c)
	ctx := c.Request.Context()

	src, err := h.source(c)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "classroom unavailable"})
		return
	}
	courses, err := src.Courses(ctx)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load courses"})
		return
	}

	prefs, err := h.Colors.All(ctx, sess.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load colors"})
		return
	}
	resolver := service.ColorResolver{Prefs: prefs, Live: courses}

	type courseView struct {
		domain.Course
		TextColor string `json:"text_color"`
	}
	out := make([]courseView, 0, len(courses))
	for _, course := range courses {
		course.Color = resolver.Resolve(course.ID, course.Name)
		out = append(out, courseView{
			Course:    course,
			TextColor: service.ContrastingText(course.Color),
		})
	}
	c.JSON(http.StatusOK, out)
}
