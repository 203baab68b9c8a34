package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"student_dashboard/internal/domain"
	"student_dashboard/internal/service"

	"github.com/gin-gonic/gin"
)

func TestTaskRequestNormalize_Defaults(t *testing.T) {
	req := taskRequest{Title: "Read chapter 4"}
	if err := req.normalize(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.CourseName != "Custom" {
		t.Fatalf("expected course name to default to Custom, got %q", req.CourseName)
	}
	if req.Status != domain.StatusPending {
		t.Fatalf("expected status to default to PENDING, got %q", req.Status)
	}
}

func TestTaskRequestNormalize_KeepsProvidedValues(t *testing.T) {
	req := taskRequest{Title: "Essay", CourseName: "History", Status: domain.StatusInProgress}
	if err := req.normalize(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.CourseName != "History" || req.Status != domain.StatusInProgress {
		t.Fatalf("provided values overwritten: %+v", req)
	}
}

func TestTaskRequestNormalize_Rejects(t *testing.T) {
	if err := (&taskRequest{CourseName: "Math"}).normalize(); err == nil {
		t.Fatalf("expected error for missing title")
	}
	if err := (&taskRequest{Title: "x", Status: "DONE"}).normalize(); err == nil {
		t.Fatalf("expected error for unknown status")
	}
}

// A create without a title must be rejected before any store access; the
// handler here runs with no repositories wired, so reaching the store would
// panic the test.
func TestCreateCustomTask_MissingTitle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/api/custom-tasks",
		strings.NewReader(`{"course_name":"Math"}`))
	c.Set("session", service.Session{Email: "a@b.com"})

	h := &Handler{}
	h.CreateCustomTask(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
