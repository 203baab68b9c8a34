package handlers

import (
	"student_dashboard/internal/ai"
	"student_dashboard/internal/classroom"
	"student_dashboard/internal/config"
	"student_dashboard/internal/http/middleware"
	"student_dashboard/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Read-only Classroom access plus the identity scopes the session needs.
var googleScopes = []string{
	"https://www.googleapis.com/auth/classroom.courses.readonly",
	"https://www.googleapis.com/auth/classroom.coursework.me.readonly",
	"https://www.googleapis.com/auth/classroom.student-submissions.me.readonly",
	"https://www.googleapis.com/auth/userinfo.email",
	"https://www.googleapis.com/auth/userinfo.profile",
}

type Handler struct {
	DB       *pgxpool.Pool
	Tasks    *repository.TaskRepository
	Subtasks *repository.SubtaskRepository
	Colors   *repository.CourseColorRepository
	AI       *ai.Client
	OAuth    *oauth2.Config
	FrontURL string
}

func NewHandler(db *pgxpool.Pool, cfg *config.Config) *Handler {
	return &Handler{
		DB:       db,
		Tasks:    repository.NewTaskRepository(db),
		Subtasks: repository.NewSubtaskRepository(db),
		Colors:   repository.NewCourseColorRepository(db),
		AI:       ai.NewClient(cfg.OpenAIKey, cfg.OpenAIModel),
		OAuth: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURI,
			Scopes:       googleScopes,
			Endpoint:     google.Endpoint,
		},
		FrontURL: cfg.FrontURL,
	}
}

// source picks the assignment source for this request: the demo fixture when
// ?demo=1 or when the session never linked a Google account, live Classroom
// otherwise.
func (h *Handler) source(c *gin.Context) (classroom.Source, error) {
	sess, _ := middleware.Session(c)
	if c.Query("demo") == "1" || sess.GoogleToken == "" {
		return classroom.Fixture{}, nil
	}
	return classroom.NewClient(c.Request.Context(), sess.GoogleToken)
}
