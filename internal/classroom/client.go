package classroom

import (
	"context"
	"fmt"

	"student_dashboard/internal/domain"

	"golang.org/x/oauth2"
	classroomapi "google.golang.org/api/classroom/v1"
	"google.golang.org/api/option"
)

// Client reads courses and course work from the Google Classroom API using
// the access token of the requesting user. A Client is built per request from
// the auth context; it holds no shared state.
type Client struct {
	srv *classroomapi.Service
}

// NewClient builds a Classroom client around the user's OAuth access token.
func NewClient(ctx context.Context, token string) (*Client, error) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	srv, err := classroomapi.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("classroom service: %w", err)
	}
	return &Client{srv: srv}, nil
}

func (c *Client) Courses(ctx context.Context) ([]domain.Course, error) {
	resp, err := c.srv.Courses.List().
		CourseStates("ACTIVE", "ARCHIVED", "PROVISIONED").
		PageSize(100).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}

	var courses []domain.Course
	for _, course := range resp.Courses {
		courses = append(courses, domain.Course{
			ID:      course.Id,
			Name:    course.Name,
			Section: course.Section,
		})
	}
	return courses, nil
}

// Assignments fetches every course's course work, tagging each item with the
// submission state when one exists. Courses stay in the order the API
// returned them, course work in the order it was fetched; the merge engine
// relies on that.
func (c *Client) Assignments(ctx context.Context) ([]CourseAssignments, error) {
	courses, err := c.Courses(ctx)
	if err != nil {
		return nil, err
	}

	var groups []CourseAssignments
	for _, course := range courses {
		tasks, err := c.courseWork(ctx, course)
		if err != nil {
			return groups, err
		}
		groups = append(groups, CourseAssignments{Course: course, Tasks: tasks})
	}
	return groups, nil
}

func (c *Client) courseWork(ctx context.Context, course domain.Course) ([]domain.Task, error) {
	resp, err := c.srv.Courses.CourseWork.List(course.ID).
		PageSize(100).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("list course work for %s: %w", course.ID, err)
	}

	states, err := c.submissionStates(ctx, course.ID)
	if err != nil {
		// Course work without submission data is still useful; default to
		// PENDING rather than dropping the course.
		states = nil
	}

	var tasks []domain.Task
	for _, work := range resp.CourseWork {
		t := domain.Task{
			ID:         domain.RemoteIDPrefix + work.Id,
			CourseID:   course.ID,
			CourseName: course.Name,
			Title:      work.Title,
			Status:     domain.StatusPending,
			Origin:     domain.OriginRemote,
		}
		if work.DueDate != nil {
			// Preserved in the structured shape Classroom sends.
			t.DueDate = domain.NewStructuredDueDate(int(work.DueDate.Year), int(work.DueDate.Month), int(work.DueDate.Day))
		}
		if s, ok := states[work.Id]; ok {
			t.Status = s
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// submissionStates maps course work ids to board statuses via the student's
// own submissions. courseWorkId "-" asks for submissions across all course
// work in one call.
func (c *Client) submissionStates(ctx context.Context, courseID string) (map[string]domain.Status, error) {
	resp, err := c.srv.Courses.CourseWork.StudentSubmissions.List(courseID, "-").
		Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	states := make(map[string]domain.Status)
	for _, sub := range resp.StudentSubmissions {
		states[sub.CourseWorkId] = submissionStatus(sub)
	}
	return states, nil
}

// submissionStatus maps a Classroom submission to a board status. Turned-in
// and returned work is SUBMITTED; a draft that already carries attachments
// counts as started and shows IN_PROGRESS; everything else is PENDING.
func submissionStatus(sub *classroomapi.StudentSubmission) domain.Status {
	switch sub.State {
	case "TURNED_IN", "RETURNED":
		return domain.StatusSubmitted
	}
	if sub.AssignmentSubmission != nil && len(sub.AssignmentSubmission.Attachments) > 0 {
		return domain.StatusInProgress
	}
	return domain.StatusPending
}
