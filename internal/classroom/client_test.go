package classroom

import (
	"testing"

	"student_dashboard/internal/domain"

	classroomapi "google.golang.org/api/classroom/v1"
)

func TestSubmissionStatus(t *testing.T) {
	cases := []struct {
		name string
		sub  *classroomapi.StudentSubmission
		want domain.Status
	}{
		{
			name: "turned in",
			sub:  &classroomapi.StudentSubmission{State: "TURNED_IN"},
			want: domain.StatusSubmitted,
		},
		{
			name: "returned counts as submitted",
			sub:  &classroomapi.StudentSubmission{State: "RETURNED"},
			want: domain.StatusSubmitted,
		},
		{
			name: "untouched assignment",
			sub:  &classroomapi.StudentSubmission{State: "CREATED"},
			want: domain.StatusPending,
		},
		{
			name: "draft with attached work is in progress",
			sub: &classroomapi.StudentSubmission{
				State: "CREATED",
				AssignmentSubmission: &classroomapi.AssignmentSubmission{
					Attachments: []*classroomapi.Attachment{{}},
				},
			},
			want: domain.StatusInProgress,
		},
		{
			name: "empty draft stays pending",
			sub: &classroomapi.StudentSubmission{
				State:                "NEW",
				AssignmentSubmission: &classroomapi.AssignmentSubmission{},
			},
			want: domain.StatusPending,
		},
	}

	for _, tc := range cases {
		if got := submissionStatus(tc.sub); got != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.name, tc.want, got)
		}
	}
}
