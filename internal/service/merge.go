package service

import (
	"student_dashboard/internal/classroom"
	"student_dashboard/internal/domain"
)

// MergeInput carries the two task sources for one request. RemoteErr marks a
// partial or failed upstream fetch; the merge proceeds with whatever arrived
// instead of aborting.
type MergeInput struct {
	Remote    []classroom.CourseAssignments
	RemoteErr error
	Custom    []domain.Task
}

// MergeResult is the unified, ordered task sequence plus the upstream error
// marker for the transport layer to surface.
type MergeResult struct {
	Tasks     []domain.Task
	RemoteErr string
}

// Merge combines remote (or fixture) assignments with the owner's custom
// tasks into one normalized sequence. Order is deterministic: remote tasks
// first, grouped by course in fetch order, then custom tasks in stored order.
// Due-date shapes pass through untouched; both are handled by the single
// parse rule downstream.
func Merge(in MergeInput) MergeResult {
	var out MergeResult

	for _, group := range in.Remote {
		for _, t := range group.Tasks {
			t.Origin = domain.OriginRemote
			if t.CourseName == "" {
				t.CourseName = group.Course.Name
			}
			out.Tasks = append(out.Tasks, t)
		}
	}
	for _, t := range in.Custom {
		t.Origin = domain.OriginCustom
		out.Tasks = append(out.Tasks, t)
	}

	if in.RemoteErr != nil {
		out.RemoteErr = in.RemoteErr.Error()
	}
	return out
}
