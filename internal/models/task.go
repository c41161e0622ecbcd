package models

import "strings"

type TaskState string

const (
	TaskStatePending TaskState = "PENDING"
	TaskStateStarted TaskState = "STARTED"
	TaskStateRetry   TaskState = "RETRY"
	TaskStateSuccess TaskState = "SUCCESS"
	TaskStateFailure TaskState = "FAILURE"
	TaskStateRevoked TaskState = "REVOKED"
)

func NormalizeTaskState(s string) TaskState {
	return TaskState(strings.ToUpper(strings.TrimSpace(s)))
}

// TaskStatus is the decoded answer of the task-status endpoint.
type TaskStatus struct {
	State    TaskState `json:"state"`
	Location string    `json:"location,omitempty"`
	Message  string    `json:"message,omitempty"`
}

func (t TaskStatus) IsSuccess() bool {
	return t.State == TaskStateSuccess
}

func (t TaskStatus) IsFailure() bool {
	return t.State == TaskStateFailure || t.State == TaskStateRevoked
}

func (t TaskStatus) IsTerminal() bool {
	return t.IsSuccess() || t.IsFailure()
}
