package domain

import (
	"fmt"
	"time"
)

// TaskStatus represents the workflow stage of a task. The nominal flow is
// new → in_progress → testing → done/closed, but transitions are
// caller-directed: any authorized update may move a task to any status,
// including backwards. Only the closed_at side effect is system-derived.
type TaskStatus string

const (
	StatusNew        TaskStatus = "new"
	StatusInProgress TaskStatus = "in_progress"
	StatusTesting    TaskStatus = "testing"
	StatusDone       TaskStatus = "done"
	StatusClosed     TaskStatus = "closed"
)

// ParseTaskStatus maps a wire string to a TaskStatus, rejecting unknown values.
func ParseTaskStatus(s string) (TaskStatus, error) {
	switch st := TaskStatus(s); st {
	case StatusNew, StatusInProgress, StatusTesting, StatusDone, StatusClosed:
		return st, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

// Completed reports whether the status counts as finished work (done or
// closed). Entering a completed status stamps closed_at.
func (s TaskStatus) Completed() bool {
	return s == StatusDone || s == StatusClosed
}

// TaskUrgency classifies task priority, independent of workflow status.
type TaskUrgency string

const (
	UrgencyLow      TaskUrgency = "low"
	UrgencyMedium   TaskUrgency = "medium"
	UrgencyHigh     TaskUrgency = "high"
	UrgencyCritical TaskUrgency = "critical"
)

// ParseTaskUrgency maps a wire string to a TaskUrgency, rejecting unknown values.
func ParseTaskUrgency(s string) (TaskUrgency, error) {
	switch u := TaskUrgency(s); u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyCritical:
		return u, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownUrgency, s)
}

// Task is the core aggregate. AssignedBy (the creator) and TaskNumber are
// set at creation and never change. ClosedAt is derived from status updates;
// it is never cleared when a task re-enters an open status.
type Task struct {
	ID                 string      `json:"id" bson:"_id"`
	TaskNumber         int64       `json:"task_number" bson:"task_number"`
	Title              string      `json:"title" bson:"title"`
	Description        *string     `json:"description,omitempty" bson:"description,omitempty"`
	AssignedBy         string      `json:"assigned_by" bson:"assigned_by"`
	TesterID           *string     `json:"tester_id,omitempty" bson:"tester_id,omitempty"`
	Status             TaskStatus  `json:"status" bson:"status"`
	Urgency            TaskUrgency `json:"urgency" bson:"urgency"`
	CreatedAt          time.Time   `json:"created_at" bson:"created_at"`
	ClosedAt           *time.Time  `json:"closed_at,omitempty" bson:"closed_at,omitempty"`
	AcceptanceCriteria *string     `json:"acceptance_criteria,omitempty" bson:"acceptance_criteria,omitempty"`
	EvaluationCriteria *string     `json:"evaluation_criteria,omitempty" bson:"evaluation_criteria,omitempty"`
	Comment            *string     `json:"comment,omitempty" bson:"comment,omitempty"`
}
