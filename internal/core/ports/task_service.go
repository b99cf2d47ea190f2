package ports

import (
	"context"

	"github.com/teamtrack/task-tracker/internal/core/domain"
)

// CreateTaskInput carries all data needed to open a task. Urgency defaults
// to medium when nil.
type CreateTaskInput struct {
	Title              string
	Description        *string
	TesterID           *string
	Urgency            *domain.TaskUrgency
	AcceptanceCriteria *string
	EvaluationCriteria *string
	Comment            *string
}

// UpdateTaskInput carries a partial task update. Nil fields keep the
// existing value. TesterID set to the empty string clears the assignment;
// omitting it preserves the current assignee.
type UpdateTaskInput struct {
	Title              *string
	Description        *string
	TesterID           *string
	Status             *domain.TaskStatus
	Urgency            *domain.TaskUrgency
	AcceptanceCriteria *string
	EvaluationCriteria *string
	Comment            *string
}

// ListTasksInput carries list filters and pagination. Page numbers are
// 1-based; PerPage is clamped to [1,100], so 0 becomes 1. The default of 20
// for an absent per_page parameter is filled in by the HTTP handlers.
type ListTasksInput struct {
	Filter  TaskFilter
	Page    int64
	PerPage int64
}

// TaskDetail is the full task view including resolved user names.
type TaskDetail struct {
	Task           domain.Task
	AssignedByName *string
	TesterName     *string
}

// TaskService defines the task lifecycle use cases.
type TaskService interface {
	Create(ctx context.Context, ident domain.Identity, in CreateTaskInput) (*TaskDetail, error)
	Get(ctx context.Context, ident domain.Identity, id string) (*TaskDetail, error)
	List(ctx context.Context, ident domain.Identity, in ListTasksInput) ([]domain.Task, error)
	Update(ctx context.Context, ident domain.Identity, id string, in UpdateTaskInput) (*TaskDetail, error)
	Delete(ctx context.Context, ident domain.Identity, id string) error
	EmployeeStats(ctx context.Context, ident domain.Identity) ([]EmployeeStatsRow, error)
}
