package ports

import (
	"context"

	"github.com/teamtrack/task-tracker/internal/core/domain"
)

// TaskFilter holds the optional list filters. Non-nil fields are combined
// with AND semantics.
type TaskFilter struct {
	Status     *domain.TaskStatus
	Urgency    *domain.TaskUrgency
	TesterID   *string
	AssignedBy *string
}

// EmployeeStatsRow is one aggregated statistics row: task counts for a
// single non-admin user in their capacity as assigned tester.
type EmployeeStatsRow struct {
	UserID          string `json:"user_id" bson:"_id"`
	FullName        string `json:"full_name" bson:"full_name"`
	TotalTasks      int64  `json:"total_tasks" bson:"total_tasks"`
	CompletedTasks  int64  `json:"completed_tasks" bson:"completed_tasks"`
	InProgressTasks int64  `json:"in_progress_tasks" bson:"in_progress_tasks"`
}

// TaskRepository defines the persistence interface for tasks.
type TaskRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	// List returns tasks ordered by created_at descending with id as a
	// deterministic tiebreak, so pagination is reproducible under ties.
	List(ctx context.Context, filter TaskFilter, page, perPage int64) ([]domain.Task, error)
	// Create persists the task and assigns its id and monotone task number.
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) (*domain.Task, error)
	// Delete returns the number of removed documents (0 when absent).
	Delete(ctx context.Context, id string) (int64, error)
	// EmployeeStats aggregates per-tester task counts for every non-admin
	// user, ordered by full name.
	EmployeeStats(ctx context.Context) ([]EmployeeStatsRow, error)
}
