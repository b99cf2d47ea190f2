package handler

import (
	"github.com/teamtrack/task-tracker/internal/core/domain"
	"github.com/teamtrack/task-tracker/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type createTaskRequest struct {
	Title              string  `json:"title"                         validate:"required,min=1,max=200"`
	Description        *string `json:"description,omitempty"`
	TesterID           *string `json:"tester_id,omitempty"`
	Urgency            *string `json:"urgency,omitempty"             validate:"omitempty,oneof=low medium high critical"`
	AcceptanceCriteria *string `json:"acceptance_criteria,omitempty"`
	EvaluationCriteria *string `json:"evaluation_criteria,omitempty"`
	Comment            *string `json:"comment,omitempty"`
}

// updateTaskRequest carries a partial update. Absent fields keep their
// current value. An explicitly empty tester_id clears the assignment.
type updateTaskRequest struct {
	Title              *string `json:"title,omitempty"               validate:"omitempty,min=1,max=200"`
	Description        *string `json:"description,omitempty"`
	TesterID           *string `json:"tester_id,omitempty"`
	Status             *string `json:"status,omitempty"              validate:"omitempty,oneof=new in_progress testing done closed"`
	Urgency            *string `json:"urgency,omitempty"             validate:"omitempty,oneof=low medium high critical"`
	AcceptanceCriteria *string `json:"acceptance_criteria,omitempty"`
	EvaluationCriteria *string `json:"evaluation_criteria,omitempty"`
	Comment            *string `json:"comment,omitempty"`
}

// taskResponse is the full task view, extending the domain shape with the
// resolved creator and tester display names.
type taskResponse struct {
	domain.Task
	AssignedByName *string `json:"assigned_by_name,omitempty"`
	TesterName     *string `json:"tester_name,omitempty"`
}

func newTaskResponse(d *ports.TaskDetail) taskResponse {
	return taskResponse{
		Task:           d.Task,
		AssignedByName: d.AssignedByName,
		TesterName:     d.TesterName,
	}
}

// taskSummaryResponse is the lightweight item used in list responses.
type taskSummaryResponse struct {
	ID         string             `json:"id"`
	TaskNumber int64              `json:"task_number"`
	Title      string             `json:"title"`
	Status     domain.TaskStatus  `json:"status"`
	Urgency    domain.TaskUrgency `json:"urgency"`
}

func newTaskSummaries(tasks []domain.Task) []taskSummaryResponse {
	out := make([]taskSummaryResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, taskSummaryResponse{
			ID:         t.ID,
			TaskNumber: t.TaskNumber,
			Title:      t.Title,
			Status:     t.Status,
			Urgency:    t.Urgency,
		})
	}
	return out
}
