package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/teamtrack/task-tracker/internal/core/domain"
	"github.com/teamtrack/task-tracker/internal/core/ports"
)

const maxPerPage = 100

// clampPagination normalizes 1-based pagination: page >= 1, perPage clamped
// into [1, maxPerPage]. An explicit perPage of 0 clamps to 1 like any other
// out-of-range value; the default for an absent parameter is applied at the
// HTTP boundary.
func clampPagination(page, perPage int64) (int64, int64) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 1
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return page, perPage
}

// StatsCache abstracts the short-lived statistics cache (Redis). A miss is
// (nil, false, nil); cache failures are non-fatal.
type StatsCache interface {
	Get(ctx context.Context) ([]ports.EmployeeStatsRow, bool, error)
	Set(ctx context.Context, rows []ports.EmployeeStatsRow) error
}

// TaskService implements the task lifecycle: authorization-gated CRUD,
// the derived closed_at side effect, and employee statistics.
type TaskService struct {
	repo     ports.TaskRepository
	userRepo ports.UserRepository
	stats    StatsCache
	logger   zerolog.Logger
}

func NewTaskService(repo ports.TaskRepository, userRepo ports.UserRepository, stats StatsCache, logger zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, userRepo: userRepo, stats: stats, logger: logger}
}

// Create opens a new task with the caller as creator. Status always starts
// at new; urgency defaults to medium when omitted.
func (s *TaskService) Create(ctx context.Context, ident domain.Identity, in ports.CreateTaskInput) (*ports.TaskDetail, error) {
	if !CanCreateOrEditTask(ident.Role) {
		return nil, domain.ErrForbidden
	}

	urgency := domain.UrgencyMedium
	if in.Urgency != nil {
		urgency = *in.Urgency
	}

	task := &domain.Task{
		Title:              in.Title,
		Description:        in.Description,
		AssignedBy:         ident.UserID,
		TesterID:           in.TesterID,
		Status:             domain.StatusNew,
		Urgency:            urgency,
		CreatedAt:          time.Now().UTC(),
		AcceptanceCriteria: in.AcceptanceCriteria,
		EvaluationCriteria: in.EvaluationCriteria,
		Comment:            in.Comment,
	}

	created, err := s.repo.Create(ctx, task)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create task")
		return nil, err
	}

	s.logger.Info().Int64("task_number", created.TaskNumber).Str("assigned_by", ident.UserID).Msg("task created")
	return s.detail(ctx, created), nil
}

// Get returns a task with resolved creator/tester names. Any authenticated
// caller may read any task.
func (s *TaskService) Get(ctx context.Context, ident domain.Identity, id string) (*ports.TaskDetail, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.detail(ctx, task), nil
}

func (s *TaskService) List(ctx context.Context, ident domain.Identity, in ports.ListTasksInput) ([]domain.Task, error) {
	page, perPage := clampPagination(in.Page, in.PerPage)
	return s.repo.List(ctx, in.Filter, page, perPage)
}

// Update applies a partial task update: present fields replace, absent
// fields keep their current value. The tester assignment is cleared only by
// explicitly sending an empty id.
//
// closed_at derivation: entering done/closed stamps the current time only
// when closed_at was still null, so re-closing is idempotent. Moving a task
// back to an open status leaves closed_at untouched — behaviour carried
// over from the legacy system, kept for compatibility.
func (s *TaskService) Update(ctx context.Context, ident domain.Identity, id string, in ports.UpdateTaskInput) (*ports.TaskDetail, error) {
	if !CanCreateOrEditTask(ident.Role) {
		return nil, domain.ErrForbidden
	}

	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		task.Title = *in.Title
	}
	if in.Description != nil {
		task.Description = in.Description
	}
	if in.TesterID != nil {
		if *in.TesterID == "" {
			task.TesterID = nil
		} else {
			task.TesterID = in.TesterID
		}
	}
	if in.Status != nil {
		task.Status = *in.Status
	}
	if in.Urgency != nil {
		task.Urgency = *in.Urgency
	}
	if in.AcceptanceCriteria != nil {
		task.AcceptanceCriteria = in.AcceptanceCriteria
	}
	if in.EvaluationCriteria != nil {
		task.EvaluationCriteria = in.EvaluationCriteria
	}
	if in.Comment != nil {
		task.Comment = in.Comment
	}

	if task.Status.Completed() && task.ClosedAt == nil {
		now := time.Now().UTC()
		task.ClosedAt = &now
	}

	updated, err := s.repo.Update(ctx, task)
	if err != nil {
		return nil, err
	}

	return s.detail(ctx, updated), nil
}

// Delete removes a task. Only the creator or a manager may delete; admins
// never manage tasks.
func (s *TaskService) Delete(ctx context.Context, ident domain.Identity, id string) error {
	if !CanCreateOrEditTask(ident.Role) {
		return domain.ErrForbidden
	}

	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !CanDeleteTask(ident.Role, task.AssignedBy, ident.UserID) {
		return domain.ErrForbidden
	}

	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrTaskNotFound
	}

	s.logger.Info().Int64("task_number", task.TaskNumber).Str("deleted_by", ident.UserID).Msg("task deleted")
	return nil
}

// EmployeeStats returns per-tester task counts for every non-admin user,
// ordered by full name. Managers and admins only. Results are served from
// the cache when fresh; cache failures fall through to the repository.
func (s *TaskService) EmployeeStats(ctx context.Context, ident domain.Identity) ([]ports.EmployeeStatsRow, error) {
	if !CanViewStatistics(ident.Role) {
		return nil, domain.ErrForbidden
	}

	if s.stats != nil {
		rows, ok, err := s.stats.Get(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("stats cache read failed, querying storage")
		} else if ok {
			return rows, nil
		}
	}

	rows, err := s.repo.EmployeeStats(ctx)
	if err != nil {
		return nil, err
	}

	if s.stats != nil {
		if err := s.stats.Set(ctx, rows); err != nil {
			s.logger.Warn().Err(err).Msg("failed to populate stats cache")
		}
	}

	return rows, nil
}

// detail resolves creator and tester display names. Name lookups are
// best-effort: a missing user simply leaves the name nil.
func (s *TaskService) detail(ctx context.Context, task *domain.Task) *ports.TaskDetail {
	d := &ports.TaskDetail{Task: *task}
	d.AssignedByName = s.fullName(ctx, task.AssignedBy)
	if task.TesterID != nil {
		d.TesterName = s.fullName(ctx, *task.TesterID)
	}
	return d
}

func (s *TaskService) fullName(ctx context.Context, userID string) *string {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Warn().Err(err).Str("user_id", userID).Msg("name lookup failed")
		}
		return nil
	}
	return &user.FullName
}
