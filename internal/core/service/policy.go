package service

import "github.com/teamtrack/task-tracker/internal/core/domain"

// Pure access-control decisions over (role, caller id, resource owner id).
// Reads require authentication only; these functions gate mutations and the
// statistics view.

// CanManageUsers reports whether the role may create, edit, list, or delete
// user accounts. Admin only.
func CanManageUsers(role domain.Role) bool {
	return role == domain.RoleAdmin
}

// CanCreateOrEditTask reports whether the role may author or edit tasks.
// Every role except admin: administrators are excluded from task work.
func CanCreateOrEditTask(role domain.Role) bool {
	return role != domain.RoleAdmin
}

// CanDeleteTask reports whether the caller may delete a task. Managers may
// delete any task; other roles only their own. Admins never manage tasks,
// so they are denied outright.
func CanDeleteTask(role domain.Role, creatorID, callerID string) bool {
	if role == domain.RoleAdmin {
		return false
	}
	return role == domain.RoleManager || creatorID == callerID
}

// CanViewStatistics reports whether the role may read employee statistics.
func CanViewStatistics(role domain.Role) bool {
	return role == domain.RoleManager || role == domain.RoleAdmin
}
