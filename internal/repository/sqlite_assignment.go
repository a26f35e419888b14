package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/crewplan/internal/db"
	"github.com/alexanderramin/crewplan/internal/domain"
)

const assignmentColumns = `id, project_id, task_id, resource_id, start_date, end_date,
		allocated_hours, status, estimated_cost, created_at, updated_at`

// SQLiteAssignmentRepo implements AssignmentRepo using a SQLite database.
// Assignments are append-only: there is no update or delete.
type SQLiteAssignmentRepo struct {
	db db.DBTX
}

// NewSQLiteAssignmentRepo creates a new SQLiteAssignmentRepo.
func NewSQLiteAssignmentRepo(db db.DBTX) *SQLiteAssignmentRepo {
	return &SQLiteAssignmentRepo{db: db}
}

func (r *SQLiteAssignmentRepo) Create(ctx context.Context, a *domain.Assignment) error {
	query := `INSERT INTO assignments (` + assignmentColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.ProjectID,
		a.TaskID,
		a.ResourceID,
		formatTime(a.StartDate),
		formatTime(a.EndDate),
		a.AllocatedHours,
		string(a.Status),
		a.EstimatedCost.String(),
		formatTime(a.CreatedAt),
		formatTime(a.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting assignment: %w", err)
	}
	return nil
}

// ListByProject returns the project's assignments in the order they were appended.
func (r *SQLiteAssignmentRepo) ListByProject(ctx context.Context, projectID string) ([]domain.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignments WHERE project_id = ? ORDER BY created_at, rowid`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing assignments by project: %w", err)
	}
	defer rows.Close()

	var assignments []domain.Assignment
	for rows.Next() {
		var a domain.Assignment
		var startStr, endStr, statusStr, costStr, createdAtStr, updatedAtStr string
		if err := rows.Scan(&a.ID, &a.ProjectID, &a.TaskID, &a.ResourceID, &startStr, &endStr,
			&a.AllocatedHours, &statusStr, &costStr, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning assignment: %w", err)
		}
		a.Status = domain.AssignmentStatus(statusStr)

		if a.StartDate, err = parseTime("start_date", startStr); err != nil {
			return nil, err
		}
		if a.EndDate, err = parseTime("end_date", endStr); err != nil {
			return nil, err
		}
		if a.EstimatedCost, err = parseDecimal("estimated_cost", costStr); err != nil {
			return nil, err
		}
		if a.CreatedAt, err = parseTime("created_at", createdAtStr); err != nil {
			return nil, err
		}
		if a.UpdatedAt, err = parseTime("updated_at", updatedAtStr); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating assignments: %w", err)
	}
	return assignments, nil
}

func (r *SQLiteAssignmentRepo) CountByProject(ctx context.Context, projectID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM assignments WHERE project_id = ?`, projectID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting assignments: %w", err)
	}
	return n, nil
}
