package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/crewplan/internal/db"
	"github.com/alexanderramin/crewplan/internal/domain"
)

// scheduleSelect joins entries with their blocks so one round trip yields
// whole entries. Rows arrive grouped by resource and date, blocks in
// position order.
const scheduleSelect = `SELECT e.resource_id, e.date, e.total_hours, e.created_at, e.updated_at,
		b.start_time, b.end_time, b.hours, b.project_id, b.task_id, b.type, b.status
	FROM schedule_entries e
	LEFT JOIN time_blocks b ON b.resource_id = e.resource_id AND b.date = e.date`

const scheduleOrder = ` ORDER BY e.resource_id, e.date, b.position`

// SQLiteScheduleRepo implements ScheduleRepo using a SQLite database.
type SQLiteScheduleRepo struct {
	db db.DBTX
}

// NewSQLiteScheduleRepo creates a new SQLiteScheduleRepo.
func NewSQLiteScheduleRepo(db db.DBTX) *SQLiteScheduleRepo {
	return &SQLiteScheduleRepo{db: db}
}

// AppendBlock upserts the (resource, date) entry and appends the block at
// the next position. The entry's created_at is kept from its first write;
// total_hours grows by the block's hours so it stays equal to the block sum.
func (r *SQLiteScheduleRepo) AppendBlock(ctx context.Context, resourceID string, date time.Time, block domain.TimeBlock, at time.Time) error {
	if err := block.Validate(); err != nil {
		return err
	}
	day := formatDate(date)
	now := formatTime(at)

	upsert := `INSERT INTO schedule_entries (resource_id, date, total_hours, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(resource_id, date) DO UPDATE
		SET total_hours = schedule_entries.total_hours + excluded.total_hours,
		    updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, upsert, resourceID, day, block.Hours, now, now); err != nil {
		return fmt.Errorf("upserting schedule entry %s/%s: %w", resourceID, day, err)
	}

	status := block.Status
	if status == "" {
		status = domain.BlockScheduled
	}
	blockType := block.Type
	if blockType == "" {
		blockType = domain.BlockRegular
	}

	insert := `INSERT INTO time_blocks (resource_id, date, position, start_time, end_time, hours,
		project_id, task_id, type, status)
		VALUES (?, ?,
			(SELECT COALESCE(MAX(position), -1) + 1 FROM time_blocks WHERE resource_id = ? AND date = ?),
			?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, insert,
		resourceID, day,
		resourceID, day,
		formatTime(block.StartTime),
		formatTime(block.EndTime),
		block.Hours,
		block.ProjectID,
		block.TaskID,
		string(blockType),
		string(status),
	)
	if err != nil {
		return fmt.Errorf("inserting time block %s/%s: %w", resourceID, day, err)
	}
	return nil
}

func (r *SQLiteScheduleRepo) ListByResource(ctx context.Context, resourceID string, from, to *time.Time) ([]domain.ScheduleEntry, error) {
	where := []string{"e.resource_id = ?"}
	args := []any{resourceID}
	if from != nil {
		where = append(where, "e.date >= ?")
		args = append(args, formatDate(*from))
	}
	if to != nil {
		where = append(where, "e.date <= ?")
		args = append(args, formatDate(*to))
	}

	query := scheduleSelect + ` WHERE ` + strings.Join(where, " AND ") + scheduleOrder
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing schedule for resource: %w", err)
	}
	defer rows.Close()

	grouped, err := scanScheduleRows(rows)
	if err != nil {
		return nil, err
	}
	return grouped[resourceID], nil
}

// ListByResources returns a key for every requested resource, with an
// empty (non-nil) slice when the resource has nothing in range.
func (r *SQLiteScheduleRepo) ListByResources(ctx context.Context, resourceIDs []string, from, to time.Time) (map[string][]domain.ScheduleEntry, error) {
	result := make(map[string][]domain.ScheduleEntry, len(resourceIDs))
	for _, id := range resourceIDs {
		result[id] = []domain.ScheduleEntry{}
	}
	if len(resourceIDs) == 0 {
		return result, nil
	}

	args := make([]any, 0, len(resourceIDs)+2)
	for _, id := range resourceIDs {
		args = append(args, id)
	}
	args = append(args, formatDate(from), formatDate(to))

	query := scheduleSelect +
		` WHERE e.resource_id IN (` + placeholders(len(resourceIDs)) + `) AND e.date >= ? AND e.date <= ?` +
		scheduleOrder
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing schedules for resources: %w", err)
	}
	defer rows.Close()

	grouped, err := scanScheduleRows(rows)
	if err != nil {
		return nil, err
	}
	for id, entries := range grouped {
		result[id] = entries
	}
	return result, nil
}

// ListCommittedDates returns the days in [from, to] on which the resource
// already has a schedule entry, in calendar order.
func (r *SQLiteScheduleRepo) ListCommittedDates(ctx context.Context, resourceID string, from, to time.Time) ([]time.Time, error) {
	query := `SELECT date FROM schedule_entries
		WHERE resource_id = ? AND date >= ? AND date <= ?
		ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query, resourceID, formatDate(from), formatDate(to))
	if err != nil {
		return nil, fmt.Errorf("listing committed dates: %w", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var dateStr string
		if err := rows.Scan(&dateStr); err != nil {
			return nil, fmt.Errorf("scanning committed date: %w", err)
		}
		d, err := parseDate("date", dateStr)
		if err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating committed dates: %w", err)
	}
	return dates, nil
}

// scanScheduleRows folds joined entry/block rows into entries per resource.
func scanScheduleRows(rows *sql.Rows) (map[string][]domain.ScheduleEntry, error) {
	grouped := make(map[string][]domain.ScheduleEntry)
	var current *domain.ScheduleEntry
	var currentKey string

	flush := func() {
		if current != nil {
			grouped[current.ResourceID] = append(grouped[current.ResourceID], *current)
		}
	}

	for rows.Next() {
		var (
			resourceID, dateStr, createdAtStr, updatedAtStr string
			totalHours                                      float64
			startStr, endStr, projectID, taskID             sql.NullString
			blockType, blockStatus                          sql.NullString
			hours                                           sql.NullFloat64
		)
		if err := rows.Scan(&resourceID, &dateStr, &totalHours, &createdAtStr, &updatedAtStr,
			&startStr, &endStr, &hours, &projectID, &taskID, &blockType, &blockStatus); err != nil {
			return nil, fmt.Errorf("scanning schedule row: %w", err)
		}

		key := resourceID + "|" + dateStr
		if current == nil || key != currentKey {
			flush()
			entry, err := newScheduleEntry(resourceID, dateStr, totalHours, createdAtStr, updatedAtStr)
			if err != nil {
				return nil, err
			}
			current, currentKey = entry, key
		}

		if !startStr.Valid {
			continue
		}
		block := domain.TimeBlock{
			Hours:     hours.Float64,
			ProjectID: projectID.String,
			TaskID:    taskID.String,
			Type:      domain.TimeBlockType(blockType.String),
			Status:    domain.TimeBlockStatus(blockStatus.String),
		}
		var err error
		if block.StartTime, err = parseTime("start_time", startStr.String); err != nil {
			return nil, err
		}
		if block.EndTime, err = parseTime("end_time", endStr.String); err != nil {
			return nil, err
		}
		current.TimeBlocks = append(current.TimeBlocks, block)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating schedule rows: %w", err)
	}
	flush()
	return grouped, nil
}

func newScheduleEntry(resourceID, dateStr string, totalHours float64, createdAtStr, updatedAtStr string) (*domain.ScheduleEntry, error) {
	e := &domain.ScheduleEntry{ResourceID: resourceID, TotalHours: totalHours}
	var err error
	if e.Date, err = parseDate("date", dateStr); err != nil {
		return nil, err
	}
	if e.CreatedAt, err = parseTime("created_at", createdAtStr); err != nil {
		return nil, err
	}
	if e.UpdatedAt, err = parseTime("updated_at", updatedAtStr); err != nil {
		return nil, err
	}
	return e, nil
}
