package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/crewplan/internal/db"
	"github.com/alexanderramin/crewplan/internal/domain"
)

// SQLiteAuditRepo implements AuditRepo on the audit_log table.
type SQLiteAuditRepo struct {
	db db.DBTX
}

// NewSQLiteAuditRepo creates a new SQLiteAuditRepo.
func NewSQLiteAuditRepo(db db.DBTX) *SQLiteAuditRepo {
	return &SQLiteAuditRepo{db: db}
}

func (r *SQLiteAuditRepo) Append(ctx context.Context, e domain.AuditEntry) error {
	query := `INSERT INTO audit_log (entity_type, entity_id, at, actor, field, old_value, new_value)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		string(e.EntityType),
		e.EntityID,
		formatTime(e.At),
		e.Actor,
		e.Field,
		e.OldValue,
		e.NewValue,
	)
	if err != nil {
		return fmt.Errorf("appending %s audit entry: %w", e.EntityType, err)
	}
	return nil
}

// ListByEntity returns the entity's audit trail, oldest first.
func (r *SQLiteAuditRepo) ListByEntity(ctx context.Context, entityType domain.EntityType, entityID string) ([]domain.AuditEntry, error) {
	query := `SELECT entity_type, entity_id, at, actor, field, old_value, new_value
		FROM audit_log WHERE entity_type = ? AND entity_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, string(entityType), entityID)
	if err != nil {
		return nil, fmt.Errorf("listing audit entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.AuditEntry
	for rows.Next() {
		var e domain.AuditEntry
		var typeStr, atStr string
		if err := rows.Scan(&typeStr, &e.EntityID, &atStr, &e.Actor, &e.Field, &e.OldValue, &e.NewValue); err != nil {
			return nil, fmt.Errorf("scanning audit entry: %w", err)
		}
		e.EntityType = domain.EntityType(typeStr)
		if e.At, err = parseTime("at", atStr); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating audit entries: %w", err)
	}
	return entries, nil
}
