package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is safe to re-run.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ... ADD COLUMN has no IF NOT EXISTS form in SQLite.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS resources (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id                   TEXT PRIMARY KEY,
		project_id           TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		title                TEXT NOT NULL,
		assigned_resource_id TEXT REFERENCES resources(id) ON DELETE SET NULL,
		created_at           TEXT NOT NULL,
		updated_at           TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_project ON tasks(project_id)`,

	`CREATE TABLE IF NOT EXISTS assignments (
		id              TEXT PRIMARY KEY,
		project_id      TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		task_id         TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		resource_id     TEXT NOT NULL REFERENCES resources(id),
		start_date      TEXT NOT NULL,
		end_date        TEXT NOT NULL,
		allocated_hours REAL NOT NULL CHECK(allocated_hours > 0),
		status          TEXT NOT NULL DEFAULT 'active'
		                CHECK(status IN ('proposed','active','completed','cancelled')),
		estimated_cost  TEXT NOT NULL DEFAULT '0',
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_assignments_project ON assignments(project_id, created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_assignments_resource ON assignments(resource_id)`,

	`CREATE TABLE IF NOT EXISTS audit_log (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		entity_type TEXT NOT NULL CHECK(entity_type IN ('project','task')),
		entity_id   TEXT NOT NULL,
		at          TEXT NOT NULL,
		actor       TEXT NOT NULL,
		field       TEXT NOT NULL,
		old_value   TEXT NOT NULL DEFAULT '',
		new_value   TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE INDEX IF NOT EXISTS idx_audit_entity ON audit_log(entity_type, entity_id, id)`,

	`CREATE TABLE IF NOT EXISTS schedule_entries (
		resource_id TEXT NOT NULL REFERENCES resources(id) ON DELETE CASCADE,
		date        TEXT NOT NULL,
		total_hours REAL NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL,
		PRIMARY KEY (resource_id, date)
	)`,

	`CREATE TABLE IF NOT EXISTS time_blocks (
		resource_id TEXT NOT NULL,
		date        TEXT NOT NULL,
		position    INTEGER NOT NULL,
		start_time  TEXT NOT NULL,
		end_time    TEXT NOT NULL,
		hours       REAL NOT NULL CHECK(hours > 0),
		project_id  TEXT NOT NULL,
		task_id     TEXT NOT NULL,
		type        TEXT NOT NULL DEFAULT 'regular'
		            CHECK(type IN ('regular','overtime','time_off','other')),
		PRIMARY KEY (resource_id, date, position),
		FOREIGN KEY (resource_id, date) REFERENCES schedule_entries(resource_id, date) ON DELETE CASCADE
	)`,

	// Billing rate arrived after the first release; stored as a decimal string.
	`ALTER TABLE resources ADD COLUMN hourly_rate TEXT NOT NULL DEFAULT '0'`,

	// Block status tracks the lifecycle of the underlying assignment.
	`ALTER TABLE time_blocks ADD COLUMN status TEXT NOT NULL DEFAULT 'scheduled'`,
}
