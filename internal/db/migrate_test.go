package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func seedProjectTaskResource(t *testing.T, db *sql.DB) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO projects (id, name, created_at, updated_at)
		VALUES ('p1', 'Apollo', '2024-01-01T00:00:00Z', '2024-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO resources (id, name, created_at, updated_at)
		VALUES ('r1', 'Ada', '2024-01-01T00:00:00Z', '2024-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO tasks (id, project_id, title, created_at, updated_at)
		VALUES ('t1', 'p1', 'Design', '2024-01-01T00:00:00Z', '2024-01-01T00:00:00Z')`)
	require.NoError(t, err)
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	expected := []string{"projects", "resources", "tasks", "assignments", "audit_log", "schedule_entries", "time_blocks"}
	for _, table := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	expected := []string{
		"idx_tasks_project",
		"idx_assignments_project",
		"idx_assignments_resource",
		"idx_audit_entity",
	}
	for _, idx := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_ForeignKeysEnabled(t *testing.T) {
	db := openTestDB(t)

	var fk int
	require.NoError(t, db.QueryRow(`PRAGMA foreign_keys`).Scan(&fk))
	assert.Equal(t, 1, fk)
}

func TestMigrate_AddedColumnsPresent(t *testing.T) {
	db := openTestDB(t)

	assert.True(t, hasColumn(t, db, "resources", "hourly_rate"))
	assert.True(t, hasColumn(t, db, "time_blocks", "status"))
}

func TestMigrate_ScheduleEntryPrimaryKey_OnePerResourceDay(t *testing.T) {
	db := openTestDB(t)
	seedProjectTaskResource(t, db)

	insert := `INSERT INTO schedule_entries (resource_id, date, total_hours, created_at, updated_at)
		VALUES ('r1', '2024-02-01', 8, '2024-01-01T00:00:00Z', '2024-01-01T00:00:00Z')`
	_, err := db.Exec(insert)
	require.NoError(t, err)
	_, err = db.Exec(insert)
	assert.Error(t, err, "a second entry for the same resource-day must be rejected")
}

func TestMigrate_AssignmentStatusCheckConstraint(t *testing.T) {
	db := openTestDB(t)
	seedProjectTaskResource(t, db)

	_, err := db.Exec(`INSERT INTO assignments (id, project_id, task_id, resource_id, start_date, end_date,
		allocated_hours, status, created_at, updated_at)
		VALUES ('a1', 'p1', 't1', 'r1', '2024-02-01T00:00:00Z', '2024-02-02T00:00:00Z', 12, 'paused',
		'2024-01-01T00:00:00Z', '2024-01-01T00:00:00Z')`)
	assert.Error(t, err, "unknown status should be rejected by CHECK constraint")
}

func TestMigrate_TimeBlockRequiresScheduleEntry(t *testing.T) {
	db := openTestDB(t)
	seedProjectTaskResource(t, db)

	_, err := db.Exec(`INSERT INTO time_blocks (resource_id, date, position, start_time, end_time, hours, project_id, task_id)
		VALUES ('r1', '2024-02-01', 0, '2024-02-01T09:00:00Z', '2024-02-01T17:00:00Z', 8, 'p1', 't1')`)
	assert.Error(t, err, "blocks without a parent entry should violate the foreign key")
}

func hasColumn(t *testing.T, db *sql.DB, table, column string) bool {
	t.Helper()
	rows, err := db.Query(`PRAGMA table_info(` + table + `)`)
	require.NoError(t, err)
	defer rows.Close()

	found := false
	for rows.Next() {
		var cid int
		var name, typ string
		var notNull, pk int
		var dflt sql.NullString
		require.NoError(t, rows.Scan(&cid, &name, &typ, &notNull, &dflt, &pk))
		if name == column {
			found = true
		}
	}
	require.NoError(t, rows.Err())
	return found
}
