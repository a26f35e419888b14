package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/crewplan/internal/db"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
// The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestUoW creates a UnitOfWork backed by the given test database.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}

// TableCounts snapshots the row count of every crewplan table so tests can
// assert that a failed operation left the store untouched.
func TableCounts(t *testing.T, database *sql.DB) map[string]int {
	t.Helper()
	tables := []string{"projects", "tasks", "resources", "assignments", "audit_log", "schedule_entries", "time_blocks"}
	counts := make(map[string]int, len(tables))
	for _, table := range tables {
		var n int
		if err := database.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&n); err != nil {
			t.Fatalf("counting %s: %v", table, err)
		}
		counts[table] = n
	}
	return counts
}
