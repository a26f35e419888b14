package service

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/alexanderramin/crewplan/internal/db"
	"github.com/alexanderramin/crewplan/internal/domain"
	"github.com/alexanderramin/crewplan/internal/repository"
	"github.com/alexanderramin/crewplan/internal/testutil"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 1, 15, 8, 30, 0, 0, time.UTC)

// harness wires every repository and service against one in-memory database.
type harness struct {
	db          *sql.DB
	projects    *repository.SQLiteProjectRepo
	tasks       *repository.SQLiteTaskRepo
	resources   *repository.SQLiteResourceRepo
	assignments *repository.SQLiteAssignmentRepo
	audit       *repository.SQLiteAuditRepo
	schedules   *repository.SQLiteScheduleRepo
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	database := testutil.NewTestDB(t)
	return &harness{
		db:          database,
		projects:    repository.NewSQLiteProjectRepo(database),
		tasks:       repository.NewSQLiteTaskRepo(database),
		resources:   repository.NewSQLiteResourceRepo(database),
		assignments: repository.NewSQLiteAssignmentRepo(database),
		audit:       repository.NewSQLiteAuditRepo(database),
		schedules:   repository.NewSQLiteScheduleRepo(database),
	}
}

// sequentialIDs yields prefix-1, prefix-2, ... so assertions can name IDs.
func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func testOptions(extra ...Option) []Option {
	opts := []Option{
		WithIDGenerator(sequentialIDs("asg")),
		WithClock(func() time.Time { return fixedNow }),
	}
	return append(opts, extra...)
}

func (h *harness) assignmentService(uow db.UnitOfWork, opts ...Option) AssignmentService {
	return NewAssignmentService(h.projects, h.tasks, h.resources, h.schedules, uow, testOptions(opts...)...)
}

func (h *harness) scheduleService(opts ...Option) ScheduleService {
	return NewScheduleService(h.schedules, opts...)
}

type seed struct {
	project  *domain.Project
	task     *domain.Task
	resource *domain.Resource
}

func (h *harness) seed(t *testing.T, resourceOpts ...testutil.ResourceOption) seed {
	t.Helper()
	ctx := context.Background()

	p := testutil.NewTestProject("Apollo")
	require.NoError(t, h.projects.Create(ctx, p))
	task := testutil.NewTestTask(p.ID, "Guidance software")
	require.NoError(t, h.tasks.Create(ctx, task))
	r := testutil.NewTestResource("Margaret", resourceOpts...)
	require.NoError(t, h.resources.Create(ctx, r))
	return seed{project: p, task: task, resource: r}
}

// addResource inserts one more resource for multi-resource tests.
func (h *harness) addResource(t *testing.T, name string) *domain.Resource {
	t.Helper()
	r := testutil.NewTestResource(name)
	require.NoError(t, h.resources.Create(context.Background(), r))
	return r
}

// addTask inserts one more task in the seeded project.
func (h *harness) addTask(t *testing.T, projectID, title string) *domain.Task {
	t.Helper()
	task := testutil.NewTestTask(projectID, title)
	require.NoError(t, h.tasks.Create(context.Background(), task))
	return task
}

// countingScheduleRepo records how many reads reach the store.
type countingScheduleRepo struct {
	repository.ScheduleRepo
	reads int
}

func (c *countingScheduleRepo) ListByResource(ctx context.Context, id string, from, to *time.Time) ([]domain.ScheduleEntry, error) {
	c.reads++
	return c.ScheduleRepo.ListByResource(ctx, id, from, to)
}

func (c *countingScheduleRepo) ListByResources(ctx context.Context, ids []string, from, to time.Time) (map[string][]domain.ScheduleEntry, error) {
	c.reads++
	return c.ScheduleRepo.ListByResources(ctx, ids, from, to)
}

func (c *countingScheduleRepo) ListCommittedDates(ctx context.Context, id string, from, to time.Time) ([]time.Time, error) {
	c.reads++
	return c.ScheduleRepo.ListCommittedDates(ctx, id, from, to)
}
