package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/alexanderramin/crewplan/internal/app"
	"github.com/alexanderramin/crewplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Exec order inside the writer's transaction:
//
//	#1 assignments.Create
//	#2 projects.Touch
//	#3 project audit append
//	#4 tasks.SetAssignedResource
//	#5 task audit append
//	#6.. two per planned day (entry upsert, block insert)
const writerExecsBeforeBlocks = 5

func TestCreateAssignment_RollsBackOnAnyFailedWrite(t *testing.T) {
	// Two planned days, so the last exec is the second day's block insert.
	totalExecs := writerExecsBeforeBlocks + 2*2

	for failOn := 1; failOn <= totalExecs; failOn++ {
		t.Run(fmt.Sprintf("exec_%d", failOn), func(t *testing.T) {
			h := newHarness(t)
			s := h.seed(t)
			before := testutil.TableCounts(t, h.db)

			uow := &testutil.FailOnNthExecUoW{
				DB:     h.db,
				FailOn: int32(failOn),
				Err:    fmt.Errorf("injected failure on exec %d", failOn),
			}
			svc := h.assignmentService(uow)

			_, err := svc.CreateAssignment(context.Background(), requestFor(s, "2024-02-01", "2024-02-02", 12))
			require.Error(t, err)
			assert.Equal(t, app.ErrInternal, app.CodeOf(err))
			assert.Contains(t, err.Error(), "injected failure")

			assert.Equal(t, before, testutil.TableCounts(t, h.db), "nothing may survive a failed commit")

			task, err := h.tasks.GetByID(context.Background(), s.task.ID)
			require.NoError(t, err)
			assert.Nil(t, task.AssignedResourceID)
		})
	}
}

func TestCreateAssignment_FailAfterLastExecCommits(t *testing.T) {
	h := newHarness(t)
	s := h.seed(t)

	// One past the last write never fires, so the commit goes through.
	uow := &testutil.FailOnNthExecUoW{
		DB:     h.db,
		FailOn: int32(writerExecsBeforeBlocks + 2*2 + 1),
		Err:    errors.New("never reached"),
	}
	svc := h.assignmentService(uow)

	_, err := svc.CreateAssignment(context.Background(), requestFor(s, "2024-02-01", "2024-02-02", 12))
	require.NoError(t, err)

	counts := testutil.TableCounts(t, h.db)
	assert.Equal(t, 1, counts["assignments"])
	assert.Equal(t, 2, counts["audit_log"])
	assert.Equal(t, 2, counts["schedule_entries"])
	assert.Equal(t, 2, counts["time_blocks"])
}

func TestCreateAssignment_CommitFailure(t *testing.T) {
	h := newHarness(t)
	s := h.seed(t)
	before := testutil.TableCounts(t, h.db)

	svc := h.assignmentService(&testutil.FailingCommitUoW{DB: h.db, Err: errors.New("connection lost")})
	_, err := svc.CreateAssignment(context.Background(), requestFor(s, "2024-02-01", "2024-02-02", 12))
	require.Error(t, err)
	assert.Equal(t, app.ErrInternal, app.CodeOf(err))
	assert.Contains(t, err.Error(), "connection lost")
	assert.Equal(t, before, testutil.TableCounts(t, h.db))
}
