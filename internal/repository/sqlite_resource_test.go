package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/crewplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceRepo_CreateAndGetByID_KeepsRatePrecision(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteResourceRepo(db)
	ctx := context.Background()

	res := testutil.NewTestResource("Margaret", testutil.WithHourlyRate("112.375"))
	require.NoError(t, repo.Create(ctx, res))

	fetched, err := repo.GetByID(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, "Margaret", fetched.Name)
	assert.Equal(t, "112.375", fetched.HourlyRate.String())
}

func TestResourceRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteResourceRepo(db)

	_, err := repo.GetByID(context.Background(), "r-missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResourceRepo_List_ByName(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteResourceRepo(db)
	ctx := context.Background()

	for _, name := range []string{"Zed", "Ada", "Katherine"} {
		require.NoError(t, repo.Create(ctx, testutil.NewTestResource(name)))
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Ada", list[0].Name)
	assert.Equal(t, "Katherine", list[1].Name)
	assert.Equal(t, "Zed", list[2].Name)
}
