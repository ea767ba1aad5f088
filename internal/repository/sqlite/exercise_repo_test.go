package sqlite

import (
	"context"
	"testing"
	"time"

	"alcyxob/training-tracker/internal/domain"
	"alcyxob/training-tracker/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exerciseRepoSetup opens an in-memory database with migrations applied.
func exerciseRepoSetup(t *testing.T) *SQLiteExerciseRepo {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
	})
	return NewSQLiteExerciseRepo(db)
}

func TestExerciseRepo_CreateAndGetByID(t *testing.T) {
	repo := exerciseRepoSetup(t)
	ctx := context.Background()

	ex := &domain.Exercise{
		Date:           time.Date(2026, time.August, 24, 0, 0, 0, 0, time.UTC),
		Sport:          domain.SportRunning,
		Details:        map[string]any{"time": 30.0, "distance": 5.0},
		CaloriesBurned: 300,
	}
	id, err := repo.Create(ctx, ex)
	require.NoError(t, err)
	assert.Equal(t, id, ex.ID)

	fetched, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, fetched.ID)
	assert.Equal(t, domain.SportRunning, fetched.Sport)
	assert.Equal(t, "2026-08-24", fetched.Date.Format("2006-01-02"))
	assert.Equal(t, map[string]any{"time": 30.0, "distance": 5.0}, fetched.Details)
	assert.Equal(t, 300.0, fetched.CaloriesBurned)
}

func TestExerciseRepo_GetByID_NotFound(t *testing.T) {
	repo := exerciseRepoSetup(t)

	_, err := repo.GetByID(context.Background(), 42)
	assert.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestExerciseRepo_Create_DefaultsDate(t *testing.T) {
	repo := exerciseRepoSetup(t)
	ctx := context.Background()

	ex := &domain.Exercise{
		Sport:          domain.SportPullups,
		Details:        map[string]any{"sets": 3.0, "reps_per_set": 10.0},
		CaloriesBurned: 15,
	}
	_, err := repo.Create(ctx, ex)
	require.NoError(t, err)

	fetched, err := repo.GetByID(ctx, ex.ID)
	require.NoError(t, err)
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), fetched.Date.Format("2006-01-02"))
}

func TestExerciseRepo_Create_RejectsUnknownSport(t *testing.T) {
	repo := exerciseRepoSetup(t)

	// The CHECK constraint backs up domain validation.
	ex := &domain.Exercise{
		Sport:          domain.Sport("yoga"),
		Details:        map[string]any{},
		CaloriesBurned: 0,
	}
	_, err := repo.Create(context.Background(), ex)
	assert.Error(t, err)
}

func TestExerciseRepo_List_Empty(t *testing.T) {
	repo := exerciseRepoSetup(t)

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestExerciseRepo_List_InsertionOrder(t *testing.T) {
	repo := exerciseRepoSetup(t)
	ctx := context.Background()

	first := &domain.Exercise{
		Sport:          domain.SportRunning,
		Details:        map[string]any{"time": 30.0, "distance": 5.0},
		CaloriesBurned: 300,
	}
	second := &domain.Exercise{
		Sport:          domain.SportPullups,
		Details:        map[string]any{"sets": 3.0, "reps_per_set": 10.0},
		CaloriesBurned: 15,
	}
	third := &domain.Exercise{
		Sport:          domain.SportSwimming,
		Details:        map[string]any{"time": 20.0, "distance": 1.0},
		CaloriesBurned: 240,
	}
	for _, ex := range []*domain.Exercise{first, second, third} {
		_, err := repo.Create(ctx, ex)
		require.NoError(t, err)
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)
	assert.Equal(t, third.ID, list[2].ID)
	assert.True(t, list[0].ID < list[1].ID && list[1].ID < list[2].ID)
}

func TestExerciseRepo_DetailsFidelity_Weights(t *testing.T) {
	repo := exerciseRepoSetup(t)
	ctx := context.Background()

	ex := &domain.Exercise{
		Sport:          domain.SportWeights,
		Details:        map[string]any{"exercise_type": "bench press", "sets": 4.0, "reps_per_set": 8.0},
		CaloriesBurned: 19.2,
	}
	_, err := repo.Create(ctx, ex)
	require.NoError(t, err)

	fetched, err := repo.GetByID(ctx, ex.ID)
	require.NoError(t, err)
	assert.Equal(t, ex.Details, fetched.Details)
	assert.Equal(t, 19.2, fetched.CaloriesBurned)
}
