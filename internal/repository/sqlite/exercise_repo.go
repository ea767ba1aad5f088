package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"alcyxob/training-tracker/internal/domain"
	"alcyxob/training-tracker/internal/repository"
)

// dateLayout is the storage format for the calendar date column.
const dateLayout = "2006-01-02"

// SQLiteExerciseRepo implements repository.ExerciseRepository using a SQLite
// database.
type SQLiteExerciseRepo struct {
	db *sql.DB
}

// NewSQLiteExerciseRepo creates a new SQLiteExerciseRepo.
func NewSQLiteExerciseRepo(db *sql.DB) *SQLiteExerciseRepo {
	return &SQLiteExerciseRepo{db: db}
}

// Create inserts a new exercise row and fills in the assigned id on the
// passed record. A zero Date gets the current UTC time, mirroring a column
// default.
func (r *SQLiteExerciseRepo) Create(ctx context.Context, exercise *domain.Exercise) (int64, error) {
	if exercise.Date.IsZero() {
		exercise.Date = time.Now().UTC()
	}

	details, err := json.Marshal(exercise.Details)
	if err != nil {
		return 0, fmt.Errorf("encoding exercise details: %w", err)
	}

	query := `INSERT INTO exercises (date, sport, details, calories_burned)
		VALUES (?, ?, ?, ?)`
	result, err := r.db.ExecContext(ctx, query,
		exercise.Date.Format(dateLayout),
		string(exercise.Sport),
		string(details),
		exercise.CaloriesBurned,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting exercise: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading inserted exercise id: %w", err)
	}
	exercise.ID = id
	return id, nil
}

func (r *SQLiteExerciseRepo) GetByID(ctx context.Context, id int64) (*domain.Exercise, error) {
	query := `SELECT id, date, sport, details, calories_burned
		FROM exercises WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanExercise(row)
}

func (r *SQLiteExerciseRepo) List(ctx context.Context) ([]domain.Exercise, error) {
	query := `SELECT id, date, sport, details, calories_burned
		FROM exercises ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing exercises: %w", err)
	}
	defer rows.Close()
	return r.scanExercises(rows)
}

// scanExercise scans a single exercise from a *sql.Row.
func (r *SQLiteExerciseRepo) scanExercise(row *sql.Row) (*domain.Exercise, error) {
	var e domain.Exercise
	var dateStr, detailsStr string

	err := row.Scan(&e.ID, &dateStr, &e.Sport, &detailsStr, &e.CaloriesBurned)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("exercise: %w", repository.ErrNotFound)
		}
		return nil, fmt.Errorf("scanning exercise: %w", err)
	}

	return r.populateExercise(&e, dateStr, detailsStr)
}

// scanExercises scans multiple exercises from *sql.Rows.
func (r *SQLiteExerciseRepo) scanExercises(rows *sql.Rows) ([]domain.Exercise, error) {
	var exercises []domain.Exercise
	for rows.Next() {
		var e domain.Exercise
		var dateStr, detailsStr string

		err := rows.Scan(&e.ID, &dateStr, &e.Sport, &detailsStr, &e.CaloriesBurned)
		if err != nil {
			return nil, fmt.Errorf("scanning exercise row: %w", err)
		}

		exercise, parseErr := r.populateExercise(&e, dateStr, detailsStr)
		if parseErr != nil {
			return nil, parseErr
		}

		exercises = append(exercises, *exercise)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating exercises: %w", err)
	}
	return exercises, nil
}

// populateExercise fills in parsed fields on an Exercise after scanning the
// raw date and details columns.
func (r *SQLiteExerciseRepo) populateExercise(e *domain.Exercise, dateStr, detailsStr string) (*domain.Exercise, error) {
	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return nil, fmt.Errorf("parsing exercise date: %w", err)
	}
	e.Date = date

	if err := json.Unmarshal([]byte(detailsStr), &e.Details); err != nil {
		return nil, fmt.Errorf("decoding exercise details: %w", err)
	}
	return e, nil
}
