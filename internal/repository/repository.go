package repository

import (
	"context"

	"alcyxob/training-tracker/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound = RepositoryError("not found")
)

// RepositoryError helps distinguish repository errors from other failures.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// ExerciseRepository defines the interface for interacting with stored
// exercise records. Records are immutable once written: there are no update
// or delete operations.
type ExerciseRepository interface {
	// Create inserts a new exercise and returns the storage-assigned id.
	// A zero Date is defaulted to the current UTC time.
	Create(ctx context.Context, exercise *domain.Exercise) (int64, error)
	// GetByID retrieves a single exercise, ErrNotFound when absent.
	GetByID(ctx context.Context, id int64) (*domain.Exercise, error)
	// List returns all exercises in insertion order.
	List(ctx context.Context) ([]domain.Exercise, error)
}
