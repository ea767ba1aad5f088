package service

import (
	"alcyxob/training-tracker/internal/domain"
	"alcyxob/training-tracker/internal/observability"
	"alcyxob/training-tracker/internal/repository" // Import repository package
	"context"
	"errors"
	"fmt"
	"time"
)

// --- Service Interface (Optional) ---
type ExerciseService interface {
	Record(ctx context.Context, sport string, payload map[string]any) (*domain.Exercise, error)
	List(ctx context.Context) ([]domain.Exercise, error)
}

// --- Service Implementation ---

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(exerciseRepo repository.ExerciseRepository) ExerciseService {
	return &exerciseService{
		exerciseRepo: exerciseRepo,
	}
}

// Record validates the payload for the given sport, derives the calorie
// estimate and stores the resulting exercise. Payloads that fail validation
// are rejected before the repository is touched.
func (s *exerciseService) Record(ctx context.Context, sport string, payload map[string]any) (*domain.Exercise, error) {
	exercise, err := domain.NewExercise(sport, payload)
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			observability.RecordValidationFailure(string(validationErr.Reason))
		}
		return nil, err
	}

	if _, err := s.exerciseRepo.Create(ctx, exercise); err != nil {
		return nil, fmt.Errorf("storing exercise: %w", err)
	}

	observability.RecordExercisePersisted(string(exercise.Sport), time.Now().UTC())
	return exercise, nil
}

// List returns every recorded exercise in insertion order.
func (s *exerciseService) List(ctx context.Context) ([]domain.Exercise, error) {
	exercises, err := s.exerciseRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing exercises: %w", err)
	}
	return exercises, nil
}
