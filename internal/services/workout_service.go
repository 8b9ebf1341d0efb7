package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mindfit/MindFitBack/internal/models"
)

var ErrWorkoutNotFound = errors.New("no workout for mood type")

type workoutReader interface {
	FirstByMoodType(ctx context.Context, moodType string) (*models.Workout, error)
}

type customWorkoutReader interface {
	GetActive(ctx context.Context, studentID int64, moodType string) (*models.CustomWorkout, error)
}

type WorkoutService struct {
	workouts       workoutReader
	customWorkouts customWorkoutReader
}

func NewWorkoutService(workouts workoutReader, customWorkouts customWorkoutReader) *WorkoutService {
	return &WorkoutService{workouts: workouts, customWorkouts: customWorkouts}
}

// ResolveForMood picks the workout a student should see for a mood type.
// When a student id is supplied and that student has an active custom
// workout for the mood, the override wins; otherwise the default table is
// consulted. Callers that omit the student id skip personalization entirely.
func (s *WorkoutService) ResolveForMood(ctx context.Context, moodType string, studentID *int64) (*models.Workout, error) {
	if studentID != nil {
		custom, err := s.customWorkouts.GetActive(ctx, *studentID, moodType)
		if err == nil {
			return customAsWorkout(custom), nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
	}

	workout, err := s.workouts.FirstByMoodType(ctx, moodType)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return workout, nil
}

// customAsWorkout reshapes a coach override into the default-workout form
// the client renders, converting the stored minutes to display text.
func customAsWorkout(custom *models.CustomWorkout) *models.Workout {
	return &models.Workout{
		ID:             custom.ID,
		MoodType:       custom.MoodType,
		Description:    custom.Description,
		IntensityLevel: custom.IntensityLevel,
		Duration:       fmt.Sprintf("%d minutes", custom.DurationMinutes),
	}
}
