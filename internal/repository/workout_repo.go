package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/mindfit/MindFitBack/internal/models"
)

type WorkoutRepository struct {
	db DBTX
}

func NewWorkoutRepository(db DBTX) *WorkoutRepository {
	return &WorkoutRepository{db: db}
}

func (r *WorkoutRepository) ListAll(ctx context.Context) ([]models.Workout, error) {
	workouts := []models.Workout{}
	err := sqlx.SelectContext(ctx, r.db, &workouts, `
		SELECT id, mood_type, description, intensity_level, duration
		FROM workouts
		ORDER BY mood_type, intensity_level
	`)
	return workouts, err
}

func (r *WorkoutRepository) ListByMoodType(ctx context.Context, moodType string) ([]models.Workout, error) {
	workouts := []models.Workout{}
	err := sqlx.SelectContext(ctx, r.db, &workouts, `
		SELECT id, mood_type, description, intensity_level, duration
		FROM workouts
		WHERE mood_type = ?
		ORDER BY intensity_level
	`, moodType)
	return workouts, err
}

// FirstByMoodType returns the default workout for a mood: the lexically
// first intensity label when several rows share the mood type.
func (r *WorkoutRepository) FirstByMoodType(ctx context.Context, moodType string) (*models.Workout, error) {
	var workout models.Workout
	err := sqlx.GetContext(ctx, r.db, &workout, `
		SELECT id, mood_type, description, intensity_level, duration
		FROM workouts
		WHERE mood_type = ?
		ORDER BY intensity_level
		LIMIT 1
	`, moodType)
	if err != nil {
		return nil, err
	}
	return &workout, nil
}
