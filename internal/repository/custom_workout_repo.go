package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/mindfit/MindFitBack/internal/models"
)

type UpsertCustomWorkoutInput struct {
	StudentID       int64
	MoodType        string
	IntensityLevel  string
	DurationMinutes int
	Description     string
	IsActive        bool
	CreatedBy       int64
}

type CustomWorkoutRepository struct {
	db DBTX
}

func NewCustomWorkoutRepository(db DBTX) *CustomWorkoutRepository {
	return &CustomWorkoutRepository{db: db}
}

// Upsert inserts the override for (student, mood type), replacing any prior
// row for the pair. The UNIQUE(student_id, mood_type) constraint together
// with OR REPLACE guarantees exactly one row per pair afterwards.
func (r *CustomWorkoutRepository) Upsert(ctx context.Context, input UpsertCustomWorkoutInput) (*models.CustomWorkout, error) {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO custom_workouts
			(student_id, mood_type, intensity_level, duration_minutes, description, is_active, created_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, input.StudentID, input.MoodType, input.IntensityLevel, input.DurationMinutes,
		input.Description, input.IsActive, input.CreatedBy, now)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &models.CustomWorkout{
		ID:              id,
		StudentID:       input.StudentID,
		MoodType:        input.MoodType,
		IntensityLevel:  input.IntensityLevel,
		DurationMinutes: input.DurationMinutes,
		Description:     input.Description,
		IsActive:        input.IsActive,
		CreatedBy:       input.CreatedBy,
		CreatedAt:       now,
	}, nil
}

func (r *CustomWorkoutRepository) GetActive(ctx context.Context, studentID int64, moodType string) (*models.CustomWorkout, error) {
	var workout models.CustomWorkout
	err := sqlx.GetContext(ctx, r.db, &workout, `
		SELECT id, student_id, mood_type, intensity_level, duration_minutes,
		       description, is_active, created_by, created_at
		FROM custom_workouts
		WHERE student_id = ? AND mood_type = ? AND is_active = 1
	`, studentID, moodType)
	if err != nil {
		return nil, err
	}
	return &workout, nil
}

func (r *CustomWorkoutRepository) GetByID(ctx context.Context, id int64) (*models.CustomWorkout, error) {
	var workout models.CustomWorkout
	err := sqlx.GetContext(ctx, r.db, &workout, `
		SELECT id, student_id, mood_type, intensity_level, duration_minutes,
		       description, is_active, created_by, created_at
		FROM custom_workouts
		WHERE id = ?
	`, id)
	if err != nil {
		return nil, err
	}
	return &workout, nil
}

func (r *CustomWorkoutRepository) ListByCoach(ctx context.Context, coachID int64) ([]models.CustomWorkout, error) {
	workouts := []models.CustomWorkout{}
	err := sqlx.SelectContext(ctx, r.db, &workouts, `
		SELECT cw.id, cw.student_id, cw.mood_type, cw.intensity_level, cw.duration_minutes,
		       cw.description, cw.is_active, cw.created_by, cw.created_at,
		       s.name AS student_name
		FROM custom_workouts cw
		JOIN students s ON cw.student_id = s.id
		WHERE cw.created_by = ?
		ORDER BY cw.created_at DESC
	`, coachID)
	return workouts, err
}

func (r *CustomWorkoutRepository) SetActive(ctx context.Context, id int64, isActive bool) (*models.CustomWorkout, error) {
	if _, err := r.db.ExecContext(ctx, `
		UPDATE custom_workouts SET is_active = ? WHERE id = ?
	`, isActive, id); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}
