package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/mindfit/MindFitBack/internal/models"
)

type MoodRepository struct {
	db DBTX
}

func NewMoodRepository(db DBTX) *MoodRepository {
	return &MoodRepository{db: db}
}

func (r *MoodRepository) Create(ctx context.Context, mood *models.Mood) error {
	mood.LoggedAt = time.Now().UTC()
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO moods (student_id, mood_type, notes, logged_at)
		VALUES (?, ?, ?, ?)
	`, mood.StudentID, mood.MoodType, mood.Notes, mood.LoggedAt)
	if err != nil {
		return err
	}
	mood.ID, err = res.LastInsertId()
	return err
}

func (r *MoodRepository) ListByStudentID(ctx context.Context, studentID int64) ([]models.Mood, error) {
	moods := []models.Mood{}
	err := sqlx.SelectContext(ctx, r.db, &moods, `
		SELECT id, student_id, mood_type, notes, logged_at
		FROM moods
		WHERE student_id = ?
		ORDER BY logged_at DESC
	`, studentID)
	return moods, err
}

func (r *MoodRepository) ListAll(ctx context.Context) ([]models.Mood, error) {
	moods := []models.Mood{}
	err := sqlx.SelectContext(ctx, r.db, &moods, `
		SELECT id, student_id, mood_type, notes, logged_at
		FROM moods
		ORDER BY logged_at DESC
	`)
	return moods, err
}

func (r *MoodRepository) CountByType(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT mood_type, COUNT(*) FROM moods GROUP BY mood_type
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var moodType string
		var count int
		if err := rows.Scan(&moodType, &count); err != nil {
			return nil, err
		}
		counts[moodType] = count
	}
	return counts, rows.Err()
}
