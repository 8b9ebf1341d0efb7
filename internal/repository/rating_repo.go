package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/mindfit/MindFitBack/internal/models"
)

type RatingRepository struct {
	db DBTX
}

func NewRatingRepository(db DBTX) *RatingRepository {
	return &RatingRepository{db: db}
}

// Create inserts the rating for a (student, coach) pair. A second insert
// for the same pair fails with a uniqueness violation; see IsConflict.
func (r *RatingRepository) Create(ctx context.Context, rating *models.CoachRating) error {
	rating.RatedAt = time.Now().UTC()
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO coach_ratings (student_id, coach_id, rating, review, rated_at)
		VALUES (?, ?, ?, ?, ?)
	`, rating.StudentID, rating.CoachID, rating.Rating, rating.Review, rating.RatedAt)
	if err != nil {
		return err
	}
	rating.ID, err = res.LastInsertId()
	return err
}

func (r *RatingRepository) GetByPair(ctx context.Context, studentID, coachID int64) (*models.CoachRating, error) {
	var rating models.CoachRating
	err := sqlx.GetContext(ctx, r.db, &rating, `
		SELECT id, student_id, coach_id, rating, review, rated_at
		FROM coach_ratings
		WHERE student_id = ? AND coach_id = ?
	`, studentID, coachID)
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *RatingRepository) ListByCoach(ctx context.Context, coachID int64) ([]models.CoachRating, error) {
	ratings := []models.CoachRating{}
	err := sqlx.SelectContext(ctx, r.db, &ratings, `
		SELECT id, student_id, coach_id, rating, review, rated_at
		FROM coach_ratings
		WHERE coach_id = ?
		ORDER BY rated_at DESC
	`, coachID)
	return ratings, err
}

func (r *RatingRepository) ListAll(ctx context.Context) ([]models.CoachRating, error) {
	ratings := []models.CoachRating{}
	err := sqlx.SelectContext(ctx, r.db, &ratings, `
		SELECT id, student_id, coach_id, rating, review, rated_at
		FROM coach_ratings
		ORDER BY rated_at DESC
	`)
	return ratings, err
}

// UpdateByPair overwrites rating, review and timestamp for an existing
// (student, coach) pair. Returns sql.ErrNoRows when the pair was never rated.
func (r *RatingRepository) UpdateByPair(ctx context.Context, rating *models.CoachRating) (*models.CoachRating, error) {
	rating.RatedAt = time.Now().UTC()
	res, err := r.db.ExecContext(ctx, `
		UPDATE coach_ratings
		SET rating = ?, review = ?, rated_at = ?
		WHERE student_id = ? AND coach_id = ?
	`, rating.Rating, rating.Review, rating.RatedAt, rating.StudentID, rating.CoachID)
	if err != nil {
		return nil, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, sql.ErrNoRows
	}
	return r.GetByPair(ctx, rating.StudentID, rating.CoachID)
}

func (r *RatingRepository) Delete(ctx context.Context, ratingID int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM coach_ratings WHERE id = ?", ratingID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *RatingRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := sqlx.GetContext(ctx, r.db, &count, "SELECT COUNT(*) FROM coach_ratings")
	return count, err
}
