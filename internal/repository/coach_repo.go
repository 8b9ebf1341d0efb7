package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/mindfit/MindFitBack/internal/models"
)

type CoachRepository struct {
	db DBTX
}

func NewCoachRepository(db DBTX) *CoachRepository {
	return &CoachRepository{db: db}
}

func (r *CoachRepository) Create(ctx context.Context, coach *models.Coach) error {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO coaches (name, email, password, years_of_experience)
		VALUES (?, ?, ?, ?)
	`, coach.Name, coach.Email, coach.Password, coach.YearsOfExperience)
	if err != nil {
		return err
	}
	coach.ID, err = res.LastInsertId()
	return err
}

func (r *CoachRepository) GetByID(ctx context.Context, id int64) (*models.Coach, error) {
	var coach models.Coach
	err := sqlx.GetContext(ctx, r.db, &coach, `
		SELECT id, name, email, password, years_of_experience
		FROM coaches
		WHERE id = ?
	`, id)
	if err != nil {
		return nil, err
	}
	return &coach, nil
}

func (r *CoachRepository) GetByEmail(ctx context.Context, email string) (*models.Coach, error) {
	var coach models.Coach
	err := sqlx.GetContext(ctx, r.db, &coach, `
		SELECT id, name, email, password, years_of_experience
		FROM coaches
		WHERE email = ?
	`, email)
	if err != nil {
		return nil, err
	}
	return &coach, nil
}

func (r *CoachRepository) List(ctx context.Context) ([]models.Coach, error) {
	coaches := []models.Coach{}
	err := sqlx.SelectContext(ctx, r.db, &coaches, `
		SELECT id, name, email, password, years_of_experience
		FROM coaches
		ORDER BY name
	`)
	return coaches, err
}

func (r *CoachRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := sqlx.GetContext(ctx, r.db, &count, "SELECT COUNT(*) FROM coaches")
	return count, err
}
