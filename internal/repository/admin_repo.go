package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/mindfit/MindFitBack/internal/models"
)

type AdminRepository struct {
	db DBTX
}

func NewAdminRepository(db DBTX) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	err := sqlx.GetContext(ctx, r.db, &admin, `
		SELECT id, email, password FROM admins WHERE email = ?
	`, email)
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepository) GetByID(ctx context.Context, id int64) (*models.Admin, error) {
	var admin models.Admin
	err := sqlx.GetContext(ctx, r.db, &admin, `
		SELECT id, email, password FROM admins WHERE id = ?
	`, id)
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepository) List(ctx context.Context) ([]models.Admin, error) {
	admins := []models.Admin{}
	err := sqlx.SelectContext(ctx, r.db, &admins, `
		SELECT id, email, password FROM admins ORDER BY email
	`)
	return admins, err
}
