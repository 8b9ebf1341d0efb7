package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/mindfit/MindFitBack/internal/models"
)

type StudentRepository struct {
	db DBTX
}

func NewStudentRepository(db DBTX) *StudentRepository {
	return &StudentRepository{db: db}
}

func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO students (name, email, password, coach_id)
		VALUES (?, ?, ?, ?)
	`, student.Name, student.Email, student.Password, student.CoachID)
	if err != nil {
		return err
	}
	student.ID, err = res.LastInsertId()
	return err
}

func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	var student models.Student
	err := sqlx.GetContext(ctx, r.db, &student, `
		SELECT s.id, s.name, s.email, s.password, s.coach_id, s.free_change_used,
		       c.name AS coach_name
		FROM students s
		LEFT JOIN coaches c ON s.coach_id = c.id
		WHERE s.id = ?
	`, id)
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	var student models.Student
	err := sqlx.GetContext(ctx, r.db, &student, `
		SELECT id, name, email, password, coach_id, free_change_used
		FROM students
		WHERE email = ?
	`, email)
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *StudentRepository) List(ctx context.Context) ([]models.Student, error) {
	students := []models.Student{}
	err := sqlx.SelectContext(ctx, r.db, &students, `
		SELECT s.id, s.name, s.email, s.password, s.coach_id, s.free_change_used,
		       c.name AS coach_name
		FROM students s
		LEFT JOIN coaches c ON s.coach_id = c.id
		ORDER BY s.name
	`)
	return students, err
}

func (r *StudentRepository) ListByCoachID(ctx context.Context, coachID int64) ([]models.Student, error) {
	students := []models.Student{}
	err := sqlx.SelectContext(ctx, r.db, &students, `
		SELECT id, name, email, password, coach_id, free_change_used
		FROM students
		WHERE coach_id = ?
		ORDER BY name
	`, coachID)
	return students, err
}

func (r *StudentRepository) UpdateCoach(ctx context.Context, studentID, coachID int64) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE students SET coach_id = ? WHERE id = ?
	`, coachID, studentID)
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

func (r *StudentRepository) MarkFreeChangeUsed(ctx context.Context, studentID int64) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE students SET free_change_used = 1 WHERE id = ?
	`, studentID)
	return err
}

func (r *StudentRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := sqlx.GetContext(ctx, r.db, &count, "SELECT COUNT(*) FROM students")
	return count, err
}
