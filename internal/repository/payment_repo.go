package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/mindfit/MindFitBack/internal/models"
)

type CreatePaymentInput struct {
	StudentID      int64
	CoachID        int64
	Amount         decimal.Decimal
	CoachEarnings  decimal.Decimal
	AdminFee       decimal.Decimal
	CardNumber     string
	ExpiryDate     string
	CardholderName string
}

type PaymentRepository struct {
	db DBTX
}

func NewPaymentRepository(db DBTX) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, input CreatePaymentInput) (*models.Payment, error) {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO payments
			(student_id, coach_id, amount, coach_earnings, admin_fee, paid_at, card_number, expiry_date, cardholder_name)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, input.StudentID, input.CoachID,
		input.Amount.StringFixed(2), input.CoachEarnings.StringFixed(2), input.AdminFee.StringFixed(2),
		now, input.CardNumber, input.ExpiryDate, input.CardholderName)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &models.Payment{
		ID:             id,
		StudentID:      input.StudentID,
		CoachID:        input.CoachID,
		Amount:         input.Amount,
		CoachEarnings:  input.CoachEarnings,
		AdminFee:       input.AdminFee,
		PaidAt:         now,
		CardNumber:     input.CardNumber,
		ExpiryDate:     input.ExpiryDate,
		CardholderName: input.CardholderName,
	}, nil
}

func (r *PaymentRepository) ListAll(ctx context.Context) ([]models.Payment, error) {
	payments := []models.Payment{}
	err := sqlx.SelectContext(ctx, r.db, &payments, `
		SELECT id, student_id, coach_id, amount, coach_earnings, admin_fee,
		       paid_at, card_number, expiry_date, cardholder_name
		FROM payments
		ORDER BY paid_at DESC
	`)
	return payments, err
}

func (r *PaymentRepository) ListByStudent(ctx context.Context, studentID int64) ([]models.Payment, error) {
	payments := []models.Payment{}
	err := sqlx.SelectContext(ctx, r.db, &payments, `
		SELECT id, student_id, coach_id, amount, coach_earnings, admin_fee,
		       paid_at, card_number, expiry_date, cardholder_name
		FROM payments
		WHERE student_id = ?
		ORDER BY paid_at DESC
	`, studentID)
	return payments, err
}

func (r *PaymentRepository) ListByCoach(ctx context.Context, coachID int64) ([]models.Payment, error) {
	payments := []models.Payment{}
	err := sqlx.SelectContext(ctx, r.db, &payments, `
		SELECT id, student_id, coach_id, amount, coach_earnings, admin_fee,
		       paid_at, card_number, expiry_date, cardholder_name
		FROM payments
		WHERE coach_id = ?
		ORDER BY paid_at DESC
	`, coachID)
	return payments, err
}
