package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/mindfit/MindFitBack/internal/models"
	"github.com/mindfit/MindFitBack/internal/repository"
	"github.com/mindfit/MindFitBack/pkg/utils"
)

var (
	ErrStudentNotFound = errors.New("student not found")
	ErrCoachNotFound   = errors.New("coach not found")
	ErrSameCoach       = errors.New("student is already assigned to this coach")
	ErrPaymentRequired = errors.New("payment required for coach change")
)

// CoachChangeFee is the amount charged for a coach change once the free
// change has been used.
var CoachChangeFee = decimal.RequireFromString("80.00")

type PaymentDetails struct {
	Amount decimal.Decimal
	Card   CardDetails
}

type SelectCoachInput struct {
	CoachID int64
	Payment *PaymentDetails
}

type SelectCoachResult struct {
	Student *models.Student `json:"student"`
	Payment *models.Payment `json:"payment,omitempty"`
}

// EnrollmentService owns the coach-selection workflow. The first assignment
// is free, the first change is free once, and every later change requires a
// payment recorded in the same transaction as the reassignment.
type EnrollmentService struct {
	db       *sqlx.DB
	students *repository.StudentRepository
	coaches  *repository.CoachRepository
}

func NewEnrollmentService(
	db *sqlx.DB,
	students *repository.StudentRepository,
	coaches *repository.CoachRepository,
) *EnrollmentService {
	return &EnrollmentService{db: db, students: students, coaches: coaches}
}

func (s *EnrollmentService) SelectCoach(ctx context.Context, studentID int64, input SelectCoachInput) (*SelectCoachResult, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	if _, err := s.coaches.GetByID(ctx, input.CoachID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCoachNotFound
		}
		return nil, err
	}

	if student.CoachID != nil && *student.CoachID == input.CoachID {
		return nil, ErrSameCoach
	}

	// First assignment: free, and the free change is kept in reserve.
	if student.CoachID == nil {
		if err := s.students.UpdateCoach(ctx, studentID, input.CoachID); err != nil {
			return nil, err
		}
		return s.result(ctx, studentID, nil)
	}

	// One free change per student, tracked on the student row so clearing
	// client state cannot reset it.
	if !student.FreeChangeUsed {
		tx, err := s.db.BeginTxx(ctx, nil)
		if err != nil {
			return nil, err
		}
		defer func() {
			_ = tx.Rollback()
		}()

		txStudents := repository.NewStudentRepository(tx)
		if err := txStudents.UpdateCoach(ctx, studentID, input.CoachID); err != nil {
			return nil, err
		}
		if err := txStudents.MarkFreeChangeUsed(ctx, studentID); err != nil {
			return nil, err
		}
		if err := tx.Commit(); err != nil {
			return nil, err
		}
		return s.result(ctx, studentID, nil)
	}

	if input.Payment == nil {
		return nil, ErrPaymentRequired
	}

	amount := input.Payment.Amount.Round(2)
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if err := validateCard(input.Payment.Card); err != nil {
		return nil, err
	}
	coachEarnings, adminFee := SplitAmount(amount)

	// Payment and reassignment commit together or not at all.
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	txPayments := repository.NewPaymentRepository(tx)
	payment, err := txPayments.Create(ctx, repository.CreatePaymentInput{
		StudentID:      studentID,
		CoachID:        input.CoachID,
		Amount:         amount,
		CoachEarnings:  coachEarnings,
		AdminFee:       adminFee,
		CardNumber:     utils.MaskCardNumber(input.Payment.Card.Number),
		ExpiryDate:     input.Payment.Card.Expiry,
		CardholderName: input.Payment.Card.CardholderName,
	})
	if err != nil {
		return nil, err
	}

	txStudents := repository.NewStudentRepository(tx)
	if err := txStudents.UpdateCoach(ctx, studentID, input.CoachID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return s.result(ctx, studentID, payment)
}

func (s *EnrollmentService) result(ctx context.Context, studentID int64, payment *models.Payment) (*SelectCoachResult, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return &SelectCoachResult{Student: student, Payment: payment}, nil
}
