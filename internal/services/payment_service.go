package services

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mindfit/MindFitBack/internal/models"
	"github.com/mindfit/MindFitBack/internal/repository"
	"github.com/mindfit/MindFitBack/pkg/utils"
)

var (
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidCard        = errors.New("invalid card details")
	ErrUnknownParticipant = errors.New("student or coach not found")
)

var (
	cardNumberPattern = regexp.MustCompile(`^[0-9]{13,19}$`)
	expiryPattern     = regexp.MustCompile(`^(0[1-9]|1[0-2])/[0-9]{2}$`)
	cvvPattern        = regexp.MustCompile(`^[0-9]{3,4}$`)
)

var adminFeeRate = decimal.RequireFromString("0.10")

// SplitAmount computes the platform's 10/90 fee split. The admin fee is the
// rounded 10% share and the coach keeps the remainder, so the two parts
// always sum back to the gross amount exactly.
func SplitAmount(amount decimal.Decimal) (coachEarnings, adminFee decimal.Decimal) {
	adminFee = amount.Mul(adminFeeRate).Round(2)
	coachEarnings = amount.Sub(adminFee)
	return coachEarnings, adminFee
}

type CardDetails struct {
	Number         string
	Expiry         string
	CVV            string
	CardholderName string
}

func validateCard(card CardDetails) error {
	digits := strings.ReplaceAll(strings.ReplaceAll(card.Number, " ", ""), "-", "")
	if !cardNumberPattern.MatchString(digits) {
		return ErrInvalidCard
	}
	if !expiryPattern.MatchString(strings.TrimSpace(card.Expiry)) {
		return ErrInvalidCard
	}
	if !cvvPattern.MatchString(strings.TrimSpace(card.CVV)) {
		return ErrInvalidCard
	}
	if strings.TrimSpace(card.CardholderName) == "" {
		return ErrInvalidCard
	}
	return nil
}

type paymentCreator interface {
	Create(ctx context.Context, input repository.CreatePaymentInput) (*models.Payment, error)
}

type ProcessPaymentInput struct {
	StudentID int64
	CoachID   int64
	Amount    decimal.Decimal
	Card      CardDetails
}

type PaymentService struct {
	payments paymentCreator
}

func NewPaymentService(payments *repository.PaymentRepository) *PaymentService {
	return &PaymentService{payments: payments}
}

// Process records a payment with the fee split computed exactly once. The
// card number is masked before it is handed to the store and the CVV is
// discarded after validation.
func (s *PaymentService) Process(ctx context.Context, input ProcessPaymentInput) (*models.Payment, error) {
	if input.StudentID <= 0 || input.CoachID <= 0 {
		return nil, ErrUnknownParticipant
	}
	amount := input.Amount.Round(2)
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if err := validateCard(input.Card); err != nil {
		return nil, err
	}

	coachEarnings, adminFee := SplitAmount(amount)

	payment, err := s.payments.Create(ctx, repository.CreatePaymentInput{
		StudentID:      input.StudentID,
		CoachID:        input.CoachID,
		Amount:         amount,
		CoachEarnings:  coachEarnings,
		AdminFee:       adminFee,
		CardNumber:     utils.MaskCardNumber(input.Card.Number),
		ExpiryDate:     strings.TrimSpace(input.Card.Expiry),
		CardholderName: strings.TrimSpace(input.Card.CardholderName),
	})
	if err != nil {
		if repository.IsForeignKeyViolation(err) {
			return nil, ErrUnknownParticipant
		}
		return nil, err
	}
	return payment, nil
}
