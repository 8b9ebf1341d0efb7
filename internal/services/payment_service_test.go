package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mindfit/MindFitBack/internal/models"
	"github.com/mindfit/MindFitBack/internal/repository"
)

type stubPaymentCreator struct {
	lastInput repository.CreatePaymentInput
	err       error
}

func (s *stubPaymentCreator) Create(_ context.Context, input repository.CreatePaymentInput) (*models.Payment, error) {
	s.lastInput = input
	if s.err != nil {
		return nil, s.err
	}
	return &models.Payment{
		ID:            1,
		StudentID:     input.StudentID,
		CoachID:       input.CoachID,
		Amount:        input.Amount,
		CoachEarnings: input.CoachEarnings,
		AdminFee:      input.AdminFee,
		CardNumber:    input.CardNumber,
	}, nil
}

func TestSplitAmountSumsBackExactly(t *testing.T) {
	cases := []struct {
		amount, coach, fee string
	}{
		{"80.00", "72.00", "8.00"},
		{"100.00", "90.00", "10.00"},
		{"99.99", "89.99", "10.00"},
		{"0.01", "0.01", "0.00"},
		{"33.33", "30.00", "3.33"},
	}

	for _, tc := range cases {
		amount := decimal.RequireFromString(tc.amount)
		coach, fee := SplitAmount(amount)
		if !coach.Equal(decimal.RequireFromString(tc.coach)) {
			t.Errorf("amount %s: expected coach earnings %s, got %s", tc.amount, tc.coach, coach)
		}
		if !fee.Equal(decimal.RequireFromString(tc.fee)) {
			t.Errorf("amount %s: expected admin fee %s, got %s", tc.amount, tc.fee, fee)
		}
		if !coach.Add(fee).Equal(amount) {
			t.Errorf("amount %s: split does not sum back (%s + %s)", tc.amount, coach, fee)
		}
	}
}

func validTestCard() CardDetails {
	return CardDetails{
		Number:         "4111 1111 1111 1111",
		Expiry:         "12/28",
		CVV:            "123",
		CardholderName: "Alex Smith",
	}
}

func TestProcessMasksCardAndDropsCVV(t *testing.T) {
	creator := &stubPaymentCreator{}
	service := &PaymentService{payments: creator}

	payment, err := service.Process(context.Background(), ProcessPaymentInput{
		StudentID: 1,
		CoachID:   2,
		Amount:    decimal.RequireFromString("80.00"),
		Card:      validTestCard(),
	})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	if creator.lastInput.CardNumber != "************1111" {
		t.Fatalf("expected masked card, got %q", creator.lastInput.CardNumber)
	}
	if !creator.lastInput.CoachEarnings.Equal(decimal.RequireFromString("72.00")) {
		t.Fatalf("expected coach earnings 72.00, got %s", creator.lastInput.CoachEarnings)
	}
	if !creator.lastInput.AdminFee.Equal(decimal.RequireFromString("8.00")) {
		t.Fatalf("expected admin fee 8.00, got %s", creator.lastInput.AdminFee)
	}
	if payment.CardNumber != "************1111" {
		t.Fatalf("expected masked card on result, got %q", payment.CardNumber)
	}
}

func TestProcessRejectsNonPositiveAmount(t *testing.T) {
	service := &PaymentService{payments: &stubPaymentCreator{}}

	for _, raw := range []string{"0", "-5.00"} {
		_, err := service.Process(context.Background(), ProcessPaymentInput{
			StudentID: 1,
			CoachID:   2,
			Amount:    decimal.RequireFromString(raw),
			Card:      validTestCard(),
		})
		if err != ErrInvalidAmount {
			t.Fatalf("amount %s: expected ErrInvalidAmount, got %v", raw, err)
		}
	}
}

func TestProcessRejectsBadCards(t *testing.T) {
	service := &PaymentService{payments: &stubPaymentCreator{}}

	cases := []struct {
		name string
		card CardDetails
	}{
		{"short number", CardDetails{Number: "4111", Expiry: "12/28", CVV: "123", CardholderName: "Alex"}},
		{"bad month", CardDetails{Number: "4111111111111111", Expiry: "13/28", CVV: "123", CardholderName: "Alex"}},
		{"bad cvv", CardDetails{Number: "4111111111111111", Expiry: "12/28", CVV: "12", CardholderName: "Alex"}},
		{"missing name", CardDetails{Number: "4111111111111111", Expiry: "12/28", CVV: "123"}},
	}
	for _, tc := range cases {
		_, err := service.Process(context.Background(), ProcessPaymentInput{
			StudentID: 1,
			CoachID:   2,
			Amount:    decimal.RequireFromString("50.00"),
			Card:      tc.card,
		})
		if err != ErrInvalidCard {
			t.Fatalf("%s: expected ErrInvalidCard, got %v", tc.name, err)
		}
	}
}
