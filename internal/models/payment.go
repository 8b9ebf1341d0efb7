package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment records a coach-selection transaction. Amounts are decimal so the
// 10/90 split sums back to the gross amount exactly. The card number is
// stored masked to its last four digits; the CVV is never persisted.
type Payment struct {
	ID             int64           `db:"id" json:"id"`
	StudentID      int64           `db:"student_id" json:"student_id"`
	CoachID        int64           `db:"coach_id" json:"coach_id"`
	Amount         decimal.Decimal `db:"amount" json:"amount"`
	CoachEarnings  decimal.Decimal `db:"coach_earnings" json:"coach_earnings"`
	AdminFee       decimal.Decimal `db:"admin_fee" json:"admin_fee"`
	PaidAt         time.Time       `db:"paid_at" json:"paid_at"`
	CardNumber     string          `db:"card_number" json:"card_number"`
	ExpiryDate     string          `db:"expiry_date" json:"expiry_date"`
	CardholderName string          `db:"cardholder_name" json:"cardholder_name"`
}
