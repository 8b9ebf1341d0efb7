package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/mindfit/MindFitBack/internal/models"
	"github.com/mindfit/MindFitBack/internal/repository"
)

type StatsOverview struct {
	Students      int             `json:"students"`
	Coaches       int             `json:"coaches"`
	Ratings       int             `json:"ratings"`
	Payments      int             `json:"payments"`
	Moods         int             `json:"moods"`
	MoodCounts    map[string]int  `json:"mood_counts"`
	GrossRevenue  decimal.Decimal `json:"gross_revenue"`
	AdminFees     decimal.Decimal `json:"admin_fees"`
	CoachEarnings decimal.Decimal `json:"coach_earnings"`
}

type statsPaymentLister interface {
	ListAll(ctx context.Context) ([]models.Payment, error)
}

type StatsService struct {
	students *repository.StudentRepository
	coaches  *repository.CoachRepository
	moods    *repository.MoodRepository
	ratings  *repository.RatingRepository
	payments statsPaymentLister
}

func NewStatsService(
	students *repository.StudentRepository,
	coaches *repository.CoachRepository,
	moods *repository.MoodRepository,
	ratings *repository.RatingRepository,
	payments *repository.PaymentRepository,
) *StatsService {
	return &StatsService{
		students: students,
		coaches:  coaches,
		moods:    moods,
		ratings:  ratings,
		payments: payments,
	}
}

// Overview aggregates the admin dashboard numbers. Revenue sums are decimal
// so they stay exact however many rows accumulate.
func (s *StatsService) Overview(ctx context.Context) (*StatsOverview, error) {
	students, err := s.students.Count(ctx)
	if err != nil {
		return nil, err
	}
	coaches, err := s.coaches.Count(ctx)
	if err != nil {
		return nil, err
	}
	ratings, err := s.ratings.Count(ctx)
	if err != nil {
		return nil, err
	}
	moodCounts, err := s.moods.CountByType(ctx)
	if err != nil {
		return nil, err
	}
	moodTotal := 0
	for _, n := range moodCounts {
		moodTotal += n
	}
	payments, err := s.payments.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	gross := decimal.Zero
	fees := decimal.Zero
	earnings := decimal.Zero
	for _, p := range payments {
		gross = gross.Add(p.Amount)
		fees = fees.Add(p.AdminFee)
		earnings = earnings.Add(p.CoachEarnings)
	}

	return &StatsOverview{
		Students:      students,
		Coaches:       coaches,
		Ratings:       ratings,
		Payments:      len(payments),
		Moods:         moodTotal,
		MoodCounts:    moodCounts,
		GrossRevenue:  gross,
		AdminFees:     fees,
		CoachEarnings: earnings,
	}, nil
}
