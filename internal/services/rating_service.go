package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mindfit/MindFitBack/internal/models"
	"github.com/mindfit/MindFitBack/internal/repository"
)

var (
	ErrDuplicateRating = errors.New("coach already rated by this student")
	ErrRatingNotFound  = errors.New("rating not found")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
)

type RateCoachInput struct {
	StudentID int64
	CoachID   int64
	Rating    int
	Review    *string
}

type RatingService struct {
	ratings *repository.RatingRepository
}

func NewRatingService(ratings *repository.RatingRepository) *RatingService {
	return &RatingService{ratings: ratings}
}

// Create stores the first rating for a (student, coach) pair. The
// uniqueness constraint rejects a second submission; the conflict surfaces
// as ErrDuplicateRating rather than a driver error.
func (s *RatingService) Create(ctx context.Context, input RateCoachInput) (*models.CoachRating, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, ErrInvalidRating
	}
	if input.StudentID <= 0 || input.CoachID <= 0 {
		return nil, ErrUnknownParticipant
	}

	rating := &models.CoachRating{
		StudentID: input.StudentID,
		CoachID:   input.CoachID,
		Rating:    input.Rating,
		Review:    input.Review,
	}
	if err := s.ratings.Create(ctx, rating); err != nil {
		switch {
		case repository.IsForeignKeyViolation(err):
			return nil, ErrUnknownParticipant
		case repository.IsCheckViolation(err):
			return nil, ErrInvalidRating
		case repository.IsConflict(err):
			return nil, ErrDuplicateRating
		}
		return nil, err
	}
	return rating, nil
}

// Update overwrites the existing rating for the pair in place.
func (s *RatingService) Update(ctx context.Context, input RateCoachInput) (*models.CoachRating, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, ErrInvalidRating
	}

	rating := &models.CoachRating{
		StudentID: input.StudentID,
		CoachID:   input.CoachID,
		Rating:    input.Rating,
		Review:    input.Review,
	}
	updated, err := s.ratings.UpdateByPair(ctx, rating)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRatingNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *RatingService) Delete(ctx context.Context, ratingID int64) error {
	if err := s.ratings.Delete(ctx, ratingID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrRatingNotFound
		}
		return err
	}
	return nil
}
