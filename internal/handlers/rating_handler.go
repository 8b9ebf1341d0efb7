package handlers

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/mindfit/MindFitBack/internal/models"
	"github.com/mindfit/MindFitBack/internal/repository"
	"github.com/mindfit/MindFitBack/internal/services"
)

type ratingWriter interface {
	Create(ctx context.Context, input services.RateCoachInput) (*models.CoachRating, error)
	Update(ctx context.Context, input services.RateCoachInput) (*models.CoachRating, error)
	Delete(ctx context.Context, ratingID int64) error
}

type RatingHandler struct {
	service ratingWriter
	ratings *repository.RatingRepository
}

func NewRatingHandler(service *services.RatingService, ratings *repository.RatingRepository) *RatingHandler {
	return &RatingHandler{service: service, ratings: ratings}
}

type rateCoachRequest struct {
	StudentID int64   `json:"student_id"`
	CoachID   int64   `json:"coach_id"`
	Rating    int     `json:"rating"`
	Review    *string `json:"review"`
}

func (h *RatingHandler) Create(c *fiber.Ctx) error {
	var req rateCoachRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	rating, err := h.service.Create(c.Context(), services.RateCoachInput{
		StudentID: req.StudentID,
		CoachID:   req.CoachID,
		Rating:    req.Rating,
		Review:    req.Review,
	})
	if err != nil {
		return mapRatingError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"rating": rating})
}

func (h *RatingHandler) Update(c *fiber.Ctx) error {
	var req rateCoachRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.StudentID <= 0 || req.CoachID <= 0 {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "student_id and coach_id are required"})
	}

	rating, err := h.service.Update(c.Context(), services.RateCoachInput{
		StudentID: req.StudentID,
		CoachID:   req.CoachID,
		Rating:    req.Rating,
		Review:    req.Review,
	})
	if err != nil {
		return mapRatingError(c, err)
	}
	return c.JSON(fiber.Map{"rating": rating})
}

func mapRatingError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidRating):
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "Rating must be between 1 and 5"})
	case errors.Is(err, services.ErrUnknownParticipant):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student or coach not found"})
	case errors.Is(err, services.ErrDuplicateRating):
		return c.Status(fiber.StatusConflict).
			JSON(fiber.Map{"error": "Coach already rated by this student"})
	case errors.Is(err, services.ErrRatingNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Rating not found"})
	default:
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to save rating"})
	}
}

func (h *RatingHandler) ListByCoach(c *fiber.Ctx) error {
	coachID, err := parseIDParam(c, "coachId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid coach id"})
	}

	ratings, err := h.ratings.ListByCoach(c.Context(), coachID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to list ratings"})
	}
	return c.JSON(fiber.Map{"ratings": ratings})
}

func (h *RatingHandler) List(c *fiber.Ctx) error {
	ratings, err := h.ratings.ListAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to list ratings"})
	}
	return c.JSON(fiber.Map{"ratings": ratings})
}

// GetByPair returns the single rating a student gave a coach, used by the
// client to decide between the create and update forms.
func (h *RatingHandler) GetByPair(c *fiber.Ctx) error {
	studentID, err := parseIDParam(c, "studentId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid student id"})
	}
	coachID, err := parseIDParam(c, "coachId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid coach id"})
	}

	rating, err := h.ratings.GetByPair(c.Context(), studentID, coachID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Rating not found"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to load rating"})
	}
	return c.JSON(fiber.Map{"rating": rating})
}

func (h *RatingHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid rating id"})
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return mapRatingError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
