package handlers

import (
	"context"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/mindfit/MindFitBack/internal/models"
	"github.com/mindfit/MindFitBack/internal/repository"
	"github.com/mindfit/MindFitBack/internal/services"
)

type workoutResolver interface {
	ResolveForMood(ctx context.Context, moodType string, studentID *int64) (*models.Workout, error)
}

type WorkoutHandler struct {
	workouts *repository.WorkoutRepository
	resolver workoutResolver
}

func NewWorkoutHandler(workouts *repository.WorkoutRepository, resolver *services.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workouts: workouts, resolver: resolver}
}

func (h *WorkoutHandler) List(c *fiber.Ctx) error {
	workouts, err := h.workouts.ListAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to list workouts"})
	}
	return c.JSON(fiber.Map{"workouts": workouts})
}

func (h *WorkoutHandler) ListByMood(c *fiber.Ctx) error {
	moodType := c.Params("moodType")
	if !models.ValidMoodType(moodType) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":       "Invalid mood type",
			"valid_types": models.MoodTypes,
		})
	}

	workouts, err := h.workouts.ListByMoodType(c.Context(), moodType)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to list workouts"})
	}
	return c.JSON(fiber.Map{"workouts": workouts})
}

// Suggest returns the workout for a mood type, honoring a student's active
// custom override when the studentId query parameter is supplied.
func (h *WorkoutHandler) Suggest(c *fiber.Ctx) error {
	moodType := c.Params("moodType")
	if !models.ValidMoodType(moodType) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":       "Invalid mood type",
			"valid_types": models.MoodTypes,
		})
	}

	var studentID *int64
	if raw := c.Query("studentId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid student id"})
		}
		studentID = &id
	}

	workout, err := h.resolver.ResolveForMood(c.Context(), moodType, studentID)
	if err != nil {
		if errors.Is(err, services.ErrWorkoutNotFound) {
			return c.Status(fiber.StatusNotFound).
				JSON(fiber.Map{"error": "No workout found for this mood type"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to resolve workout"})
	}
	return c.JSON(fiber.Map{"workout": workout})
}
