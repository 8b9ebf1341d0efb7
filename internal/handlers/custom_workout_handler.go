package handlers

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mindfit/MindFitBack/internal/models"
	"github.com/mindfit/MindFitBack/internal/repository"
)

type CustomWorkoutHandler struct {
	customWorkouts *repository.CustomWorkoutRepository
	students       *repository.StudentRepository
}

func NewCustomWorkoutHandler(
	customWorkouts *repository.CustomWorkoutRepository,
	students *repository.StudentRepository,
) *CustomWorkoutHandler {
	return &CustomWorkoutHandler{customWorkouts: customWorkouts, students: students}
}

type upsertCustomWorkoutRequest struct {
	StudentID       int64  `json:"student_id"`
	MoodType        string `json:"mood_type"`
	IntensityLevel  string `json:"intensity_level"`
	DurationMinutes int    `json:"duration_minutes"`
	Description     string `json:"description"`
	CreatedBy       int64  `json:"created_by"`
}

type setActiveRequest struct {
	IsActive bool `json:"is_active"`
}

// Upsert creates or replaces the override for a (student, mood type) pair.
// Only the student's assigned coach may author it.
func (h *CustomWorkoutHandler) Upsert(c *fiber.Ctx) error {
	var req upsertCustomWorkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.StudentID <= 0 || req.CreatedBy <= 0 {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "student_id and created_by are required"})
	}
	if !models.ValidMoodType(req.MoodType) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":       "Invalid mood type",
			"valid_types": models.MoodTypes,
		})
	}
	if req.DurationMinutes <= 0 {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "duration_minutes must be positive"})
	}
	if strings.TrimSpace(req.Description) == "" || strings.TrimSpace(req.IntensityLevel) == "" {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "description and intensity_level are required"})
	}

	student, err := h.students.GetByID(c.Context(), req.StudentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to load student"})
	}
	if student.CoachID == nil || *student.CoachID != req.CreatedBy {
		return c.Status(fiber.StatusForbidden).
			JSON(fiber.Map{"error": "Only the student's assigned coach can create custom workouts"})
	}

	custom, err := h.customWorkouts.Upsert(c.Context(), repository.UpsertCustomWorkoutInput{
		StudentID:       req.StudentID,
		MoodType:        req.MoodType,
		IntensityLevel:  strings.TrimSpace(req.IntensityLevel),
		DurationMinutes: req.DurationMinutes,
		Description:     strings.TrimSpace(req.Description),
		IsActive:        true,
		CreatedBy:       req.CreatedBy,
	})
	if err != nil {
		if repository.IsForeignKeyViolation(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student or coach not found"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to save custom workout"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"custom_workout": custom})
}

func (h *CustomWorkoutHandler) ListByCoach(c *fiber.Ctx) error {
	coachID, err := parseIDParam(c, "coachId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid coach id"})
	}

	customWorkouts, err := h.customWorkouts.ListByCoach(c.Context(), coachID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to list custom workouts"})
	}
	return c.JSON(fiber.Map{"custom_workouts": customWorkouts})
}

// SetActive toggles an override without deleting it, so a coach can park a
// plan and bring it back later.
func (h *CustomWorkoutHandler) SetActive(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid custom workout id"})
	}

	var req setActiveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	custom, err := h.customWorkouts.SetActive(c.Context(), id, req.IsActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Custom workout not found"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to update custom workout"})
	}
	return c.JSON(fiber.Map{"custom_workout": custom})
}
