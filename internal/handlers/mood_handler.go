package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mindfit/MindFitBack/internal/models"
	"github.com/mindfit/MindFitBack/internal/repository"
)

type MoodHandler struct {
	moods *repository.MoodRepository
}

func NewMoodHandler(moods *repository.MoodRepository) *MoodHandler {
	return &MoodHandler{moods: moods}
}

type logMoodRequest struct {
	StudentID int64   `json:"student_id"`
	MoodType  string  `json:"mood_type"`
	Notes     *string `json:"notes"`
}

func (h *MoodHandler) Create(c *fiber.Ctx) error {
	var req logMoodRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.StudentID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "student_id is required"})
	}
	if !models.ValidMoodType(req.MoodType) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":       "Invalid mood type",
			"valid_types": models.MoodTypes,
		})
	}

	notes := req.Notes
	if notes != nil && strings.TrimSpace(*notes) == "" {
		notes = nil
	}

	mood := &models.Mood{
		StudentID: req.StudentID,
		MoodType:  req.MoodType,
		Notes:     notes,
	}
	if err := h.moods.Create(c.Context(), mood); err != nil {
		if repository.IsForeignKeyViolation(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to log mood"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"mood": mood})
}

func (h *MoodHandler) List(c *fiber.Ctx) error {
	moods, err := h.moods.ListAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to list moods"})
	}
	return c.JSON(fiber.Map{"moods": moods})
}

func (h *MoodHandler) ListByStudent(c *fiber.Ctx) error {
	studentID, err := parseIDParam(c, "studentId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid student id"})
	}

	moods, err := h.moods.ListByStudentID(c.Context(), studentID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to list moods"})
	}
	return c.JSON(fiber.Map{"moods": moods})
}
