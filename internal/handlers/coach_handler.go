package handlers

import (
	"database/sql"
	"errors"
	"net/mail"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mindfit/MindFitBack/internal/models"
	"github.com/mindfit/MindFitBack/internal/repository"
	"github.com/mindfit/MindFitBack/pkg/utils"
)

type CoachHandler struct {
	coaches *repository.CoachRepository
}

func NewCoachHandler(coaches *repository.CoachRepository) *CoachHandler {
	return &CoachHandler{coaches: coaches}
}

type createCoachRequest struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	Password          string `json:"password"`
	YearsOfExperience int    `json:"years_of_experience"`
}

func (h *CoachHandler) Create(c *fiber.Ctx) error {
	var req createCoachRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if strings.TrimSpace(req.Name) == "" || req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "name, email and password are required"})
	}
	parsedEmail, err := mail.ParseAddress(strings.TrimSpace(req.Email))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid email format"})
	}
	if req.YearsOfExperience < 0 {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "years_of_experience cannot be negative"})
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to hash password"})
	}

	coach := &models.Coach{
		Name:              strings.TrimSpace(req.Name),
		Email:             strings.ToLower(parsedEmail.Address),
		Password:          hashed,
		YearsOfExperience: req.YearsOfExperience,
	}
	if err := h.coaches.Create(c.Context(), coach); err != nil {
		if repository.IsConflict(err) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Email already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to create coach"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"coach": coach})
}

func (h *CoachHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "email and password are required"})
	}

	coach, err := h.coaches.GetByEmail(c.Context(), strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil || !utils.CheckPassword(req.Password, coach.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid email or password"})
	}

	return c.JSON(fiber.Map{"coach": coach})
}

func (h *CoachHandler) List(c *fiber.Ctx) error {
	coaches, err := h.coaches.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to list coaches"})
	}
	return c.JSON(fiber.Map{"coaches": coaches})
}

func (h *CoachHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid coach id"})
	}

	coach, err := h.coaches.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Coach not found"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to load coach"})
	}
	return c.JSON(fiber.Map{"coach": coach})
}
