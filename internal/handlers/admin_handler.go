package handlers

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mindfit/MindFitBack/internal/repository"
	"github.com/mindfit/MindFitBack/internal/services"
	"github.com/mindfit/MindFitBack/pkg/utils"
)

type statsProvider interface {
	Overview(ctx context.Context) (*services.StatsOverview, error)
}

type AdminHandler struct {
	admins *repository.AdminRepository
	stats  statsProvider
}

func NewAdminHandler(admins *repository.AdminRepository, stats *services.StatsService) *AdminHandler {
	return &AdminHandler{admins: admins, stats: stats}
}

func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "email and password are required"})
	}

	admin, err := h.admins.GetByEmail(c.Context(), strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil || !utils.CheckPassword(req.Password, admin.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid email or password"})
	}

	return c.JSON(fiber.Map{"admin": admin})
}

func (h *AdminHandler) List(c *fiber.Ctx) error {
	admins, err := h.admins.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to list admins"})
	}
	return c.JSON(fiber.Map{"admins": admins})
}

func (h *AdminHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid admin id"})
	}

	admin, err := h.admins.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Admin not found"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to load admin"})
	}
	return c.JSON(fiber.Map{"admin": admin})
}

func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	overview, err := h.stats.Overview(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to load stats"})
	}
	return c.JSON(fiber.Map{"stats": overview})
}
