package handlers

import (
	"context"
	"database/sql"
	"errors"
	"net/mail"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/mindfit/MindFitBack/internal/models"
	"github.com/mindfit/MindFitBack/internal/repository"
	"github.com/mindfit/MindFitBack/internal/services"
	"github.com/mindfit/MindFitBack/pkg/utils"
)

type enrollmentApplicationService interface {
	SelectCoach(ctx context.Context, studentID int64, input services.SelectCoachInput) (*services.SelectCoachResult, error)
}

type StudentHandler struct {
	students   *repository.StudentRepository
	enrollment enrollmentApplicationService
}

func NewStudentHandler(students *repository.StudentRepository, enrollment *services.EnrollmentService) *StudentHandler {
	return &StudentHandler{students: students, enrollment: enrollment}
}

type createStudentRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	CoachID  *int64 `json:"coach_id"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type cardRequest struct {
	Amount         decimal.Decimal `json:"amount"`
	CardNumber     string          `json:"card_number"`
	ExpiryDate     string          `json:"expiry_date"`
	CVV            string          `json:"cvv"`
	CardholderName string          `json:"cardholder_name"`
}

type selectCoachRequest struct {
	CoachID int64        `json:"coach_id"`
	Payment *cardRequest `json:"payment"`
}

func (h *StudentHandler) Create(c *fiber.Ctx) error {
	var req createStudentRequest
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
	req.Email = strings.ToLower(parsedEmail.Address)

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to hash password"})
	}

	student := &models.Student{
		Name:     strings.TrimSpace(req.Name),
		Email:    req.Email,
		Password: hashed,
		CoachID:  req.CoachID,
	}
	if err := h.students.Create(c.Context(), student); err != nil {
		if repository.IsConflict(err) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Email already exists"})
		}
		if repository.IsForeignKeyViolation(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Coach not found"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to create student"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"student": student})
}

func (h *StudentHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "email and password are required"})
	}

	student, err := h.students.GetByEmail(c.Context(), strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil || !utils.CheckPassword(req.Password, student.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid email or password"})
	}

	return c.JSON(fiber.Map{"student": student})
}

func (h *StudentHandler) List(c *fiber.Ctx) error {
	students, err := h.students.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to list students"})
	}
	return c.JSON(fiber.Map{"students": students})
}

func (h *StudentHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid student id"})
	}

	student, err := h.students.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to load student"})
	}
	return c.JSON(fiber.Map{"student": student})
}

func (h *StudentHandler) ListByCoach(c *fiber.Ctx) error {
	coachID, err := parseIDParam(c, "coachId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid coach id"})
	}

	students, err := h.students.ListByCoachID(c.Context(), coachID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to list students"})
	}
	return c.JSON(fiber.Map{"students": students})
}

func (h *StudentHandler) SelectCoach(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid student id"})
	}

	var req selectCoachRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.CoachID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "coach_id is required"})
	}

	input := services.SelectCoachInput{CoachID: req.CoachID}
	if req.Payment != nil {
		input.Payment = &services.PaymentDetails{
			Amount: req.Payment.Amount,
			Card: services.CardDetails{
				Number:         req.Payment.CardNumber,
				Expiry:         req.Payment.ExpiryDate,
				CVV:            req.Payment.CVV,
				CardholderName: req.Payment.CardholderName,
			},
		}
	}

	result, err := h.enrollment.SelectCoach(c.Context(), id, input)
	if err != nil {
		return mapEnrollmentError(c, err)
	}
	return c.JSON(result)
}

func mapEnrollmentError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrStudentNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	case errors.Is(err, services.ErrCoachNotFound):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Coach not found"})
	case errors.Is(err, services.ErrSameCoach):
		return c.Status(fiber.StatusUnprocessableEntity).
			JSON(fiber.Map{"error": "Student is already assigned to this coach"})
	case errors.Is(err, services.ErrPaymentRequired):
		return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{
			"error":           "Payment required for coach change",
			"required_amount": services.CoachChangeFee,
		})
	case errors.Is(err, services.ErrInvalidAmount), errors.Is(err, services.ErrInvalidCard):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to update coach"})
	}
}
