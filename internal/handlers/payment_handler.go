package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/mindfit/MindFitBack/internal/models"
	"github.com/mindfit/MindFitBack/internal/repository"
	"github.com/mindfit/MindFitBack/internal/services"
)

type paymentProcessor interface {
	Process(ctx context.Context, input services.ProcessPaymentInput) (*models.Payment, error)
}

type PaymentHandler struct {
	processor paymentProcessor
	payments  *repository.PaymentRepository
}

func NewPaymentHandler(processor *services.PaymentService, payments *repository.PaymentRepository) *PaymentHandler {
	return &PaymentHandler{processor: processor, payments: payments}
}

type processPaymentRequest struct {
	StudentID int64 `json:"student_id"`
	CoachID   int64 `json:"coach_id"`
	cardRequest
}

func (h *PaymentHandler) Process(c *fiber.Ctx) error {
	var req processPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	payment, err := h.processor.Process(c.Context(), services.ProcessPaymentInput{
		StudentID: req.StudentID,
		CoachID:   req.CoachID,
		Amount:    req.Amount,
		Card: services.CardDetails{
			Number:         req.CardNumber,
			Expiry:         req.ExpiryDate,
			CVV:            req.CVV,
			CardholderName: req.CardholderName,
		},
	})
	if err != nil {
		return mapPaymentError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"payment": payment})
}

func mapPaymentError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidAmount):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Amount must be positive"})
	case errors.Is(err, services.ErrInvalidCard):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid card details"})
	case errors.Is(err, services.ErrUnknownParticipant):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student or coach not found"})
	default:
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to process payment"})
	}
}

func (h *PaymentHandler) List(c *fiber.Ctx) error {
	payments, err := h.payments.ListAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to list payments"})
	}
	return c.JSON(fiber.Map{"payments": payments})
}

func (h *PaymentHandler) ListByStudent(c *fiber.Ctx) error {
	studentID, err := parseIDParam(c, "studentId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid student id"})
	}

	payments, err := h.payments.ListByStudent(c.Context(), studentID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to list payments"})
	}
	return c.JSON(fiber.Map{"payments": payments})
}

func (h *PaymentHandler) ListByCoach(c *fiber.Ctx) error {
	coachID, err := parseIDParam(c, "coachId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid coach id"})
	}

	payments, err := h.payments.ListByCoach(c.Context(), coachID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to list payments"})
	}
	return c.JSON(fiber.Map{"payments": payments})
}
