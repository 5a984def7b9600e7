package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/talent-bridge/internal/api/dto"
	"github.com/spec-kit/talent-bridge/internal/auth"
	"github.com/spec-kit/talent-bridge/internal/service"
	apperrors "github.com/spec-kit/talent-bridge/pkg/util"
)

// StaffHandler serves back-office verification endpoints.
type StaffHandler struct {
	verification *service.VerificationService
}

// NewStaffHandler constructs handler.
func NewStaffHandler(verificationService *service.VerificationService) *StaffHandler {
	return &StaffHandler{verification: verificationService}
}

// SetVerification POST /staff/accounts/:id/verification.
func (h *StaffHandler) SetVerification(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.SetVerificationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload", nil)
	}

	account, err := h.verification.SetAccountVerification(c.Context(), principal.ID(), c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": accountResponse(account)})
}

// VerifyDocument POST /staff/documents/:id/verify.
func (h *StaffHandler) VerifyDocument(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	doc, err := h.verification.VerifyDocument(c.Context(), principal.ID(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": documentResponse(doc)})
}

// ListCandidateDocuments GET /staff/candidates/:id/documents.
func (h *StaffHandler) ListCandidateDocuments(c *fiber.Ctx) error {
	if _, ok := auth.PrincipalFromContext(c); !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	docs, err := h.verification.ListDocuments(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	items := make([]dto.DocumentResponse, 0, len(docs))
	for i := range docs {
		items = append(items, documentResponse(&docs[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}
