package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/talent-bridge/internal/api/dto"
	"github.com/spec-kit/talent-bridge/internal/auth"
	"github.com/spec-kit/talent-bridge/internal/domain"
	"github.com/spec-kit/talent-bridge/internal/service"
	apperrors "github.com/spec-kit/talent-bridge/pkg/util"
)

// ConsentsHandler serves consent-request endpoints.
type ConsentsHandler struct {
	consents *service.ConsentService
}

// NewConsentsHandler constructs handler.
func NewConsentsHandler(consentService *service.ConsentService) *ConsentsHandler {
	return &ConsentsHandler{consents: consentService}
}

// Create POST /consents.
func (h *ConsentsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.CreateConsentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload", nil)
	}
	if req.CandidateID == "" {
		return apperrors.NewBadRequest("candidate_id required", nil)
	}

	request, err := h.consents.Create(c.Context(), principal.ID(), req.CandidateID, req.Message)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": consentResponse(request)})
}

// Respond POST /consents/:id/respond.
func (h *ConsentsHandler) Respond(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.ConsentDecisionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload", nil)
	}

	request, err := h.consents.Respond(c.Context(), c.Params("id"), principal.ID(), req.Decision)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": consentResponse(request)})
}

// ListIncoming GET /consents/incoming.
func (h *ConsentsHandler) ListIncoming(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	requests, err := h.consents.ListForCandidate(c.Context(), principal.ID())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": consentResponses(requests)})
}

// ListOutgoing GET /consents/outgoing.
func (h *ConsentsHandler) ListOutgoing(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	requests, err := h.consents.ListForEmployer(c.Context(), principal.ID())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": consentResponses(requests)})
}

func consentResponses(requests []domain.ConsentRequest) []dto.ConsentResponse {
	items := make([]dto.ConsentResponse, 0, len(requests))
	for i := range requests {
		items = append(items, consentResponse(&requests[i]))
	}
	return items
}
