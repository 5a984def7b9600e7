package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/talent-bridge/internal/api/dto"
	"github.com/spec-kit/talent-bridge/internal/auth"
	"github.com/spec-kit/talent-bridge/internal/service"
	apperrors "github.com/spec-kit/talent-bridge/pkg/util"
)

// QuotesHandler serves quote-negotiation endpoints.
type QuotesHandler struct {
	quotes *service.QuoteService
}

// NewQuotesHandler constructs handler.
func NewQuotesHandler(quoteService *service.QuoteService) *QuotesHandler {
	return &QuotesHandler{quotes: quoteService}
}

// Create POST /quotes.
func (h *QuotesHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.CreateQuoteRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload", nil)
	}
	if req.CandidateID == "" {
		return apperrors.NewBadRequest("candidate_id required", nil)
	}

	request, err := h.quotes.Create(c.Context(), principal.ID(), req.CandidateID)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": quoteResponse(request)})
}

// Resolve POST /quotes/:id/resolve.
func (h *QuotesHandler) Resolve(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.ResolveQuoteRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload", nil)
	}

	request, err := h.quotes.Resolve(c.Context(), principal.ID(), c.Params("id"), req.Decision, req.CostEstimate)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": quoteResponse(request)})
}

// SelectOption POST /quotes/:id/select.
func (h *QuotesHandler) SelectOption(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.SelectOptionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload", nil)
	}
	if req.OptionID == "" {
		return apperrors.NewBadRequest("option_id required", nil)
	}

	request, err := h.quotes.SelectOption(c.Context(), principal.ID(), c.Params("id"), req.OptionID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": quoteResponse(request)})
}

// ListMine GET /quotes.
func (h *QuotesHandler) ListMine(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	entries, err := h.quotes.ListForEmployer(c.Context(), viewerFrom(principal), principal.ID())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": quoteEntries(entries)})
}

// ListAll GET /quotes/all.
func (h *QuotesHandler) ListAll(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	limit, offset := parsePagination(c)
	entries, err := h.quotes.ListAll(c.Context(), viewerFrom(principal), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": quoteEntries(entries)})
}

func quoteEntries(entries []service.QuoteEntry) []dto.QuoteEntryResponse {
	items := make([]dto.QuoteEntryResponse, 0, len(entries))
	for i := range entries {
		items = append(items, dto.QuoteEntryResponse{
			QuoteResponse: quoteResponse(&entries[i].Request),
			Candidate:     candidateResponse(entries[i].Candidate),
		})
	}
	return items
}
