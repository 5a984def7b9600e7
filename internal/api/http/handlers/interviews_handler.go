package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/talent-bridge/internal/api/dto"
	"github.com/spec-kit/talent-bridge/internal/auth"
	"github.com/spec-kit/talent-bridge/internal/service"
	"github.com/spec-kit/talent-bridge/internal/view"
	apperrors "github.com/spec-kit/talent-bridge/pkg/util"
)

// InterviewsHandler serves interview-scheduling endpoints.
type InterviewsHandler struct {
	interviews *service.InterviewService
}

// NewInterviewsHandler constructs handler.
func NewInterviewsHandler(interviewService *service.InterviewService) *InterviewsHandler {
	return &InterviewsHandler{interviews: interviewService}
}

// Schedule POST /interviews.
func (h *InterviewsHandler) Schedule(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.ScheduleInterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload", nil)
	}
	if req.CandidateID == "" {
		return apperrors.NewBadRequest("candidate_id required", nil)
	}

	employerID := principal.ID()
	if principal.Role().IsStaff() {
		if req.EmployerID == "" {
			return apperrors.NewBadRequest("employer_id required for staff scheduling", nil)
		}
		employerID = req.EmployerID
	}

	slots := make([]service.SlotInput, 0, len(req.ProposedTimes))
	for _, slot := range req.ProposedTimes {
		slots = append(slots, service.SlotInput{DateTime: slot.DateTime, DurationMin: slot.DurationMin})
	}
	meeting, err := h.interviews.Schedule(c.Context(), principal.ID(), service.ScheduleInput{
		EmployerID:    employerID,
		CandidateID:   req.CandidateID,
		Title:         req.Title,
		Notes:         req.Notes,
		ProposedTimes: slots,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": interviewResponse(view.InterviewView{Meeting: *meeting})})
}

// RespondToSlot POST /interviews/:id/slots/:slotID/respond.
func (h *InterviewsHandler) RespondToSlot(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.SlotDecisionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload", nil)
	}

	meeting, err := h.interviews.RespondToSlot(c.Context(), principal.ID(), c.Params("id"), c.Params("slotID"), req.Accepted)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": interviewResponse(view.InterviewView{Meeting: *meeting})})
}

// Cancel POST /interviews/:id/cancel.
func (h *InterviewsHandler) Cancel(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	meeting, err := h.interviews.Cancel(c.Context(), principal.ID(), principal.Role(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": interviewResponse(view.InterviewView{Meeting: *meeting})})
}

// Complete POST /interviews/:id/complete.
func (h *InterviewsHandler) Complete(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	meeting, err := h.interviews.Complete(c.Context(), principal.ID(), principal.Role(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": interviewResponse(view.InterviewView{Meeting: *meeting})})
}

// GetOne GET /interviews/:id.
func (h *InterviewsHandler) GetOne(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	item, err := h.interviews.GetOne(c.Context(), viewerFrom(principal), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": interviewResponse(*item)})
}

// ListMine GET /interviews.
func (h *InterviewsHandler) ListMine(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	items, err := h.interviews.ListMine(c.Context(), viewerFrom(principal))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": interviewResponses(items)})
}

// ListAll GET /interviews/all.
func (h *InterviewsHandler) ListAll(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	limit, offset := parsePagination(c)
	items, err := h.interviews.ListAll(c.Context(), viewerFrom(principal), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": interviewResponses(items)})
}

func interviewResponses(items []view.InterviewView) []dto.InterviewResponse {
	result := make([]dto.InterviewResponse, 0, len(items))
	for _, item := range items {
		result = append(result, interviewResponse(item))
	}
	return result
}
