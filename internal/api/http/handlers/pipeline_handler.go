package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/talent-bridge/internal/api/dto"
	"github.com/spec-kit/talent-bridge/internal/auth"
	"github.com/spec-kit/talent-bridge/internal/service"
	apperrors "github.com/spec-kit/talent-bridge/pkg/util"
)

// PipelineHandler serves hiring-funnel endpoints.
type PipelineHandler struct {
	pipeline *service.PipelineService
}

// NewPipelineHandler constructs handler.
func NewPipelineHandler(pipelineService *service.PipelineService) *PipelineHandler {
	return &PipelineHandler{pipeline: pipelineService}
}

// UpsertStatus PUT /pipeline.
func (h *PipelineHandler) UpsertStatus(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.UpsertPipelineRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload", nil)
	}
	if req.CandidateID == "" {
		return apperrors.NewBadRequest("candidate_id required", nil)
	}

	relation, err := h.pipeline.UpsertStatus(c.Context(), principal.ID(), principal.ID(), req.CandidateID, req.Status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{
		"id":           relation.ID,
		"employer_id":  relation.EmployerID,
		"candidate_id": relation.CandidateID,
		"status":       relation.Status,
		"updated_at":   relation.UpdatedAt,
	}})
}

// ListMine GET /pipeline.
func (h *PipelineHandler) ListMine(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	entries, err := h.pipeline.ListForEmployer(c.Context(), viewerFrom(principal), principal.ID())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": pipelineEntries(entries)})
}

// ListAll GET /pipeline/all.
func (h *PipelineHandler) ListAll(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	limit, offset := parsePagination(c)
	entries, err := h.pipeline.ListAll(c.Context(), viewerFrom(principal), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": pipelineEntries(entries)})
}

func pipelineEntries(entries []service.PipelineEntry) []dto.PipelineEntryResponse {
	items := make([]dto.PipelineEntryResponse, 0, len(entries))
	for _, entry := range entries {
		items = append(items, dto.PipelineEntryResponse{
			ID:          entry.Relation.ID,
			EmployerID:  entry.Relation.EmployerID,
			CandidateID: entry.Relation.CandidateID,
			Status:      entry.Relation.Status,
			Candidate:   candidateResponse(entry.Candidate),
			CreatedAt:   entry.Relation.CreatedAt,
			UpdatedAt:   entry.Relation.UpdatedAt,
		})
	}
	return items
}
