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

// PoolHandler serves talent-pool browsing and candidate-self endpoints.
type PoolHandler struct {
	pool         *service.PoolService
	verification *service.VerificationService
}

// NewPoolHandler constructs handler.
func NewPoolHandler(poolService *service.PoolService, verificationService *service.VerificationService) *PoolHandler {
	return &PoolHandler{pool: poolService, verification: verificationService}
}

// ListCandidates GET /pool/candidates.
func (h *PoolHandler) ListCandidates(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var skill *string
	if q := c.Query("skill"); q != "" {
		skill = &q
	}
	limit, offset := parsePagination(c)
	candidates, err := h.pool.ListCandidates(c.Context(), viewerFrom(principal), skill, limit, offset)
	if err != nil {
		return err
	}
	items := make([]dto.CandidateResponse, 0, len(candidates))
	for i := range candidates {
		items = append(items, candidateResponse(candidates[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetCandidate GET /pool/candidates/:id.
func (h *PoolHandler) GetCandidate(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	candidate, err := h.pool.GetCandidate(c.Context(), viewerFrom(principal), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": candidateResponse(*candidate)})
}

// UpdateProfile PUT /pool/me/profile.
func (h *PoolHandler) UpdateProfile(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload", nil)
	}

	profile := domain.CandidateProfile{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		AvatarURL:   req.AvatarURL,
		Address:     req.Address,
		City:        req.City,
		Country:     req.Country,
		Nationality: req.Nationality,
		BirthDate:   req.BirthDate,
		Phone:       req.Phone,
		Headline:    req.Headline,
		Skills:      req.Skills,
		Experience:  req.Experience,
		Education:   req.Education,
	}
	if _, err := h.pool.UpdateProfile(c.Context(), principal.ID(), profile); err != nil {
		return err
	}
	candidate, err := h.pool.GetCandidate(c.Context(), viewerFrom(principal), principal.ID())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": candidateResponse(*candidate)})
}

// GetExposure GET /pool/me/exposure.
func (h *PoolHandler) GetExposure(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	exposure, err := h.pool.GetExposure(c.Context(), principal.ID())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.ExposureResponse{
		ProfileViews:       exposure.ProfileViews,
		VerificationStatus: exposure.VerificationStatus,
		IsVerified:         exposure.IsVerified,
		PendingConsents:    exposure.PendingConsents,
		DocumentsTotal:     exposure.DocumentsTotal,
		DocumentsVerified:  exposure.DocumentsVerified,
	}})
}

// AddDocument POST /pool/me/documents.
func (h *PoolHandler) AddDocument(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.AddDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload", nil)
	}
	doc, err := h.verification.AddDocument(c.Context(), principal.ID(), req.Kind, req.StorageURL)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": documentResponse(doc)})
}

// ListDocuments GET /pool/me/documents.
func (h *PoolHandler) ListDocuments(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	docs, err := h.verification.ListDocuments(c.Context(), principal.ID())
	if err != nil {
		return err
	}
	items := make([]dto.DocumentResponse, 0, len(docs))
	for i := range docs {
		items = append(items, documentResponse(&docs[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}
