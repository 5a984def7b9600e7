package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/talent-bridge/internal/api/dto"
	"github.com/spec-kit/talent-bridge/internal/auth"
	"github.com/spec-kit/talent-bridge/internal/domain"
	"github.com/spec-kit/talent-bridge/internal/view"
)

func viewerFrom(principal *auth.Principal) view.Viewer {
	return view.Viewer{Role: principal.Role(), SelfID: principal.ID()}
}

func parseInt(val string, def int) int {
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}

func parsePagination(c *fiber.Ctx) (limit, offset int) {
	page := parseInt(c.Query("page"), 1)
	pageSize := parseInt(c.Query("page_size"), 20)
	return pageSize, (page - 1) * pageSize
}

func accountResponse(account *domain.Account) dto.AccountResponse {
	return dto.AccountResponse{
		ID:                 account.ID,
		Role:               account.Role,
		Name:               account.Name,
		Email:              account.Email,
		VerificationStatus: account.VerificationStatus,
		IsVerified:         account.IsVerified,
		CreatedAt:          account.CreatedAt,
	}
}

func candidateResponse(candidate domain.Candidate) dto.CandidateResponse {
	skills := candidate.Profile.Skills
	if skills == nil {
		skills = []string{}
	}
	experience := candidate.Profile.Experience
	if experience == nil {
		experience = []domain.ExperienceEntry{}
	}
	education := candidate.Profile.Education
	if education == nil {
		education = []domain.EducationEntry{}
	}
	return dto.CandidateResponse{
		ID:                 candidate.Account.ID,
		Name:               candidate.Account.Name,
		Email:              candidate.Account.Email,
		VerificationStatus: candidate.Account.VerificationStatus,
		IsVerified:         candidate.Account.IsVerified,
		AvatarURL:          candidate.Profile.AvatarURL,
		Address:            candidate.Profile.Address,
		City:               candidate.Profile.City,
		Country:            candidate.Profile.Country,
		Nationality:        candidate.Profile.Nationality,
		BirthDate:          candidate.Profile.BirthDate,
		Phone:              candidate.Profile.Phone,
		Headline:           candidate.Profile.Headline,
		Skills:             skills,
		Experience:         experience,
		Education:          education,
		CreatedAt:          candidate.Account.CreatedAt,
	}
}

func consentResponse(request *domain.ConsentRequest) dto.ConsentResponse {
	return dto.ConsentResponse{
		ID:          request.ID,
		EmployerID:  request.EmployerID,
		CandidateID: request.CandidateID,
		Status:      request.Status,
		Message:     request.Message,
		RespondedAt: request.RespondedAt,
		CreatedAt:   request.CreatedAt,
	}
}

func quoteResponse(request *domain.QuoteRequest) dto.QuoteResponse {
	items := request.Items
	if items == nil {
		items = []domain.QuoteItem{}
	}
	options := request.Options
	if options == nil {
		options = []domain.QuoteOption{}
	}
	return dto.QuoteResponse{
		ID:               request.ID,
		EmployerID:       request.EmployerID,
		CandidateID:      request.CandidateID,
		Status:           request.Status,
		CostEstimate:     request.CostEstimate,
		Items:            items,
		Options:          options,
		SelectedOptionID: request.SelectedOptionID,
		RequestedAt:      request.RequestedAt,
		ResolvedAt:       request.ResolvedAt,
	}
}

func interviewResponse(item view.InterviewView) dto.InterviewResponse {
	meeting := item.Meeting
	slots := meeting.ProposedTimes
	if slots == nil {
		slots = []domain.Slot{}
	}
	return dto.InterviewResponse{
		ID:                 meeting.ID,
		EmployerID:         meeting.EmployerID,
		CandidateID:        meeting.CandidateID,
		ScheduledBy:        meeting.ScheduledBy,
		Title:              meeting.Title,
		ProposedTimes:      slots,
		ConfirmedTime:      meeting.ConfirmedTime,
		Status:             meeting.Status,
		MeetingRoomID:      meeting.MeetingRoomID,
		Notes:              meeting.Notes,
		CandidateName:      item.CandidateName,
		EmployerName:       item.EmployerName,
		CandidateAvatarURL: item.CandidateAvatarURL,
		CreatedAt:          meeting.CreatedAt,
		UpdatedAt:          meeting.UpdatedAt,
	}
}

func documentResponse(doc *domain.Document) dto.DocumentResponse {
	return dto.DocumentResponse{
		ID:          doc.ID,
		CandidateID: doc.CandidateID,
		Kind:        doc.Kind,
		StorageURL:  doc.StorageURL,
		Verified:    doc.Verified,
		VerifiedBy:  doc.VerifiedBy,
		CreatedAt:   doc.CreatedAt,
	}
}
