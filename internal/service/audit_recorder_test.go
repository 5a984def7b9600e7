package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.uber.org/zap"

	"github.com/spec-kit/talent-bridge/internal/domain"
)

func TestAuditRecorderCapturesEveryAction(t *testing.T) {
	f := newFixtures()
	recorder := NewAuditRecorder(f.dispatcher, f.audits, zap.NewNop())
	recorder.RegisterHandlers()

	employer := f.seedEmployer(t, "acme", true)
	staff := f.seedStaff(t, "op")
	candidate := f.seedCandidate(t, "alice")

	pipeline := newPipelineService(f)
	_, err := pipeline.UpsertStatus(context.Background(), employer.ID, employer.ID, candidate.ID, domain.PipelineStatusShortlisted)
	require.NoError(t, err)

	consents := newConsentService(f)
	request, err := consents.Create(context.Background(), employer.ID, candidate.ID, "")
	require.NoError(t, err)
	_, err = consents.Respond(context.Background(), request.ID, candidate.ID, domain.ConsentStatusApproved)
	require.NoError(t, err)

	quotes := newQuoteService(f)
	quote, err := quotes.Create(context.Background(), employer.ID, candidate.ID)
	require.NoError(t, err)
	_, err = quotes.Resolve(context.Background(), staff.ID, quote.ID, domain.QuoteStatusApproved, "$4,000")
	require.NoError(t, err)

	actions := make([]string, 0, len(f.audits.Events))
	for _, event := range f.audits.Events {
		actions = append(actions, event.Action)
	}
	assert.Equal(t, []string{
		"CANDIDATE_STATUS_UPDATED",
		"CONSENT_REQUESTED",
		"CONSENT_RESPONDED",
		"QUOTE_REQUESTED",
		"QUOTE_RESOLVED",
	}, actions)

	// actor and subject ride along in the appended record
	assert.Equal(t, employer.ID, f.audits.Events[0].ActorID)
	assert.Equal(t, request.ID, f.audits.Events[1].Details["entity_id"])
}
