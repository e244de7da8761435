package application

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/Shrivardhan5306/Senatebot-Autonomous-Governance/services/ai-engine/internal/domain"
	"github.com/Shrivardhan5306/Senatebot-Autonomous-Governance/services/ai-engine/internal/infrastructure/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLLM struct {
	response string
	err      error
	prompts  [][]domain.Turn
}

func (f *fakeLLM) Complete(_ context.Context, messages []domain.Turn) (string, error) {
	f.prompts = append(f.prompts, messages)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

type fakeAudit struct {
	events []*domain.AuditEvent
}

func (f *fakeAudit) PublishAudit(_ context.Context, event *domain.AuditEvent) error {
	f.events = append(f.events, event)
	return nil
}

func newService(llm *fakeLLM, audit domain.AuditPublisher) (*GovernanceService, *store.MemorySessionStore) {
	sessions := store.NewMemorySessionStore()
	return NewGovernanceService(sessions, llm, audit), sessions
}

func TestProcessGrievanceEndToEnd(t *testing.T) {
	llm := &fakeLLM{response: `{"intent":"grievance","fields":{"grievance_category":"noise pollution"},"confidence":0.9,"explanation":"model text to be replaced"}`}
	audit := &fakeAudit{}
	svc, _ := newService(llm, audit)

	resp, err := svc.Process(context.Background(), "", "My grievance category is noise pollution")
	require.NoError(t, err)

	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, "English", resp.DetectedLanguage)
	assert.Equal(t, domain.IntentGrievance, resp.Intent)
	assert.Equal(t, domain.DecisionGrievanceRegistered, resp.Decision)
	assert.Equal(t, 5, resp.SLADays)
	// The fixed registration message replaces whatever the model proposed.
	assert.Equal(t, "Your grievance has been registered and will be reviewed by the appropriate department.", resp.Explanation)
	assert.False(t, resp.Escalate)
	assert.Equal(t, 0.9, resp.Audit.AIConfidence)

	require.Len(t, audit.events, 1)
	assert.Equal(t, resp.SessionID, audit.events[0].SessionID)
	assert.Equal(t, domain.DecisionGrievanceRegistered, audit.events[0].Decision)
}

func TestProcessInvalidIntentSubstituted(t *testing.T) {
	llm := &fakeLLM{response: `{"intent":"order_pizza","confidence":0.95,"explanation":"sure"}`}
	svc, _ := newService(llm, nil)

	resp, err := svc.Process(context.Background(), "s1", "hello")
	require.NoError(t, err)

	assert.Equal(t, domain.IntentInformationRequest, resp.Intent)
	// The substituted intent is set before escalation runs, so the missing-
	// intent rule does not fire on top of it.
	assert.Equal(t, domain.DecisionUnderReview, resp.Decision)
	assert.False(t, resp.Escalate)
	assert.Zero(t, resp.RiskScore)
}

func TestProcessEscalatedPermit(t *testing.T) {
	llm := &fakeLLM{response: `{"intent":"permit_application","fields":{"property_size":250},"confidence":0.9,"explanation":"big plot"}`}
	svc, _ := newService(llm, nil)

	resp, err := svc.Process(context.Background(), "s2", "permit for my land")
	require.NoError(t, err)

	assert.Equal(t, domain.DecisionEscalatedToOfficer, resp.Decision)
	assert.Equal(t, "Property size exceeds residential limit", resp.EscalationReason)
	assert.Equal(t, 40, resp.RiskScore)
	assert.Equal(t, 7, resp.SLADays)
	assert.Equal(t, "Your application requires manual review because the property size exceeds the standard residential limit.", resp.Explanation)
}

func TestProcessMalformedOutputFailsFast(t *testing.T) {
	llm := &fakeLLM{response: "sorry, I can't produce JSON today"}
	audit := &fakeAudit{}
	svc, sessions := newService(llm, audit)

	_, err := svc.Process(context.Background(), "s3", "hello")
	require.Error(t, err)

	var parseErr *domain.InvalidModelOutputError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "sorry, I can't produce JSON today", parseErr.Raw)

	// No decision ran: nothing was audited, and the unparseable assistant
	// turn never joined the history.
	assert.Empty(t, audit.events)
	turns, err := sessions.GetOrCreate(context.Background(), "s3")
	require.NoError(t, err)
	require.Len(t, turns, 1)
	assert.Equal(t, domain.RoleUser, turns[0].Role)
}

func TestProcessModelUnavailable(t *testing.T) {
	llm := &fakeLLM{err: fmt.Errorf("%w: connection refused", domain.ErrModelUnavailable)}
	svc, _ := newService(llm, nil)

	_, err := svc.Process(context.Background(), "s4", "hello")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrModelUnavailable))
}

func TestProcessSessionHistoryReplayedInOrder(t *testing.T) {
	llm := &fakeLLM{response: `{"intent":"status_tracking","fields":{},"confidence":0.9,"explanation":"in queue"}`}
	svc, _ := newService(llm, nil)

	_, err := svc.Process(context.Background(), "s5", "first question")
	require.NoError(t, err)
	_, err = svc.Process(context.Background(), "s5", "second question")
	require.NoError(t, err)

	require.Len(t, llm.prompts, 2)
	second := llm.prompts[1]

	// system + (user, assistant, user from history) + annotated current turn
	require.Len(t, second, 5)
	assert.Equal(t, domain.RoleSystem, second[0].Role)
	assert.Equal(t, "first question", second[1].Content)
	assert.Equal(t, domain.RoleAssistant, second[2].Role)
	assert.Equal(t, "second question", second[3].Content)
	assert.Contains(t, second[4].Content, "second question")
}

func TestProcessDistinctSessionsIsolated(t *testing.T) {
	llm := &fakeLLM{response: `{"intent":"status_tracking","fields":{},"confidence":0.9,"explanation":"ok"}`}
	svc, _ := newService(llm, nil)

	respA, err := svc.Process(context.Background(), "", "a")
	require.NoError(t, err)
	respB, err := svc.Process(context.Background(), "", "b")
	require.NoError(t, err)

	assert.NotEqual(t, respA.SessionID, respB.SessionID)

	// Second request of a fresh session sees no foreign history.
	require.Len(t, llm.prompts, 2)
	assert.Len(t, llm.prompts[1], 3)
}
