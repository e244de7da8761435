package mq

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Shrivardhan5306/Senatebot-Autonomous-Governance/services/civic-service/internal/domain"

	"github.com/apache/rocketmq-client-go/v2/consumer"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingAuditRepo struct {
	entries []*domain.AuditLog
	err     error
}

func (r *recordingAuditRepo) Save(entry *domain.AuditLog) error {
	if r.err != nil {
		return r.err
	}
	r.entries = append(r.entries, entry)
	return nil
}

func (r *recordingAuditRepo) FindBySession(string) ([]*domain.AuditLog, error) {
	return r.entries, nil
}

func auditMessage(body string) *primitive.MessageExt {
	msg := &primitive.MessageExt{}
	msg.Topic = TopicAudit
	msg.Body = []byte(body)
	return msg
}

func TestConsumePersistsFlattenedEvent(t *testing.T) {
	repo := &recordingAuditRepo{}
	c := NewAuditConsumer(nil, repo, "")

	body := `{
		"session_id": "s-1",
		"intent": "grievance",
		"decision": "grievance_registered",
		"sla_days": 5,
		"record": {
			"ai_confidence": 0.9,
			"risk_score": 20,
			"escalation_triggered": false,
			"escalation_reason": ""
		},
		"created_at": "2026-08-30T12:00:00Z"
	}`
	result, err := c.handleAuditMessage(context.Background(), auditMessage(body))
	require.NoError(t, err)
	assert.Equal(t, consumer.ConsumeSuccess, result)

	require.Len(t, repo.entries, 1)
	entry := repo.entries[0]
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "s-1", entry.SessionID)
	assert.Equal(t, "grievance", entry.Intent)
	assert.Equal(t, "grievance_registered", entry.Decision)
	assert.Equal(t, 5, entry.SLADays)
	assert.Equal(t, 0.9, entry.AIConfidence)
	assert.Equal(t, 20, entry.RiskScore)
	assert.False(t, entry.EscalationTriggered)
	assert.Equal(t, time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC), entry.DecidedAt)
}

func TestConsumeRetriesOnRepositoryFailure(t *testing.T) {
	repo := &recordingAuditRepo{err: errors.New("db down")}
	c := NewAuditConsumer(nil, repo, "")

	result, err := c.handleAuditMessage(context.Background(),
		auditMessage(`{"session_id":"s-1","record":{}}`))
	require.NoError(t, err)
	assert.Equal(t, consumer.ConsumeRetryLater, result)
}

func TestConsumeDropsMalformedPayload(t *testing.T) {
	repo := &recordingAuditRepo{}
	c := NewAuditConsumer(nil, repo, "")

	result, err := c.handleAuditMessage(context.Background(), auditMessage(`not json`))
	require.NoError(t, err)
	assert.Equal(t, consumer.ConsumeSuccess, result)
	assert.Empty(t, repo.entries)
}
