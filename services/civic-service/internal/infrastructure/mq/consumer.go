package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/Shrivardhan5306/Senatebot-Autonomous-Governance/services/civic-service/internal/domain"
	"github.com/Shrivardhan5306/Senatebot-Autonomous-Governance/shared/config"

	rocketmq "github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/consumer"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/google/uuid"
)

const TopicAudit = "governance_audit"

// auditEvent mirrors the envelope published by the decision pipeline.
type auditEvent struct {
	SessionID string `json:"session_id"`
	Intent    string `json:"intent"`
	Decision  string `json:"decision"`
	SLADays   int    `json:"sla_days"`
	Record    struct {
		AIConfidence        float64 `json:"ai_confidence"`
		RiskScore           int     `json:"risk_score"`
		EscalationTriggered bool    `json:"escalation_triggered"`
		EscalationReason    string  `json:"escalation_reason"`
	} `json:"record"`
	CreatedAt time.Time `json:"created_at"`
}

// AuditConsumer drains the audit topic into the audit_logs table.
type AuditConsumer struct {
	client    rocketmq.PushConsumer
	auditLogs domain.AuditLogRepository
	topic     string
}

func NewAuditConsumer(client rocketmq.PushConsumer, auditLogs domain.AuditLogRepository, topic string) *AuditConsumer {
	if topic == "" {
		topic = TopicAudit
	}
	return &AuditConsumer{client: client, auditLogs: auditLogs, topic: topic}
}

func (c *AuditConsumer) Subscribe() error {
	return c.client.Subscribe(c.topic, consumer.MessageSelector{}, c.handleAuditMessage)
}

func (c *AuditConsumer) handleAuditMessage(ctx context.Context, msgs ...*primitive.MessageExt) (consumer.ConsumeResult, error) {
	for _, msg := range msgs {
		if err := c.persist(msg.Body); err != nil {
			log.Printf("[ERROR] persist audit event failed, will retry: %v", err)
			return consumer.ConsumeRetryLater, nil
		}
	}
	return consumer.ConsumeSuccess, nil
}

func (c *AuditConsumer) persist(body []byte) error {
	var event auditEvent
	if err := json.Unmarshal(body, &event); err != nil {
		// Malformed payloads never become consumable on retry.
		log.Printf("[ERROR] unmarshal audit event: %v", err)
		return nil
	}

	entry := &domain.AuditLog{
		ID:                  uuid.NewString(),
		SessionID:           event.SessionID,
		Intent:              event.Intent,
		Decision:            event.Decision,
		SLADays:             event.SLADays,
		AIConfidence:        event.Record.AIConfidence,
		RiskScore:           event.Record.RiskScore,
		EscalationTriggered: event.Record.EscalationTriggered,
		EscalationReason:    event.Record.EscalationReason,
		DecidedAt:           event.CreatedAt,
	}
	if err := c.auditLogs.Save(entry); err != nil {
		return err
	}
	log.Printf("[INFO] audit event persisted: session=%s decision=%s", event.SessionID, event.Decision)
	return nil
}

func (c *AuditConsumer) Start() error {
	return c.client.Start()
}

func (c *AuditConsumer) Shutdown() error {
	return c.client.Shutdown()
}

// InitConsumer builds and subscribes the audit consumer, or returns nil when
// no name servers are configured.
func InitConsumer(cfg *config.RocketMQConfig, auditLogs domain.AuditLogRepository) (*AuditConsumer, error) {
	if len(cfg.NameServers) == 0 {
		log.Println("RocketMQ name servers not configured, audit sink disabled")
		return nil, nil
	}

	client, err := rocketmq.NewPushConsumer(
		consumer.WithNsResolver(primitive.NewPassthroughResolver(cfg.NameServers)),
		consumer.WithGroupName(cfg.ConsumerGroup),
		consumer.WithConsumerModel(consumer.Clustering),
	)
	if err != nil {
		return nil, fmt.Errorf("create RocketMQ consumer: %w", err)
	}

	c := NewAuditConsumer(client, auditLogs, cfg.Topics.Audit)
	if err := c.Subscribe(); err != nil {
		return nil, fmt.Errorf("subscribe audit topic: %w", err)
	}
	if err := c.Start(); err != nil {
		return nil, fmt.Errorf("start RocketMQ consumer: %w", err)
	}
	return c, nil
}
