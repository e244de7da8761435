package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"

	"github.com/Shrivardhan5306/Senatebot-Autonomous-Governance/services/ai-engine/internal/domain"
	"github.com/Shrivardhan5306/Senatebot-Autonomous-Governance/shared/config"

	rocketmq "github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/apache/rocketmq-client-go/v2/producer"
)

// AuditProducer publishes decision audit events. A nil producer is valid and
// drops events, so the pipeline runs unchanged without a broker.
type AuditProducer struct {
	client rocketmq.Producer
	topic  string
}

func NewAuditProducer(client rocketmq.Producer, topic string) *AuditProducer {
	if topic == "" {
		topic = TopicAudit
	}
	return &AuditProducer{client: client, topic: topic}
}

func (p *AuditProducer) PublishAudit(ctx context.Context, event *domain.AuditEvent) error {
	if p == nil || p.client == nil {
		return nil
	}
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode audit event: %w", err)
	}

	msg := primitive.NewMessage(p.topic, data)
	msg.WithTag(string(event.Decision))
	msg.WithKeys([]string{event.SessionID})

	_, err = p.client.SendSync(ctx, msg)
	return err
}

// InitProducer starts the RocketMQ producer, or returns nil when no name
// servers are configured.
func InitProducer(cfg *config.RocketMQConfig) (*AuditProducer, error) {
	resolved := resolveNameServers(cfg.NameServers)
	if len(resolved) == 0 {
		log.Println("RocketMQ name servers not configured, audit trail disabled")
		return nil, nil
	}

	p, err := rocketmq.NewProducer(
		producer.WithNsResolver(primitive.NewPassthroughResolver(resolved)),
		producer.WithRetry(cfg.MaxRetries),
		producer.WithGroupName(cfg.GroupName),
	)
	if err != nil {
		return nil, fmt.Errorf("create RocketMQ producer: %w", err)
	}
	if err := p.Start(); err != nil {
		return nil, fmt.Errorf("start RocketMQ producer: %w", err)
	}

	topic := cfg.Topics.Audit
	if topic == "" {
		topic = TopicAudit
	}
	return NewAuditProducer(p, topic), nil
}

func resolveNameServers(servers []string) []string {
	var resolved []string
	for _, addr := range servers {
		host, port, err := net.SplitHostPort(addr)
		if err != nil {
			resolved = append(resolved, addr)
			continue
		}
		ips, err := net.LookupHost(host)
		if err != nil || len(ips) == 0 {
			resolved = append(resolved, addr)
			continue
		}
		resolved = append(resolved, net.JoinHostPort(ips[0], port))
	}
	return resolved
}
