package domain

import "context"

// SessionStore is the keyed, append-only conversation history. GetOrCreate
// returns the ordered turn list, creating an empty session on first use of an
// unseen id; Append adds one turn at the end. Implementations must preserve
// insertion order exactly.
type SessionStore interface {
	GetOrCreate(ctx context.Context, sessionID string) ([]Turn, error)
	Append(ctx context.Context, sessionID string, turn Turn) error
}

// AuditPublisher emits the audit event of a completed decision to whatever
// durable trail is configured.
type AuditPublisher interface {
	PublishAudit(ctx context.Context, event *AuditEvent) error
}
