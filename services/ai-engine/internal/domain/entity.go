package domain

import "time"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

func (r Role) String() string {
	return string(r)
}

// Turn is one entry of a session's conversation history. Immutable once
// appended.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// AuditRecord is the write-once snapshot attached to every pipeline response.
type AuditRecord struct {
	AIConfidence        float64 `json:"ai_confidence"`
	RiskScore           int     `json:"risk_score"`
	EscalationTriggered bool    `json:"escalation_triggered"`
	EscalationReason    string  `json:"escalation_reason"`
}

// AuditEvent is the envelope published to the durable audit trail.
type AuditEvent struct {
	SessionID string      `json:"session_id"`
	Intent    Intent      `json:"intent"`
	Decision  Decision    `json:"decision"`
	SLADays   int         `json:"sla_days"`
	Record    AuditRecord `json:"record"`
	CreatedAt time.Time   `json:"created_at"`
}

// GovernanceResponse is the full structured result handed back to the caller.
type GovernanceResponse struct {
	SessionID        string         `json:"session_id"`
	DetectedLanguage string         `json:"detected_language"`
	Intent           Intent         `json:"intent"`
	Fields           map[string]any `json:"fields"`
	Confidence       float64        `json:"confidence"`
	RiskIndicators   []string       `json:"risk_indicators"`
	Explanation      string         `json:"explanation"`
	Escalate         bool           `json:"escalate"`
	EscalationReason string         `json:"escalation_reason"`
	RiskScore        int            `json:"risk_score"`
	Decision         Decision       `json:"decision"`
	SLADays          int            `json:"sla_days"`
	Audit            AuditRecord    `json:"audit"`
}
