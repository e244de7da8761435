package dto

import "time"

type CreateEventReq struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description" binding:"required"`
	Date        time.Time `json:"date" binding:"required"`
}

type EventResp struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Date          time.Time `json:"date"`
	CreatedBy     string    `json:"created_by"`
	CreatedByName string    `json:"created_by_name"`
	CreatedAt     time.Time `json:"created_at"`
}

type RegisterEventReq struct {
	EventID string `json:"event_id" binding:"required"`
}

type RegistrationResp struct {
	ID        string     `json:"id"`
	EventID   string     `json:"event_id"`
	Event     *EventResp `json:"event,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type AuditLogResp struct {
	SessionID           string    `json:"session_id"`
	Intent              string    `json:"intent"`
	Decision            string    `json:"decision"`
	SLADays             int       `json:"sla_days"`
	AIConfidence        float64   `json:"ai_confidence"`
	RiskScore           int       `json:"risk_score"`
	EscalationTriggered bool      `json:"escalation_triggered"`
	EscalationReason    string    `json:"escalation_reason"`
	DecidedAt           time.Time `json:"decided_at"`
}
