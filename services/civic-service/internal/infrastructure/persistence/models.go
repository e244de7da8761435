package persistence

import (
	"time"

	"github.com/Shrivardhan5306/Senatebot-Autonomous-Governance/services/civic-service/internal/domain"
)

type EventModel struct {
	ID            string    `gorm:"primaryKey;type:varchar(36)"`
	Title         string    `gorm:"type:varchar(200);not null"`
	Description   string    `gorm:"type:text;not null"`
	Date          time.Time `gorm:"not null"`
	CreatedBy     string    `gorm:"type:varchar(36);not null;index"`
	CreatedByName string    `gorm:"type:varchar(100)"`
	CreatedAt     time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (EventModel) TableName() string {
	return "events"
}

type RegistrationModel struct {
	ID        string      `gorm:"primaryKey;type:varchar(36)"`
	UserID    string      `gorm:"type:varchar(36);not null;uniqueIndex:idx_user_event"`
	EventID   string      `gorm:"type:varchar(36);not null;uniqueIndex:idx_user_event"`
	Event     *EventModel `gorm:"foreignKey:EventID"`
	CreatedAt time.Time   `gorm:"autoCreateTime"`
}

func (RegistrationModel) TableName() string {
	return "registrations"
}

type AuditLogModel struct {
	ID                  string    `gorm:"primaryKey;type:varchar(36)"`
	SessionID           string    `gorm:"type:varchar(64);not null;index"`
	Intent              string    `gorm:"type:varchar(40);not null"`
	Decision            string    `gorm:"type:varchar(40);not null"`
	SLADays             int       `gorm:"not null"`
	AIConfidence        float64   `gorm:"not null"`
	RiskScore           int       `gorm:"not null"`
	EscalationTriggered bool      `gorm:"not null"`
	EscalationReason    string    `gorm:"type:varchar(200)"`
	DecidedAt           time.Time `gorm:"not null"`
	CreatedAt           time.Time `gorm:"autoCreateTime"`
}

func (AuditLogModel) TableName() string {
	return "audit_logs"
}

func (m *EventModel) ToDomain() *domain.Event {
	return &domain.Event{
		ID:            m.ID,
		Title:         m.Title,
		Description:   m.Description,
		Date:          m.Date,
		CreatedBy:     m.CreatedBy,
		CreatedByName: m.CreatedByName,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toEventModel(e *domain.Event) *EventModel {
	return &EventModel{
		ID:            e.ID,
		Title:         e.Title,
		Description:   e.Description,
		Date:          e.Date,
		CreatedBy:     e.CreatedBy,
		CreatedByName: e.CreatedByName,
	}
}

func (m *RegistrationModel) ToDomain() *domain.Registration {
	r := &domain.Registration{
		ID:        m.ID,
		UserID:    m.UserID,
		EventID:   m.EventID,
		CreatedAt: m.CreatedAt,
	}
	if m.Event != nil {
		r.Event = m.Event.ToDomain()
	}
	return r
}

func (m *AuditLogModel) ToDomain() *domain.AuditLog {
	return &domain.AuditLog{
		ID:                  m.ID,
		SessionID:           m.SessionID,
		Intent:              m.Intent,
		Decision:            m.Decision,
		SLADays:             m.SLADays,
		AIConfidence:        m.AIConfidence,
		RiskScore:           m.RiskScore,
		EscalationTriggered: m.EscalationTriggered,
		EscalationReason:    m.EscalationReason,
		DecidedAt:           m.DecidedAt,
		CreatedAt:           m.CreatedAt,
	}
}
