package persistence

import (
	"github.com/Shrivardhan5306/Senatebot-Autonomous-Governance/services/civic-service/internal/domain"

	"gorm.io/gorm"
)

type AuditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

func (r *AuditLogRepository) Save(entry *domain.AuditLog) error {
	model := &AuditLogModel{
		ID:                  entry.ID,
		SessionID:           entry.SessionID,
		Intent:              entry.Intent,
		Decision:            entry.Decision,
		SLADays:             entry.SLADays,
		AIConfidence:        entry.AIConfidence,
		RiskScore:           entry.RiskScore,
		EscalationTriggered: entry.EscalationTriggered,
		EscalationReason:    entry.EscalationReason,
		DecidedAt:           entry.DecidedAt,
	}
	return r.db.Create(model).Error
}

func (r *AuditLogRepository) FindBySession(sessionID string) ([]*domain.AuditLog, error) {
	var models []AuditLogModel
	err := r.db.Where("session_id = ?", sessionID).
		Order("decided_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	entries := make([]*domain.AuditLog, len(models))
	for i := range models {
		entries[i] = models[i].ToDomain()
	}
	return entries, nil
}
