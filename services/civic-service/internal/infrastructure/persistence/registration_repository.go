package persistence

import (
	"github.com/Shrivardhan5306/Senatebot-Autonomous-Governance/services/civic-service/internal/domain"

	"gorm.io/gorm"
)

type RegistrationRepository struct {
	db *gorm.DB
}

func NewRegistrationRepository(db *gorm.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

func (r *RegistrationRepository) Save(registration *domain.Registration) error {
	model := &RegistrationModel{
		ID:      registration.ID,
		UserID:  registration.UserID,
		EventID: registration.EventID,
	}
	return r.db.Create(model).Error
}

func (r *RegistrationRepository) Exists(userID, eventID string) (bool, error) {
	var count int64
	err := r.db.Model(&RegistrationModel{}).
		Where("user_id = ? AND event_id = ?", userID, eventID).
		Count(&count).Error
	return count > 0, err
}

func (r *RegistrationRepository) FindByUser(userID string) ([]*domain.Registration, error) {
	var models []RegistrationModel
	err := r.db.Preload("Event").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	registrations := make([]*domain.Registration, len(models))
	for i := range models {
		registrations[i] = models[i].ToDomain()
	}
	return registrations, nil
}
