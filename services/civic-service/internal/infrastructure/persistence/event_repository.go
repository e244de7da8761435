package persistence

import (
	"errors"

	"github.com/Shrivardhan5306/Senatebot-Autonomous-Governance/services/civic-service/internal/domain"

	"gorm.io/gorm"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Save(event *domain.Event) error {
	return r.db.Create(toEventModel(event)).Error
}

func (r *EventRepository) FindAll() ([]*domain.Event, error) {
	var models []EventModel
	if err := r.db.Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}
	events := make([]*domain.Event, len(models))
	for i := range models {
		events[i] = models[i].ToDomain()
	}
	return events, nil
}

func (r *EventRepository) FindByID(id string) (*domain.Event, error) {
	var model EventModel
	if err := r.db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEventNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}
