package domain

import (
	"errors"
	"time"
)

var (
	ErrEventNotFound     = errors.New("event not found")
	ErrAlreadyRegistered = errors.New("already registered for this event")
)

// Event is a civic event citizens can register for.
type Event struct {
	ID            string
	Title         string
	Description   string
	Date          time.Time
	CreatedBy     string
	CreatedByName string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Registration links a citizen to an event. One registration per
// (user, event) pair.
type Registration struct {
	ID        string
	UserID    string
	EventID   string
	Event     *Event
	CreatedAt time.Time
}

// AuditLog is a durable copy of one pipeline decision, flattened from the
// published audit event.
type AuditLog struct {
	ID                  string
	SessionID           string
	Intent              string
	Decision            string
	SLADays             int
	AIConfidence        float64
	RiskScore           int
	EscalationTriggered bool
	EscalationReason    string
	DecidedAt           time.Time
	CreatedAt           time.Time
}

type EventRepository interface {
	Save(event *Event) error
	FindAll() ([]*Event, error)
	FindByID(id string) (*Event, error)
}

type RegistrationRepository interface {
	Save(registration *Registration) error
	Exists(userID, eventID string) (bool, error)
	FindByUser(userID string) ([]*Registration, error)
}

type AuditLogRepository interface {
	Save(entry *AuditLog) error
	FindBySession(sessionID string) ([]*AuditLog, error)
}
