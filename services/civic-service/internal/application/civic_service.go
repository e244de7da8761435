package application

import (
	"github.com/Shrivardhan5306/Senatebot-Autonomous-Governance/services/civic-service/internal/application/dto"
	"github.com/Shrivardhan5306/Senatebot-Autonomous-Governance/services/civic-service/internal/domain"

	"github.com/google/uuid"
)

type CivicService struct {
	events        domain.EventRepository
	registrations domain.RegistrationRepository
	auditLogs     domain.AuditLogRepository
}

func NewCivicService(
	events domain.EventRepository,
	registrations domain.RegistrationRepository,
	auditLogs domain.AuditLogRepository,
) *CivicService {
	return &CivicService{
		events:        events,
		registrations: registrations,
		auditLogs:     auditLogs,
	}
}

func (s *CivicService) CreateEvent(userID, userName string, req *dto.CreateEventReq) (*dto.EventResp, error) {
	event := &domain.Event{
		ID:            uuid.NewString(),
		Title:         req.Title,
		Description:   req.Description,
		Date:          req.Date,
		CreatedBy:     userID,
		CreatedByName: userName,
	}
	if err := s.events.Save(event); err != nil {
		return nil, err
	}
	return toEventResp(event), nil
}

// ListEvents returns all events, newest first.
func (s *CivicService) ListEvents() ([]*dto.EventResp, error) {
	events, err := s.events.FindAll()
	if err != nil {
		return nil, err
	}
	resp := make([]*dto.EventResp, len(events))
	for i, e := range events {
		resp[i] = toEventResp(e)
	}
	return resp, nil
}

func (s *CivicService) GetEvent(id string) (*dto.EventResp, error) {
	event, err := s.events.FindByID(id)
	if err != nil {
		return nil, err
	}
	return toEventResp(event), nil
}

func (s *CivicService) RegisterForEvent(userID string, req *dto.RegisterEventReq) (*dto.RegistrationResp, error) {
	if _, err := s.events.FindByID(req.EventID); err != nil {
		return nil, err
	}

	exists, err := s.registrations.Exists(userID, req.EventID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrAlreadyRegistered
	}

	registration := &domain.Registration{
		ID:      uuid.NewString(),
		UserID:  userID,
		EventID: req.EventID,
	}
	if err := s.registrations.Save(registration); err != nil {
		return nil, err
	}
	return toRegistrationResp(registration), nil
}

func (s *CivicService) MyRegistrations(userID string) ([]*dto.RegistrationResp, error) {
	registrations, err := s.registrations.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	resp := make([]*dto.RegistrationResp, len(registrations))
	for i, r := range registrations {
		resp[i] = toRegistrationResp(r)
	}
	return resp, nil
}

func (s *CivicService) SessionAuditTrail(sessionID string) ([]*dto.AuditLogResp, error) {
	entries, err := s.auditLogs.FindBySession(sessionID)
	if err != nil {
		return nil, err
	}
	resp := make([]*dto.AuditLogResp, len(entries))
	for i, e := range entries {
		resp[i] = &dto.AuditLogResp{
			SessionID:           e.SessionID,
			Intent:              e.Intent,
			Decision:            e.Decision,
			SLADays:             e.SLADays,
			AIConfidence:        e.AIConfidence,
			RiskScore:           e.RiskScore,
			EscalationTriggered: e.EscalationTriggered,
			EscalationReason:    e.EscalationReason,
			DecidedAt:           e.DecidedAt,
		}
	}
	return resp, nil
}

func toEventResp(e *domain.Event) *dto.EventResp {
	return &dto.EventResp{
		ID:            e.ID,
		Title:         e.Title,
		Description:   e.Description,
		Date:          e.Date,
		CreatedBy:     e.CreatedBy,
		CreatedByName: e.CreatedByName,
		CreatedAt:     e.CreatedAt,
	}
}

func toRegistrationResp(r *domain.Registration) *dto.RegistrationResp {
	resp := &dto.RegistrationResp{
		ID:        r.ID,
		EventID:   r.EventID,
		CreatedAt: r.CreatedAt,
	}
	if r.Event != nil {
		resp.Event = toEventResp(r.Event)
	}
	return resp
}
