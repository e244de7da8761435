package application

import (
	"context"
	"log"
	"time"

	"github.com/Shrivardhan5306/Senatebot-Autonomous-Governance/services/ai-engine/internal/domain"

	"github.com/google/uuid"
)

// GovernanceService runs the decision pipeline: session read/append, language
// lookup, prompt composition, model call, parse, validate, escalation,
// decision, explanation, audit. Everything after the model call is pure.
type GovernanceService struct {
	sessions domain.SessionStore
	llm      domain.CompletionClient
	audit    domain.AuditPublisher
}

func NewGovernanceService(sessions domain.SessionStore, llm domain.CompletionClient, audit domain.AuditPublisher) *GovernanceService {
	return &GovernanceService{
		sessions: sessions,
		llm:      llm,
		audit:    audit,
	}
}

// Process handles one citizen message. sessionID may be empty; a fresh id is
// generated so anonymous callers never share history.
func (s *GovernanceService) Process(ctx context.Context, sessionID, message string) (*domain.GovernanceResponse, error) {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	detectedLanguage := domain.DetectLanguage(message)

	history, err := s.sessions.GetOrCreate(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	userTurn := domain.Turn{Role: domain.RoleUser, Content: message}
	if err := s.sessions.Append(ctx, sessionID, userTurn); err != nil {
		return nil, err
	}

	prompt := domain.ComposePrompt(append(history, userTurn), detectedLanguage, message)

	raw, err := s.llm.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	parsed, err := domain.ParseModelOutput(raw)
	if err != nil {
		return nil, err
	}

	// The assistant turn joins the history only once it proved parseable.
	if err := s.sessions.Append(ctx, sessionID, domain.Turn{Role: domain.RoleAssistant, Content: raw}); err != nil {
		return nil, err
	}

	// Conservative default: an unknown or missing intent is treated as a
	// plain information request, never rejected.
	intent := parsed.Intent
	if !domain.ValidateIntent(intent) {
		intent = domain.IntentInformationRequest
		parsed.Intent = intent
	}

	escalation := domain.CheckEscalation(parsed)
	decision, slaDays := domain.Decide(intent, escalation)
	explanation := domain.EnhanceExplanation(intent, parsed)

	audit := domain.AuditRecord{
		AIConfidence:        parsed.NormalizedConfidence(),
		RiskScore:           escalation.RiskScore,
		EscalationTriggered: escalation.Escalate,
		EscalationReason:    escalation.Reason,
	}
	if s.audit != nil {
		event := &domain.AuditEvent{
			SessionID: sessionID,
			Intent:    intent,
			Decision:  decision,
			SLADays:   slaDays,
			Record:    audit,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.audit.PublishAudit(ctx, event); err != nil {
			log.Printf("audit publish failed for session %s: %v", sessionID, err)
		}
	}

	return &domain.GovernanceResponse{
		SessionID:        sessionID,
		DetectedLanguage: detectedLanguage,
		Intent:           intent,
		Fields:           parsed.Fields,
		Confidence:       parsed.NormalizedConfidence(),
		RiskIndicators:   parsed.RiskIndicators,
		Explanation:      explanation,
		Escalate:         escalation.Escalate,
		EscalationReason: escalation.Reason,
		RiskScore:        escalation.RiskScore,
		Decision:         decision,
		SLADays:          slaDays,
		Audit:            audit,
	}, nil
}
