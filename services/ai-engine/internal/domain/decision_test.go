package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name         string
		intent       Intent
		esc          EscalationResult
		wantDecision Decision
		wantSLA      int
	}{
		{
			name:         "clean permit auto-approves",
			intent:       IntentPermitApplication,
			esc:          EscalationResult{},
			wantDecision: DecisionAutoApproved,
			wantSLA:      7,
		},
		{
			name:         "grievance registers with 5 day SLA",
			intent:       IntentGrievance,
			esc:          EscalationResult{RiskScore: 10},
			wantDecision: DecisionGrievanceRegistered,
			wantSLA:      5,
		},
		{
			name:         "escalated high-risk grievance: escalation wins decision, risk wins SLA",
			intent:       IntentGrievance,
			esc:          EscalationResult{Escalate: true, RiskScore: 80},
			wantDecision: DecisionEscalatedToOfficer,
			wantSLA:      2,
		},
		{
			name:         "escalated permit never auto-approves",
			intent:       IntentPermitApplication,
			esc:          EscalationResult{Escalate: true, RiskScore: 40},
			wantDecision: DecisionEscalatedToOfficer,
			wantSLA:      7,
		},
		{
			name:         "information request defaults to review",
			intent:       IntentInformationRequest,
			esc:          EscalationResult{},
			wantDecision: DecisionUnderReview,
			wantSLA:      7,
		},
		{
			name:         "risk threshold boundary tightens SLA without escalation",
			intent:       IntentStatusTracking,
			esc:          EscalationResult{RiskScore: 70},
			wantDecision: DecisionUnderReview,
			wantSLA:      2,
		},
		{
			name:         "risk just under threshold keeps default SLA",
			intent:       IntentStatusTracking,
			esc:          EscalationResult{RiskScore: 69},
			wantDecision: DecisionUnderReview,
			wantSLA:      7,
		},
		{
			name:         "escalated at exactly 70 gets both overrides",
			intent:       IntentStatusTracking,
			esc:          EscalationResult{Escalate: true, RiskScore: 70},
			wantDecision: DecisionEscalatedToOfficer,
			wantSLA:      2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision, sla := Decide(tt.intent, tt.esc)
			assert.Equal(t, tt.wantDecision, decision)
			assert.Equal(t, tt.wantSLA, sla)
		})
	}
}
