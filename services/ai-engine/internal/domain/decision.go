package domain

type Decision string

const (
	DecisionAutoApproved        Decision = "auto_approved"
	DecisionGrievanceRegistered Decision = "grievance_registered"
	DecisionEscalatedToOfficer  Decision = "escalated_to_officer"
	DecisionUnderReview         Decision = "under_review"
)

// Decide maps the validated intent and escalation result onto a disposition
// and SLA. Later rules override earlier ones; the ordering is a contract,
// observable at the riskScore=70 boundary combined with escalate=true:
// the risk-threshold SLA override runs before escalation forces the decision,
// so an escalated grievance with riskScore >= 70 resolves to
// escalated_to_officer with a 2-day SLA.
func Decide(intent Intent, esc EscalationResult) (Decision, int) {
	decision := DecisionUnderReview
	slaDays := 7

	if intent == IntentPermitApplication && !esc.Escalate {
		decision = DecisionAutoApproved
	}
	if intent == IntentGrievance {
		decision = DecisionGrievanceRegistered
		slaDays = 5
	}
	if esc.RiskScore >= 70 {
		slaDays = 2
	}
	if esc.Escalate {
		decision = DecisionEscalatedToOfficer
	}

	return decision, slaDays
}
