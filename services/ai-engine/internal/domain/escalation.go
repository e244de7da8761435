package domain

// EscalationResult carries the sticky escalation flag, the unbounded additive
// risk score and the reason of the last rule that fired.
type EscalationResult struct {
	Escalate  bool   `json:"escalate"`
	Reason    string `json:"reason"`
	RiskScore int    `json:"riskScore"`
}

// RuleOutcome records one escalation rule's evaluation, keeping the reason
// override order an explicit policy instead of a side effect of source order.
type RuleOutcome struct {
	RuleID    string
	Fired     bool
	Escalates bool
	RiskDelta int
	Reason    string
}

const (
	RuleIntentMissing   = "intent_missing"
	RuleLowConfidence   = "low_confidence"
	RuleOversizedParcel = "oversized_parcel"
	RuleRiskIndicators  = "risk_indicators"
)

// EvaluateEscalationRules runs every rule independently, never
// short-circuiting. Missing confidence is normalized to 0 first, so absence
// always trips the threshold rule.
func EvaluateEscalationRules(si *StructuredIntent) []RuleOutcome {
	outcomes := []RuleOutcome{
		{
			RuleID:    RuleIntentMissing,
			Fired:     si.Intent == "",
			Escalates: true,
			RiskDelta: 30,
			Reason:    "Intent not detected clearly",
		},
		{
			RuleID:    RuleLowConfidence,
			Fired:     si.NormalizedConfidence() < 0.75,
			Escalates: true,
			RiskDelta: 25,
			Reason:    "Low confidence score",
		},
	}

	size, ok := si.PropertySize()
	outcomes = append(outcomes, RuleOutcome{
		RuleID:    RuleOversizedParcel,
		Fired:     ok && size > 200,
		Escalates: true,
		RiskDelta: 40,
		Reason:    "Property size exceeds residential limit",
	})

	// Adds risk only: neither escalates nor contributes a reason.
	outcomes = append(outcomes, RuleOutcome{
		RuleID:    RuleRiskIndicators,
		Fired:     len(si.RiskIndicators) > 0,
		RiskDelta: 20,
	})

	return outcomes
}

// FoldOutcomes reduces rule outcomes to the final result. Risk deltas are
// additive and order-independent; the reason is last-fired-wins across rules
// that carry one. No upper clamp on the score.
func FoldOutcomes(outcomes []RuleOutcome) EscalationResult {
	var result EscalationResult
	for _, o := range outcomes {
		if !o.Fired {
			continue
		}
		result.RiskScore += o.RiskDelta
		if o.Escalates {
			result.Escalate = true
		}
		if o.Reason != "" {
			result.Reason = o.Reason
		}
	}
	return result
}

// CheckEscalation is the deterministic risk scoring step of the pipeline.
func CheckEscalation(si *StructuredIntent) EscalationResult {
	return FoldOutcomes(EvaluateEscalationRules(si))
}
