package domain

const (
	explanationOversizedPermit = "Your application requires manual review because the property size exceeds the standard residential limit."
	explanationGrievance       = "Your grievance has been registered and will be reviewed by the appropriate department."
)

// EnhanceExplanation overrides the model's free-text explanation for known
// high-risk patterns; otherwise the model's own text passes through
// unchanged, empty included. Idempotent.
func EnhanceExplanation(intent Intent, si *StructuredIntent) string {
	if size, ok := si.PropertySize(); ok && intent == IntentPermitApplication && size > 200 {
		return explanationOversizedPermit
	}
	if intent == IntentGrievance {
		return explanationGrievance
	}
	return si.Explanation
}
