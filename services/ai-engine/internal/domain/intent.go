package domain

import (
	"encoding/json"
	"strconv"
)

type Intent string

const (
	IntentPermitApplication  Intent = "permit_application"
	IntentGrievance          Intent = "grievance"
	IntentStatusTracking     Intent = "status_tracking"
	IntentInformationRequest Intent = "information_request"
)

// ValidateIntent reports whether the model-proposed intent belongs to the
// closed set. Total over strings; the orchestrator substitutes
// information_request when it returns false.
func ValidateIntent(intent Intent) bool {
	switch intent {
	case IntentPermitApplication, IntentGrievance, IntentStatusTracking, IntentInformationRequest:
		return true
	}
	return false
}

// StructuredIntent is the decoded model inference. Fields is deliberately
// schemaless: the model's extraction is passed through as-is and only the
// keys the rules care about are ever inspected.
type StructuredIntent struct {
	Intent         Intent         `json:"intent"`
	Fields         map[string]any `json:"fields"`
	Confidence     *float64       `json:"confidence"`
	Explanation    string         `json:"explanation"`
	RiskIndicators []string       `json:"risk_indicators"`
}

// NormalizedConfidence substitutes the explicit 0 sentinel for a missing
// confidence, so every numeric comparison downstream sees a real value.
func (si *StructuredIntent) NormalizedConfidence() float64 {
	if si.Confidence == nil {
		return 0
	}
	return *si.Confidence
}

// PropertySize extracts fields.property_size when present. The model is asked
// for a number but occasionally emits a numeric string; both count.
func (si *StructuredIntent) PropertySize() (float64, bool) {
	v, ok := si.Fields["property_size"]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	}
	return 0, false
}

// ParseModelOutput decodes the raw completion text. No repair heuristics: a
// payload that does not decode cleanly fails hard with the raw text attached,
// because every later stage depends on trusting this record.
func ParseModelOutput(raw string) (*StructuredIntent, error) {
	var si StructuredIntent
	if err := json.Unmarshal([]byte(raw), &si); err != nil {
		return nil, &InvalidModelOutputError{Raw: raw, Err: err}
	}
	if si.Fields == nil {
		si.Fields = map[string]any{}
	}
	if si.RiskIndicators == nil {
		si.RiskIndicators = []string{}
	}
	return &si, nil
}
