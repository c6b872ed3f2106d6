// Package triage maps severity tiers to a priority level and a recommended
// action. The mapping is a fixed lookup table over the closed tier set; it
// never recomputes anything from raw scores.
package triage

import (
	"github.com/imoreno/wellscreen/internal/scoring"
)

// Priority is the contact priority attached to a triage outcome.
type Priority string

const (
	PriorityLow        Priority = "low"
	PriorityMedium     Priority = "medium"
	PriorityMediumHigh Priority = "medium-high"
	PriorityHigh       Priority = "high"
)

// ActionType classifies the kind of follow-up an outcome suggests.
type ActionType string

const (
	ActionSelfCare            ActionType = "selfcare"
	ActionStructured          ActionType = "structured"
	ActionClinicalRecommended ActionType = "clinical-recommended"
	ActionClinical            ActionType = "clinical"
)

// Outcome is a triage result: a priority, a recommendation slug resolved to
// display text elsewhere, and the action type.
type Outcome struct {
	Priority       Priority   `json:"priority"`
	Recommendation string     `json:"recommendation"`
	Type           ActionType `json:"type"`
}

// outcomes is the total tier -> outcome table. Every tier maps to exactly
// one outcome.
var outcomes = map[scoring.Tier]Outcome{
	scoring.TierGreen: {
		Priority:       PriorityLow,
		Recommendation: "mantener-autocuidado",
		Type:           ActionSelfCare,
	},
	scoring.TierYellow: {
		Priority:       PriorityMedium,
		Recommendation: "acompanamiento-estructurado",
		Type:           ActionStructured,
	},
	scoring.TierOrange: {
		Priority:       PriorityMediumHigh,
		Recommendation: "evaluacion-profesional-recomendada",
		Type:           ActionClinicalRecommended,
	},
	scoring.TierRed: {
		Priority:       PriorityHigh,
		Recommendation: "contacto-prioritario-especialista",
		Type:           ActionClinical,
	},
}

// ForTier returns the triage outcome for a tier. Unknown tiers fall back to
// the highest-severity outcome rather than returning nothing actionable.
func ForTier(tier scoring.Tier) Outcome {
	if out, ok := outcomes[tier]; ok {
		return out
	}
	return outcomes[scoring.TierRed]
}

// Evaluate returns the triage outcome for a tier, escalating to the
// clinical outcome when the profile opts in and the safety alert is set.
func Evaluate(profile *scoring.Profile, tier scoring.Tier, safetyAlert bool) Outcome {
	if profile.EscalateOnSafetyAlert && safetyAlert {
		return outcomes[scoring.TierRed]
	}
	return ForTier(tier)
}
