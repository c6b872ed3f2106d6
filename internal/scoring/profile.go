package scoring

import (
	"errors"
	"fmt"

	"github.com/imoreno/wellscreen/internal/catalog"
)

// Band maps a contiguous score range to a tier. A band covers every score
// up to and including UpperBound that no earlier band claimed. The last
// band of a profile is open-ended and its UpperBound is ignored.
type Band struct {
	UpperBound int  `yaml:"upper_bound"`
	Tier       Tier `yaml:"tier"`
}

// SubscaleThresholds holds the per-category status cut points, independent
// of the global tier bands. A category score >= RedMin is red, otherwise
// >= YellowMin is yellow, otherwise green.
type SubscaleThresholds struct {
	YellowMin int `yaml:"yellow_min"`
	RedMin    int `yaml:"red_min"`
}

// Status classifies a category subscore against the thresholds.
func (s SubscaleThresholds) Status(score int) Tier {
	if score >= s.RedMin {
		return TierRed
	}
	if score >= s.YellowMin {
		return TierYellow
	}
	return TierGreen
}

// Profile bundles a scoring configuration: the ordered tier bands for the
// total score, the per-category subscale thresholds, and triage behavior
// toggles. Profiles are read-only after load.
type Profile struct {
	Name                  string                                  `yaml:"name"`
	Bands                 []Band                                  `yaml:"bands"`
	Subscales             map[catalog.Category]SubscaleThresholds `yaml:"subscales"`
	EscalateOnSafetyAlert bool                                    `yaml:"escalate_on_safety_alert"`
}

// Classify maps a total score to its tier: the first band whose upper bound
// is not exceeded wins, and anything beyond the last bound lands in the
// final (highest-severity) band.
func (p *Profile) Classify(total int) Tier {
	for i, b := range p.Bands {
		if i == len(p.Bands)-1 {
			return b.Tier
		}
		if total <= b.UpperBound {
			return b.Tier
		}
	}
	return TierRed
}

// SubscaleStatus classifies a category subscore against the profile's
// per-category thresholds. Categories without configured thresholds
// report green for any score.
func (p *Profile) SubscaleStatus(cat catalog.Category, score int) Tier {
	th, ok := p.Subscales[cat]
	if !ok {
		return TierGreen
	}
	return th.Status(score)
}

// Validate checks structural soundness and returns non-fatal warnings for
// configurations that are legal but suspicious, such as a subscale whose
// yellow cut point can never be reached.
func (p *Profile) Validate() ([]string, error) {
	if p.Name == "" {
		return nil, errors.New("profile name is required")
	}
	if len(p.Bands) < 2 {
		return nil, fmt.Errorf("profile %s: at least two bands are required", p.Name)
	}

	prevBound := -1
	prevRank := -1
	for i, b := range p.Bands {
		if !b.Tier.Valid() {
			return nil, fmt.Errorf("profile %s: band %d has unknown tier %q", p.Name, i, b.Tier)
		}
		if b.Tier.Rank() <= prevRank {
			return nil, fmt.Errorf("profile %s: band %d breaks severity ordering", p.Name, i)
		}
		prevRank = b.Tier.Rank()
		if i < len(p.Bands)-1 {
			if b.UpperBound <= prevBound {
				return nil, fmt.Errorf("profile %s: band %d upper bound %d is not increasing", p.Name, i, b.UpperBound)
			}
			prevBound = b.UpperBound
		}
	}

	var warnings []string
	for _, cat := range catalog.Categories {
		th, ok := p.Subscales[cat]
		if !ok {
			continue
		}
		if th.YellowMin >= th.RedMin {
			warnings = append(warnings, fmt.Sprintf(
				"profile %s: subscale %q yellow threshold %d >= red threshold %d; the yellow status is unreachable",
				p.Name, cat, th.YellowMin, th.RedMin))
		}
	}

	return warnings, nil
}

// Baseline3 returns the three-tier profile: 0-15 green, 16-30 yellow,
// 31+ red. The mood subscale thresholds ship exactly as observed in the
// source data even though the equal cut points make its yellow status
// unreachable; Validate surfaces that as a warning for the catalog owner
// to correct.
func Baseline3() *Profile {
	return &Profile{
		Name: "baseline-3",
		Bands: []Band{
			{UpperBound: 15, Tier: TierGreen},
			{UpperBound: 30, Tier: TierYellow},
			{Tier: TierRed},
		},
		Subscales: map[catalog.Category]SubscaleThresholds{
			catalog.CategoryStress:     {YellowMin: 5, RedMin: 6},
			catalog.CategoryMood:       {YellowMin: 5, RedMin: 5},
			catalog.CategoryConfidence: {YellowMin: 4, RedMin: 6},
		},
	}
}

// Extended4 returns the four-tier profile used with the revised battery
// that carries one reversed item: 0-11 green, 12-22 yellow, 23-33 orange,
// 34+ red. A raised safety alert escalates triage to the clinical outcome.
func Extended4() *Profile {
	return &Profile{
		Name: "extended-4",
		Bands: []Band{
			{UpperBound: 11, Tier: TierGreen},
			{UpperBound: 22, Tier: TierYellow},
			{UpperBound: 33, Tier: TierOrange},
			{Tier: TierRed},
		},
		Subscales: map[catalog.Category]SubscaleThresholds{
			catalog.CategoryStress:     {YellowMin: 5, RedMin: 6},
			catalog.CategoryMood:       {YellowMin: 5, RedMin: 5},
			catalog.CategoryConfidence: {YellowMin: 4, RedMin: 6},
		},
		EscalateOnSafetyAlert: true,
	}
}

// ProfileByName resolves a profile name from configuration. Supported
// names: "baseline-3" and "extended-4".
func ProfileByName(name string) (*Profile, error) {
	switch name {
	case "", "baseline-3":
		return Baseline3(), nil
	case "extended-4":
		return Extended4(), nil
	default:
		return nil, fmt.Errorf("unknown scoring profile %q", name)
	}
}
