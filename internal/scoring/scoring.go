package scoring

import (
	"fmt"

	"github.com/imoreno/wellscreen/internal/catalog"
)

// SafetyAlertThreshold is the minimum safety answer value that raises the
// alert. Any answered value at or above it flags the session.
const SafetyAlertThreshold = 1

// EffectiveValue returns an item's contribution to the score for a raw
// answer value: 3-value for reversed items, the value itself otherwise.
func EffectiveValue(item *catalog.Item, value int) int {
	if item.Reversed {
		return catalog.ValueMax - value
	}
	return value
}

// Total sums the effective values of the given answers across the catalog's
// main items. Answers keyed by ids not present in the catalog are an error;
// catalog items without an answer simply do not contribute.
func Total(cat *catalog.Catalog, answers map[int]int) (int, error) {
	total := 0
	for id, value := range answers {
		item := cat.ItemByID(id)
		if item == nil {
			return 0, fmt.Errorf("answer references unknown item id %d", id)
		}
		if value < catalog.ValueMin || value > catalog.ValueMax {
			return 0, fmt.Errorf("answer for item %d has out-of-range value %d", id, value)
		}
		total += EffectiveValue(item, value)
	}
	return total, nil
}

// CategoryScores sums effective values per category. Every category of the
// closed set appears in the result, zero-valued when none of its items have
// been answered.
func CategoryScores(cat *catalog.Catalog, answers map[int]int) (map[catalog.Category]int, error) {
	scores := make(map[catalog.Category]int, len(catalog.Categories))
	for _, c := range catalog.Categories {
		scores[c] = 0
	}
	for id, value := range answers {
		item := cat.ItemByID(id)
		if item == nil {
			return nil, fmt.Errorf("answer references unknown item id %d", id)
		}
		if value < catalog.ValueMin || value > catalog.ValueMax {
			return nil, fmt.Errorf("answer for item %d has out-of-range value %d", id, value)
		}
		scores[item.Category] += EffectiveValue(item, value)
	}
	return scores, nil
}

// SafetyAlert evaluates the safety monitor rule: the alert is raised iff
// the safety item has been answered and its value meets the threshold.
// A missing answer never implies an alert.
func SafetyAlert(safetyAnswer *int) bool {
	return safetyAnswer != nil && *safetyAnswer >= SafetyAlertThreshold
}
