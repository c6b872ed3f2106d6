// Package scoring computes total and per-category scores from recorded
// answers and classifies them into severity tiers via configurable band
// profiles. All functions are pure; the package holds no state.
package scoring

// Tier is the severity band derived from the total score. Tiers are
// ordered: comparing their Rank gives severity ordering.
type Tier string

const (
	TierGreen  Tier = "green"
	TierYellow Tier = "yellow"
	TierOrange Tier = "orange"
	TierRed    Tier = "red"
)

// Tiers lists all tiers in ascending severity order.
var Tiers = []Tier{TierGreen, TierYellow, TierOrange, TierRed}

// Rank returns the tier's position in the severity ordering, 0 being the
// least severe. Unknown tiers rank above red.
func (t Tier) Rank() int {
	for i, known := range Tiers {
		if t == known {
			return i
		}
	}
	return len(Tiers)
}

// Valid reports whether the tier is one of the known closed set.
func (t Tier) Valid() bool {
	switch t {
	case TierGreen, TierYellow, TierOrange, TierRed:
		return true
	}
	return false
}

// Label returns the Spanish display title for the tier.
func (t Tier) Label() string {
	switch t {
	case TierGreen:
		return "VERDE – Bienestar Estable"
	case TierYellow:
		return "AMARILLO – Desgaste en Proceso"
	case TierOrange:
		return "NARANJA – Sobrecarga Sostenida"
	case TierRed:
		return "ROJO – Alerta Emocional"
	default:
		return string(t)
	}
}
