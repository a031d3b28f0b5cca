package enhance

import "strings"

// Tier is one of the fixed rarity presets
type Tier struct {
	Key         string  // Stable identifier used in config
	Label       string  // Display name
	Color       string  // Display color as #rrggbb
	BaseSuccess float64 // Success percentage at level 0
}

// Fixed presets
var (
	TierNormal    = Tier{Key: "NORMAL", Label: "Normal", Color: "#ffffff", BaseSuccess: 80}
	TierRare      = Tier{Key: "RARE", Label: "Rare", Color: "#00aaff", BaseSuccess: 70}
	TierEpic      = Tier{Key: "EPIC", Label: "Epic", Color: "#d400ff", BaseSuccess: 60}
	TierLegendary = Tier{Key: "LEGENDARY", Label: "Legendary", Color: "#ff8000", BaseSuccess: 50}
)

// Tiers returns the presets in ascending rarity
func Tiers() []Tier {
	return []Tier{TierNormal, TierRare, TierEpic, TierLegendary}
}

// TierByKey looks up a preset by key, case-insensitive
func TierByKey(key string) (Tier, bool) {
	for _, t := range Tiers() {
		if strings.EqualFold(t.Key, key) {
			return t, true
		}
	}
	return Tier{}, false
}
