package lookup

import (
	"fmt"
	"strconv"
)

const (
	CategoryLow      = "low"
	CategoryModerate = "moderate"
	CategoryHigh     = "high"
	CategoryVeryHigh = "very_high"
	CategoryExtreme  = "extreme"
)

// UVCategory maps a UV index to its WHO exposure band.
func UVCategory(uv float64) string {
	switch {
	case uv < 3:
		return CategoryLow
	case uv < 6:
		return CategoryModerate
	case uv < 8:
		return CategoryHigh
	case uv < 11:
		return CategoryVeryHigh
	default:
		return CategoryExtreme
	}
}

// baseSPF follows the factors quoted in the built-in skin tone advice.
var baseSPF = map[SkinTone]int{
	SkinToneFair:       50,
	SkinToneBeige:      50,
	SkinToneLightBrown: 40,
	SkinToneBrown:      30,
	SkinToneDarkBrown:  15,
}

// skinToneForType maps skin type 1..5 onto SkinTones.
func skinToneForType(skinType int) (SkinTone, bool) {
	if skinType < 1 || skinType > len(SkinTones) {
		return "", false
	}
	return SkinTones[skinType-1], true
}

var protectionByCategory = map[string][]string{
	CategoryLow:      {"Sunglasses on bright days"},
	CategoryModerate: {"Broad-brimmed hat", "Sunglasses"},
	CategoryHigh:     {"Broad-brimmed hat", "Wraparound sunglasses", "Collared shirt covering shoulders"},
	CategoryVeryHigh: {"Broad-brimmed hat", "Wraparound sunglasses", "Long-sleeved UPF 50+ shirt"},
	CategoryExtreme:  {"Broad-brimmed hat", "Wraparound sunglasses", "Long-sleeved UPF 50+ shirt", "Long trousers or skirt"},
}

func clothingFor(category string, temperature float64) []string {
	var items []string
	switch {
	case temperature >= 28:
		items = append(items, "Loose breathable linen or cotton")
	case temperature >= 18:
		items = append(items, "Light layers")
	default:
		items = append(items, "Warm layers")
	}
	items = append(items, protectionByCategory[category]...)
	return items
}

func sunscreenAdvice(category string, spf int) string {
	switch category {
	case CategoryLow:
		return fmt.Sprintf("Sun protection is optional; SPF %d+ if outdoors for extended periods.", spf)
	case CategoryModerate:
		return fmt.Sprintf("Apply SPF %d+ sunscreen 20 minutes before going outside.", spf)
	case CategoryHigh:
		return fmt.Sprintf("Apply SPF %d+ broad-spectrum sunscreen and reapply every two hours.", spf)
	default:
		return fmt.Sprintf("Apply SPF %d+ broad-spectrum sunscreen, reapply every two hours and avoid the sun between 10 AM and 4 PM.", spf)
	}
}

// resolveSkinTone accepts a label or a skin type number.
func resolveSkinTone(tone SkinTone) (SkinTone, bool) {
	if _, ok := baseSPF[tone]; ok {
		return tone, true
	}
	if n, err := strconv.Atoi(string(tone)); err == nil {
		return skinToneForType(n)
	}
	return "", false
}

// peakOf returns the first hour holding the highest index.
func peakOf(series []HourlyUV) PeakUV {
	peak := series[0]
	for _, pt := range series[1:] {
		if pt.UVIndex > peak.UVIndex {
			peak = pt
		}
	}
	return PeakUV{Hour: peak.Hour, UVIndex: peak.UVIndex, Category: UVCategory(float64(peak.UVIndex))}
}
