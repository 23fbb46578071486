package dataset

import (
	"context"

	"github.com/yanqian/sunsafe/internal/domain/lookup"
)

// Builtin serves the compiled-in tables.
type Builtin struct{}

// NewBuiltin constructs the default source.
func NewBuiltin() Builtin {
	return Builtin{}
}

// Load returns a fresh copy of the built-in tables.
func (Builtin) Load(_ context.Context) (lookup.Dataset, error) {
	return lookup.Dataset{
		Cancer: builtinCancer(),
		UV:     builtinUV(),
		Advice: builtinAdvice(),
	}, nil
}

func builtinCancer() map[lookup.Sex]map[lookup.AgeGroup][]lookup.YearCount {
	return map[lookup.Sex]map[lookup.AgeGroup][]lookup.YearCount{
		lookup.SexMale: {
			"0-9":   {{Year: 1960, Count: 2}, {Year: 1970, Count: 3}, {Year: 1980, Count: 5}, {Year: 1990, Count: 8}, {Year: 2000, Count: 10}, {Year: 2010, Count: 15}, {Year: 2020, Count: 18}},
			"10-19": {{Year: 1960, Count: 5}, {Year: 1970, Count: 8}, {Year: 1980, Count: 12}, {Year: 1990, Count: 18}, {Year: 2000, Count: 25}, {Year: 2010, Count: 30}, {Year: 2020, Count: 35}},
			"20-29": {{Year: 1960, Count: 10}, {Year: 1970, Count: 15}, {Year: 1980, Count: 20}, {Year: 1990, Count: 28}, {Year: 2000, Count: 35}, {Year: 2010, Count: 45}, {Year: 2020, Count: 50}},
			"30-39": {{Year: 1960, Count: 15}, {Year: 1970, Count: 20}, {Year: 1980, Count: 30}, {Year: 1990, Count: 40}, {Year: 2000, Count: 55}, {Year: 2010, Count: 70}, {Year: 2020, Count: 80}},
			"40-49": {{Year: 1960, Count: 20}, {Year: 1970, Count: 30}, {Year: 1980, Count: 45}, {Year: 1990, Count: 60}, {Year: 2000, Count: 75}, {Year: 2010, Count: 90}, {Year: 2020, Count: 110}},
		},
		lookup.SexFemale: {
			"0-9":   {{Year: 1960, Count: 1}, {Year: 1970, Count: 2}, {Year: 1980, Count: 3}, {Year: 1990, Count: 5}, {Year: 2000, Count: 8}, {Year: 2010, Count: 12}, {Year: 2020, Count: 15}},
			"10-19": {{Year: 1960, Count: 4}, {Year: 1970, Count: 6}, {Year: 1980, Count: 10}, {Year: 1990, Count: 14}, {Year: 2000, Count: 22}, {Year: 2010, Count: 28}, {Year: 2020, Count: 32}},
			"20-29": {{Year: 1960, Count: 8}, {Year: 1970, Count: 12}, {Year: 1980, Count: 18}, {Year: 1990, Count: 26}, {Year: 2000, Count: 33}, {Year: 2010, Count: 40}, {Year: 2020, Count: 48}},
			"30-39": {{Year: 1960, Count: 12}, {Year: 1970, Count: 18}, {Year: 1980, Count: 26}, {Year: 1990, Count: 36}, {Year: 2000, Count: 50}, {Year: 2010, Count: 65}, {Year: 2020, Count: 75}},
			"40-49": {{Year: 1960, Count: 18}, {Year: 1970, Count: 28}, {Year: 1980, Count: 40}, {Year: 1990, Count: 55}, {Year: 2000, Count: 70}, {Year: 2010, Count: 85}, {Year: 2020, Count: 100}},
		},
	}
}

func builtinUV() map[lookup.Postcode][]lookup.HourlyUV {
	return map[lookup.Postcode][]lookup.HourlyUV{
		"3000": {
			{Hour: 0, UVIndex: 0}, {Hour: 1, UVIndex: 0}, {Hour: 2, UVIndex: 0}, {Hour: 3, UVIndex: 0}, {Hour: 4, UVIndex: 0}, {Hour: 5, UVIndex: 0},
			{Hour: 6, UVIndex: 1}, {Hour: 7, UVIndex: 3}, {Hour: 8, UVIndex: 5}, {Hour: 9, UVIndex: 7}, {Hour: 10, UVIndex: 9}, {Hour: 11, UVIndex: 10},
			{Hour: 12, UVIndex: 10}, {Hour: 13, UVIndex: 9}, {Hour: 14, UVIndex: 7}, {Hour: 15, UVIndex: 5}, {Hour: 16, UVIndex: 3}, {Hour: 17, UVIndex: 1},
			{Hour: 18, UVIndex: 0}, {Hour: 19, UVIndex: 0}, {Hour: 20, UVIndex: 0}, {Hour: 21, UVIndex: 0}, {Hour: 22, UVIndex: 0}, {Hour: 23, UVIndex: 0},
		},
	}
}

func builtinAdvice() map[lookup.SkinTone]string {
	return map[lookup.SkinTone]string{
		lookup.SkinToneDarkBrown:  "Use SPF 15+ sunscreen, but still take precautions. Wear sunglasses and a hat to protect your face. Avoid prolonged sun exposure between 10 AM and 4 PM.",
		lookup.SkinToneBrown:      "Use SPF 30+ sunscreen, reapplying every two hours. Seek shade during peak UV hours and wear protective clothing, such as long sleeves and a wide-brimmed hat.",
		lookup.SkinToneLightBrown: "Use SPF 40+ sunscreen, as your skin is more susceptible to UV damage. Apply sunscreen liberally and avoid excessive sun exposure, especially near water or sand.",
		lookup.SkinToneBeige:      "Use SPF 50+ sunscreen. Your skin burns more easily, so reapply sunscreen every two hours and after swimming or sweating. Wear UV-protective clothing for extra safety.",
		lookup.SkinToneFair:       "Use SPF 50+ broad-spectrum sunscreen. Your skin is highly sensitive to UV rays and prone to sunburn. Avoid the sun during peak hours, wear sunglasses, and always carry an umbrella or hat for protection.",
	}
}

var _ lookup.Source = Builtin{}
