package dataset

import (
	"sort"
	"strings"

	"github.com/yanqian/sunsafe/internal/domain/lookup"
)

// Builder assembles table rows from any source into a lookup.Dataset.
type Builder struct {
	cancer map[lookup.Sex]map[lookup.AgeGroup][]lookup.YearCount
	uv     map[lookup.Postcode][]lookup.HourlyUV
	advice map[lookup.SkinTone]string
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		cancer: make(map[lookup.Sex]map[lookup.AgeGroup][]lookup.YearCount),
		uv:     make(map[lookup.Postcode][]lookup.HourlyUV),
		advice: make(map[lookup.SkinTone]string),
	}
}

// AddCancer appends one decade point to a (sex, age group) series.
func (b *Builder) AddCancer(sex lookup.Sex, group lookup.AgeGroup, year, count int) {
	sex = lookup.Sex(strings.TrimSpace(string(sex)))
	group = lookup.AgeGroup(strings.TrimSpace(string(group)))
	brackets, ok := b.cancer[sex]
	if !ok {
		brackets = make(map[lookup.AgeGroup][]lookup.YearCount)
		b.cancer[sex] = brackets
	}
	brackets[group] = append(brackets[group], lookup.YearCount{Year: year, Count: count})
}

// AddUV appends one hourly reading for a postcode.
func (b *Builder) AddUV(postcode lookup.Postcode, hour, uvIndex int) {
	postcode = lookup.Postcode(strings.TrimSpace(string(postcode)))
	b.uv[postcode] = append(b.uv[postcode], lookup.HourlyUV{Hour: hour, UVIndex: uvIndex})
}

// SetAdvice stores the recommendation text for a skin tone.
func (b *Builder) SetAdvice(tone lookup.SkinTone, text string) {
	b.advice[lookup.SkinTone(strings.TrimSpace(string(tone)))] = strings.TrimSpace(text)
}

// Build sorts every series and validates the result.
func (b *Builder) Build() (lookup.Dataset, error) {
	for _, brackets := range b.cancer {
		for _, series := range brackets {
			sort.SliceStable(series, func(i, j int) bool { return series[i].Year < series[j].Year })
		}
	}
	for _, series := range b.uv {
		sort.SliceStable(series, func(i, j int) bool { return series[i].Hour < series[j].Hour })
	}
	ds := lookup.Dataset{Cancer: b.cancer, UV: b.uv, Advice: b.advice}
	if err := ds.Validate(); err != nil {
		return lookup.Dataset{}, err
	}
	return ds, nil
}
