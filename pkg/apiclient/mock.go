package apiclient

import (
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/yanqian/sunsafe/internal/domain/lookup"
)

// DefaultMockLocation is used by MockUVSnapshot when no location is given.
const DefaultMockLocation = "Melbourne, Australia"

// UVSnapshot is a canned reading used to exercise UI flows offline.
type UVSnapshot struct {
	Location   string   `json:"location"`
	Index      int      `json:"index"`
	Level      string   `json:"level"`
	Date       string   `json:"date"`
	Time       string   `json:"time"`
	Protection []string `json:"protection"`
}

// MockUVSnapshot returns a fixed very-high reading stamped with now.
func MockUVSnapshot(location string, now time.Time) UVSnapshot {
	location = strings.TrimSpace(location)
	if location == "" {
		location = DefaultMockLocation
	}
	const index = 8
	return UVSnapshot{
		Location: location,
		Index:    index,
		Level:    lookup.UVCategory(index),
		Date:     now.Format(time.DateOnly),
		Time:     now.Format(time.TimeOnly),
		Protection: []string{
			"Apply SPF 50+ sunscreen",
			"Wear a hat and sunglasses",
			"Seek shade during midday hours",
			"Wear protective clothing",
		},
	}
}

// MockCancerData generates 13 points from 1960 to 2020 in 5 year steps. The
// curve rises with time; older brackets grow faster. rng adds up to 20 cases
// of noise per point and may be nil for a deterministic series.
func MockCancerData(gender, ageGroup string, rng *rand.Rand) []lookup.YearCount {
	base := 20.0
	switch lookup.Sex(strings.ToLower(strings.TrimSpace(gender))) {
	case lookup.SexMale:
		base += 10
	case lookup.SexFemale:
		base += 5
	}

	growth := 1.0
	for _, step := range []struct {
		digit  string
		factor float64
	}{{"5", 1.2}, {"6", 1.5}, {"7", 1.8}, {"8", 2.0}} {
		if strings.Contains(ageGroup, step.digit) {
			growth = step.factor
		}
	}

	points := make([]lookup.YearCount, 0, 13)
	for i := 0; i < 13; i++ {
		year := 1960 + i*5
		yearFactor := float64(year-1960) / 10
		value := (base + float64(i)*growth*5) * (1 + yearFactor*0.2)
		if rng != nil {
			value += rng.Float64() * 20
		}
		points = append(points, lookup.YearCount{Year: year, Count: int(math.Floor(value))})
	}
	return points
}
