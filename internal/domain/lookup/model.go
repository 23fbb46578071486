package lookup

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/yanqian/sunsafe/pkg/metrics"
)

// NoRecommendation is returned whenever a skin tone has no configured advice.
const NoRecommendation = "No recommendation available."

// Sex partitions the cancer incidence table.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// AgeGroup is a decade bracket label such as "20-29".
type AgeGroup string

// SkinTone labels the advice table.
type SkinTone string

const (
	SkinToneDarkBrown  SkinTone = "dark-brown"
	SkinToneBrown      SkinTone = "brown"
	SkinToneLightBrown SkinTone = "light-brown"
	SkinToneBeige      SkinTone = "beige"
	SkinToneFair       SkinTone = "fair"
)

// SkinTones lists the supported labels from fairest to darkest.
var SkinTones = []SkinTone{SkinToneFair, SkinToneBeige, SkinToneLightBrown, SkinToneBrown, SkinToneDarkBrown}

// Postcode identifies a UV series. Clients send it either as a JSON number or a string.
type Postcode string

// UnmarshalJSON accepts 3000, 3e3 and "3000" alike.
func (p *Postcode) UnmarshalJSON(data []byte) error {
	key, err := scalarKey(data)
	*p = Postcode(key)
	return err
}

// UnmarshalJSON keeps any scalar as its string form so unknown values miss.
func (s *Sex) UnmarshalJSON(data []byte) error {
	key, err := scalarKey(data)
	*s = Sex(key)
	return err
}

// UnmarshalJSON keeps any scalar as its string form so unknown values miss.
func (g *AgeGroup) UnmarshalJSON(data []byte) error {
	key, err := scalarKey(data)
	*g = AgeGroup(key)
	return err
}

// UnmarshalJSON keeps any scalar as its string form so unknown values miss.
func (t *SkinTone) UnmarshalJSON(data []byte) error {
	key, err := scalarKey(data)
	*t = SkinTone(key)
	return err
}

// scalarKey turns a JSON value into a table key. Whole numbers use their
// integer form; other non-string values keep their compact JSON text.
func scalarKey(data []byte) (string, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return "", nil
	}
	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return "", err
		}
		return strings.TrimSpace(s), nil
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		n := json.Number(trimmed)
		if i, err := n.Int64(); err == nil {
			return strconv.FormatInt(i, 10), nil
		}
		f, err := n.Float64()
		if err != nil {
			return "", fmt.Errorf("invalid number %s: %w", trimmed, err)
		}
		if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
			return strconv.FormatInt(int64(f), 10), nil
		}
		return n.String(), nil
	default:
		var buf bytes.Buffer
		if err := json.Compact(&buf, trimmed); err != nil {
			return "", err
		}
		return buf.String(), nil
	}
}

// YearCount is a single decade point of a demographic series.
type YearCount struct {
	Year  int `json:"year" yaml:"year"`
	Count int `json:"count" yaml:"count"`
}

// HourlyUV is the UV index for one hour of the day.
type HourlyUV struct {
	Hour    int `json:"hour" yaml:"hour"`
	UVIndex int `json:"uvIndex" yaml:"uvIndex"`
}

// CancerRequest captures the cancer lookup keys.
type CancerRequest struct {
	Gender   Sex      `json:"gender" form:"gender"`
	AgeGroup AgeGroup `json:"ageGroup" form:"ageGroup"`
}

// UVRequest captures the UV lookup key.
type UVRequest struct {
	Postcode Postcode `json:"postcode" form:"postcode"`
}

// SkinToneRequest captures the advice lookup key.
type SkinToneRequest struct {
	SkinTone SkinTone `json:"skinTone" form:"skinTone"`
}

// RecommendationResponse wraps the advice text.
type RecommendationResponse struct {
	Recommendation string `json:"recommendation"`
}

// ClothingRequest asks for outfit advice for given conditions.
type ClothingRequest struct {
	UVIndex     float64 `json:"uvIndex" form:"uvIndex"`
	Temperature float64 `json:"temperature" form:"temperature"`
}

// ClothingResponse lists outfit items for the conditions.
type ClothingResponse struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

// SunscreenRequest asks for sunscreen advice. SkinType runs 1 (fair) to 5 (dark brown).
type SunscreenRequest struct {
	SkinType int     `json:"skinType" form:"skinType"`
	UVIndex  float64 `json:"uvIndex" form:"uvIndex"`
}

// SunscreenResponse is the sunscreen advice for a skin type.
type SunscreenResponse struct {
	SkinTone       SkinTone `json:"skinTone,omitempty"`
	Category       string   `json:"category"`
	SPF            int      `json:"spf"`
	Recommendation string   `json:"recommendation"`
}

// RecommendationRequest pairs a skin tone with a postcode. SkinTone is either a
// label or a skin type from 1 to 5.
type RecommendationRequest struct {
	SkinTone SkinTone `json:"skinTone" form:"skinTone"`
	Postcode Postcode `json:"postcode" form:"postcode"`
}

// PeakUV is the strongest hour of a postcode's series.
type PeakUV struct {
	Hour     int    `json:"hour"`
	UVIndex  int    `json:"uvIndex"`
	Category string `json:"category"`
}

// PersonalRecommendation is sunscreen advice for a skin tone at a postcode.
// UV is omitted when the postcode has no series.
type PersonalRecommendation struct {
	SkinTone       SkinTone `json:"skinTone,omitempty"`
	Postcode       Postcode `json:"postcode,omitempty"`
	UV             *PeakUV  `json:"uv,omitempty"`
	SPF            int      `json:"spf,omitempty"`
	Recommendation string   `json:"recommendation"`
}

// Stats summarizes the loaded tables.
type Stats struct {
	CancerSeries int `json:"cancerSeries"`
	Postcodes    int `json:"postcodes"`
	SkinTones    int `json:"skinTones"`

	Usage metrics.LookupUsage `json:"usage"`
}
