package apiclient

import "github.com/yanqian/sunsafe/internal/domain/lookup"

// Endpoint paths served by the sunsafe API.
const (
	EndpointCancerData              = "/api/cancer-data"
	EndpointUVData                  = "/api/uv-data"
	EndpointSkinToneRecommendation  = "/api/skin-tone-recommendation"
	EndpointClothingRecommendation  = "/api/clothing-recommendation"
	EndpointSunscreenRecommendation = "/api/sunscreen-recommendation"
	EndpointRecommendation          = "/api/recommendation"
)

// CancerQuery selects a cancer incidence series.
type CancerQuery struct {
	Gender   lookup.Sex      `json:"gender" validate:"required"`
	AgeGroup lookup.AgeGroup `json:"ageGroup" validate:"required"`
}

// UVQuery selects the hourly UV series of a postcode.
type UVQuery struct {
	Postcode lookup.Postcode `json:"postcode" validate:"required"`
}

// SkinToneQuery selects the advice for a skin tone.
type SkinToneQuery struct {
	SkinTone lookup.SkinTone `json:"skinTone" validate:"required"`
}

// ClothingQuery describes the conditions to dress for. Both values must be set.
type ClothingQuery struct {
	UVIndex     *float64 `validate:"required"`
	Temperature *float64 `validate:"required"`
}

// SunscreenQuery pairs a skin type (1..5) with a UV index.
type SunscreenQuery struct {
	SkinType int      `validate:"required"`
	UVIndex  *float64 `validate:"required"`
}

// RecommendationQuery pairs a skin tone (label or type 1..5) with a postcode.
type RecommendationQuery struct {
	SkinTone lookup.SkinTone `validate:"required"`
	Postcode lookup.Postcode `validate:"required"`
}

// Float returns a pointer to v for the optional numeric query fields.
func Float(v float64) *float64 {
	return &v
}
