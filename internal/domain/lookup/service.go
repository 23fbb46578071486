package lookup

import (
	"context"
	"log/slog"
	"strings"

	"github.com/yanqian/sunsafe/pkg/metrics"
)

// Service answers lookups against the static tables. A missing key is a valid
// empty result, never an error.
type Service interface {
	CancerData(ctx context.Context, req CancerRequest) []YearCount
	UVData(ctx context.Context, req UVRequest) []HourlyUV
	SkinToneRecommendation(ctx context.Context, req SkinToneRequest) RecommendationResponse
	ClothingRecommendation(ctx context.Context, req ClothingRequest) ClothingResponse
	SunscreenRecommendation(ctx context.Context, req SunscreenRequest) SunscreenResponse
	Recommendation(ctx context.Context, req RecommendationRequest) PersonalRecommendation
	Stats() Stats
}

type service struct {
	data   Dataset
	logger *slog.Logger
	usage  metrics.LookupCounter
}

// NewService wires the lookup domain over an already validated dataset.
func NewService(data Dataset, logger *slog.Logger) Service {
	return &service{
		data:   data,
		logger: logger.With("component", "lookup.service"),
	}
}

func (s *service) CancerData(ctx context.Context, req CancerRequest) []YearCount {
	series, ok := s.data.Cancer[req.Gender][req.AgeGroup]
	s.usage.Record(ok)
	if !ok {
		s.logger.DebugContext(ctx, "cancer lookup miss", "gender", req.Gender, "ageGroup", req.AgeGroup)
		return []YearCount{}
	}
	return append([]YearCount{}, series...)
}

func (s *service) UVData(ctx context.Context, req UVRequest) []HourlyUV {
	key := Postcode(strings.TrimSpace(string(req.Postcode)))
	series, ok := s.data.UV[key]
	s.usage.Record(ok)
	if !ok {
		s.logger.DebugContext(ctx, "uv lookup miss", "postcode", key)
		return []HourlyUV{}
	}
	return append([]HourlyUV{}, series...)
}

func (s *service) SkinToneRecommendation(ctx context.Context, req SkinToneRequest) RecommendationResponse {
	text, ok := s.data.Advice[req.SkinTone]
	s.usage.Record(ok)
	if !ok {
		s.logger.DebugContext(ctx, "skin tone lookup miss", "skinTone", req.SkinTone)
		return RecommendationResponse{Recommendation: NoRecommendation}
	}
	return RecommendationResponse{Recommendation: text}
}

func (s *service) ClothingRecommendation(_ context.Context, req ClothingRequest) ClothingResponse {
	category := UVCategory(req.UVIndex)
	return ClothingResponse{
		Category: category,
		Items:    clothingFor(category, req.Temperature),
	}
}

func (s *service) SunscreenRecommendation(ctx context.Context, req SunscreenRequest) SunscreenResponse {
	category := UVCategory(req.UVIndex)
	tone, ok := skinToneForType(req.SkinType)
	if !ok {
		s.logger.DebugContext(ctx, "sunscreen lookup miss", "skinType", req.SkinType)
		return SunscreenResponse{Category: category, Recommendation: NoRecommendation}
	}
	spf := baseSPF[tone]
	return SunscreenResponse{
		SkinTone:       tone,
		Category:       category,
		SPF:            spf,
		Recommendation: sunscreenAdvice(category, spf),
	}
}

// Recommendation sizes sunscreen advice to the peak UV of the postcode. Without
// a UV series it falls back to the skin tone advice text.
func (s *service) Recommendation(ctx context.Context, req RecommendationRequest) PersonalRecommendation {
	postcode := Postcode(strings.TrimSpace(string(req.Postcode)))
	out := PersonalRecommendation{Postcode: postcode, Recommendation: NoRecommendation}

	tone, ok := resolveSkinTone(req.SkinTone)
	if !ok {
		s.usage.Record(false)
		s.logger.DebugContext(ctx, "recommendation skin tone miss", "skinTone", req.SkinTone)
		return out
	}
	out.SkinTone = tone

	series, ok := s.data.UV[postcode]
	s.usage.Record(ok)
	if !ok || len(series) == 0 {
		s.logger.DebugContext(ctx, "recommendation uv miss, using skin tone advice", "postcode", postcode)
		if text, ok := s.data.Advice[tone]; ok {
			out.Recommendation = text
		}
		return out
	}

	peak := peakOf(series)
	out.UV = &peak
	out.SPF = baseSPF[tone]
	out.Recommendation = sunscreenAdvice(peak.Category, out.SPF)
	return out
}

func (s *service) Stats() Stats {
	stats := s.data.Stats()
	stats.Usage = s.usage.Snapshot()
	return stats
}
