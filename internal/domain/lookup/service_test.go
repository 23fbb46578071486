package lookup_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/sunsafe/internal/domain/lookup"
	"github.com/yanqian/sunsafe/internal/infra/dataset"
	"github.com/yanqian/sunsafe/pkg/metrics"
)

func newTestService(t *testing.T) lookup.Service {
	t.Helper()
	ds, err := dataset.NewBuiltin().Load(context.Background())
	require.NoError(t, err)
	return lookup.NewService(ds, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCancerDataEveryKnownSeries(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	years := []int{1960, 1970, 1980, 1990, 2000, 2010, 2020}

	for _, sex := range []lookup.Sex{lookup.SexMale, lookup.SexFemale} {
		for _, group := range []lookup.AgeGroup{"0-9", "10-19", "20-29", "30-39", "40-49"} {
			series := svc.CancerData(ctx, lookup.CancerRequest{Gender: sex, AgeGroup: group})
			require.Len(t, series, 7, "%s/%s", sex, group)
			for i, pt := range series {
				require.Equal(t, years[i], pt.Year)
				require.GreaterOrEqual(t, pt.Count, 0)
			}
		}
	}
}

func TestCancerDataMale20To29(t *testing.T) {
	series := newTestService(t).CancerData(context.Background(), lookup.CancerRequest{Gender: "male", AgeGroup: "20-29"})
	require.Equal(t, []lookup.YearCount{
		{Year: 1960, Count: 10},
		{Year: 1970, Count: 15},
		{Year: 1980, Count: 20},
		{Year: 1990, Count: 28},
		{Year: 2000, Count: 35},
		{Year: 2010, Count: 45},
		{Year: 2020, Count: 50},
	}, series)
}

func TestCancerDataMiss(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	cases := []lookup.CancerRequest{
		{Gender: "other", AgeGroup: "20-29"},
		{Gender: "male", AgeGroup: "50-59"},
		{Gender: "male", AgeGroup: "20-2"},
		{Gender: "Male", AgeGroup: "20-29"},
		{},
	}
	for _, req := range cases {
		series := svc.CancerData(ctx, req)
		require.NotNil(t, series)
		require.Empty(t, series)
	}
}

func TestCancerDataReturnsCopy(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	req := lookup.CancerRequest{Gender: "female", AgeGroup: "0-9"}

	series := svc.CancerData(ctx, req)
	series[0].Count = -1

	require.Equal(t, 1, svc.CancerData(ctx, req)[0].Count)
}

func TestUVDataKnownPostcode(t *testing.T) {
	series := newTestService(t).UVData(context.Background(), lookup.UVRequest{Postcode: "3000"})
	require.Len(t, series, 24)
	seen := make(map[int]bool)
	for i, pt := range series {
		require.Equal(t, i, pt.Hour)
		require.False(t, seen[pt.Hour])
		seen[pt.Hour] = true
		require.GreaterOrEqual(t, pt.UVIndex, 0)
	}
	require.Equal(t, 0, series[0].UVIndex)
	require.Equal(t, 0, series[23].UVIndex)
	require.Equal(t, 10, series[12].UVIndex)
}

func TestUVDataMiss(t *testing.T) {
	series := newTestService(t).UVData(context.Background(), lookup.UVRequest{Postcode: "9999"})
	require.NotNil(t, series)
	require.Empty(t, series)

	raw, err := json.Marshal(series)
	require.NoError(t, err)
	require.JSONEq(t, `[]`, string(raw))
}

func TestSkinToneRecommendation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, tone := range lookup.SkinTones {
		resp := svc.SkinToneRecommendation(ctx, lookup.SkinToneRequest{SkinTone: tone})
		require.NotEqual(t, lookup.NoRecommendation, resp.Recommendation)
	}

	fair := svc.SkinToneRecommendation(ctx, lookup.SkinToneRequest{SkinTone: "fair"})
	require.Equal(t, "Use SPF 50+ broad-spectrum sunscreen. Your skin is highly sensitive to UV rays and prone to sunburn. Avoid the sun during peak hours, wear sunglasses, and always carry an umbrella or hat for protection.", fair.Recommendation)

	for _, tone := range []lookup.SkinTone{"", "olive", "Fair", "fair "} {
		resp := svc.SkinToneRecommendation(ctx, lookup.SkinToneRequest{SkinTone: tone})
		require.Equal(t, "No recommendation available.", resp.Recommendation)
	}
}

func TestSunscreenRecommendation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	resp := svc.SunscreenRecommendation(ctx, lookup.SunscreenRequest{SkinType: 1, UVIndex: 9})
	require.Equal(t, lookup.SkinToneFair, resp.SkinTone)
	require.Equal(t, lookup.CategoryVeryHigh, resp.Category)
	require.Equal(t, 50, resp.SPF)
	require.Contains(t, resp.Recommendation, "SPF 50+")

	resp = svc.SunscreenRecommendation(ctx, lookup.SunscreenRequest{SkinType: 5, UVIndex: 1})
	require.Equal(t, lookup.SkinToneDarkBrown, resp.SkinTone)
	require.Equal(t, lookup.CategoryLow, resp.Category)
	require.Equal(t, 15, resp.SPF)

	resp = svc.SunscreenRecommendation(ctx, lookup.SunscreenRequest{SkinType: 9, UVIndex: 5})
	require.Equal(t, lookup.NoRecommendation, resp.Recommendation)
	require.Zero(t, resp.SPF)
	require.Empty(t, resp.SkinTone)
}

func TestClothingRecommendation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	hot := svc.ClothingRecommendation(ctx, lookup.ClothingRequest{UVIndex: 11, Temperature: 32})
	require.Equal(t, lookup.CategoryExtreme, hot.Category)
	require.Equal(t, "Loose breathable linen or cotton", hot.Items[0])
	require.Contains(t, hot.Items, "Long-sleeved UPF 50+ shirt")

	cool := svc.ClothingRecommendation(ctx, lookup.ClothingRequest{UVIndex: 2, Temperature: 12})
	require.Equal(t, lookup.CategoryLow, cool.Category)
	require.Equal(t, []string{"Warm layers", "Sunglasses on bright days"}, cool.Items)
}

func TestRecommendationUsesPeakUV(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	resp := svc.Recommendation(ctx, lookup.RecommendationRequest{SkinTone: lookup.SkinToneFair, Postcode: " 3000 "})
	require.Equal(t, lookup.SkinToneFair, resp.SkinTone)
	require.Equal(t, lookup.Postcode("3000"), resp.Postcode)
	require.Equal(t, &lookup.PeakUV{Hour: 11, UVIndex: 10, Category: lookup.CategoryVeryHigh}, resp.UV)
	require.Equal(t, 50, resp.SPF)
	require.Equal(t, "Apply SPF 50+ broad-spectrum sunscreen, reapply every two hours and avoid the sun between 10 AM and 4 PM.", resp.Recommendation)

	byType := svc.Recommendation(ctx, lookup.RecommendationRequest{SkinTone: "4", Postcode: "3000"})
	require.Equal(t, lookup.SkinToneBrown, byType.SkinTone)
	require.Equal(t, 30, byType.SPF)
}

func TestRecommendationUnknownPostcodeFallsBackToSkinToneAdvice(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	resp := svc.Recommendation(ctx, lookup.RecommendationRequest{SkinTone: lookup.SkinToneFair, Postcode: "9999"})
	require.Nil(t, resp.UV)
	require.Zero(t, resp.SPF)
	require.Equal(t, svc.SkinToneRecommendation(ctx, lookup.SkinToneRequest{SkinTone: lookup.SkinToneFair}).Recommendation, resp.Recommendation)

	resp = svc.Recommendation(ctx, lookup.RecommendationRequest{SkinTone: "olive", Postcode: "3000"})
	require.Empty(t, resp.SkinTone)
	require.Nil(t, resp.UV)
	require.Equal(t, lookup.NoRecommendation, resp.Recommendation)

	resp = svc.Recommendation(ctx, lookup.RecommendationRequest{SkinTone: "9"})
	require.Equal(t, lookup.NoRecommendation, resp.Recommendation)
}

func TestStats(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	svc.UVData(ctx, lookup.UVRequest{Postcode: "3000"})
	svc.UVData(ctx, lookup.UVRequest{Postcode: "9999"})
	svc.SkinToneRecommendation(ctx, lookup.SkinToneRequest{SkinTone: lookup.SkinToneFair})

	stats := svc.Stats()
	require.Equal(t, lookup.Stats{
		CancerSeries: 10,
		Postcodes:    1,
		SkinTones:    5,
		Usage:        metrics.LookupUsage{Hits: 2, Misses: 1},
	}, stats)
}
