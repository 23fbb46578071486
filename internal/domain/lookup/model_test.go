package lookup

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPostcodeUnmarshal(t *testing.T) {
	cases := []struct {
		raw  string
		want Postcode
	}{
		{raw: `{"postcode":3000}`, want: "3000"},
		{raw: `{"postcode":3e3}`, want: "3000"},
		{raw: `{"postcode":3000.0}`, want: "3000"},
		{raw: `{"postcode":3000.5}`, want: "3000.5"},
		{raw: `{"postcode":"3000"}`, want: "3000"},
		{raw: `{"postcode":" 3000 "}`, want: "3000"},
		{raw: `{"postcode":null}`, want: ""},
		{raw: `{"postcode":true}`, want: "true"},
		{raw: `{}`, want: ""},
	}
	for _, tc := range cases {
		var req UVRequest
		require.NoError(t, json.Unmarshal([]byte(tc.raw), &req), tc.raw)
		require.Equal(t, tc.want, req.Postcode, tc.raw)
	}
}

func TestLookupKeysAcceptAnyScalar(t *testing.T) {
	var cancer CancerRequest
	require.NoError(t, json.Unmarshal([]byte(`{"gender":1,"ageGroup":["20-29"]}`), &cancer))
	require.Equal(t, Sex("1"), cancer.Gender)
	require.Equal(t, AgeGroup(`["20-29"]`), cancer.AgeGroup)

	var tone SkinToneRequest
	require.NoError(t, json.Unmarshal([]byte(`{"skinTone":3}`), &tone))
	require.Equal(t, SkinTone("3"), tone.SkinTone)

	require.NoError(t, json.Unmarshal([]byte(`{"skinTone":" fair "}`), &tone))
	require.Equal(t, SkinToneFair, tone.SkinTone)
}

func TestUVCategory(t *testing.T) {
	require.Equal(t, CategoryLow, UVCategory(0))
	require.Equal(t, CategoryLow, UVCategory(2.9))
	require.Equal(t, CategoryModerate, UVCategory(3))
	require.Equal(t, CategoryHigh, UVCategory(7))
	require.Equal(t, CategoryVeryHigh, UVCategory(10))
	require.Equal(t, CategoryExtreme, UVCategory(11))
}

func TestValidateAcceptsCompleteTables(t *testing.T) {
	require.NoError(t, validDataset().Validate())
}

func TestValidateRejectsBadTables(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(ds *Dataset)
		want   string
	}{
		{
			name: "unknown sex",
			mutate: func(ds *Dataset) {
				ds.Cancer["unknown"] = map[AgeGroup][]YearCount{"20-29": validSeries()}
			},
			want: `cancer "unknown": unknown sex`,
		},
		{
			name: "short series",
			mutate: func(ds *Dataset) {
				ds.Cancer[SexMale]["0-9"] = validSeries()[:2]
			},
			want: "expected 7 points from 1960 to 2020, got 2",
		},
		{
			name: "years outside 1960..2020",
			mutate: func(ds *Dataset) {
				series := validSeries()
				for i := range series {
					series[i].Year += 70
				}
				ds.Cancer[SexFemale]["0-9"] = series
			},
			want: "point 0: year 2030, want 1960",
		},
		{
			name: "non decade year",
			mutate: func(ds *Dataset) {
				ds.Cancer[SexFemale]["0-9"][3].Year = 1995
			},
			want: "point 3: year 1995, want 1990",
		},
		{
			name: "negative count",
			mutate: func(ds *Dataset) {
				ds.Cancer[SexMale]["0-9"][1].Count = -1
			},
			want: "negative count",
		},
		{
			name: "repeated hour",
			mutate: func(ds *Dataset) {
				ds.UV["3000"][5].Hour = 4
			},
			want: "hour 4 repeated",
		},
		{
			name: "missing skin tone",
			mutate: func(ds *Dataset) {
				delete(ds.Advice, SkinToneBrown)
			},
			want: "advice brown: missing",
		},
		{
			name: "empty advice",
			mutate: func(ds *Dataset) {
				ds.Advice[SkinToneFair] = " "
			},
			want: "advice fair: empty recommendation",
		},
		{
			name: "unknown skin tone",
			mutate: func(ds *Dataset) {
				ds.Advice["olive"] = "Hat."
			},
			want: `advice "olive": unknown skin tone`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ds := validDataset()
			tc.mutate(&ds)
			require.ErrorContains(t, ds.Validate(), tc.want)
		})
	}
}

func validSeries() []YearCount {
	series := make([]YearCount, 0, 7)
	for year := 1960; year <= 2020; year += 10 {
		series = append(series, YearCount{Year: year, Count: year - 1950})
	}
	return series
}

func validDataset() Dataset {
	hours := make([]HourlyUV, 24)
	for i := range hours {
		hours[i] = HourlyUV{Hour: i}
	}
	advice := make(map[SkinTone]string, len(SkinTones))
	for _, tone := range SkinTones {
		advice[tone] = "Cover up."
	}
	return Dataset{
		Cancer: map[Sex]map[AgeGroup][]YearCount{
			SexMale:   {"0-9": validSeries()},
			SexFemale: {"0-9": validSeries()},
		},
		UV:     map[Postcode][]HourlyUV{"3000": hours},
		Advice: advice,
	}
}
