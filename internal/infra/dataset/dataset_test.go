package dataset

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/sunsafe/internal/domain/lookup"
)

func TestBuiltinIsValid(t *testing.T) {
	ds, err := NewBuiltin().Load(context.Background())
	require.NoError(t, err)
	require.NoError(t, ds.Validate())

	stats := ds.Stats()
	require.Equal(t, 10, stats.CancerSeries)
	require.Equal(t, 1, stats.Postcodes)
	require.Equal(t, 5, stats.SkinTones)
}

func TestBuiltinReturnsFreshCopies(t *testing.T) {
	first, err := NewBuiltin().Load(context.Background())
	require.NoError(t, err)
	first.Cancer[lookup.SexMale]["20-29"][0].Count = 999

	second, err := NewBuiltin().Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, 10, second.Cancer[lookup.SexMale]["20-29"][0].Count)
}

func TestBuilderSortsSeries(t *testing.T) {
	b := NewBuilder()
	for _, year := range []int{2020, 1960, 1990, 1970, 2010, 1980, 2000} {
		b.AddCancer(" male ", "0-9", year, year-1950)
	}
	for hour := 23; hour >= 0; hour-- {
		b.AddUV("3000", hour, 0)
	}
	for _, tone := range lookup.SkinTones {
		b.SetAdvice(tone, "Hat.")
	}
	b.SetAdvice("fair", "  cover up  ")

	ds, err := b.Build()
	require.NoError(t, err)

	series := ds.Cancer[lookup.SexMale]["0-9"]
	require.Len(t, series, 7)
	require.Equal(t, 1960, series[0].Year)
	require.Equal(t, 2020, series[6].Year)
	require.Equal(t, 0, ds.UV["3000"][0].Hour)
	require.Equal(t, "cover up", ds.Advice[lookup.SkinToneFair])
}

func TestBuilderRejectsBrokenSeries(t *testing.T) {
	b := NewBuilder()
	b.AddCancer("female", "10-19", 1960, 1)
	b.AddCancer("female", "10-19", 1980, 2)
	b.AddUV("3121", 0, 1)

	_, err := b.Build()
	require.Error(t, err)
	require.Contains(t, err.Error(), "cancer female/10-19")
	require.Contains(t, err.Error(), "uv 3121")
}

func TestFileSourceLoadsSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testSnapshot()), 0o600))

	ds, err := NewFileSource(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, ds.Cancer[lookup.SexFemale]["40-49"], 7)
	require.Len(t, ds.UV["3053"], 24)
	require.Equal(t, "Hat.", ds.Advice[lookup.SkinToneBeige])
	require.Len(t, ds.Advice, 5)
}

func TestFileSourceRejectsIncompleteSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset.yaml")
	doc := `cancer:
  - sex: unknown
    ageGroup: "20-29"
    series:
      - {year: 2030, count: 1}
      - {year: 2040, count: 2}
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	_, err := NewFileSource(path).Load(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), `cancer "unknown": unknown sex`)
	require.Contains(t, err.Error(), "advice fair: missing")
}

func TestExampleSnapshotMatchesBuiltin(t *testing.T) {
	fromFile, err := NewFileSource(filepath.Join("..", "..", "..", "configs", "dataset.example.yaml")).Load(context.Background())
	require.NoError(t, err)
	builtin, err := NewBuiltin().Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, builtin, fromFile)
}

func TestFileSourceRejectsUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cancer: []\nextra: true\n"), 0o600))

	_, err := NewFileSource(path).Load(context.Background())
	require.Error(t, err)
}

func TestFileSourceMissingFile(t *testing.T) {
	_, err := NewFileSource(filepath.Join(t.TempDir(), "nope.yaml")).Load(context.Background())
	require.Error(t, err)
}

func TestSanitizeEndpoint(t *testing.T) {
	require.Equal(t, "acct.r2.cloudflarestorage.com", sanitizeEndpoint("https://acct.r2.cloudflarestorage.com/"))
	require.Equal(t, "localhost:9000", sanitizeEndpoint("http://localhost:9000"))
	require.Equal(t, "localhost:9000", sanitizeEndpoint(" localhost:9000 "))
}

func testSnapshot() string {
	doc := `cancer:
  - sex: female
    ageGroup: "40-49"
    series:
`
	for i, year := 0, 1960; year <= 2020; i, year = i+1, year+10 {
		doc += "      - {year: " + strconv.Itoa(year) + ", count: " + strconv.Itoa(18+i*10) + "}\n"
	}
	doc += `uv:
  - postcode: "3053"
    hours:
`
	for hour := 0; hour < 24; hour++ {
		doc += "      - {hour: " + strconv.Itoa(hour) + ", uvIndex: 0}\n"
	}
	doc += "advice:\n"
	for _, tone := range lookup.SkinTones {
		doc += "  - skinTone: " + string(tone) + "\n    recommendation: Hat.\n"
	}
	return doc
}
