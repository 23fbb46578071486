package dataset

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yanqian/sunsafe/internal/domain/lookup"
)

// snapshot is the YAML document shared by the file and object store sources.
type snapshot struct {
	Cancer []struct {
		Sex      string             `yaml:"sex"`
		AgeGroup string             `yaml:"ageGroup"`
		Series   []lookup.YearCount `yaml:"series"`
	} `yaml:"cancer"`
	UV []struct {
		Postcode string            `yaml:"postcode"`
		Hours    []lookup.HourlyUV `yaml:"hours"`
	} `yaml:"uv"`
	Advice []struct {
		SkinTone       string `yaml:"skinTone"`
		Recommendation string `yaml:"recommendation"`
	} `yaml:"advice"`
}

func decodeSnapshot(data []byte) (lookup.Dataset, error) {
	var snap snapshot
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&snap); err != nil {
		return lookup.Dataset{}, fmt.Errorf("parse dataset snapshot: %w", err)
	}

	b := NewBuilder()
	for _, entry := range snap.Cancer {
		for _, pt := range entry.Series {
			b.AddCancer(lookup.Sex(entry.Sex), lookup.AgeGroup(entry.AgeGroup), pt.Year, pt.Count)
		}
	}
	for _, entry := range snap.UV {
		for _, pt := range entry.Hours {
			b.AddUV(lookup.Postcode(entry.Postcode), pt.Hour, pt.UVIndex)
		}
	}
	for _, entry := range snap.Advice {
		b.SetAdvice(lookup.SkinTone(entry.SkinTone), entry.Recommendation)
	}
	ds, err := b.Build()
	if err != nil {
		return lookup.Dataset{}, fmt.Errorf("invalid dataset snapshot: %w", err)
	}
	return ds, nil
}

// FileSource loads a YAML snapshot from disk.
type FileSource struct {
	path string
}

// NewFileSource constructs a source reading path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Load reads and validates the snapshot.
func (s *FileSource) Load(_ context.Context) (lookup.Dataset, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return lookup.Dataset{}, fmt.Errorf("read dataset file: %w", err)
	}
	return decodeSnapshot(data)
}

var _ lookup.Source = (*FileSource)(nil)
