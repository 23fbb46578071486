package lookup

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
)

const (
	hoursPerDay = 24
	decade      = 10
	firstYear   = 1960
	lastYear    = 2020
	seriesLen   = (lastYear-firstYear)/decade + 1
)

// Dataset holds the three read-only tables served by the lookup service.
type Dataset struct {
	Cancer map[Sex]map[AgeGroup][]YearCount
	UV     map[Postcode][]HourlyUV
	Advice map[SkinTone]string
}

// Source loads a dataset once at startup.
type Source interface {
	Load(ctx context.Context) (Dataset, error)
}

// Validate reports every invariant violation found in the dataset.
func (d Dataset) Validate() error {
	var errs []error
	for _, sex := range sortedKeys(d.Cancer) {
		if sex != SexMale && sex != SexFemale {
			errs = append(errs, fmt.Errorf("cancer %q: unknown sex", sex))
			continue
		}
		brackets := d.Cancer[sex]
		for _, bracket := range sortedKeys(brackets) {
			if err := validateSeries(brackets[bracket]); err != nil {
				errs = append(errs, fmt.Errorf("cancer %s/%s: %w", sex, bracket, err))
			}
		}
	}
	for _, postcode := range sortedKeys(d.UV) {
		if err := validateHours(d.UV[postcode]); err != nil {
			errs = append(errs, fmt.Errorf("uv %s: %w", postcode, err))
		}
	}
	known := make(map[SkinTone]struct{}, len(SkinTones))
	for _, tone := range SkinTones {
		known[tone] = struct{}{}
		text, ok := d.Advice[tone]
		switch {
		case !ok:
			errs = append(errs, fmt.Errorf("advice %s: missing", tone))
		case strings.TrimSpace(text) == "":
			errs = append(errs, fmt.Errorf("advice %s: empty recommendation", tone))
		}
	}
	for _, tone := range sortedKeys(d.Advice) {
		if _, ok := known[tone]; !ok {
			errs = append(errs, fmt.Errorf("advice %q: unknown skin tone", tone))
		}
	}
	return errors.Join(errs...)
}

// Stats counts the entries in each table.
func (d Dataset) Stats() Stats {
	series := 0
	for _, brackets := range d.Cancer {
		series += len(brackets)
	}
	return Stats{CancerSeries: series, Postcodes: len(d.UV), SkinTones: len(d.Advice)}
}

// validateSeries requires one point per decade from firstYear to lastYear.
func validateSeries(points []YearCount) error {
	if len(points) != seriesLen {
		return fmt.Errorf("expected %d points from %d to %d, got %d", seriesLen, firstYear, lastYear, len(points))
	}
	for i, pt := range points {
		if want := firstYear + i*decade; pt.Year != want {
			return fmt.Errorf("point %d: year %d, want %d", i, pt.Year, want)
		}
		if pt.Count < 0 {
			return fmt.Errorf("year %d: negative count %d", pt.Year, pt.Count)
		}
	}
	return nil
}

func validateHours(points []HourlyUV) error {
	if len(points) != hoursPerDay {
		return fmt.Errorf("expected %d hours, got %d", hoursPerDay, len(points))
	}
	var seen [hoursPerDay]bool
	for _, pt := range points {
		if pt.Hour < 0 || pt.Hour >= hoursPerDay {
			return fmt.Errorf("hour %d out of range", pt.Hour)
		}
		if seen[pt.Hour] {
			return fmt.Errorf("hour %d repeated", pt.Hour)
		}
		seen[pt.Hour] = true
		if pt.UVIndex < 0 {
			return fmt.Errorf("hour %d: negative uv index %d", pt.Hour, pt.UVIndex)
		}
	}
	return nil
}

func sortedKeys[K ~string, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
