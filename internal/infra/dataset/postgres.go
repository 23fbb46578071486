package dataset

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/sunsafe/internal/domain/lookup"
)

// PostgresSource reads the tables once from Postgres. It never writes.
//
// Expected schema:
//
//	cancer_incidence(sex text, age_group text, year int, count int)
//	uv_index(postcode text, hour int, uv_index int)
//	skin_tone_advice(skin_tone text, recommendation text)
type PostgresSource struct {
	pool *pgxpool.Pool
}

// NewPostgresSource constructs the source.
func NewPostgresSource(pool *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{pool: pool}
}

// Load queries all three tables and validates the assembled dataset.
func (s *PostgresSource) Load(ctx context.Context) (lookup.Dataset, error) {
	b := NewBuilder()
	if err := s.loadCancer(ctx, b); err != nil {
		return lookup.Dataset{}, err
	}
	if err := s.loadUV(ctx, b); err != nil {
		return lookup.Dataset{}, err
	}
	if err := s.loadAdvice(ctx, b); err != nil {
		return lookup.Dataset{}, err
	}
	ds, err := b.Build()
	if err != nil {
		return lookup.Dataset{}, fmt.Errorf("invalid postgres dataset: %w", err)
	}
	return ds, nil
}

func (s *PostgresSource) loadCancer(ctx context.Context, b *Builder) error {
	rows, err := s.pool.Query(ctx, `
		SELECT sex, age_group, year, count
		FROM cancer_incidence
		ORDER BY sex, age_group, year
	`)
	if err != nil {
		return fmt.Errorf("query cancer_incidence: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			sex, group  string
			year, count int
		)
		if err := rows.Scan(&sex, &group, &year, &count); err != nil {
			return fmt.Errorf("scan cancer_incidence: %w", err)
		}
		b.AddCancer(lookup.Sex(sex), lookup.AgeGroup(group), year, count)
	}
	return rows.Err()
}

func (s *PostgresSource) loadUV(ctx context.Context, b *Builder) error {
	rows, err := s.pool.Query(ctx, `
		SELECT postcode, hour, uv_index
		FROM uv_index
		ORDER BY postcode, hour
	`)
	if err != nil {
		return fmt.Errorf("query uv_index: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			postcode  string
			hour, idx int
		)
		if err := rows.Scan(&postcode, &hour, &idx); err != nil {
			return fmt.Errorf("scan uv_index: %w", err)
		}
		b.AddUV(lookup.Postcode(postcode), hour, idx)
	}
	return rows.Err()
}

func (s *PostgresSource) loadAdvice(ctx context.Context, b *Builder) error {
	rows, err := s.pool.Query(ctx, `SELECT skin_tone, recommendation FROM skin_tone_advice`)
	if err != nil {
		return fmt.Errorf("query skin_tone_advice: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var tone, text string
		if err := rows.Scan(&tone, &text); err != nil {
			return fmt.Errorf("scan skin_tone_advice: %w", err)
		}
		b.SetAdvice(lookup.SkinTone(tone), text)
	}
	return rows.Err()
}

var _ lookup.Source = (*PostgresSource)(nil)
