//go:build integration

package records_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"veritas/internal/records"
	"veritas/pkg/testutil/containers"
)

// countingSource tracks how often the underlying source is hit so cache
// behavior is observable.
type countingSource struct {
	countries map[string]records.Country
	calls     int
}

func (s *countingSource) FetchCountryMetadata(context.Context) (map[string]records.Country, error) {
	s.calls++
	return s.countries, nil
}

func TestCountryCacheReadThrough(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	rc := containers.NewRedisContainer(t)
	ctx := context.Background()

	source := &countingSource{countries: map[string]records.Country{
		"KE": {Code: "KE", Name: "Kenya"},
		"SS": {Code: "SS", Name: "South Sudan", HighRisk: true, SanctionsConcern: true},
	}}
	cache := records.NewCountryCache(source, rc.Client, time.Minute, nil)

	first, err := cache.FetchCountryMetadata(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, source.calls)
	assert.True(t, first["SS"].HighRisk)

	// Second read is served from redis.
	second, err := cache.FetchCountryMetadata(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, source.calls)
	assert.Equal(t, first, second)

	// Expired or flushed cache falls back to the source.
	require.NoError(t, rc.FlushAll(ctx))
	_, err = cache.FetchCountryMetadata(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, source.calls)
}
