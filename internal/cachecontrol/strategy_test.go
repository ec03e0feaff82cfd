package cachecontrol

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStrategyCatalog(t *testing.T) {
	directives := map[string]string{
		"max-age":                "public, max-age=60",
		"no-cache":               "no-cache",
		"no-store":               "no-store",
		"stale-while-revalidate": "public, max-age=30, stale-while-revalidate=60",
		"stale-if-error":         "public, max-age=30, stale-if-error=300",
		"etag-demo":              "public, max-age=0, must-revalidate",
		"last-modified-demo":     "public, max-age=0, must-revalidate",
		"combined-strategy":      "public, max-age=20, stale-while-revalidate=40, must-revalidate",
	}

	require.Len(t, Strategies, len(directives))
	for name, want := range directives {
		s, ok := StrategyByName(name)
		require.True(t, ok, "missing strategy %s", name)
		require.Equal(t, want, s.CacheControl)
	}
}

func TestStrategyPolicies(t *testing.T) {
	for _, name := range []string{"etag-demo", "combined-strategy"} {
		s, _ := StrategyByName(name)
		require.True(t, s.Policy.ETag, name)
		require.True(t, s.UsesValidators(), name)
	}
	for _, name := range []string{"last-modified-demo", "combined-strategy"} {
		s, _ := StrategyByName(name)
		require.True(t, s.Policy.LastModified, name)
	}
	for _, name := range []string{"max-age", "no-cache", "no-store", "stale-while-revalidate", "stale-if-error"} {
		s, _ := StrategyByName(name)
		require.False(t, s.UsesValidators(), name)
	}
}

func TestStrategyByNameUnknown(t *testing.T) {
	_, ok := StrategyByName("unknown")
	require.False(t, ok)
}
