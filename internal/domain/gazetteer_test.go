package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGazetteerResolve(t *testing.T) {
	gaz := DefaultGazetteer()

	t.Run("exact name", func(t *testing.T) {
		coords, ok := gaz.Resolve("chennai")
		require.True(t, ok)
		assert.Equal(t, Geo{Lat: 13.0827, Lon: 80.2707}, coords)
	})

	t.Run("case and whitespace insensitive", func(t *testing.T) {
		coords, ok := gaz.Resolve("  Navi Mumbai ")
		require.True(t, ok)
		assert.Equal(t, Geo{Lat: 19.0330, Lon: 73.0297}, coords)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, ok := gaz.Resolve("Atlantis")
		assert.False(t, ok)
	})

	t.Run("all entries have valid coordinates", func(t *testing.T) {
		for name, coords := range gaz {
			assert.True(t, coords.Valid(), "gazetteer entry %q", name)
		}
	})
}
