package palette

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIndex(t *testing.T) *Index {
	t.Helper()
	idx, err := NewIndex(Builtin(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = idx.Close() })
	return idx
}

func slugs(hits []Hit) []string {
	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.Slug
	}
	return out
}

func TestIndex_SearchByName(t *testing.T) {
	idx := newTestIndex(t)

	hits, err := idx.Search(context.Background(), "blue", 0)
	require.NoError(t, err)

	got := slugs(hits)
	assert.Contains(t, got, "ocean-blues")
	assert.Contains(t, got, "faded-blues")
	assert.Contains(t, got, "blue-vibes")
	assert.NotContains(t, got, "neon-nights")
}

func TestIndex_SearchFindsThemes(t *testing.T) {
	idx := newTestIndex(t)

	hits, err := idx.Search(context.Background(), "ocean", 0)
	require.NoError(t, err)

	var kinds []Kind
	for _, h := range hits {
		if h.Slug == "ocean" {
			kinds = append(kinds, h.Kind)
		}
	}
	assert.Equal(t, []Kind{KindTheme}, kinds)
	assert.Contains(t, slugs(hits), "ocean-blues")
}

func TestIndex_SearchByHexColor(t *testing.T) {
	idx := newTestIndex(t)

	hits, err := idx.Search(context.Background(), "#4682B4", 0)
	require.NoError(t, err)
	require.NotEmpty(t, hits)
	assert.Equal(t, "ocean-blues", hits[0].Slug)
	assert.Equal(t, KindPalette, hits[0].Kind)
}

func TestIndex_EmptyQueryMatchesAll(t *testing.T) {
	idx := newTestIndex(t)

	hits, err := idx.Search(context.Background(), "", 100)
	require.NoError(t, err)
	assert.Len(t, hits, 26)
}

func TestIndex_Rebuild(t *testing.T) {
	idx := newTestIndex(t)

	o, err := ParseOverlay([]byte(sampleOverlay))
	require.NoError(t, err)
	c, err := Merge(Builtin(), o)
	require.NoError(t, err)

	require.NoError(t, idx.Rebuild(c))

	hits, err := idx.Search(context.Background(), "harbor", 0)
	require.NoError(t, err)
	assert.Contains(t, slugs(hits), "midnight-harbor")
	assert.Contains(t, slugs(hits), "harbor")
}
