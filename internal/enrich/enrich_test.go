package enrich

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshintel/litscope/pkg/types"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	oldCitation, oldVenue := citationAPIBase, venueAPIBase
	citationAPIBase = ts.URL
	venueAPIBase = ts.URL
	t.Cleanup(func() {
		citationAPIBase = oldCitation
		venueAPIBase = oldVenue
	})

	cfg := types.EnrichmentConfig{
		HTTPConfig:        types.HTTPConfig{Timeout: 5 * time.Second, UserAgent: "litscope-test/0.1"},
		BatchSize:         2,
		RequestsPerSecond: 1000, // effectively unthrottled in tests
		CacheTTL:          time.Minute,
		MaxRetries:        1,
	}
	return NewClient(cfg, NewCache(cfg.CacheTTL), zerolog.Nop())
}

const citationJSON = `{"data":[{
	"title":"Security Economics",
	"year":2018,
	"citationCount":40,
	"influentialCitationCount":7,
	"citations":[{"title":"Citing One","year":2020},{"title":"Citing Two","year":2021}]
}]}`

func TestPaperCitations(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.URL.Query().Get("query"))
		w.Write([]byte(citationJSON))
	})

	info := c.PaperCitations(context.Background(), types.PaperRecord{
		Key: "p1", Title: "Security Economics", DOI: "10.1000/test1", PublicationYear: 2018,
	})

	require.True(t, info.Found)
	assert.Equal(t, 40, info.CitationCount)
	assert.Equal(t, 7, info.InfluentialCount)
	assert.Len(t, info.CitingPapers, 2)
	require.NotEmpty(t, info.Trend)

	total := 0
	for _, pt := range info.Trend {
		total += pt.Count
	}
	assert.Equal(t, 40, total, "synthesized trend must apportion the full citation count")
}

func TestPaperCitationsDegradesOnFailure(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	info := c.PaperCitations(context.Background(), types.PaperRecord{Key: "p1", Title: "Anything"})
	assert.False(t, info.Found, "API failure must degrade to no-data, not error")
	assert.Zero(t, info.CitationCount)
}

func TestPaperCitationsCached(t *testing.T) {
	var calls int32
	c := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Write([]byte(citationJSON))
	})

	p := types.PaperRecord{Key: "p1", DOI: "10.1000/test1", PublicationYear: 2018}
	first := c.PaperCitations(context.Background(), p)
	second := c.PaperCitations(context.Background(), p)

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "second lookup must hit the cache")
	assert.True(t, reflect.DeepEqual(first, second))
}

func TestVenueImpact(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"results":[{"summary_stats":{"2yr_mean_citedness":3.4}}]}`))
	})

	vi := c.VenueImpact(context.Background(), "Journal of Cybersecurity")
	require.True(t, vi.Found)
	assert.Equal(t, 3.4, vi.ImpactFactor)
	assert.Equal(t, "Q2", vi.Quartile)
}

func TestVenueImpactEmpty(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"results":[]}`))
	})
	vi := c.VenueImpact(context.Background(), "Unknown Venue")
	assert.False(t, vi.Found)
}

func TestEnrichAll(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(citationJSON))
	})

	papers := []types.PaperRecord{
		{Key: "a", Title: "Paper A", PublicationYear: 2019},
		{Key: "b", Title: "Paper B", PublicationYear: 2020},
		{Key: "c", Title: "Paper C", PublicationYear: 2021},
	}
	results := c.EnrichAll(context.Background(), papers)

	require.Len(t, results, 3)
	for _, p := range papers {
		assert.True(t, results[p.Key].Found, "paper %s", p.Key)
	}
}

func TestSynthesizeTrendDeterministic(t *testing.T) {
	first := synthesizeTrend("key-1", 100, 2015)
	second := synthesizeTrend("key-1", 100, 2015)
	assert.True(t, reflect.DeepEqual(first, second), "same seed must draw the same curve")

	other := synthesizeTrend("key-2", 100, 2015)
	assert.False(t, reflect.DeepEqual(first, other), "different papers should differ")
}

func TestSynthesizeTrendEdges(t *testing.T) {
	assert.Nil(t, synthesizeTrend("k", 0, 2015))
	assert.Nil(t, synthesizeTrend("k", 10, 0))
	assert.Nil(t, synthesizeTrend("k", 10, time.Now().Year()+1))
}

func TestCacheTTL(t *testing.T) {
	c := NewCache(time.Minute)
	now := time.Now()
	c.now = func() time.Time { return now }

	c.Set("k", "v", 0)
	v, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", v)

	now = now.Add(2 * time.Minute)
	_, ok = c.Get("k")
	assert.False(t, ok, "entry past its TTL must expire")
	assert.Zero(t, c.Len())
}
