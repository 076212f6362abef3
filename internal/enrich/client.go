// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package enrich adds best-effort citation and venue-impact data from
// public bibliometric APIs. The core pipeline never depends on it: every
// failure here degrades to "no data available" and is logged, not
// returned. Callers must produce identical ProcessedData whether or not
// enrichment ran.
package enrich

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/meshintel/litscope/internal/httputil"
	"github.com/meshintel/litscope/pkg/types"
)

// API endpoints, declared as vars so tests substitute httptest servers.
var (
	citationAPIBase = "https://api.semanticscholar.org/graph/v1/paper/search"
	venueAPIBase    = "https://api.openalex.org/sources"
)

const citationFields = "title,year,citationCount,influentialCitationCount,citations.title,citations.year"

// maxCitingPapers bounds the citing-paper list carried per record.
const maxCitingPapers = 5

// Client queries the citation APIs with rate limiting and memoization.
// Construct one per application lifetime and share it.
type Client struct {
	http    *http.Client
	cfg     types.EnrichmentConfig
	cache   *Cache
	limiter *rate.Limiter
	log     zerolog.Logger
}

// NewClient builds a client from config. The cache is passed in rather
// than created here so its lifetime and TTL stay under the caller's
// control.
func NewClient(cfg types.EnrichmentConfig, cache *Cache, log zerolog.Logger) *Client {
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}
	return &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		cfg:     cfg,
		cache:   cache,
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
		log:     log,
	}
}

// header builds the request headers. The API key raises the citation
// API's rate limit and is only sent there.
func (c *Client) header(citation bool) http.Header {
	h := http.Header{}
	if c.cfg.UserAgent != "" {
		h.Set("User-Agent", c.cfg.UserAgent)
	}
	if citation && c.cfg.APIKey != "" {
		h.Set("x-api-key", c.cfg.APIKey)
	}
	return h
}

// citationResponse mirrors the citation API's search payload.
type citationResponse struct {
	Data []struct {
		Title            string `json:"title"`
		Year             int    `json:"year"`
		CitationCount    int    `json:"citationCount"`
		InfluentialCount int    `json:"influentialCitationCount"`
		Citations        []struct {
			Title string `json:"title"`
			Year  int    `json:"year"`
		} `json:"citations"`
	} `json:"data"`
}

// PaperCitations looks up citation data for one record, by DOI when
// present, falling back to a title search. The zero-value CitationInfo
// (Found=false) signals "no data"; errors never escape.
func (c *Client) PaperCitations(ctx context.Context, p types.PaperRecord) types.CitationInfo {
	query := p.DOI
	if query == "" {
		query = p.Title
	}
	if strings.TrimSpace(query) == "" {
		return types.CitationInfo{}
	}

	cacheKey := "citations:" + query
	if v, ok := c.cache.Get(cacheKey); ok {
		return v.(types.CitationInfo)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return types.CitationInfo{}
	}

	params := url.Values{"query": {query}, "limit": {"1"}, "fields": {citationFields}}
	reqURL := citationAPIBase + "?" + params.Encode()

	var resp citationResponse
	if err := httputil.GetJSON(ctx, c.http, reqURL, c.header(true), c.cfg.MaxRetries, &resp); err != nil {
		c.log.Debug().Err(err).Str("paper", p.Key).Msg("citation lookup failed")
		return types.CitationInfo{}
	}
	if len(resp.Data) == 0 {
		c.cache.Set(cacheKey, types.CitationInfo{}, 0)
		return types.CitationInfo{}
	}

	hit := resp.Data[0]
	info := types.CitationInfo{
		Found:            true,
		CitationCount:    hit.CitationCount,
		InfluentialCount: hit.InfluentialCount,
	}
	for i, cit := range hit.Citations {
		if i >= maxCitingPapers {
			break
		}
		info.CitingPapers = append(info.CitingPapers, types.CitingPaper{Title: cit.Title, Year: cit.Year})
	}

	fromYear := p.PublicationYear
	if fromYear == 0 {
		fromYear = hit.Year
	}
	info.Trend = synthesizeTrend(p.Key, hit.CitationCount, fromYear)

	c.cache.Set(cacheKey, info, 0)
	return info
}

// venueResponse mirrors the venue API's search payload.
type venueResponse struct {
	Results []struct {
		SummaryStats struct {
			MeanCitedness float64 `json:"2yr_mean_citedness"`
		} `json:"summary_stats"`
	} `json:"results"`
}

// VenueImpact looks up an impact-factor-like figure for a venue name and
// buckets it into a quartile. Failures degrade to Found=false.
func (c *Client) VenueImpact(ctx context.Context, venue string) types.VenueImpact {
	venue = strings.TrimSpace(venue)
	if venue == "" {
		return types.VenueImpact{}
	}

	cacheKey := "venue:" + strings.ToLower(venue)
	if v, ok := c.cache.Get(cacheKey); ok {
		return v.(types.VenueImpact)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return types.VenueImpact{}
	}

	reqURL := venueAPIBase + "?" + url.Values{"search": {venue}}.Encode()

	var resp venueResponse
	if err := httputil.GetJSON(ctx, c.http, reqURL, c.header(false), c.cfg.MaxRetries, &resp); err != nil {
		c.log.Debug().Err(err).Str("venue", venue).Msg("venue lookup failed")
		return types.VenueImpact{}
	}
	if len(resp.Results) == 0 {
		c.cache.Set(cacheKey, types.VenueImpact{}, 0)
		return types.VenueImpact{}
	}

	impact := resp.Results[0].SummaryStats.MeanCitedness
	vi := types.VenueImpact{
		Found:        true,
		ImpactFactor: impact,
		Quartile:     quartile(impact),
	}
	c.cache.Set(cacheKey, vi, 0)
	return vi
}

// quartile buckets an impact figure the way journal rankings commonly
// present it. Thresholds are presentation heuristics, not JCR data.
func quartile(impact float64) string {
	switch {
	case impact >= 5:
		return "Q1"
	case impact >= 2:
		return "Q2"
	case impact >= 1:
		return "Q3"
	default:
		return "Q4"
	}
}
