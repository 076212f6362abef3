// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package enrich

import (
	"context"
	"sync"

	"github.com/meshintel/litscope/pkg/types"
)

// EnrichAll looks up citation data for every paper in small concurrent
// batches, respecting the client's rate limiter between requests. The
// result maps paper key to its CitationInfo; papers the API knows
// nothing about map to the zero value. A cancelled context stops new
// batches but the completed portion is still returned.
func (c *Client) EnrichAll(ctx context.Context, papers []types.PaperRecord) map[string]types.CitationInfo {
	batchSize := c.cfg.BatchSize
	if batchSize <= 0 {
		batchSize = 3
	}

	results := make(map[string]types.CitationInfo, len(papers))
	var mu sync.Mutex

	for start := 0; start < len(papers); start += batchSize {
		if ctx.Err() != nil {
			c.log.Warn().Int("done", start).Int("total", len(papers)).Msg("enrichment cancelled")
			break
		}

		end := start + batchSize
		if end > len(papers) {
			end = len(papers)
		}

		var wg sync.WaitGroup
		for _, p := range papers[start:end] {
			wg.Add(1)
			go func(p types.PaperRecord) {
				defer wg.Done()
				info := c.PaperCitations(ctx, p)
				mu.Lock()
				results[p.Key] = info
				mu.Unlock()
			}(p)
		}
		wg.Wait()

		c.log.Debug().Int("done", end).Int("total", len(papers)).Msg("enrichment batch complete")
	}

	return results
}
