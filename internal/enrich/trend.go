// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package enrich

import (
	"hash/fnv"
	"math/rand"
	"time"

	"github.com/meshintel/litscope/pkg/types"
)

// synthesizeTrend spreads a total citation count across the years since
// publication. The citation API reports only totals; the per-year shape
// here is ILLUSTRATIVE, drawn from a source seeded by the paper key so
// repeated runs produce identical curves. Consumers must present it as
// synthetic, never as measured data.
func synthesizeTrend(paperKey string, total, fromYear int) []types.CitationPoint {
	if total <= 0 || fromYear <= 0 {
		return nil
	}

	currentYear := time.Now().Year()
	if fromYear > currentYear {
		return nil
	}
	years := currentYear - fromYear + 1
	if years > 10 {
		// Only the trailing decade is of interest on the dashboard.
		fromYear = currentYear - 9
		years = 10
	}

	rng := rand.New(rand.NewSource(seed(paperKey)))

	// Citations ramp up over the first years after publication; weights
	// climb linearly with a small jitter, then the total is apportioned.
	weights := make([]float64, years)
	sum := 0.0
	for i := range weights {
		weights[i] = float64(i+1) + rng.Float64()
		sum += weights[i]
	}

	points := make([]types.CitationPoint, years)
	assigned := 0
	for i := range points {
		count := int(float64(total) * weights[i] / sum)
		points[i] = types.CitationPoint{Year: fromYear + i, Count: count}
		assigned += count
	}
	// Rounding remainder lands on the most recent year.
	points[years-1].Count += total - assigned

	return points
}

func seed(key string) int64 {
	h := fnv.New64a()
	h.Write([]byte(key))
	return int64(h.Sum64())
}
