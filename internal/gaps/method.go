// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gaps

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/meshintel/litscope/pkg/types"
)

// methodology categories detected by keyword over title+abstract.
var methodKeywords = map[string][]string{
	"theoretical": {"theory", "theoretical", "framework", "model", "formal"},
	"empirical":   {"empirical", "experiment", "measurement", "data set", "dataset", "field study"},
	"simulation":  {"simulation", "simulated", "monte carlo", "agent-based"},
	"survey":      {"survey", "questionnaire", "interview", "literature review"},
	"case-study":  {"case study", "case studies"},
}

var methodPatterns = compileMethodPatterns()

func compileMethodPatterns() map[string][]*regexp.Regexp {
	patterns := make(map[string][]*regexp.Regexp, len(methodKeywords))
	for cat, kws := range methodKeywords {
		for _, kw := range kws {
			patterns[cat] = append(patterns[cat],
				regexp.MustCompile(`\b`+regexp.QuoteMeta(kw)+`\b`))
		}
	}
	return patterns
}

// methodological reports under-utilized methodology categories and a
// theoretical-vs-empirical imbalance.
func methodological(papers []types.PaperRecord, cfg types.GapConfig) []types.ResearchGap {
	n := len(papers)
	if n == 0 {
		return nil
	}

	counts := make(map[string]int, len(methodKeywords))
	for _, p := range papers {
		text := strings.ToLower(p.Title + " " + p.Abstract)
		for cat, pats := range methodPatterns {
			for _, pat := range pats {
				if pat.MatchString(text) {
					counts[cat]++
					break
				}
			}
		}
	}

	cats := make([]string, 0, len(methodKeywords))
	for cat := range methodKeywords {
		cats = append(cats, cat)
	}
	sort.Strings(cats)

	var gaps []types.ResearchGap
	for _, cat := range cats {
		share := float64(counts[cat]) / float64(n)
		if share >= cfg.MethodMinShare {
			continue
		}
		missing := (cfg.MethodMinShare - share) * float64(n)
		gaps = append(gaps, types.ResearchGap{
			Type:     types.GapMethodological,
			Title:    fmt.Sprintf("Under-utilized methodology: %s", cat),
			Severity: types.SeverityMedium,
			Description: fmt.Sprintf(
				"Only %.0f%% of papers use %s methods (threshold %.0f%%).",
				share*100, cat, cfg.MethodMinShare*100),
			GapSize:          round1(missing),
			OpportunityScore: round1((cfg.MethodMinShare - share) * 400),
			Topics:           []string{cat},
			Recommendations: []string{
				fmt.Sprintf("Established findings could be revisited with %s approaches.", cat),
			},
		})
	}

	if g, ok := empiricalBias(counts["theoretical"], counts["empirical"], cfg); ok {
		gaps = append(gaps, g)
	}
	return gaps
}

// empiricalBias computes (theoretical-empirical)/(theoretical+empirical)
// and reports a high-severity gap above the configured threshold.
func empiricalBias(theoretical, empirical int, cfg types.GapConfig) (types.ResearchGap, bool) {
	total := theoretical + empirical
	if total == 0 {
		return types.ResearchGap{}, false
	}
	bias := float64(theoretical-empirical) / float64(total)
	if bias <= cfg.BiasThreshold {
		return types.ResearchGap{}, false
	}

	return types.ResearchGap{
		Type:     types.GapMethodological,
		Title:    "Lack of empirical validation",
		Severity: types.SeverityHigh,
		Description: fmt.Sprintf(
			"Theoretical work outweighs empirical work %d to %d (bias %.2f).",
			theoretical, empirical, bias),
		GapSize:          round1(bias * 10),
		OpportunityScore: round1(bias * 100),
		Recommendations: []string{
			"Prioritize measurement or experimental studies testing the dominant theoretical models.",
		},
	}, true
}
