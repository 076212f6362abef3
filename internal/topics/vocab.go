// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package topics assigns papers to topic categories by keyword scoring
// and derives cluster structure from membership overlap. Classification
// is a frequency heuristic over title, abstract, and tags; it performs no
// semantic analysis.
package topics

// Topic is one category in the classification vocabulary.
type Topic struct {
	ID       string   `json:"id" yaml:"id"`
	Label    string   `json:"label" yaml:"label"`
	Keywords []string `json:"keywords" yaml:"keywords"`
}

// Vocabulary is the fixed set of recognized topics. The default below is
// curated for a security-economics literature review; deployments
// covering other fields swap in their own.
type Vocabulary []Topic

// DefaultVocabulary returns the built-in topic set.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		{
			ID:    "security",
			Label: "Security",
			Keywords: []string{
				"security", "cybersecurity", "attack", "threat", "vulnerability",
				"defense", "intrusion", "malware", "ransomware", "exploit",
			},
		},
		{
			ID:    "economics",
			Label: "Economics",
			Keywords: []string{
				"economics", "economic", "market", "incentive", "cost",
				"investment", "pricing", "insurance", "externality",
			},
		},
		{
			ID:    "risk",
			Label: "Risk Management",
			Keywords: []string{
				"risk", "assessment", "mitigation", "uncertainty",
				"exposure", "loss", "resilience",
			},
		},
		{
			ID:    "ai-ml",
			Label: "AI & Machine Learning",
			Keywords: []string{
				"machine learning", "artificial intelligence", "neural",
				"deep learning", "classifier", "model training", "adversarial",
			},
		},
		{
			ID:    "game-theory",
			Label: "Game Theory",
			Keywords: []string{
				"game theory", "game-theoretic", "equilibrium", "nash",
				"attacker-defender", "strategic", "payoff",
			},
		},
		{
			ID:    "network",
			Label: "Networks",
			Keywords: []string{
				"network", "topology", "protocol", "routing",
				"infrastructure", "internet", "distributed",
			},
		},
		{
			ID:    "privacy",
			Label: "Privacy",
			Keywords: []string{
				"privacy", "anonymity", "data protection", "gdpr",
				"confidentiality", "surveillance", "disclosure",
			},
		},
	}
}

// domainBucket groups topics into coarse domains used by the gap
// analyzer's cross-domain impact multiplier.
var domainBucket = map[string]string{
	"security":    "technical",
	"network":     "technical",
	"ai-ml":       "technical",
	"privacy":     "technical",
	"economics":   "economic",
	"risk":        "economic",
	"game-theory": "theoretical",
}

// Domain returns the coarse domain bucket for a topic id, or "" when the
// topic is not bucketed.
func Domain(topicID string) string {
	return domainBucket[topicID]
}
