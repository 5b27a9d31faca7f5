package curation

import (
	"fmt"
	"math"
	"strings"
)

// Per-signal weights for the rule-based style scorer.
const (
	baseStyleScore       = 0.3
	categoryAffinityBump = 0.35
	materialMatchBump    = 0.12
	materialBumpCap      = 0.35
)

// styleScore is the result of scoring one product against one style.
type styleScore struct {
	Score     float64
	Reasoning string
}

// scoreProductForStyle computes a 0.0-1.0 relevance score for a product
// under a single style tag using the static affinity tables. Pure and
// deterministic.
func scoreProductForStyle(product AvailableProduct, style StyleTag) styleScore {
	score := baseStyleScore
	var reasons []string

	for _, category := range styleCategoryAffinity[style] {
		if category == product.Category {
			score += categoryAffinityBump
			reasons = append(reasons, fmt.Sprintf("%s is a core category for %s interiors", product.Category, style))
			break
		}
	}

	if len(product.Materials) > 0 {
		if affinityMaterials := styleMaterialAffinity[style]; len(affinityMaterials) > 0 {
			matched := matchMaterials(product.Materials, affinityMaterials)
			if len(matched) > 0 {
				bonus := math.Min(float64(len(matched))*materialMatchBump, materialBumpCap)
				score += bonus
				reasons = append(reasons, fmt.Sprintf("materials (%s) suit the %s style", strings.Join(matched, ", "), style))
			}
		}
	}

	if len(reasons) == 0 {
		reasons = append(reasons, fmt.Sprintf("basic relevance for %s style", style))
	}

	return styleScore{
		Score:     round2(clamp01(score)),
		Reasoning: strings.Join(reasons, "; "),
	}
}

// matchMaterials returns the product materials that case-insensitively
// substring-match any of the style's affinity materials. Each product
// material counts at most once.
func matchMaterials(productMaterials, affinityMaterials []string) []string {
	var matched []string
	for _, pm := range productMaterials {
		lower := strings.ToLower(pm)
		for _, am := range affinityMaterials {
			if strings.Contains(lower, strings.ToLower(am)) || strings.Contains(strings.ToLower(am), lower) {
				matched = append(matched, pm)
				break
			}
		}
	}
	return matched
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
