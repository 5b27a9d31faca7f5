package curation

import (
	"fmt"
	"sort"
	"strings"
)

// secondaryStyleWeight is the contribution of each non-primary style
// preference to a candidate's total score. Style preferences are
// cumulative, not exclusive.
const secondaryStyleWeight = 0.3

// scoredCandidate is a pool product annotated with its cumulative style
// score and the reasoning for its primary-style match.
type scoredCandidate struct {
	product   AvailableProduct
	score     float64
	reasoning string
}

// selectFallbackPackage is the deterministic rule-based selector. It
// greedily builds a budget-respecting, category-diverse selection:
// first one pick per target category, then highest-scoring fill, then a
// best-effort top-up toward the minimum budget. Quantity is always 1.
// Given identical input the output is identical; there is no randomness
// and no clock dependency.
func selectFallbackPackage(input PackageRecommendationInput) PackageRecommendationOutput {
	maxItems := input.maxItems()

	pool := make([]AvailableProduct, 0, len(input.Products))
	for _, p := range input.Products {
		if p.PriceFils <= input.MaxBudgetFils && (p.Stock == nil || *p.Stock > 0) {
			pool = append(pool, p)
		}
	}
	if len(pool) == 0 {
		return PackageRecommendationOutput{
			SelectedProducts: []SelectedProduct{},
			TotalPriceFils:   0,
			PackageReasoning: fmt.Sprintf("No products matched the budget of %d fils.", input.MaxBudgetFils),
			Source:           SourceFallback,
		}
	}

	targets := targetCategories(input, pool)
	primary := primaryStyle(input)
	scored := scorePool(pool, primary, input.StylePreferences)

	// The pool arrives price-ascending from the caller's query; a
	// stable sort keeps that order among equal scores.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	used := make(map[string]bool)
	covered := make(map[ProductCategory]bool)
	var picks []scoredCandidate
	var totalFils int64

	pick := func(c scoredCandidate) {
		picks = append(picks, c)
		totalFils += c.product.PriceFils
		used[c.product.ID] = true
		covered[c.product.Category] = true
	}

	// First pass: one pick per target category, best score first.
	for _, category := range targets {
		if len(picks) >= maxItems {
			break
		}
		for _, c := range scored {
			if used[c.product.ID] || c.product.Category != category {
				continue
			}
			if totalFils+c.product.PriceFils > input.MaxBudgetFils {
				continue
			}
			pick(c)
			break
		}
	}

	// Second pass: fill remaining slots in score order. A candidate
	// whose category is already represented is passed over while an
	// affordable candidate from an unrepresented category still exists
	// anywhere in the list.
	uncoveredReachable := func() bool {
		for _, c := range scored {
			if used[c.product.ID] || covered[c.product.Category] {
				continue
			}
			if totalFils+c.product.PriceFils <= input.MaxBudgetFils {
				return true
			}
		}
		return false
	}
	for _, c := range scored {
		if len(picks) >= maxItems {
			break
		}
		if used[c.product.ID] || totalFils+c.product.PriceFils > input.MaxBudgetFils {
			continue
		}
		if covered[c.product.Category] && uncoveredReachable() {
			continue
		}
		pick(c)
	}

	// Minimum-budget top-up: best-effort and diversity-agnostic.
	if input.MinBudgetFils > 0 && totalFils < input.MinBudgetFils && len(picks) > 0 {
		for _, c := range scored {
			if len(picks) >= maxItems {
				break
			}
			if used[c.product.ID] || totalFils+c.product.PriceFils > input.MaxBudgetFils {
				continue
			}
			c.reasoning = "added to meet minimum budget target"
			pick(c)
		}
	}

	selections := make([]SelectedProduct, 0, len(picks))
	for _, c := range picks {
		selections = append(selections, SelectedProduct{
			ProductID: c.product.ID,
			Quantity:  1,
			Reasoning: c.reasoning,
		})
	}

	return PackageRecommendationOutput{
		SelectedProducts: selections,
		TotalPriceFils:   totalFils,
		PackageReasoning: buildPackageReasoning(picks, totalFils, primary),
		Source:           SourceFallback,
	}
}

// targetCategories is the deduplicated union of the room type's
// expected categories and each style preference's affinity categories.
// With no hints at all it degrades to the categories present in the
// filtered pool, in pool order.
func targetCategories(input PackageRecommendationInput, pool []AvailableProduct) []ProductCategory {
	seen := make(map[ProductCategory]bool)
	var targets []ProductCategory
	add := func(c ProductCategory) {
		if !seen[c] {
			seen[c] = true
			targets = append(targets, c)
		}
	}

	if input.RoomType != "" {
		for _, c := range roomTypeCategories[input.RoomType] {
			add(c)
		}
	}
	for _, style := range input.StylePreferences {
		for _, c := range styleCategoryAffinity[style] {
			add(c)
		}
	}
	if len(targets) == 0 {
		for _, p := range pool {
			add(p.Category)
		}
	}
	return targets
}

// primaryStyle resolves the style the selection is scored against: the
// explicit override first, then the first preference.
func primaryStyle(input PackageRecommendationInput) StyleTag {
	if input.StyleTag != "" {
		return input.StyleTag
	}
	if len(input.StylePreferences) > 0 {
		return input.StylePreferences[0]
	}
	return ""
}

// scorePool scores every candidate against the primary style, plus a
// weighted bonus for each remaining style preference.
func scorePool(pool []AvailableProduct, primary StyleTag, preferences []StyleTag) []scoredCandidate {
	scored := make([]scoredCandidate, 0, len(pool))
	for _, p := range pool {
		var c scoredCandidate
		c.product = p
		if primary != "" {
			base := scoreProductForStyle(p, primary)
			c.score = base.Score
			c.reasoning = base.Reasoning
		} else {
			c.score = baseStyleScore
			c.reasoning = "versatile piece that works across styles"
		}
		for _, style := range preferences {
			if style == primary {
				continue
			}
			c.score += secondaryStyleWeight * scoreProductForStyle(p, style).Score
		}
		scored = append(scored, c)
	}
	return scored
}

// buildPackageReasoning summarizes the selection for the caller.
func buildPackageReasoning(picks []scoredCandidate, totalFils int64, primary StyleTag) string {
	if len(picks) == 0 {
		return "No suitable combination of products was found."
	}

	seen := make(map[ProductCategory]bool)
	var categories []string
	for _, c := range picks {
		if !seen[c.product.Category] {
			seen[c.product.Category] = true
			categories = append(categories, string(c.product.Category))
		}
	}

	styleBasis := "no specific style applied"
	if primary != "" {
		styleBasis = fmt.Sprintf("curated around the %s style", primary)
	}

	return fmt.Sprintf("Selected %d items across %d categories (%s) totalling %d fils; %s.",
		len(picks), len(categories), strings.Join(categories, ", "), totalFils, styleBasis)
}
