package curation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreProductForStyle_CategoryAndMaterialMatch(t *testing.T) {
	product := AvailableProduct{
		ID:        "p1",
		Name:      "Milano Leather Sofa",
		Category:  CategorySofa,
		PriceFils: 250000,
		Materials: []string{"leather"},
	}

	result := scoreProductForStyle(product, StyleModern)

	// base 0.3 + category 0.35 + one material match 0.12
	assert.Greater(t, result.Score, 0.65)
	assert.LessOrEqual(t, result.Score, 1.0)
	assert.Contains(t, result.Reasoning, "modern")
	assert.Contains(t, result.Reasoning, "leather")
}

func TestScoreProductForStyle_NoAffinitySignal(t *testing.T) {
	product := AvailableProduct{
		ID:        "p1",
		Name:      "Classic Wardrobe",
		Category:  CategoryWardrobe,
		PriceFils: 400000,
	}

	result := scoreProductForStyle(product, StyleModern)

	assert.Equal(t, 0.3, result.Score)
	assert.Equal(t, "basic relevance for modern style", result.Reasoning)
}

func TestScoreProductForStyle_MaterialBonusCapped(t *testing.T) {
	product := AvailableProduct{
		ID:        "p1",
		Name:      "Loft Sofa",
		Category:  CategorySofa,
		PriceFils: 300000,
		Materials: []string{"leather", "glass", "metal", "chrome"},
	}

	result := scoreProductForStyle(product, StyleModern)

	// base 0.3 + category 0.35 + material bonus capped at 0.35
	assert.Equal(t, 1.0, result.Score)
}

func TestScoreProductForStyle_CaseInsensitiveSubstringMatch(t *testing.T) {
	product := AvailableProduct{
		ID:        "p1",
		Name:      "Industrial Shelf",
		Category:  CategoryDecor,
		PriceFils: 50000,
		Materials: []string{"Reclaimed Wood"},
	}

	result := scoreProductForStyle(product, StyleIndustrial)

	assert.InDelta(t, 0.42, result.Score, 0.001)
	assert.Contains(t, result.Reasoning, "Reclaimed Wood")
}

func TestScoreProductForStyle_Deterministic(t *testing.T) {
	product := AvailableProduct{
		ID:        "p1",
		Name:      "Nordic Armchair",
		Category:  CategoryArmchair,
		PriceFils: 120000,
		Materials: []string{"pine", "wool"},
	}

	first := scoreProductForStyle(product, StyleScandinavian)
	second := scoreProductForStyle(product, StyleScandinavian)

	assert.Equal(t, first, second)
}

func TestScoreProductForStyle_RoundedToTwoDecimals(t *testing.T) {
	for _, style := range []StyleTag{StyleModern, StyleBohemian, StyleLuxury} {
		product := AvailableProduct{
			ID:        "p1",
			Category:  CategorySofa,
			Materials: []string{"velvet", "brass"},
		}
		result := scoreProductForStyle(product, style)
		assert.Equal(t, round2(result.Score), result.Score, "style %s", style)
	}
}
