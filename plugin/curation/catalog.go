// Package curation provides the package recommendation engine for the
// Athath furnishing marketplace. Given a room's budget and style
// preferences plus a candidate product pool, it produces a bounded,
// category-diverse, budget-respecting selection of furniture items.
// Selection is AI-first with a deterministic rule-based fallback.
package curation

// ProductCategory is the closed set of furniture categories.
type ProductCategory string

const (
	CategorySofa         ProductCategory = "SOFA"
	CategoryArmchair     ProductCategory = "ARMCHAIR"
	CategoryCoffeeTable  ProductCategory = "COFFEE_TABLE"
	CategorySideTable    ProductCategory = "SIDE_TABLE"
	CategoryTVUnit       ProductCategory = "TV_UNIT"
	CategoryBookshelf    ProductCategory = "BOOKSHELF"
	CategoryRug          ProductCategory = "RUG"
	CategoryFloorLamp    ProductCategory = "FLOOR_LAMP"
	CategoryTableLamp    ProductCategory = "TABLE_LAMP"
	CategoryCeilingLight ProductCategory = "CEILING_LIGHT"
	CategoryCurtains     ProductCategory = "CURTAINS"
	CategoryWallArt      ProductCategory = "WALL_ART"
	CategoryMirror       ProductCategory = "MIRROR"
	CategoryBed          ProductCategory = "BED"
	CategoryWardrobe     ProductCategory = "WARDROBE"
	CategoryDresser      ProductCategory = "DRESSER"
	CategoryNightstand   ProductCategory = "NIGHTSTAND"
	CategoryDiningTable  ProductCategory = "DINING_TABLE"
	CategoryDiningChair  ProductCategory = "DINING_CHAIR"
	CategorySideboard    ProductCategory = "SIDEBOARD"
	CategoryDesk         ProductCategory = "DESK"
	CategoryOfficeChair  ProductCategory = "OFFICE_CHAIR"
	CategoryOutdoorSet   ProductCategory = "OUTDOOR_SET"
	CategoryDecor        ProductCategory = "DECOR"
)

// StyleTag is the closed set of interior design styles used to bias
// product selection.
type StyleTag string

const (
	StyleModern       StyleTag = "modern"
	StyleMinimalist   StyleTag = "minimalist"
	StyleScandinavian StyleTag = "scandinavian"
	StyleIndustrial   StyleTag = "industrial"
	StyleBohemian     StyleTag = "bohemian"
	StyleTraditional  StyleTag = "traditional"
	StyleContemporary StyleTag = "contemporary"
	StyleRustic       StyleTag = "rustic"
	StyleCoastal      StyleTag = "coastal"
	StyleLuxury       StyleTag = "luxury"
)

// RoomType is the closed set of room classifications.
type RoomType string

const (
	RoomLivingRoom RoomType = "LIVING_ROOM"
	RoomBedroom    RoomType = "BEDROOM"
	RoomDiningRoom RoomType = "DINING_ROOM"
	RoomKitchen    RoomType = "KITCHEN"
	RoomOffice     RoomType = "OFFICE"
	RoomKidsRoom   RoomType = "KIDS_ROOM"
	RoomOutdoor    RoomType = "OUTDOOR"
	RoomOther      RoomType = "OTHER"
)

// validRoomTypes guards remote classification output against values
// outside the closed set.
var validRoomTypes = map[RoomType]bool{
	RoomLivingRoom: true,
	RoomBedroom:    true,
	RoomDiningRoom: true,
	RoomKitchen:    true,
	RoomOffice:     true,
	RoomKidsRoom:   true,
	RoomOutdoor:    true,
	RoomOther:      true,
}

// Source tags an output with its provenance.
type Source string

const (
	SourceAI       Source = "ai"
	SourceFallback Source = "fallback"
)

// AvailableProduct is one candidate from the caller-supplied product
// pool. The pool is pre-filtered by the caller (active, in stock,
// budget-eligible); the engine never queries storage itself. Prices
// are integer fils (minor currency units).
type AvailableProduct struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Category  ProductCategory `json:"category"`
	PriceFils int64           `json:"priceFils"`
	Materials []string        `json:"materials,omitempty"`
	Colors    []string        `json:"colors,omitempty"`
	Stock     *int            `json:"stock,omitempty"`
}

// PackageRecommendationInput carries everything a single recommendation
// needs. The candidate pool is treated as an immutable snapshot for the
// duration of the call.
type PackageRecommendationInput struct {
	MinBudgetFils    int64              `json:"minBudgetFils,omitempty"`
	MaxBudgetFils    int64              `json:"maxBudgetFils"`
	StylePreferences []StyleTag         `json:"stylePreferences,omitempty"`
	RoomType         RoomType           `json:"roomType,omitempty"`
	StyleTag         StyleTag           `json:"styleTag,omitempty"`
	Products         []AvailableProduct `json:"products"`
	MaxItems         int                `json:"maxItems,omitempty"`
}

// DefaultMaxItems bounds a recommendation when the caller does not
// specify an item cap.
const DefaultMaxItems = 8

// maxItems returns the effective item cap for this input.
func (in *PackageRecommendationInput) maxItems() int {
	if in.MaxItems > 0 {
		return in.MaxItems
	}
	return DefaultMaxItems
}

// SelectedProduct is one line of a recommendation. ProductID always
// references an id present in the input candidate pool.
type SelectedProduct struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Reasoning string `json:"reasoning"`
}

// PackageRecommendationOutput is the normalized result of both the AI
// and the fallback path. TotalPriceFils is always recomputed locally
// from verified candidate prices, never trusted from a remote source.
type PackageRecommendationOutput struct {
	SelectedProducts []SelectedProduct `json:"selectedProducts"`
	TotalPriceFils   int64             `json:"totalPriceFils"`
	PackageReasoning string            `json:"packageReasoning"`
	Source           Source            `json:"source"`
}

// StyleMatchInput pairs one product with one style tag.
type StyleMatchInput struct {
	Product AvailableProduct `json:"product"`
	Style   StyleTag         `json:"style"`
}

// StyleMatchOutput scores a product against a style on [0.0, 1.0].
type StyleMatchOutput struct {
	Score     float64 `json:"score"`
	Reasoning string  `json:"reasoning"`
	Source    Source  `json:"source"`
}

// RoomClassificationOutput is the result of classifying a room from
// photos or from its free-text name.
type RoomClassificationOutput struct {
	Type       RoomType `json:"type"`
	Confidence float64  `json:"confidence"`
	Source     Source   `json:"source"`
}
