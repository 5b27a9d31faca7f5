package curation

import "encoding/json"

// System prompts sent alongside every remote request. They pin the
// curator persona and the exact JSON shape the service must answer
// with, so responses can be parsed strictly.
const (
	packageSystemPrompt = `You are an expert interior design curator for a furnishing marketplace. ` +
		`Given a budget in fils, style preferences and a list of available products, select a cohesive, ` +
		`category-diverse furniture package that fits the budget. ` +
		`Respond with JSON only, exactly: {"selectedProducts":[{"productId":"...","quantity":1,"reasoning":"..."}],"packageReasoning":"..."}`

	styleMatchSystemPrompt = `You are an expert interior design curator. Score how well the given product matches ` +
		`the given interior style on a scale from 0.0 to 1.0. ` +
		`Respond with JSON only, exactly: {"score":0.0,"reasoning":"..."}`

	roomClassificationSystemPrompt = `You are an expert interior designer. Classify the room shown in the given photos ` +
		`as one of: LIVING_ROOM, BEDROOM, DINING_ROOM, KITCHEN, OFFICE, KIDS_ROOM, OUTDOOR, OTHER. ` +
		`Respond with JSON only, exactly: {"type":"...","confidence":0.0}`
)

// productProjection is the trimmed product view sent to the remote
// service. Stock levels stay local.
type productProjection struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Category  ProductCategory `json:"category"`
	PriceFils int64           `json:"priceFils"`
	Materials []string        `json:"materials,omitempty"`
	Colors    []string        `json:"colors,omitempty"`
}

// packageUserMessage serializes a recommendation request for the remote
// service.
func packageUserMessage(input PackageRecommendationInput) (string, error) {
	projections := make([]productProjection, 0, len(input.Products))
	for _, p := range input.Products {
		projections = append(projections, productProjection{
			ID:        p.ID,
			Name:      p.Name,
			Category:  p.Category,
			PriceFils: p.PriceFils,
			Materials: p.Materials,
			Colors:    p.Colors,
		})
	}

	payload := struct {
		MinBudgetFils    int64               `json:"minBudgetFils"`
		MaxBudgetFils    int64               `json:"maxBudgetFils"`
		StylePreferences []StyleTag          `json:"stylePreferences,omitempty"`
		RoomType         RoomType            `json:"roomType,omitempty"`
		StyleTag         StyleTag            `json:"styleTag,omitempty"`
		MaxItems         int                 `json:"maxItems"`
		Products         []productProjection `json:"products"`
	}{
		MinBudgetFils:    input.MinBudgetFils,
		MaxBudgetFils:    input.MaxBudgetFils,
		StylePreferences: input.StylePreferences,
		RoomType:         input.RoomType,
		StyleTag:         input.StyleTag,
		MaxItems:         input.maxItems(),
		Products:         projections,
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// styleMatchUserMessage serializes a style match request.
func styleMatchUserMessage(input StyleMatchInput) (string, error) {
	payload := struct {
		Product productProjection `json:"product"`
		Style   StyleTag          `json:"style"`
	}{
		Product: productProjection{
			ID:        input.Product.ID,
			Name:      input.Product.Name,
			Category:  input.Product.Category,
			PriceFils: input.Product.PriceFils,
			Materials: input.Product.Materials,
			Colors:    input.Product.Colors,
		},
		Style: input.Style,
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// roomClassificationUserMessage serializes a room classification request.
func roomClassificationUserMessage(photoURLs []string) (string, error) {
	payload := struct {
		PhotoURLs []string `json:"photoUrls"`
	}{PhotoURLs: photoURLs}

	raw, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
