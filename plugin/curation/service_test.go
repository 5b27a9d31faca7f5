package curation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewService_FallbackOnlyWhenUnconfigured(t *testing.T) {
	service := NewService(DefaultConfig())

	assert.False(t, service.IsConfigured())

	out := service.GeneratePackageRecommendation(context.Background(), packageInput())
	assert.Equal(t, SourceFallback, out.Source)
	assert.Equal(t, int64(450), out.TotalPriceFils)
}

func TestNewService_NilConfig(t *testing.T) {
	service := NewService(nil)
	assert.False(t, service.IsConfigured())
}

func TestService_AIResultAccepted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(t, w, map[string]any{
			"selectedProducts": []map[string]any{
				{"productId": "sofa-1", "quantity": 1, "reasoning": "statement piece"},
			},
			"packageReasoning": "a curated modern set",
		})
	}))
	defer server.Close()

	service := NewService(testClientConfig(server.URL))
	require.True(t, service.IsConfigured())

	out := service.GeneratePackageRecommendation(context.Background(), packageInput())

	assert.Equal(t, SourceAI, out.Source)
	assert.Equal(t, int64(300), out.TotalPriceFils)
	assert.Equal(t, "a curated modern set", out.PackageReasoning)
}

func TestService_FallsBackOnTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	cfg := testClientConfig(server.URL)
	cfg.Timeout = 20 * time.Millisecond
	service := NewService(cfg)

	out := service.GeneratePackageRecommendation(context.Background(), packageInput())

	assert.Equal(t, SourceFallback, out.Source)
	assert.Contains(t, out.PackageReasoning, "timed out")
	// The fallback selection itself still honors the contract.
	assert.Equal(t, int64(450), out.TotalPriceFils)
	assert.LessOrEqual(t, out.TotalPriceFils, packageInput().MaxBudgetFils)
}

func TestService_FallsBackWhenAIHallucinatesEveryProduct(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(t, w, map[string]any{
			"selectedProducts": []map[string]any{
				{"productId": "ghost-1", "quantity": 1, "reasoning": "does not exist"},
			},
			"packageReasoning": "imaginary furniture",
		})
	}))
	defer server.Close()

	service := NewService(testClientConfig(server.URL))
	out := service.GeneratePackageRecommendation(context.Background(), packageInput())

	assert.Equal(t, SourceFallback, out.Source)
	assert.Contains(t, out.PackageReasoning, "no valid selections")
	for _, sel := range out.SelectedProducts {
		assert.Contains(t, []string{"sofa-1", "table-1"}, sel.ProductID)
	}
}

func TestService_FallsBackOnRejectedRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadRequest)
	}))
	defer server.Close()

	service := NewService(testClientConfig(server.URL))
	out := service.GeneratePackageRecommendation(context.Background(), packageInput())

	assert.Equal(t, SourceFallback, out.Source)
	assert.Contains(t, out.PackageReasoning, "status 400")
}

func TestService_GetStyleMatch_FallbackScoring(t *testing.T) {
	service := NewService(DefaultConfig())

	out := service.GetStyleMatch(context.Background(), StyleMatchInput{
		Product: AvailableProduct{
			ID:        "p1",
			Category:  CategorySofa,
			Materials: []string{"leather"},
		},
		Style: StyleModern,
	})

	assert.Equal(t, SourceFallback, out.Source)
	assert.Greater(t, out.Score, 0.65)
	assert.NotEmpty(t, out.Reasoning)
}

func TestService_GetStyleMatch_AIPath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(t, w, map[string]any{"score": 0.88, "reasoning": "clean lines"})
	}))
	defer server.Close()

	service := NewService(testClientConfig(server.URL))
	out := service.GetStyleMatch(context.Background(), StyleMatchInput{
		Product: testPool()[0],
		Style:   StyleModern,
	})

	assert.Equal(t, SourceAI, out.Source)
	assert.Equal(t, 0.88, out.Score)
}

func TestService_GetStyleMatch_FallsBackOnFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "broken", http.StatusInternalServerError)
	}))
	defer server.Close()

	service := NewService(testClientConfig(server.URL))
	out := service.GetStyleMatch(context.Background(), StyleMatchInput{
		Product: testPool()[0],
		Style:   StyleModern,
	})

	assert.Equal(t, SourceFallback, out.Source)
}

func TestService_ClassifyRoomType_FallbackIsOther(t *testing.T) {
	service := NewService(DefaultConfig())

	out := service.ClassifyRoomType(context.Background(), []string{"https://cdn.example/a.jpg"})

	assert.Equal(t, RoomOther, out.Type)
	assert.Equal(t, defaultRoomConfidence, out.Confidence)
	assert.Equal(t, SourceFallback, out.Source)
}

func TestService_ClassifyRoomTypeByName(t *testing.T) {
	service := NewService(DefaultConfig())

	tests := []struct {
		name       string
		roomName   string
		wantType   RoomType
		confidence float64
	}{
		{"MasterBedroom", "Master Bedroom", RoomBedroom, nameMatchConfidence},
		{"Lounge", "Cozy Lounge", RoomLivingRoom, nameMatchConfidence},
		{"Majlis", "Family Majlis", RoomLivingRoom, nameMatchConfidence},
		{"HomeOffice", "Home Office", RoomOffice, nameMatchConfidence},
		{"Balcony", "Balcony Corner", RoomOutdoor, nameMatchConfidence},
		{"Unknown", "Storage Closet", RoomOther, defaultRoomConfidence},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := service.ClassifyRoomTypeByName(tt.roomName)
			assert.Equal(t, tt.wantType, out.Type)
			assert.Equal(t, tt.confidence, out.Confidence)
			assert.Equal(t, SourceFallback, out.Source)
		})
	}
}
