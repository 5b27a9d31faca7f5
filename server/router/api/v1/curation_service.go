package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/athathhq/curator/plugin/curation"
)

// handlePackageRecommendation validates caller input and runs the
// engine. Engine-level AI failures never surface here; the response is
// always a well-formed recommendation, possibly fallback-sourced or
// empty.
func (s *APIV1Service) handlePackageRecommendation(c echo.Context) error {
	var input curation.PackageRecommendationInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	if err := validatePackageInput(&input); err != nil {
		return err
	}

	ctx := c.Request().Context()
	if s.CurationService.IsConfigured() {
		if err := s.aiSemaphore.Acquire(ctx, 1); err != nil {
			return echo.NewHTTPError(http.StatusServiceUnavailable, "request canceled")
		}
		defer s.aiSemaphore.Release(1)
	}

	return c.JSON(http.StatusOK, s.CurationService.GeneratePackageRecommendation(ctx, input))
}

func (s *APIV1Service) handleStyleMatch(c echo.Context) error {
	var input curation.StyleMatchInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	if input.Product.ID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "product id is required")
	}
	if input.Style == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "style is required")
	}

	return c.JSON(http.StatusOK, s.CurationService.GetStyleMatch(c.Request().Context(), input))
}

// roomClassificationRequest accepts either photos for the AI classifier
// or a free-text room name for the keyword heuristic.
type roomClassificationRequest struct {
	PhotoURLs []string `json:"photoUrls,omitempty"`
	RoomName  string   `json:"roomName,omitempty"`
}

func (s *APIV1Service) handleRoomClassification(c echo.Context) error {
	var req roomClassificationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	if len(req.PhotoURLs) == 0 && req.RoomName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "photoUrls or roomName is required")
	}

	if len(req.PhotoURLs) == 0 {
		return c.JSON(http.StatusOK, s.CurationService.ClassifyRoomTypeByName(req.RoomName))
	}
	return c.JSON(http.StatusOK, s.CurationService.ClassifyRoomType(c.Request().Context(), req.PhotoURLs))
}

// validatePackageInput rejects caller input the engine is not expected
// to defend against.
func validatePackageInput(input *curation.PackageRecommendationInput) error {
	if input.MaxBudgetFils < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "maxBudgetFils must not be negative")
	}
	if input.MinBudgetFils < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "minBudgetFils must not be negative")
	}
	if input.MaxItems < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "maxItems must not be negative")
	}
	for _, p := range input.Products {
		if p.ID == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "every product requires an id")
		}
		if p.PriceFils < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "product prices must not be negative")
		}
	}
	return nil
}
