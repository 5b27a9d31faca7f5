// Package v1 exposes the curation engine as a JSON API consumed by the
// marketplace monolith and its background workers.
package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/sync/semaphore"

	"github.com/athathhq/curator/internal/profile"
	"github.com/athathhq/curator/plugin/curation"
)

// maxConcurrentAIRequests bounds in-flight AI-backed recommendations.
// Fallback-only operation is cheap and stays unbounded.
const maxConcurrentAIRequests = 8

type APIV1Service struct {
	Profile         *profile.Profile
	CurationService curation.Service

	// aiSemaphore limits concurrent remote AI calls so a burst of
	// package generation jobs cannot exhaust the service quota.
	aiSemaphore *semaphore.Weighted
}

func NewAPIV1Service(profile *profile.Profile, curationService curation.Service) *APIV1Service {
	return &APIV1Service{
		Profile:         profile,
		CurationService: curationService,
		aiSemaphore:     semaphore.NewWeighted(maxConcurrentAIRequests),
	}
}

// Register mounts the API routes on the echo server.
func (s *APIV1Service) Register(e *echo.Echo) {
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.GET("/healthz", s.handleHealth)

	group := e.Group("/api/v1/curation")
	group.POST("/package-recommendation", s.handlePackageRecommendation)
	group.POST("/style-match", s.handleStyleMatch)
	group.POST("/room-classification", s.handleRoomClassification)
}

func (s *APIV1Service) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"version": s.Profile.Version,
	})
}
