package curation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Service is the public entry point of the recommendation engine. All
// operations are AI-first with a local rule-based fallback: a failing,
// slow or misbehaving remote service degrades the result, it never
// produces an error. Implementations are safe for concurrent use.
type Service interface {
	// GeneratePackageRecommendation selects a bounded, category-diverse,
	// budget-constrained furniture package from the candidate pool.
	GeneratePackageRecommendation(ctx context.Context, input PackageRecommendationInput) PackageRecommendationOutput

	// GetStyleMatch scores one product against one style tag.
	GetStyleMatch(ctx context.Context, input StyleMatchInput) StyleMatchOutput

	// ClassifyRoomType classifies a room from its photos.
	ClassifyRoomType(ctx context.Context, photoURLs []string) RoomClassificationOutput

	// ClassifyRoomTypeByName classifies a room from its free-text name
	// without any network call.
	ClassifyRoomTypeByName(name string) RoomClassificationOutput

	// IsConfigured reports whether a remote AI service URL is set.
	IsConfigured() bool
}

type service struct {
	// client is nil in fallback-only mode.
	client *client
}

// NewService creates a curation service from immutable configuration.
// An empty ServiceURL yields a fallback-only service. Call sites with
// different latency budgets construct their own instances; there is no
// shared global.
func NewService(cfg *Config) Service {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	s := &service{}
	if cfg.ServiceURL != "" {
		s.client = newClient(cfg)
	}
	return s
}

func (s *service) IsConfigured() bool {
	return s.client != nil
}

func (s *service) GeneratePackageRecommendation(ctx context.Context, input PackageRecommendationInput) PackageRecommendationOutput {
	if s.client == nil {
		return selectFallbackPackage(input)
	}

	requestID := uuid.NewString()
	out, err := s.client.generatePackageRecommendation(ctx, input)
	if err != nil {
		slog.Warn("ai recommendation failed, using rule-based selection",
			"request_id", requestID,
			"error", err)
		fallback := selectFallbackPackage(input)
		fallback.PackageReasoning = fmt.Sprintf("%s %s", fallbackNote(err), fallback.PackageReasoning)
		return fallback
	}

	slog.Debug("ai recommendation accepted",
		"request_id", requestID,
		"items", len(out.SelectedProducts),
		"total_fils", out.TotalPriceFils)
	return out
}

func (s *service) GetStyleMatch(ctx context.Context, input StyleMatchInput) StyleMatchOutput {
	if s.client != nil {
		out, err := s.client.getStyleMatch(ctx, input)
		if err == nil {
			return out
		}
		slog.Warn("ai style match failed, using rule-based scoring", "error", err)
	}

	scored := scoreProductForStyle(input.Product, input.Style)
	return StyleMatchOutput{
		Score:     scored.Score,
		Reasoning: scored.Reasoning,
		Source:    SourceFallback,
	}
}

func (s *service) ClassifyRoomType(ctx context.Context, photoURLs []string) RoomClassificationOutput {
	if s.client != nil {
		out, err := s.client.classifyRoomType(ctx, photoURLs)
		if err == nil {
			return out
		}
		slog.Warn("ai room classification failed", "error", err)
	}

	return RoomClassificationOutput{
		Type:       RoomOther,
		Confidence: defaultRoomConfidence,
		Source:     SourceFallback,
	}
}

func (s *service) ClassifyRoomTypeByName(name string) RoomClassificationOutput {
	return classifyRoomTypeByName(name)
}

// fallbackNote explains in the package reasoning why the rule-based
// path ran instead of the AI service.
func fallbackNote(err error) string {
	var serviceErr *ServiceError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "AI service timed out; selection was generated by rule-based curation."
	case errors.Is(err, ErrEmptySelection):
		return "AI service returned no valid selections; selection was generated by rule-based curation."
	case errors.Is(err, ErrInvalidResponse):
		return "AI service returned an invalid response; selection was generated by rule-based curation."
	case errors.As(err, &serviceErr):
		return fmt.Sprintf("AI service returned status %d; selection was generated by rule-based curation.", serviceErr.StatusCode)
	default:
		return "AI service was unavailable; selection was generated by rule-based curation."
	}
}
