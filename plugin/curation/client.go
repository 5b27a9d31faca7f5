package curation

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

// maxErrorBodyBytes bounds how much of an error response body is kept
// for diagnostics.
const maxErrorBodyBytes = 4096

// client talks to the remote AI recommendation service. All methods
// return typed errors; converting a failure into a fallback result is
// the service layer's job. The client is safe for concurrent use.
type client struct {
	serviceURL string
	httpClient *http.Client
	timeout    time.Duration
	maxRetries int
	retryDelay time.Duration

	// limiter caps outbound request rate so a burst of package
	// generation jobs cannot hammer the AI service.
	limiter *rate.Limiter
}

func newClient(cfg *Config) *client {
	return &client{
		serviceURL: strings.TrimSuffix(cfg.ServiceURL, "/"),
		httpClient: &http.Client{},
		timeout:    cfg.Timeout,
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
		limiter:    rate.NewLimiter(rate.Limit(10), 20),
	}
}

// remoteEnvelope is the wire format of every request to the AI service.
// UserMessage is a JSON-encoded string of the structured request.
type remoteEnvelope struct {
	SystemPrompt string `json:"systemPrompt"`
	UserMessage  string `json:"userMessage"`
}

// packageResponse is the expected shape of /v1/package-recommendation.
type packageResponse struct {
	SelectedProducts []SelectedProduct `json:"selectedProducts"`
	PackageReasoning string            `json:"packageReasoning"`
}

// styleMatchResponse is the expected shape of /v1/style-match.
type styleMatchResponse struct {
	Score     float64 `json:"score"`
	Reasoning string  `json:"reasoning"`
}

// roomClassificationResponse is the expected shape of /v1/room-classification.
type roomClassificationResponse struct {
	Type       RoomType `json:"type"`
	Confidence float64  `json:"confidence"`
}

// generatePackageRecommendation calls the remote service and validates
// its selection against the candidate pool before trusting it.
func (c *client) generatePackageRecommendation(ctx context.Context, input PackageRecommendationInput) (PackageRecommendationOutput, error) {
	userMessage, err := packageUserMessage(input)
	if err != nil {
		return PackageRecommendationOutput{}, errors.Wrap(err, "serialize recommendation request")
	}

	var resp packageResponse
	if err := c.post(ctx, "/v1/package-recommendation", packageSystemPrompt, userMessage, &resp); err != nil {
		return PackageRecommendationOutput{}, err
	}
	return validatePackageResponse(resp, input.Products)
}

// getStyleMatch calls the remote service for a single product/style
// score, clamped to [0, 1].
func (c *client) getStyleMatch(ctx context.Context, input StyleMatchInput) (StyleMatchOutput, error) {
	userMessage, err := styleMatchUserMessage(input)
	if err != nil {
		return StyleMatchOutput{}, errors.Wrap(err, "serialize style match request")
	}

	var resp styleMatchResponse
	if err := c.post(ctx, "/v1/style-match", styleMatchSystemPrompt, userMessage, &resp); err != nil {
		return StyleMatchOutput{}, err
	}
	if resp.Reasoning == "" {
		return StyleMatchOutput{}, errors.Wrap(ErrInvalidResponse, "missing reasoning")
	}
	return StyleMatchOutput{
		Score:     round2(clamp01(resp.Score)),
		Reasoning: resp.Reasoning,
		Source:    SourceAI,
	}, nil
}

// classifyRoomType classifies a room from photo URLs. A type outside
// the closed set is a validation failure, not a default.
func (c *client) classifyRoomType(ctx context.Context, photoURLs []string) (RoomClassificationOutput, error) {
	userMessage, err := roomClassificationUserMessage(photoURLs)
	if err != nil {
		return RoomClassificationOutput{}, errors.Wrap(err, "serialize room classification request")
	}

	var resp roomClassificationResponse
	if err := c.post(ctx, "/v1/room-classification", roomClassificationSystemPrompt, userMessage, &resp); err != nil {
		return RoomClassificationOutput{}, err
	}
	if !validRoomTypes[resp.Type] {
		return RoomClassificationOutput{}, errors.Wrapf(ErrInvalidResponse, "unrecognized room type %q", resp.Type)
	}
	return RoomClassificationOutput{
		Type:       resp.Type,
		Confidence: round2(clamp01(resp.Confidence)),
		Source:     SourceAI,
	}, nil
}

// post sends one JSON request with per-attempt timeout and exponential
// backoff. Attempt n (n >= 1) waits retryDelay * 2^(n-1) first.
func (c *client) post(ctx context.Context, path, systemPrompt, userMessage string, out any) error {
	body, err := json.Marshal(remoteEnvelope{
		SystemPrompt: systemPrompt,
		UserMessage:  userMessage,
	})
	if err != nil {
		return errors.Wrap(err, "marshal request envelope")
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			delay := c.retryDelay * (1 << (attempt - 1))
			slog.Debug("ai request failed, retrying",
				"path", path,
				"attempt", attempt,
				"delay", delay,
				"error", lastErr)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		err := c.doOnce(ctx, path, body, out)
		if err == nil {
			return nil
		}
		lastErr = err
		if !isRetryable(err) {
			return err
		}
	}
	return lastErr
}

func (c *client) doOnce(ctx context.Context, path string, body []byte, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.serviceURL+path, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return &ServiceError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(ErrInvalidResponse, err.Error())
	}
	return nil
}

// validatePackageResponse enforces the domain invariants on a remote
// selection: every product id must exist in the candidate pool (unknown
// ids are dropped), quantities are at least 1, and the total is
// recomputed locally from verified candidate prices. A selection that
// validates down to nothing is an AI failure.
func validatePackageResponse(resp packageResponse, pool []AvailableProduct) (PackageRecommendationOutput, error) {
	if len(resp.SelectedProducts) == 0 {
		return PackageRecommendationOutput{}, ErrEmptySelection
	}

	byID := make(map[string]AvailableProduct, len(pool))
	for _, p := range pool {
		byID[p.ID] = p
	}

	verified := make([]SelectedProduct, 0, len(resp.SelectedProducts))
	var totalFils int64
	for _, sel := range resp.SelectedProducts {
		product, ok := byID[sel.ProductID]
		if !ok {
			slog.Warn("dropping ai selection for unknown product", "product_id", sel.ProductID)
			continue
		}
		quantity := sel.Quantity
		if quantity < 1 {
			quantity = 1
		}
		verified = append(verified, SelectedProduct{
			ProductID: sel.ProductID,
			Quantity:  quantity,
			Reasoning: sel.Reasoning,
		})
		totalFils += product.PriceFils * int64(quantity)
	}
	if len(verified) == 0 {
		return PackageRecommendationOutput{}, ErrEmptySelection
	}

	return PackageRecommendationOutput{
		SelectedProducts: verified,
		TotalPriceFils:   totalFils,
		PackageReasoning: resp.PackageReasoning,
		Source:           SourceAI,
	}, nil
}
