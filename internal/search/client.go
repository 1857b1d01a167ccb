package search

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/ytget/recipe-browser/internal/logging"
	"github.com/ytget/recipe-browser/internal/model"
)

// Recipe service wire constants
const (
	FindRecipePath     = "/find-recipe"
	KeyIngredientParam = "key-ingredient"
	DefaultTimeout     = 15 * time.Second

	// errorBodyLimit caps how much of a failed response is quoted in errors
	errorBodyLimit = 512
)

// Client talks to the recipe service over HTTP
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a client for the service at baseURL.
// A non-positive timeout means DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger: logging.OrNop(logger).Named("recipe-client"),
	}
}

// BaseURL returns the service base URL without a trailing slash
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FindRecipes issues GET <base>/find-recipe?key-ingredient=<ingredient>
func (c *Client) FindRecipes(ctx context.Context, ingredient string) ([]model.Recipe, error) {
	requestID := uuid.NewString()
	target := c.buildURL(ingredient)
	log := c.logger.With(zap.String("request_id", requestID), zap.String("ingredient", ingredient))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, searchFailed("build request: %v", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn("recipe request failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return nil, searchFailed("request %s: %v", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		log.Warn("recipe service returned error status",
			zap.Int("status", resp.StatusCode),
			zap.Duration("elapsed", time.Since(start)),
		)
		return nil, searchFailed("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	recipes, err := decodeRecipes(resp.Body)
	if err != nil {
		log.Warn("failed to decode recipe response", zap.Error(err))
		return nil, searchFailed("decode response: %v", err)
	}
	if recipes == nil {
		recipes = []model.Recipe{}
	}

	log.Debug("recipe request completed",
		zap.Int("status", resp.StatusCode),
		zap.Int("results", len(recipes)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return recipes, nil
}

// decodeRecipes reads exactly one JSON value from r; anything after it is an error
func decodeRecipes(r io.Reader) ([]model.Recipe, error) {
	dec := json.NewDecoder(r)

	var recipes []model.Recipe
	if err := dec.Decode(&recipes); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after response body")
	}
	return recipes, nil
}

func (c *Client) buildURL(ingredient string) string {
	q := url.Values{}
	q.Set(KeyIngredientParam, ingredient)
	return c.baseURL + FindRecipePath + "?" + q.Encode()
}
