package search

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/ytget/recipe-browser/internal/logging"
	"github.com/ytget/recipe-browser/internal/model"
)

// Controller owns the pending query and the most recent result list.
//
// Overlapping searches are not cancelled: each one writes the result list when
// its response resolves, so the last response to arrive wins even if it was
// issued first.
type Controller struct {
	lookup RecipeLookup
	logger *zap.Logger

	mu       sync.RWMutex
	query    string
	results  []model.Recipe
	status   model.SearchStatus
	inFlight int
	lastErr  error
	onUpdate func(model.SearchState) // callback for UI updates
}

// NewController creates a controller with an empty query and result list.
// A nil lookup makes every search fail until SetLookup provides one.
func NewController(lookup RecipeLookup, logger *zap.Logger) *Controller {
	return &Controller{
		lookup:  lookupOrUnavailable(lookup),
		logger:  logging.OrNop(logger).Named("search"),
		results: []model.Recipe{},
		status:  model.SearchStatusIdle,
	}
}

// SetUpdateCallback sets the callback invoked after every state change
func (c *Controller) SetUpdateCallback(callback func(model.SearchState)) {
	c.mu.Lock()
	c.onUpdate = callback
	c.mu.Unlock()
}

// SetLookup swaps the recipe service client used by later searches.
// Searches already in flight finish against the previous client.
func (c *Controller) SetLookup(lookup RecipeLookup) {
	c.mu.Lock()
	c.lookup = lookupOrUnavailable(lookup)
	c.mu.Unlock()
}

// SetQueryText stores the query used by the next Search call
func (c *Controller) SetQueryText(text string) {
	c.mu.Lock()
	c.query = text
	c.mu.Unlock()
	c.notify()
}

// QueryText returns the pending query
func (c *Controller) QueryText() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.query
}

// Results returns a copy of the most recent successful result list
func (c *Controller) Results() []model.Recipe {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.results)
}

// Searching reports whether any search is still unresolved
func (c *Controller) Searching() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.inFlight > 0
}

// LastError returns the error of the last resolved search, nil after a success
func (c *Controller) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastErr
}

// State returns a snapshot of the controller
func (c *Controller) State() model.SearchState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stateLocked()
}

// Search looks up recipes for the current query. On success the result list is
// replaced and returned. On failure the result list is left untouched and the
// returned error satisfies errors.Is(err, ErrSearchFailed).
func (c *Controller) Search(ctx context.Context) ([]model.Recipe, error) {
	c.mu.Lock()
	query := c.query
	lookup := c.lookup
	c.inFlight++
	c.status = model.SearchStatusSearching
	c.mu.Unlock()
	c.notify()

	c.logger.Info("search started", zap.String("query", query))
	recipes, err := lookup.FindRecipes(ctx, query)
	if err != nil && !errors.Is(err, ErrSearchFailed) {
		err = fmt.Errorf("%w: %w", ErrSearchFailed, err)
	}

	c.mu.Lock()
	c.inFlight--
	if err != nil {
		c.lastErr = err
		c.status = c.resolvedStatusLocked(model.SearchStatusError)
	} else {
		c.results = slices.Clone(recipes)
		c.lastErr = nil
		c.status = c.resolvedStatusLocked(model.SearchStatusCompleted)
	}
	c.mu.Unlock()
	c.notify()

	if err != nil {
		c.logger.Warn("search failed", zap.String("query", query), zap.Error(err))
		return nil, err
	}

	c.logger.Info("search completed", zap.String("query", query), zap.Int("results", len(recipes)))
	return slices.Clone(recipes), nil
}

// resolvedStatusLocked keeps Searching while other requests are unresolved
func (c *Controller) resolvedStatusLocked(status model.SearchStatus) model.SearchStatus {
	if c.inFlight > 0 {
		return model.SearchStatusSearching
	}
	return status
}

func (c *Controller) stateLocked() model.SearchState {
	state := model.SearchState{
		Query:    c.query,
		Results:  slices.Clone(c.results),
		Status:   c.status,
		InFlight: c.inFlight,
	}
	if c.lastErr != nil {
		state.LastError = c.lastErr.Error()
	}
	return state
}

func (c *Controller) notify() {
	c.mu.RLock()
	callback := c.onUpdate
	state := c.stateLocked()
	c.mu.RUnlock()

	if callback != nil {
		callback(state)
	}
}

// unavailableLookup stands in for a missing recipe service client
type unavailableLookup struct{}

func (unavailableLookup) FindRecipes(context.Context, string) ([]model.Recipe, error) {
	return nil, searchFailed("no recipe service configured")
}

func lookupOrUnavailable(lookup RecipeLookup) RecipeLookup {
	if lookup == nil {
		return unavailableLookup{}
	}
	return lookup
}
