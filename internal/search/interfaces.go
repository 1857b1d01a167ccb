package search

import (
	"context"

	"github.com/ytget/recipe-browser/internal/model"
)

// RecipeLookup fetches recipes for a key ingredient from the recipe service.
type RecipeLookup interface {
	FindRecipes(ctx context.Context, ingredient string) ([]model.Recipe, error)
}

// Searcher defines the interface the UI uses to drive recipe search.
type Searcher interface {
	SetUpdateCallback(func(model.SearchState))
	SetQueryText(text string)
	QueryText() string
	Results() []model.Recipe
	Searching() bool
	LastError() error
	State() model.SearchState

	// Search blocks until the request resolves; callers run it off the UI thread.
	Search(ctx context.Context) ([]model.Recipe, error)
}

var (
	_ RecipeLookup = (*Client)(nil)
	_ Searcher     = (*Controller)(nil)
)
