package search

// Package search implements the recipe search lifecycle: an HTTP client for
// the recipe service's find-recipe endpoint and a controller that owns the
// pending key-ingredient query, the most recent result list and the
// in-flight/error state exposed to the UI.
