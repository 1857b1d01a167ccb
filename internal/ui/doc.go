package ui

// Package ui contains the Fyne-based desktop user interface. It owns one filter
// selection model per window, binds the filter panel and the ingredient search
// box to the filter model and search controller, and renders recipe results
// as a grid of thumbnail tiles.
