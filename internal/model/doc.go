package model

// Package model defines domain data structures shared by the filter model, the
// search controller and the UI: filter categories and labels, recipe results,
// search status enums and the search state snapshot handed to the view.
