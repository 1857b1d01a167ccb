package filter

// Package filter implements the filter selection model: the fixed catalog of
// labels per category, the per-session selection set toggled by the filter
// panel, and label display formatting.
