package model

// SearchStatus represents the lifecycle state of the recipe search
type SearchStatus string

const (
	// SearchStatusIdle means no search has been issued yet
	SearchStatusIdle SearchStatus = "Idle"

	// SearchStatusSearching means at least one search is unresolved
	SearchStatusSearching SearchStatus = "Searching"

	// SearchStatusCompleted means the last resolved search succeeded
	SearchStatusCompleted SearchStatus = "Completed"

	// SearchStatusError means the last resolved search failed
	SearchStatusError SearchStatus = "Error"
)

// String returns the string representation of SearchStatus
func (ss SearchStatus) String() string {
	return string(ss)
}

// IsActive returns true while a search is in flight
func (ss SearchStatus) IsActive() bool {
	return ss == SearchStatusSearching
}

// IsFinished returns true if the last search resolved (completed or error)
func (ss SearchStatus) IsFinished() bool {
	return ss == SearchStatusCompleted || ss == SearchStatusError
}
