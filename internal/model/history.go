package model

import "time"

// Where the landmarks shown for a search came from.
const (
	SourceCatalog  = "catalog"  // bundled offline catalog, no provider call
	SourceProvider = "provider" // AI provider result
	SourceFallback = "fallback" // provider failed, catalog entry shown instead
	SourceFailed   = "failed"   // nothing shown
)

// SearchRecord is one settled search, kept for the history view.
type SearchRecord struct {
	ID          int64     `json:"id,string"`
	City        string    `json:"city"`
	Provider    string    `json:"provider"`
	Source      string    `json:"source"`
	ResultCount int       `json:"resultCount"`
	CreatedAt   time.Time `json:"createdAt"`
}
