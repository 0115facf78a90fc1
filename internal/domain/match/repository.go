package match

import (
	"context"
	"time"
)

// Repository persists matches keyed by external id.
type Repository interface {
	// Upsert overlays the patch onto the match with the same external id, creating it when absent.
	Upsert(ctx context.Context, patch Patch) (Match, error)
	// ListSince returns matches starting at or after since, earliest first.
	ListSince(ctx context.Context, since time.Time) ([]Match, error)
}
