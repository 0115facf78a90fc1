package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	// Upsert overlays the patch onto the record addressed by its key, creating it when absent.
	Upsert(ctx context.Context, patch Patch) (Player, error)
	List(ctx context.Context) ([]Player, error)
	GetByID(ctx context.Context, id string) (Player, bool, error)
	Create(ctx context.Context, item Player) (Player, error)
	Update(ctx context.Context, id string, patch Patch) (Player, bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}
