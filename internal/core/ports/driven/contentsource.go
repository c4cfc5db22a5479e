package driven

import (
	"context"

	"github.com/brittanydani/mysky-sub002/internal/core/domain"
)

// ContentSource loads the static content corpus. Pools are loaded once
// at process start and treated as immutable afterwards.
type ContentSource interface {
	// LoadPool loads one pool by kind. Returns domain.ErrNotFound for
	// unknown kinds.
	LoadPool(ctx context.Context, kind domain.PoolKind) (domain.ContentPool, error)
}
