package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/evermark-labs/evermark-backend/internal/chain"
	"github.com/evermark-labs/evermark-backend/internal/model"
)

// Resolver hydrates a single mark from its ledger identifier. The ledger
// offers no aggregate read, so one mark costs an existence check plus four
// independent reads and, for content-addressed URIs, one best-effort
// document fetch. The reads are not atomic with respect to each other: under
// concurrent external mutation a resolution may observe metadata and creator
// from different ledger states. That weak consistency is accepted; the
// caller re-resolves rather than the engine locking anything.
type Resolver struct {
	marks   MarkReader
	content ContentResolver
	logger  *zap.Logger
}

// NewResolver builds a Resolver over the given ledger and content readers.
func NewResolver(marks MarkReader, content ContentResolver, logger *zap.Logger) *Resolver {
	return &Resolver{
		marks:   marks,
		content: content,
		logger:  logger,
	}
}

// Resolve returns the fully hydrated mark or chain.ErrNotFound. It never
// returns a partial record: any ledger read failure fails the whole
// resolution, while content unavailability only degrades the advisory
// payload to empty strings.
func (r *Resolver) Resolve(ctx context.Context, id uint64) (*model.Mark, error) {
	exists, err := r.marks.Exists(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("check mark %d: %w", id, err)
	}
	if !exists {
		return nil, fmt.Errorf("mark %d: %w", id, chain.ErrNotFound)
	}

	meta, err := r.marks.Metadata(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("resolve mark %d metadata: %w", id, err)
	}
	creator, err := r.marks.Creator(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("resolve mark %d creator: %w", id, err)
	}
	created, err := r.marks.CreationTime(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("resolve mark %d creation time: %w", id, err)
	}
	owner, err := r.marks.OwnerOf(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("resolve mark %d owner: %w", id, err)
	}

	payload := r.content.Resolve(ctx, meta.ContentURI)

	return &model.Mark{
		ID:           id,
		Title:        meta.Title,
		Author:       meta.Author,
		Creator:      creator,
		Owner:        owner,
		CreationTime: created,
		ContentURI:   meta.ContentURI,
		Description:  payload.Description,
		SourceURL:    payload.SourceURL,
	}, nil
}
