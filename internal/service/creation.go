package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/evermark-labs/evermark-backend/internal/chain"
	"github.com/evermark-labs/evermark-backend/internal/content"
)

// CreationRequest carries the user-supplied fields for a new mark.
type CreationRequest struct {
	Title       string
	Description string
	SourceURL   string
	Author      string
	Image       string
}

// unknownAuthor is recorded when the request names no author; attribution is
// free text and not necessarily the creator.
const unknownAuthor = "Unknown"

// CreationService publishes a mark's document to the content store and
// submits the mint. Publishing happens first: a mint must never reference a
// document that was not stored.
type CreationService struct {
	publisher ContentPublisher
	submitter Submitter
	logger    *zap.Logger
}

// NewCreationService builds a CreationService.
func NewCreationService(publisher ContentPublisher, submitter Submitter, logger *zap.Logger) *CreationService {
	return &CreationService{
		publisher: publisher,
		submitter: submitter,
		logger:    logger,
	}
}

// Create validates the request, pins its document and submits the mint call.
// The returned outcome is pending; the caller re-runs the resolvers once the
// transaction confirms.
func (s *CreationService) Create(ctx context.Context, req CreationRequest) (chain.TxOutcome, error) {
	if req.Title == "" {
		return chain.TxOutcome{}, chain.ErrMissingTitle
	}
	author := req.Author
	if author == "" {
		author = unknownAuthor
	}

	doc := content.Document{
		Name:        req.Title,
		Description: req.Description,
		ExternalURL: req.SourceURL,
		Image:       req.Image,
		Attributes: []content.Attribute{
			{TraitType: "Content Type", Value: "Website"},
			{TraitType: "Creator", Value: author},
		},
	}

	label := "mark-" + req.Title
	if len(label) > 36 {
		label = label[:36]
	}
	uri, err := s.publisher.Publish(ctx, doc, label)
	if err != nil {
		return chain.TxOutcome{}, fmt.Errorf("publish mark document: %w", err)
	}

	handle, err := s.submitter.Submit(ctx, chain.Call{
		Contract: chain.ContractMark,
		Method:   "mintMark",
		Args:     []interface{}{uri, req.Title, author},
	})
	if err != nil {
		return chain.TxOutcome{}, fmt.Errorf("mint mark: %w", err)
	}

	s.logger.Info("mark creation submitted",
		zap.String("title", req.Title),
		zap.String("uri", uri),
		zap.String("tx", handle.Hash.Hex()))
	return chain.TxOutcome{Handle: handle, Status: chain.TxPending}, nil
}
