package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/evermark-labs/evermark-backend/internal/chain"
	"github.com/evermark-labs/evermark-backend/internal/model"
)

// LeaderboardService projects cycle rankings. Only a fully elapsed cycle is
// eligible: the in-progress cycle has no stable ranking and is rejected
// rather than exposed as final. An elapsed cycle with no ranking rows is
// reported as NoData, distinct from a finalized ranking.
type LeaderboardService struct {
	ranking  LeaderboardReader
	voting   VotingReader
	resolver MarkResolver
	logger   *zap.Logger
}

// NewLeaderboardService builds a LeaderboardService.
func NewLeaderboardService(ranking LeaderboardReader, voting VotingReader, resolver MarkResolver, logger *zap.Logger) *LeaderboardService {
	return &LeaderboardService{
		ranking:  ranking,
		voting:   voting,
		resolver: resolver,
		logger:   logger,
	}
}

// LatestClosedCycle returns the most recent cycle eligible for ranking, or
// false when no cycle has elapsed yet.
func (s *LeaderboardService) LatestClosedCycle(ctx context.Context) (uint64, bool, error) {
	current, err := s.voting.CurrentCycle(ctx)
	if err != nil {
		return 0, false, fmt.Errorf("current cycle: %w", err)
	}
	if current == 0 {
		return 0, false, nil
	}
	return current - 1, true, nil
}

// ForCycle returns the ranking projection for a closed cycle, hydrating each
// ranked mark and preserving the externally reported order and rank numbers
// verbatim. Requests for the in-progress cycle (or later) fail with
// chain.ErrCycleInProgress before any ranking read.
func (s *LeaderboardService) ForCycle(ctx context.Context, cycle uint64, limit int) (*model.Leaderboard, error) {
	current, err := s.voting.CurrentCycle(ctx)
	if err != nil {
		return nil, fmt.Errorf("current cycle: %w", err)
	}
	if cycle >= current {
		return nil, fmt.Errorf("cycle %d, current %d: %w", cycle, current, chain.ErrCycleInProgress)
	}

	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}
	rows, err := s.ranking.RankedMarks(ctx, cycle, limit)
	if err != nil {
		return nil, fmt.Errorf("ranking for cycle %d: %w", cycle, err)
	}
	if len(rows) == 0 {
		return &model.Leaderboard{Cycle: cycle, Status: model.LeaderboardNoData, Entries: []model.LeaderboardEntry{}}, nil
	}

	entries := make([]model.LeaderboardEntry, 0, len(rows))
	for _, row := range rows {
		mark, err := s.resolver.Resolve(ctx, row.MarkID)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			s.logger.Warn("leaderboard: mark hydration failed, skipping entry",
				zap.Uint64("id", row.MarkID), zap.Error(err))
			continue
		}
		mark.Votes = row.Votes
		entries = append(entries, model.LeaderboardEntry{
			Mark:  *mark,
			Votes: row.Votes,
			Rank:  row.Rank,
		})
	}

	return &model.Leaderboard{
		Cycle:   cycle,
		Status:  model.LeaderboardFinalized,
		Entries: entries,
	}, nil
}
