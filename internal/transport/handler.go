package transport

import (
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/evermark-labs/evermark-backend/internal/chain"
	"github.com/evermark-labs/evermark-backend/internal/service"
)

// Handler routes the JSON API over the engine's services.
type Handler struct {
	scanner     MarkScanner
	resolver    MarkResolver
	auctions    AuctionService
	voting      VotingService
	leaderboard LeaderboardService
	rewards     RewardsService
	creation    CreationService
	logger      *zap.Logger
}

// NewHandler returns a Handler over the given services.
func NewHandler(
	scanner MarkScanner,
	resolver MarkResolver,
	auctions AuctionService,
	voting VotingService,
	leaderboard LeaderboardService,
	rewards RewardsService,
	creation CreationService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		scanner:     scanner,
		resolver:    resolver,
		auctions:    auctions,
		voting:      voting,
		leaderboard: leaderboard,
		rewards:     rewards,
		creation:    creation,
		logger:      logger,
	}
}

// Register wires all routes onto the mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/marks", h.recentMarks)
	mux.HandleFunc("POST /api/marks", h.createMark)
	mux.HandleFunc("GET /api/marks/{id}", h.markByID)
	mux.HandleFunc("GET /api/marks/{id}/votes", h.votingSummary)
	mux.HandleFunc("POST /api/marks/{id}/votes", h.changeDelegation)
	mux.HandleFunc("GET /api/owners/{address}/marks", h.marksByOwner)
	mux.HandleFunc("GET /api/voters", h.activeVoters)
	mux.HandleFunc("GET /api/auctions", h.activeAuctions)
	mux.HandleFunc("GET /api/auctions/{id}", h.auctionByID)
	mux.HandleFunc("POST /api/auctions/{id}/bids", h.placeBid)
	mux.HandleFunc("GET /api/leaderboard", h.leaderboardForCycle)
	mux.HandleFunc("GET /api/rewards/{address}", h.pendingRewards)
	mux.HandleFunc("POST /api/rewards/{address}/claims", h.claimRewards)
	mux.HandleFunc("GET /health", h.health)
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (h *Handler) recentMarks(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			h.writeErrorMessage(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	marks, err := h.scanner.Recent(r.Context(), limit)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, renderMarks(marks))
}

func (h *Handler) markByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	mark, err := h.resolver.Resolve(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, renderMark(*mark))
}

func (h *Handler) marksByOwner(w http.ResponseWriter, r *http.Request) {
	owner, ok := h.pathAddress(w, r)
	if !ok {
		return
	}
	marks, err := h.scanner.ByOwner(r.Context(), owner)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, renderMarks(marks))
}

func (h *Handler) activeAuctions(w http.ResponseWriter, r *http.Request) {
	auctions, err := h.auctions.Active(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, renderAuctions(auctions))
}

func (h *Handler) auctionByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	auction, err := h.auctions.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, renderAuction(*auction))
}

type bidRequest struct {
	AmountWei string `json:"amount_wei"`
}

func (h *Handler) placeBid(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var req bidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	amount, ok := new(big.Int).SetString(req.AmountWei, 10)
	if !ok {
		h.writeErrorMessage(w, http.StatusBadRequest, "invalid amount_wei")
		return
	}

	outcome, err := h.auctions.PlaceBid(r.Context(), id, amount)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusAccepted, renderTx(outcome))
}

func (h *Handler) votingSummary(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	raw := r.URL.Query().Get("voter")
	if !common.IsHexAddress(raw) {
		h.writeErrorMessage(w, http.StatusBadRequest, "invalid voter address")
		return
	}

	summary, err := h.voting.Summary(r.Context(), common.HexToAddress(raw), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, renderVoting(*summary))
}

func (h *Handler) activeVoters(w http.ResponseWriter, r *http.Request) {
	count, err := h.voting.ActiveVoters(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]uint64{"active_voters": count})
}

type delegationRequest struct {
	Action    string `json:"action"`
	Voter     string `json:"voter"`
	AmountWei string `json:"amount_wei"`
}

func (h *Handler) changeDelegation(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var req delegationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !common.IsHexAddress(req.Voter) {
		h.writeErrorMessage(w, http.StatusBadRequest, "invalid voter address")
		return
	}
	amount, ok := new(big.Int).SetString(req.AmountWei, 10)
	if !ok {
		h.writeErrorMessage(w, http.StatusBadRequest, "invalid amount_wei")
		return
	}
	voter := common.HexToAddress(req.Voter)

	var (
		outcome chain.TxOutcome
		err     error
	)
	switch req.Action {
	case "delegate":
		outcome, err = h.voting.Delegate(r.Context(), voter, id, amount)
	case "undelegate":
		outcome, err = h.voting.Undelegate(r.Context(), voter, id, amount)
	default:
		h.writeErrorMessage(w, http.StatusBadRequest, "action must be delegate or undelegate")
		return
	}
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusAccepted, renderTx(outcome))
}

func (h *Handler) leaderboardForCycle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	limit := 0
	if raw := query.Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			h.writeErrorMessage(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	var cycle uint64
	if raw := query.Get("cycle"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			h.writeErrorMessage(w, http.StatusBadRequest, "invalid cycle")
			return
		}
		cycle = parsed
	} else {
		latest, ok, err := h.leaderboard.LatestClosedCycle(r.Context())
		if err != nil {
			h.writeError(w, err)
			return
		}
		if !ok {
			h.writeErrorMessage(w, http.StatusNotFound, "no cycle has closed yet")
			return
		}
		cycle = latest
	}

	board, err := h.leaderboard.ForCycle(r.Context(), cycle, limit)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, renderLeaderboard(*board))
}

func (h *Handler) pendingRewards(w http.ResponseWriter, r *http.Request) {
	account, ok := h.pathAddress(w, r)
	if !ok {
		return
	}
	pending, err := h.rewards.Pending(r.Context(), account)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]*amountView{"pending": renderAmount(pending)})
}

func (h *Handler) claimRewards(w http.ResponseWriter, r *http.Request) {
	account, ok := h.pathAddress(w, r)
	if !ok {
		return
	}
	outcome, err := h.rewards.Claim(r.Context(), account)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusAccepted, renderTx(outcome))
}

type creationRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	SourceURL   string `json:"source_url"`
	Author      string `json:"author"`
	Image       string `json:"image"`
}

func (h *Handler) createMark(w http.ResponseWriter, r *http.Request) {
	var req creationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	outcome, err := h.creation.Create(r.Context(), service.CreationRequest{
		Title:       req.Title,
		Description: req.Description,
		SourceURL:   req.SourceURL,
		Author:      req.Author,
		Image:       req.Image,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusAccepted, renderTx(outcome))
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		h.writeErrorMessage(w, http.StatusBadRequest, "invalid identifier")
		return 0, false
	}
	return id, true
}

func (h *Handler) pathAddress(w http.ResponseWriter, r *http.Request) (common.Address, bool) {
	raw := r.PathValue("address")
	if !common.IsHexAddress(raw) {
		h.writeErrorMessage(w, http.StatusBadRequest, "invalid address")
		return common.Address{}, false
	}
	return common.HexToAddress(raw), true
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("write response", zap.Error(err))
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) writeErrorMessage(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, errorResponse{Error: message})
}

// writeError maps domain sentinels onto status codes. Everything unmatched
// is a failed ledger or content-store interaction and surfaces as 502.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, chain.ErrNotFound):
		h.writeErrorMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, chain.ErrAuctionEnded):
		h.writeErrorMessage(w, http.StatusConflict, err.Error())
	case errors.Is(err, chain.ErrBidTooLow),
		errors.Is(err, chain.ErrInvalidAmount),
		errors.Is(err, chain.ErrInsufficientPower),
		errors.Is(err, chain.ErrNoDelegation),
		errors.Is(err, chain.ErrExceedsDelegation),
		errors.Is(err, chain.ErrNoRewards),
		errors.Is(err, chain.ErrMissingTitle),
		errors.Is(err, chain.ErrCycleInProgress):
		h.writeErrorMessage(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("request failed", zap.Error(err))
		h.writeErrorMessage(w, http.StatusBadGateway, "upstream interaction failed")
	}
}
