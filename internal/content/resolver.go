// Package content talks to the content-addressed store: best-effort document
// resolution through a public gateway and pinning through the publish API.
package content

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/evermark-labs/evermark-backend/internal/chain"
)

const ipfsScheme = "ipfs://"

type (
	// FetchMetrics records metrics for content store calls.
	FetchMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Document is the JSON shape published for a mark and read back by the
// resolver. Field names follow the common token-metadata convention.
type Document struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	ExternalURL string      `json:"external_url"`
	Image       string      `json:"image"`
	Attributes  []Attribute `json:"attributes"`
}

// Attribute is one trait entry of a Document.
type Attribute struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

// Resolver fetches mark documents from a content gateway. Resolution is
// strictly best-effort: every failure degrades to an empty payload so the
// mark stays usable when the store is unreachable.
type Resolver struct {
	client     *http.Client
	gatewayURL string
	metrics    FetchMetrics
	logger     *zap.Logger
}

// NewResolver builds a Resolver with a bounded per-fetch timeout.
func NewResolver(gatewayURL string, timeout time.Duration, metrics FetchMetrics, logger *zap.Logger) *Resolver {
	return &Resolver{
		client:     &http.Client{Timeout: timeout},
		gatewayURL: strings.TrimRight(gatewayURL, "/"),
		metrics:    metrics,
		logger:     logger,
	}
}

// Resolve fetches and parses the document behind a content URI. URIs outside
// the content-addressed scheme, network failures, non-success statuses and
// malformed JSON all yield the zero payload. One attempt, no retries.
func (r *Resolver) Resolve(ctx context.Context, uri string) chain.ContentPayload {
	if !strings.HasPrefix(uri, ipfsScheme) {
		return chain.ContentPayload{}
	}

	payload, err := r.fetch(ctx, uri)
	if err != nil {
		r.logger.Debug("content resolve failed, degrading",
			zap.String("uri", uri), zap.Error(err))
		return chain.ContentPayload{}
	}
	return payload
}

func (r *Resolver) fetch(ctx context.Context, uri string) (payload chain.ContentPayload, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("resolve", err, started)
	}()

	gatewayURL := r.gatewayURL + "/ipfs/" + strings.TrimPrefix(uri, ipfsScheme)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, gatewayURL, nil)
	if err != nil {
		return chain.ContentPayload{}, fmt.Errorf("build request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return chain.ContentPayload{}, fmt.Errorf("fetch %s: %w", gatewayURL, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return chain.ContentPayload{}, fmt.Errorf("fetch %s: status %d", gatewayURL, resp.StatusCode)
	}

	var doc Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return chain.ContentPayload{}, fmt.Errorf("decode document: %w", err)
	}

	return chain.ContentPayload{
		Description: doc.Description,
		SourceURL:   doc.ExternalURL,
	}, nil
}
