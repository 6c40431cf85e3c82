package content

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Publisher pins mark documents to the content-addressed store through a
// pinning service API. Unlike resolution, publish failures are real errors:
// the creation flow must not mint a mark whose document was never stored.
type Publisher struct {
	client    *http.Client
	pinURL    string
	apiKey    string
	apiSecret string
	metrics   FetchMetrics
	logger    *zap.Logger
}

// NewPublisher builds a Publisher for the given pinning endpoint.
func NewPublisher(pinURL, apiKey, apiSecret string, timeout time.Duration, metrics FetchMetrics, logger *zap.Logger) *Publisher {
	return &Publisher{
		client:    &http.Client{Timeout: timeout},
		pinURL:    pinURL,
		apiKey:    apiKey,
		apiSecret: apiSecret,
		metrics:   metrics,
		logger:    logger,
	}
}

type pinResponse struct {
	IpfsHash string `json:"IpfsHash"`
}

// Publish pins the document under the given label and returns its content URI.
func (p *Publisher) Publish(ctx context.Context, doc Document, label string) (uri string, err error) {
	started := time.Now()
	defer func() {
		p.metrics.Observe("publish", err, started)
	}()

	blob, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "metadata.json")
	if err != nil {
		return "", fmt.Errorf("build form: %w", err)
	}
	if _, err := part.Write(blob); err != nil {
		return "", fmt.Errorf("write form: %w", err)
	}
	meta, err := json.Marshal(map[string]string{"name": label})
	if err != nil {
		return "", fmt.Errorf("encode pin label: %w", err)
	}
	if err := writer.WriteField("pinataMetadata", string(meta)); err != nil {
		return "", fmt.Errorf("write pin label: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("close form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.pinURL, body)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("pinata_api_key", p.apiKey)
	req.Header.Set("pinata_secret_api_key", p.apiSecret)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("publish document: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("publish document: status %d", resp.StatusCode)
	}

	var pinned pinResponse
	if err := json.NewDecoder(resp.Body).Decode(&pinned); err != nil {
		return "", fmt.Errorf("decode pin response: %w", err)
	}
	if pinned.IpfsHash == "" {
		return "", fmt.Errorf("publish document: empty hash in response")
	}

	p.logger.Info("document pinned", zap.String("label", label), zap.String("hash", pinned.IpfsHash))
	return ipfsScheme + pinned.IpfsHash, nil
}
