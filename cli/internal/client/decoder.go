package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/telhawk-systems/telhawk-audit/core/pkg/audit"
	"github.com/telhawk-systems/telhawk-audit/core/pkg/audit/wire"
)

// DecodedRecord is a decoded record as returned by the decoder service.
type DecodedRecord struct {
	ID               string `json:"id,omitempty" yaml:"id,omitempty"`
	audit.RecordView `json:",inline" yaml:",inline"`
}

// ItemError reports an envelope the service rejected.
type ItemError struct {
	Index   int    `json:"index" yaml:"index"`
	Message string `json:"message" yaml:"message"`
}

// BatchResult is the service response to a batch decode.
type BatchResult struct {
	Records []DecodedRecord `json:"records"`
	Errors  []ItemError     `json:"errors,omitempty"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DecoderClient talks to the decoder service HTTP API.
type DecoderClient struct {
	baseURL string
	client  *http.Client
}

func NewDecoderClient(baseURL string) *DecoderClient {
	return &DecoderClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Decode sends envelopes as one batch.
func (c *DecoderClient) Decode(ctx context.Context, envelopes []wire.Envelope) (*BatchResult, error) {
	body, err := json.Marshal(envelopes)
	if err != nil {
		return nil, fmt.Errorf("marshal envelopes: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/decode", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Message != "" {
			return nil, fmt.Errorf("decode failed (%s): %s", apiErr.Code, apiErr.Message)
		}
		return nil, fmt.Errorf("decode failed with status %d", resp.StatusCode)
	}

	var result BatchResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}
	return &result, nil
}
