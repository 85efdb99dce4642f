// Package ipfs provides a client for pinning JSON documents to IPFS via the
// nft.storage API.
package ipfs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/code-alexander/algobase/internal/httpclient"
)

const defaultBaseURL = "https://api.nft.storage"

// PinStatus is the pinning state of a CID reported by the provider.
type PinStatus string

const (
	PinStatusQueued  PinStatus = "queued"
	PinStatusPinning PinStatus = "pinning"
	PinStatusPinned  PinStatus = "pinned"
	PinStatusFailed  PinStatus = "failed"
)

var (
	// ErrAPIKeyRequired is returned when a client is constructed without an
	// API key.
	ErrAPIKeyRequired = errors.New("nft.storage API key is required")

	// ErrStoreFailed is returned when the provider reports a failed upload.
	ErrStoreFailed = errors.New("failed to store JSON in IPFS")

	// ErrUnknownPinStatus is returned when the provider reports a pin status
	// outside the known set.
	ErrUnknownPinStatus = errors.New("unknown pin status")
)

var validPinStatuses = map[PinStatus]bool{
	PinStatusQueued:  true,
	PinStatusPinning: true,
	PinStatusPinned:  true,
	PinStatusFailed:  true,
}

// Client talks to the nft.storage HTTP API.
type Client struct {
	baseURL string
	http    *httpclient.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL. Intended for tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// NewClient creates an nft.storage client. The API key is mandatory.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrAPIKeyRequired
	}

	c := &Client{
		baseURL: defaultBaseURL,
		http: httpclient.New(
			httpclient.WithHeader("Authorization", "Bearer "+apiKey),
			httpclient.WithTimeout(10*time.Second),
		),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type uploadResponse struct {
	OK    bool `json:"ok"`
	Value struct {
		CID string `json:"cid"`
	} `json:"value"`
}

type checkResponse struct {
	OK    bool `json:"ok"`
	Value struct {
		Pin struct {
			Status string `json:"status"`
		} `json:"pin"`
	} `json:"value"`
}

// StoreJSON uploads a JSON document and returns its CID.
func (c *Client) StoreJSON(ctx context.Context, doc []byte) (string, error) {
	body, err := c.http.PostRaw(ctx, c.baseURL+"/upload", "application/json", bytes.NewReader(doc))
	if err != nil {
		return "", err
	}

	var resp uploadResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if !resp.OK || resp.Value.CID == "" {
		return "", ErrStoreFailed
	}

	return resp.Value.CID, nil
}

// FetchPinStatus returns the pinning status of a CID.
func (c *Client) FetchPinStatus(ctx context.Context, cid string) (PinStatus, error) {
	var resp checkResponse
	if err := c.http.GetJSON(ctx, c.baseURL+"/check/"+cid, &resp); err != nil {
		return "", err
	}

	status := PinStatus(resp.Value.Pin.Status)
	if !resp.OK || !validPinStatuses[status] {
		return "", fmt.Errorf("%w: %q", ErrUnknownPinStatus, resp.Value.Pin.Status)
	}

	return status, nil
}
