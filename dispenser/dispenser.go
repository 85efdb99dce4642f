// Package dispenser provides a client for the Algorand TestNet dispenser API.
package dispenser

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/code-alexander/algobase/internal/httpclient"
)

const defaultBaseURL = "https://api.dispenser.algorandfoundation.tools"

// AssetAlgo is the dispenser asset ID for Algo.
const AssetAlgo = 0

// ErrAccessTokenRequired is returned when a client is constructed without an
// access token.
var ErrAccessTokenRequired = errors.New("dispenser access token is required")

// FundResponse is the dispenser's reply to a fund request.
type FundResponse struct {
	TxID   string `json:"txID"`
	Amount uint64 `json:"amount"`
}

// Client talks to the TestNet dispenser HTTP API.
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

// NewClient creates a dispenser client. The access token is mandatory.
func NewClient(accessToken string, opts ...Option) (*Client, error) {
	if accessToken == "" {
		return nil, ErrAccessTokenRequired
	}

	c := &Client{
		baseURL: defaultBaseURL,
		http: httpclient.New(
			httpclient.WithHeader("Authorization", "Bearer "+accessToken),
			httpclient.WithTimeout(15*time.Second),
		),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type fundRequest struct {
	Receiver string `json:"receiver"`
	Amount   uint64 `json:"amount"`
	AssetID  uint64 `json:"assetID"`
}

// Fund sends Algo from the dispenser to the given address and returns the
// transaction ID and funded amount.
func (c *Client) Fund(ctx context.Context, address string, amount uint64) (FundResponse, error) {
	var resp FundResponse
	url := fmt.Sprintf("%s/fund/%d", c.baseURL, AssetAlgo)
	payload := fundRequest{Receiver: address, Amount: amount, AssetID: AssetAlgo}
	if err := c.http.PostJSON(ctx, url, payload, &resp); err != nil {
		return FundResponse{}, err
	}
	return resp, nil
}
