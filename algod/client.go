package algod

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/code-alexander/algobase/asa"
	"github.com/code-alexander/algobase/internal/httpclient"
)

// Client talks to the algod v2 HTTP API.
type Client struct {
	baseURL string
	http    *httpclient.Client
}

// NewClient creates an algod client. The token may be empty for public
// providers that do not require one.
func NewClient(baseURL, token string) *Client {
	opts := []httpclient.Option{}
	if token != "" {
		opts = append(opts, httpclient.WithHeader("X-Algo-API-Token", token))
	}
	return &Client{
		baseURL: baseURL,
		http:    httpclient.New(opts...),
	}
}

type assetResponse struct {
	Index  uint64          `json:"index"`
	Params wireAssetParams `json:"params"`
}

type wireAssetParams struct {
	Total         uint64 `json:"total"`
	Decimals      uint32 `json:"decimals"`
	DefaultFrozen bool   `json:"default-frozen"`
	UnitName      string `json:"unit-name"`
	Name          string `json:"name"`
	URL           string `json:"url"`
	MetadataHash  string `json:"metadata-hash"`
	Manager       string `json:"manager"`
	Reserve       string `json:"reserve"`
	Freeze        string `json:"freeze"`
	Clawback      string `json:"clawback"`
}

// AssetParams fetches an asset by ID and maps it into validation parameters.
// Empty strings from the wire are dropped rather than kept as empty values.
func (c *Client) AssetParams(ctx context.Context, assetID uint64) (asa.AssetParams, error) {
	var resp assetResponse
	url := fmt.Sprintf("%s/v2/assets/%d", c.baseURL, assetID)
	if err := c.http.GetJSON(ctx, url, &resp); err != nil {
		return asa.AssetParams{}, err
	}

	params := asa.AssetParams{
		Total:         resp.Params.Total,
		Decimals:      resp.Params.Decimals,
		DefaultFrozen: resp.Params.DefaultFrozen,
		UnitName:      optional(resp.Params.UnitName),
		AssetName:     optional(resp.Params.Name),
		URL:           optional(resp.Params.URL),
		Manager:       optional(resp.Params.Manager),
		Reserve:       optional(resp.Params.Reserve),
		Freeze:        optional(resp.Params.Freeze),
		Clawback:      optional(resp.Params.Clawback),
	}

	if resp.Params.MetadataHash != "" {
		hash, err := base64.StdEncoding.DecodeString(resp.Params.MetadataHash)
		if err != nil {
			return asa.AssetParams{}, fmt.Errorf("failed to decode metadata hash: %w", err)
		}
		params.MetadataHash = hash
	}

	return params, nil
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
