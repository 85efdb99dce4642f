package dispenser_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-alexander/algobase/dispenser"
)

func TestNewClientRequiresAccessToken(t *testing.T) {
	_, err := dispenser.NewClient("")
	assert.ErrorIs(t, err, dispenser.ErrAccessTokenRequired)
}

func TestFund(t *testing.T) {
	address := "7ZUECA7HFLZTXENRV24SHLU4AVPUTMTTDUFUBNBD64C73F3UHRTHAIOF6Q"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/fund/0", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, address, req["receiver"])
		assert.Equal(t, float64(1_000_000), req["amount"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"txID":   "VSXMGB6GROBBNW2ZIYPM4BYLTBT5NPKVO4SXLBUKSSIXAIVKLWUQ",
			"amount": 1_000_000,
		})
	}))
	defer server.Close()

	client, err := dispenser.NewClient("test-token", dispenser.WithBaseURL(server.URL))
	require.NoError(t, err)

	resp, err := client.Fund(context.Background(), address, 1_000_000)
	require.NoError(t, err)
	assert.Equal(t, "VSXMGB6GROBBNW2ZIYPM4BYLTBT5NPKVO4SXLBUKSSIXAIVKLWUQ", resp.TxID)
	assert.Equal(t, uint64(1_000_000), resp.Amount)
}

func TestFundRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"monthly limit reached"}`, http.StatusForbidden)
	}))
	defer server.Close()

	client, err := dispenser.NewClient("test-token", dispenser.WithBaseURL(server.URL))
	require.NoError(t, err)

	_, err = client.Fund(context.Background(), "7ZUECA7HFLZTXENRV24SHLU4AVPUTMTTDUFUBNBD64C73F3UHRTHAIOF6Q", 1)
	assert.ErrorContains(t, err, "403")
}
