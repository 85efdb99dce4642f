package algorand_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-alexander/algobase/algorand"
)

func TestEncodeAddress(t *testing.T) {
	_, err := algorand.EncodeAddress(make([]byte, 31))
	assert.ErrorIs(t, err, algorand.ErrInvalidPublicKeyLength)

	_, err = algorand.EncodeAddress(nil)
	assert.ErrorIs(t, err, algorand.ErrInvalidPublicKeyLength)

	address, err := algorand.EncodeAddress(make([]byte, 32))
	require.NoError(t, err)
	assert.Len(t, address, algorand.AddressLen)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	publicKey := make([]byte, 32)
	for i := range publicKey {
		publicKey[i] = byte(i * 7)
	}

	address, err := algorand.EncodeAddress(publicKey)
	require.NoError(t, err)
	assert.Len(t, address, algorand.AddressLen)

	decoded, err := algorand.DecodeAddress(address)
	require.NoError(t, err)
	assert.Equal(t, publicKey, decoded)
}

func TestDecodeAddress(t *testing.T) {
	valid := "7ZUECA7HFLZTXENRV24SHLU4AVPUTMTTDUFUBNBD64C73F3UHRTHAIOF6Q"

	tests := []struct {
		name    string
		address string
		wantErr error
	}{
		{name: "valid", address: valid},
		{name: "too short", address: valid[:57], wantErr: algorand.ErrInvalidAddress},
		{name: "too long", address: valid + "A", wantErr: algorand.ErrInvalidAddress},
		{name: "empty", address: "", wantErr: algorand.ErrInvalidAddress},
		{name: "invalid base32", address: strings.Repeat("1", 58), wantErr: algorand.ErrInvalidAddress},
		{name: "corrupted checksum", address: valid[:57] + "A", wantErr: algorand.ErrInvalidChecksum},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := algorand.DecodeAddress(tt.address)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsValidAddress(t *testing.T) {
	assert.True(t, algorand.IsValidAddress("7ZUECA7HFLZTXENRV24SHLU4AVPUTMTTDUFUBNBD64C73F3UHRTHAIOF6Q"))
	assert.False(t, algorand.IsValidAddress("not an address"))
}
