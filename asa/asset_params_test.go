package asa_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/code-alexander/algobase/algorand"
	"github.com/code-alexander/algobase/asa"
	"github.com/code-alexander/algobase/types"
)

const testAddress = "7ZUECA7HFLZTXENRV24SHLU4AVPUTMTTDUFUBNBD64C73F3UHRTHAIOF6Q"

func strptr(s string) *string { return &s }

func uint32ptr(v uint32) *uint32 { return &v }

func validParams() asa.AssetParams {
	return asa.AssetParams{
		Total:         1,
		Decimals:      0,
		DefaultFrozen: false,
		UnitName:      strptr("Song0001"),
		AssetName:     strptr("My Songs"),
		URL:           strptr("https://tether.to/#arc3"),
		MetadataHash:  make([]byte, 32),
		Manager:       strptr(testAddress),
		Reserve:       strptr(testAddress),
		Freeze:        strptr(testAddress),
		Clawback:      strptr(testAddress),
	}
}

func TestAssetParamsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*asa.AssetParams)
		wantErr error
	}{
		{
			name:   "valid",
			mutate: func(p *asa.AssetParams) {},
		},
		{
			name:   "minimal",
			mutate: func(p *asa.AssetParams) { *p = asa.AssetParams{Total: 1} },
		},
		{
			name:    "decimals out of range",
			mutate:  func(p *asa.AssetParams) { p.Decimals = 20 },
			wantErr: types.ErrOutOfRange,
		},
		{
			name:    "unit name too long",
			mutate:  func(p *asa.AssetParams) { p.UnitName = strptr("Song00001") },
			wantErr: types.ErrEncodedTooLong,
		},
		{
			name:    "asset name too long",
			mutate:  func(p *asa.AssetParams) { p.AssetName = strptr(strings.Repeat("a", 33)) },
			wantErr: types.ErrEncodedTooLong,
		},
		{
			name:    "url too long",
			mutate:  func(p *asa.AssetParams) { p.URL = strptr("https://" + strings.Repeat("a", 89)) },
			wantErr: types.ErrEncodedTooLong,
		},
		{
			name:    "url without scheme",
			mutate:  func(p *asa.AssetParams) { p.URL = strptr("tether.to/#arc3") },
			wantErr: types.ErrInvalidURL,
		},
		{
			name:   "template url accepted",
			mutate: func(p *asa.AssetParams) { p.URL = strptr("template-ipfs://{ipfscid:1:raw:reserve:sha2-256}") },
		},
		{
			name: "template url still bounded",
			mutate: func(p *asa.AssetParams) {
				p.URL = strptr("template-ipfs://{ipfscid:1:raw:reserve:sha2-256}/" + strings.Repeat("a", 60))
			},
			wantErr: types.ErrEncodedTooLong,
		},
		{
			name:    "metadata hash wrong length",
			mutate:  func(p *asa.AssetParams) { p.MetadataHash = make([]byte, 31) },
			wantErr: types.ErrInvalidHashLength,
		},
		{
			name:    "manager checksum invalid",
			mutate:  func(p *asa.AssetParams) { p.Manager = strptr(testAddress[:57] + "A") },
			wantErr: algorand.ErrInvalidChecksum,
		},
		{
			name:    "reserve malformed",
			mutate:  func(p *asa.AssetParams) { p.Reserve = strptr("not an address") },
			wantErr: algorand.ErrInvalidAddress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validParams()
			tt.mutate(&p)
			err := p.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAssetParamsValidateAggregatesErrors(t *testing.T) {
	p := validParams()
	p.Decimals = 20
	p.UnitName = strptr("way too long for a unit name")
	p.Freeze = strptr("bogus")

	err := p.Validate()
	assert.ErrorIs(t, err, types.ErrOutOfRange)
	assert.ErrorIs(t, err, types.ErrEncodedTooLong)
	assert.ErrorIs(t, err, algorand.ErrInvalidAddress)
}
