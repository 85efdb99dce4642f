package asa

import (
	"errors"
	"fmt"
	"strings"

	"github.com/code-alexander/algobase/algorand"
	"github.com/code-alexander/algobase/types"
)

// AssetParams is the on-chain configuration of an Algorand Standard Asset.
// All length bounds are measured on the UTF-8 encoding. The struct is
// treated as immutable once validated.
type AssetParams struct {
	// Total is the total number of base units to create.
	Total uint64

	// Decimals is the number of digits after the decimal point when
	// displaying the asset, 0 to 19.
	Decimals uint32

	// DefaultFrozen marks holdings frozen by default.
	DefaultFrozen bool

	// UnitName names a unit of the asset, at most 8 bytes. Example: "USDT".
	UnitName *string

	// AssetName names the asset, at most 32 bytes. Example: "Tether".
	AssetName *string

	// URL points at more information about the asset, at most 96 bytes.
	URL *string

	// MetadataHash is a 32-byte commitment over asset metadata, or nil.
	MetadataHash []byte

	// Manager can reconfigure or destroy the asset.
	Manager *string

	// Reserve holds non-minted units; under ARC-19 it encodes the metadata CID.
	Reserve *string

	// Freeze can freeze holdings. Nil means freezing is not permitted.
	Freeze *string

	// Clawback can claw back holdings. Nil means clawback is not permitted.
	Clawback *string
}

// Validate checks every field bound and address checksum, aggregating all
// violations.
func (p *AssetParams) Validate() error {
	var errs []error

	if err := types.CheckDecimals(p.Decimals); err != nil {
		errs = append(errs, fmt.Errorf("decimals: %w", err))
	}
	if p.UnitName != nil {
		if err := types.CheckEncodedLength(*p.UnitName, types.MaxUnitNameBytes); err != nil {
			errs = append(errs, fmt.Errorf("unit_name: %w", err))
		}
	}
	if p.AssetName != nil {
		if err := types.CheckEncodedLength(*p.AssetName, types.MaxAssetNameBytes); err != nil {
			errs = append(errs, fmt.Errorf("asset_name: %w", err))
		}
	}
	if p.URL != nil {
		// template-ipfs URLs carry a brace token where a host would be and
		// are parsed by the ARC-19 template grammar instead.
		if strings.HasPrefix(*p.URL, "template-ipfs://") {
			if err := types.CheckEncodedLength(*p.URL, types.MaxURLBytes); err != nil {
				errs = append(errs, fmt.Errorf("url: %w", err))
			}
		} else if _, err := types.CheckURL(*p.URL); err != nil {
			errs = append(errs, fmt.Errorf("url: %w", err))
		}
	}
	if p.MetadataHash != nil {
		if err := types.CheckHash32(p.MetadataHash); err != nil {
			errs = append(errs, fmt.Errorf("metadata_hash: %w", err))
		}
	}
	for _, addr := range []struct {
		field string
		value *string
	}{
		{"manager", p.Manager},
		{"reserve", p.Reserve},
		{"freeze", p.Freeze},
		{"clawback", p.Clawback},
	} {
		if addr.value == nil {
			continue
		}
		if _, err := algorand.DecodeAddress(*addr.value); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", addr.field, err))
		}
	}

	return errors.Join(errs...)
}
