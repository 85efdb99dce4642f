package asa

import (
	"fmt"
	"math"
)

// AsaType classifies an Algorand Standard Asset by its supply structure.
type AsaType string

const (
	// TypeFungible is an asset with interchangeable units.
	TypeFungible AsaType = "fungible"

	// TypeNonFungiblePure is a unique, indivisible asset: total 1, decimals 0.
	TypeNonFungiblePure AsaType = "non_fungible_pure"

	// TypeNonFungibleFractional is a unique asset divided into tenths,
	// hundredths, etc.: total a power of 10 greater than 1 and decimals
	// equal to its base-10 exponent, so the whole supply is exactly 1.
	TypeNonFungibleFractional AsaType = "non_fungible_fractional"
)

// DeriveType derives the structural type of an asset from its total supply
// and decimals. Branches are evaluated in order and the first match wins:
// total 1 with decimals 0 is always a pure NFT even though it also satisfies
// the fractional rule.
func DeriveType(total uint64, decimals uint32) AsaType {
	switch {
	case total == 1 && decimals == 0:
		return TypeNonFungiblePure
	case isPowerOf10Exponent(total, decimals):
		return TypeNonFungibleFractional
	default:
		return TypeFungible
	}
}

// isPowerOf10Exponent reports whether total is 10^decimals for a total
// strictly greater than 1. The check is exact integer arithmetic; a floating
// log10 comparison loses precision for totals near 2^64.
func isPowerOf10Exponent(total uint64, decimals uint32) bool {
	if total <= 1 || decimals == 0 {
		return false
	}
	power := uint64(1)
	for i := uint32(0); i < decimals; i++ {
		if power > math.MaxUint64/10 {
			return false
		}
		power *= 10
	}
	return power == total
}

// checkDeclaredType fails with a type-specific message when the declared
// type disagrees with the derived one.
func checkDeclaredType(declared, derived AsaType) error {
	if declared == "" || declared == derived {
		return nil
	}
	switch declared {
	case TypeNonFungiblePure:
		return fmt.Errorf("%w: total must be 1 and decimals 0 for a pure NFT", ErrTypeMismatch)
	case TypeNonFungibleFractional:
		return fmt.Errorf("%w: total must be a power of 10 greater than 1 and decimals its base-10 exponent for a fractional NFT", ErrTypeMismatch)
	case TypeFungible:
		return fmt.Errorf("%w: total must be greater than 1 for a fungible asset", ErrTypeMismatch)
	default:
		return fmt.Errorf("%w: unknown ASA type %q", ErrTypeMismatch, declared)
	}
}
