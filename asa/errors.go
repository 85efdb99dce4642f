package asa

import "errors"

var (
	// ErrTypeMismatch is returned when a declared ASA type disagrees with
	// the type derived from total and decimals.
	ErrTypeMismatch = errors.New("declared ASA type does not match derived type")

	// ErrDecimalsMismatch is returned when asset parameter decimals differ
	// from the decimals declared in ARC-3 metadata.
	ErrDecimalsMismatch = errors.New("asset decimals must match metadata decimals")

	// ErrAssetNameMissing is returned when ARC-3 metadata is attached but
	// the asset has no name.
	ErrAssetNameMissing = errors.New("asset name must be set for ARC-3 assets")

	// ErrMetadataNameMissing is returned when the asset name requires a
	// matching metadata name that is absent.
	ErrMetadataNameMissing = errors.New("metadata name must be set")

	// ErrAssetNameMismatch is returned when the metadata name would fit the
	// asset-name bound yet differs from the asset name.
	ErrAssetNameMismatch = errors.New("asset name must match the metadata name")

	// ErrAssetNameNotPrefix is returned when a shortened asset name is not a
	// prefix of the metadata name.
	ErrAssetNameNotPrefix = errors.New("asset name must be a shortened form of the metadata name")

	// ErrURLMissing is returned when a metadata standard requires an asset
	// URL that is absent.
	ErrURLMissing = errors.New("asset URL must be set")

	// ErrURLSuffixMissing is returned when an ARC-3 asset URL does not end
	// with the #arc3 fragment.
	ErrURLSuffixMissing = errors.New("asset URL must end with '#arc3'")

	// ErrReserveMissing is returned when an ARC-19 asset has no reserve
	// address to resolve the metadata CID from.
	ErrReserveMissing = errors.New("reserve address must be set for ARC-19 assets")
)

// WarningCode identifies a non-fatal compliance finding.
type WarningCode string

const (
	// WarnAssetNameLiteralARC3 flags the discouraged asset name "arc3".
	WarnAssetNameLiteralARC3 WarningCode = "asset_name_literal_arc3"

	// WarnAssetNameARC3Suffix flags the discouraged <name>@arc3 pattern.
	WarnAssetNameARC3Suffix WarningCode = "asset_name_arc3_suffix"

	// WarnUnitNameSimilarity flags a unit name unrelated to the metadata name.
	WarnUnitNameSimilarity WarningCode = "unit_name_similarity"
)

// Warning is surfaced alongside a successfully constructed Asa for values
// that are legal but discouraged.
type Warning struct {
	Code    WarningCode
	Message string
}
