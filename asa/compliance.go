package asa

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/code-alexander/algobase/arc19"
	"github.com/code-alexander/algobase/arc3"
	"github.com/code-alexander/algobase/types"
)

// unitNameSimilarityThreshold is the ratio below which the unit name is
// considered unrelated to the metadata name.
const unitNameSimilarityThreshold = 0.5

// checkARC3Compliance applies the ARC-3 cross-field rules between asset
// parameters and the attached document. Hard violations aggregate into the
// returned error; discouraged-but-legal values come back as warnings.
func checkARC3Compliance(params *AssetParams, doc *arc3.Metadata) ([]Warning, error) {
	var (
		warnings []Warning
		errs     []error
	)

	if doc.Decimals != nil && *doc.Decimals != params.Decimals {
		errs = append(errs, fmt.Errorf("%w: asset has %d, metadata has %d",
			ErrDecimalsMismatch, params.Decimals, *doc.Decimals))
	}

	if params.UnitName != nil && doc.Name != nil {
		ratio := similarityRatio(strings.ToLower(*params.UnitName), strings.ToLower(*doc.Name))
		if ratio < unitNameSimilarityThreshold {
			warnings = append(warnings, Warning{
				Code: WarnUnitNameSimilarity,
				Message: fmt.Sprintf("unit name %q should be related to the metadata name %q (similarity %.2f)",
					*params.UnitName, *doc.Name, ratio),
			})
		}
	}

	switch {
	case params.AssetName == nil:
		errs = append(errs, ErrAssetNameMissing)
	case *params.AssetName == "arc3":
		warnings = append(warnings, Warning{
			Code:    WarnAssetNameLiteralARC3,
			Message: `asset name "arc3" is discouraged for ARC-3 assets`,
		})
	case strings.HasSuffix(*params.AssetName, "@arc3"):
		warnings = append(warnings, Warning{
			Code:    WarnAssetNameARC3Suffix,
			Message: "asset name format <name>@arc3 is discouraged for ARC-3 assets",
		})
	default:
		errs = append(errs, checkARC3AssetName(params, doc)...)
		errs = append(errs, checkARC3AssetURL(params)...)
	}

	return warnings, errors.Join(errs...)
}

// checkARC3AssetName relates the asset name to the metadata name: they must
// be identical when the metadata name fits the 32-byte asset-name bound, and
// otherwise the asset name must be a literal prefix (a legitimately
// shortened form).
func checkARC3AssetName(params *AssetParams, doc *arc3.Metadata) []error {
	if doc.Name == nil {
		return []error{fmt.Errorf("%w: asset name is %q", ErrMetadataNameMissing, *params.AssetName)}
	}
	name := *doc.Name
	if name == *params.AssetName {
		return nil
	}
	if types.CheckEncodedLength(name, types.MaxAssetNameBytes) == nil {
		return []error{fmt.Errorf("%w: asset name %q, metadata name %q",
			ErrAssetNameMismatch, *params.AssetName, name)}
	}
	if !strings.HasPrefix(name, *params.AssetName) {
		return []error{fmt.Errorf("%w: asset name %q, metadata name %q",
			ErrAssetNameNotPrefix, *params.AssetName, name)}
	}
	return nil
}

func checkARC3AssetURL(params *AssetParams) []error {
	if params.URL == nil {
		return []error{fmt.Errorf("%w for ARC-3 assets", ErrURLMissing)}
	}
	var errs []error
	if !strings.HasSuffix(*params.URL, "#arc3") {
		errs = append(errs, fmt.Errorf("%w: got %q", ErrURLSuffixMissing, *params.URL))
	}
	if _, err := types.CheckURL(*params.URL); err != nil {
		errs = append(errs, fmt.Errorf("url: %w", err))
	}
	return errs
}

// checkARC19Compliance requires a template-ipfs asset URL and a reserve
// address to resolve the metadata CID from.
func checkARC19Compliance(params *AssetParams) error {
	var errs []error

	if params.URL == nil {
		errs = append(errs, fmt.Errorf("%w for ARC-19 assets", ErrURLMissing))
	} else if _, err := arc19.ParseTemplateURL(*params.URL); err != nil {
		errs = append(errs, fmt.Errorf("url: %w", err))
	}
	if params.Reserve == nil {
		errs = append(errs, ErrReserveMissing)
	}

	return errors.Join(errs...)
}

// similarityRatio is the longest-matching-blocks ratio between two strings,
// computed over their characters, in [0, 1].
func similarityRatio(a, b string) float64 {
	m := difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, ""))
	return m.Ratio()
}
