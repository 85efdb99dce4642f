// Package arc19 models ARC-19 metadata: an optional ARC-3 document reached
// through a templated asset URL that resolves via the asset's reserve
// address, making the metadata mutable without reconfiguring the URL.
//
// Reference: https://github.com/algorandfoundation/ARCs/blob/main/ARCs/arc-0019.md
package arc19

import (
	"errors"

	"github.com/code-alexander/algobase/arc3"
	"github.com/code-alexander/algobase/refdata"
)

// ErrExtraMetadataForbidden is returned when the embedded ARC-3 document
// carries extra_metadata, which ARC-19 does not support.
var ErrExtraMetadataForbidden = errors.New("extra metadata is not supported for ARC-19")

// Metadata wraps an optional ARC-3 document under ARC-19 rules.
type Metadata struct {
	ARC3 *arc3.Metadata
}

// Validate checks the embedded document, if any, against both its own ARC-3
// constraints and the ARC-19 restriction on extra_metadata.
func (m *Metadata) Validate(p refdata.Provider) error {
	if m.ARC3 == nil {
		return nil
	}
	var errs []error
	if m.ARC3.ExtraMetadata != nil {
		errs = append(errs, ErrExtraMetadataForbidden)
	}
	if err := m.ARC3.Validate(p); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// CanonicalJSON returns the canonical form of the embedded ARC-3 document,
// or nil when no document is attached.
func (m *Metadata) CanonicalJSON() ([]byte, error) {
	if m.ARC3 == nil {
		return nil, nil
	}
	return m.ARC3.CanonicalJSON()
}
