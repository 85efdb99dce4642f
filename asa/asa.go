// Package asa composes Algorand Standard Asset parameters with an optional
// metadata document, validates the result against the ARC-3 and ARC-19
// standards, and computes the derived asset type and the on-chain metadata
// hash. An Asa is immutable: construct, validate, use, discard.
package asa

import (
	"encoding/base64"
	"fmt"

	"github.com/code-alexander/algobase/arc19"
	"github.com/code-alexander/algobase/arc3"
	"github.com/code-alexander/algobase/internal/hashutil"
	"github.com/code-alexander/algobase/refdata"
)

// Asa is a validated asset aggregate. Construct with New; the zero value is
// not meaningful.
type Asa struct {
	declaredType AsaType
	params       AssetParams
	metadata     Metadata
	derivedType  AsaType
	metadataHash []byte
}

type options struct {
	declaredType AsaType
	metadata     Metadata
	provider     refdata.Provider
}

// Option configures New.
type Option func(*options)

// WithDeclaredType declares the expected asset type. Construction fails if
// the declared type disagrees with the type derived from total and decimals.
func WithDeclaredType(t AsaType) Option {
	return func(o *options) { o.declaredType = t }
}

// WithARC3Metadata attaches an ARC-3 document.
func WithARC3Metadata(m *arc3.Metadata) Option {
	return func(o *options) { o.metadata = ARC3Metadata(m) }
}

// WithARC19Metadata attaches an ARC-19 wrapper.
func WithARC19Metadata(m *arc19.Metadata) Option {
	return func(o *options) { o.metadata = ARC19Metadata(m) }
}

// WithProvider overrides the reference-data provider used to validate MIME
// types and gateway hosts. Defaults to refdata.Default().
func WithProvider(p refdata.Provider) Option {
	return func(o *options) { o.provider = p }
}

// New validates the parameters and metadata, derives the asset type, checks
// the cross-field standard compliance rules, and computes the metadata hash.
// Warnings report legal but discouraged values and accompany a successful
// result; any hard violation fails construction.
func New(params AssetParams, opts ...Option) (*Asa, []Warning, error) {
	o := options{provider: refdata.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	if err := params.Validate(); err != nil {
		return nil, nil, fmt.Errorf("asset params: %w", err)
	}

	switch o.metadata.Standard() {
	case StandardARC3:
		if err := o.metadata.arc3.Validate(o.provider); err != nil {
			return nil, nil, fmt.Errorf("arc3 metadata: %w", err)
		}
	case StandardARC19:
		if err := o.metadata.arc19.Validate(o.provider); err != nil {
			return nil, nil, fmt.Errorf("arc19 metadata: %w", err)
		}
	}

	derived := DeriveType(params.Total, params.Decimals)
	if err := checkDeclaredType(o.declaredType, derived); err != nil {
		return nil, nil, err
	}

	var warnings []Warning
	switch o.metadata.Standard() {
	case StandardARC3:
		w, err := checkARC3Compliance(&params, o.metadata.arc3)
		if err != nil {
			return nil, nil, err
		}
		warnings = w
	case StandardARC19:
		if err := checkARC19Compliance(&params); err != nil {
			return nil, nil, err
		}
	}

	hash, err := computeMetadataHash(o.metadata)
	if err != nil {
		return nil, nil, err
	}

	return &Asa{
		declaredType: o.declaredType,
		params:       params,
		metadata:     o.metadata,
		derivedType:  derived,
		metadataHash: hash,
	}, warnings, nil
}

// Params returns the validated asset parameters, ready to be placed verbatim
// into an asset-creation transaction.
func (a *Asa) Params() AssetParams {
	return a.params
}

// DeclaredType returns the caller-declared type, or "" if none was declared.
func (a *Asa) DeclaredType() AsaType {
	return a.declaredType
}

// DerivedType returns the type derived from total and decimals.
func (a *Asa) DerivedType() AsaType {
	return a.derivedType
}

// Metadata returns the attached metadata variant.
func (a *Asa) Metadata() Metadata {
	return a.metadata
}

// ARC3Metadata returns the effective ARC-3 document, unwrapping ARC-19.
func (a *Asa) ARC3Metadata() *arc3.Metadata {
	return a.metadata.ARC3()
}

// MetadataHash returns the 32-byte metadata commitment, or nil when no
// metadata is attached.
func (a *Asa) MetadataHash() []byte {
	if a.metadataHash == nil {
		return nil
	}
	out := make([]byte, len(a.metadataHash))
	copy(out, a.metadataHash)
	return out
}

// computeMetadataHash commits to the effective ARC-3 document:
//
//	am = SHA-256(canonical JSON)
//
// or, when extra_metadata e is present,
//
//	am = SHA-512/256("arc0003/am" || SHA-512/256("arc0003/amj" || canonical JSON) || e)
//
// The result is always exactly 32 bytes; with no document attached the hash
// is absent, not zero-filled.
func computeMetadataHash(m Metadata) ([]byte, error) {
	doc := m.ARC3()
	if doc == nil {
		return nil, nil
	}
	canonical, err := doc.CanonicalJSON()
	if err != nil {
		return nil, err
	}
	if doc.ExtraMetadata == nil {
		return hashutil.SHA256(canonical), nil
	}
	extra, err := base64.StdEncoding.DecodeString(*doc.ExtraMetadata)
	if err != nil {
		return nil, fmt.Errorf("extra_metadata: %w", err)
	}
	base := hashutil.SHA512_256(append([]byte("arc0003/amj"), canonical...))
	payload := make([]byte, 0, len("arc0003/am")+len(base)+len(extra))
	payload = append(payload, "arc0003/am"...)
	payload = append(payload, base...)
	payload = append(payload, extra...)
	return hashutil.SHA512_256(payload), nil
}
