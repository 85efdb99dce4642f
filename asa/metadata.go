package asa

import (
	"github.com/code-alexander/algobase/arc19"
	"github.com/code-alexander/algobase/arc3"
)

// Standard discriminates the metadata variant attached to an asset.
type Standard string

const (
	// StandardNone means no metadata document is attached.
	StandardNone Standard = ""

	// StandardARC3 is a self-contained ARC-3 document.
	StandardARC3 Standard = "arc3"

	// StandardARC19 is an ARC-19 wrapper resolved via the reserve address.
	StandardARC19 Standard = "arc19"
)

// Metadata is the discriminated metadata variant: none, ARC-3, or ARC-19.
// The zero value means none.
type Metadata struct {
	standard Standard
	arc3     *arc3.Metadata
	arc19    *arc19.Metadata
}

// ARC3Metadata attaches an ARC-3 document. A nil document yields the none
// variant.
func ARC3Metadata(m *arc3.Metadata) Metadata {
	if m == nil {
		return Metadata{}
	}
	return Metadata{standard: StandardARC3, arc3: m}
}

// ARC19Metadata attaches an ARC-19 wrapper. A nil wrapper yields the none
// variant.
func ARC19Metadata(m *arc19.Metadata) Metadata {
	if m == nil {
		return Metadata{}
	}
	return Metadata{standard: StandardARC19, arc19: m}
}

// Standard returns the variant's discriminant.
func (m Metadata) Standard() Standard {
	return m.standard
}

// ARC3 returns the effective ARC-3 document, unwrapping an ARC-19 wrapper.
// It is nil when no document is attached.
func (m Metadata) ARC3() *arc3.Metadata {
	switch m.standard {
	case StandardARC3:
		return m.arc3
	case StandardARC19:
		return m.arc19.ARC3
	default:
		return nil
	}
}

// ARC19 returns the ARC-19 wrapper, or nil for other variants.
func (m Metadata) ARC19() *arc19.Metadata {
	if m.standard == StandardARC19 {
		return m.arc19
	}
	return nil
}
