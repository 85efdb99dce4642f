// Package arc3 models ARC-3 NFT metadata documents and their canonical JSON
// form, the byte-exact serialization the on-chain metadata hash commits to.
//
// Reference: https://github.com/algorandfoundation/ARCs/blob/main/ARCs/arc-0003.md
package arc3

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/code-alexander/algobase/refdata"
	"github.com/code-alexander/algobase/types"
)

var (
	// ErrReservedTraitsKey is returned when the open property map carries a
	// direct "traits" key. Traits live in their own typed field per ARC-16.
	ErrReservedTraitsKey = errors.New(`"traits" is reserved and must not appear in non-trait properties`)

	// ErrUnsupportedTraitValue is returned when a trait value is neither a
	// string nor a number.
	ErrUnsupportedTraitValue = errors.New("trait values must be strings or numbers")

	// ErrUnsupportedPropertyValue is returned when a property value is not
	// JSON-compatible (string, number, bool, object or array thereof).
	ErrUnsupportedPropertyValue = errors.New("unsupported property value")

	// ErrExternalURLMimetype is returned when external_url_mimetype is set to
	// anything other than "text/html".
	ErrExternalURLMimetype = errors.New(`external_url_mimetype must be "text/html"`)

	// ErrLocalesEmpty is returned when a localization block lists no locales.
	ErrLocalesEmpty = errors.New("localization must list at least one locale")
)

// Traits holds ARC-16 trait attributes. Values may be strings or numbers.
type Traits map[string]any

// Properties is the open ARC-3 property map. Non-trait entries live in
// Extra; ARC-16 traits are carried separately and serialize under the
// reserved "traits" key.
type Properties struct {
	Traits Traits
	Extra  map[string]any
}

// Localization describes where localized variants of the document live.
type Localization struct {
	// URI is the pattern to fetch localized data from. It must contain the
	// literal substring `{locale}`.
	URI string `json:"uri"`

	// Default is the locale of the data in the base document.
	Default string `json:"default"`

	// Locales lists the locales for which data is available.
	Locales []string `json:"locales"`

	// Integrity maps locales to SHA-256 SRI digests of their JSON files.
	Integrity map[string]string `json:"integrity,omitempty"`
}

// Metadata is an ARC-3 metadata document. Field order matters: the canonical
// JSON form emits fields in declared order and omits absent ones entirely.
// Optional scalars are pointers so that "absent" and "zero" stay distinct
// (a zero decimals or an empty extra_metadata string is meaningful).
type Metadata struct {
	Name                  *string       `json:"name,omitempty"`
	Decimals              *uint32       `json:"decimals,omitempty"`
	Description           *string       `json:"description,omitempty"`
	Image                 *string       `json:"image,omitempty"`
	ImageIntegrity        *string       `json:"image_integrity,omitempty"`
	ImageMimetype         *string       `json:"image_mimetype,omitempty"`
	BackgroundColor       *string       `json:"background_color,omitempty"`
	ExternalURL           *string       `json:"external_url,omitempty"`
	ExternalURLIntegrity  *string       `json:"external_url_integrity,omitempty"`
	ExternalURLMimetype   *string       `json:"external_url_mimetype,omitempty"`
	AnimationURL          *string       `json:"animation_url,omitempty"`
	AnimationURLIntegrity *string       `json:"animation_url_integrity,omitempty"`
	AnimationURLMimetype  *string       `json:"animation_url_mimetype,omitempty"`
	Properties            *Properties   `json:"properties,omitempty"`
	ExtraMetadata         *string       `json:"extra_metadata,omitempty"`
	Localization          *Localization `json:"localization,omitempty"`
}

// Validate checks every field against its ARC-3 constraints, aggregating all
// violations rather than stopping at the first.
func (m *Metadata) Validate(p refdata.Provider) error {
	var errs []error

	if m.Decimals != nil {
		if err := types.CheckDecimals(*m.Decimals); err != nil {
			errs = append(errs, fmt.Errorf("decimals: %w", err))
		}
	}
	errs = appendURLChecks(errs, p, "image", m.Image, m.ImageIntegrity, m.ImageMimetype, "image")
	errs = appendURLChecks(errs, p, "external_url", m.ExternalURL, m.ExternalURLIntegrity, nil, "")
	errs = appendURLChecks(errs, p, "animation_url", m.AnimationURL, m.AnimationURLIntegrity, m.AnimationURLMimetype, "")
	if m.ExternalURLMimetype != nil && *m.ExternalURLMimetype != "text/html" {
		errs = append(errs, fmt.Errorf("external_url_mimetype: %w: got %q", ErrExternalURLMimetype, *m.ExternalURLMimetype))
	}
	if m.BackgroundColor != nil {
		if err := types.CheckColor(*m.BackgroundColor); err != nil {
			errs = append(errs, fmt.Errorf("background_color: %w", err))
		}
	}
	if m.Properties != nil {
		if err := m.Properties.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("properties: %w", err))
		}
	}
	if m.ExtraMetadata != nil {
		if err := types.CheckBase64(*m.ExtraMetadata); err != nil {
			errs = append(errs, fmt.Errorf("extra_metadata: %w", err))
		}
	}
	if m.Localization != nil {
		if err := m.Localization.Validate(p); err != nil {
			errs = append(errs, fmt.Errorf("localization: %w", err))
		}
	}

	return errors.Join(errs...)
}

// appendURLChecks validates a URL field together with its integrity and
// mimetype companions.
func appendURLChecks(errs []error, p refdata.Provider, field string, url, integrity, mime *string, primaryType string) []error {
	if url != nil {
		if _, err := types.CheckARC3URL(p, *url); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", field, err))
		}
	}
	if integrity != nil {
		if err := types.CheckARC3SRI(*integrity); err != nil {
			errs = append(errs, fmt.Errorf("%s_integrity: %w", field, err))
		}
	}
	if mime != nil {
		if err := types.CheckMIMEType(p, *mime, primaryType); err != nil {
			errs = append(errs, fmt.Errorf("%s_mimetype: %w", field, err))
		}
	}
	return errs
}

// Validate checks the localization block: the URI template, the default
// locale, every listed locale, and any per-locale integrity digests.
func (l *Localization) Validate(p refdata.Provider) error {
	var errs []error

	if _, err := types.CheckLocalizedURL(p, l.URI); err != nil {
		errs = append(errs, fmt.Errorf("uri: %w", err))
	}
	if err := types.CheckLocale(l.Default); err != nil {
		errs = append(errs, fmt.Errorf("default: %w", err))
	}
	if len(l.Locales) == 0 {
		errs = append(errs, ErrLocalesEmpty)
	}
	for _, loc := range l.Locales {
		if err := types.CheckLocale(loc); err != nil {
			errs = append(errs, fmt.Errorf("locales: %w", err))
		}
	}
	for loc, sri := range l.Integrity {
		if err := types.CheckLocale(loc); err != nil {
			errs = append(errs, fmt.Errorf("integrity: %w", err))
		}
		if err := types.CheckARC3SRI(sri); err != nil {
			errs = append(errs, fmt.Errorf("integrity[%s]: %w", loc, err))
		}
	}

	return errors.Join(errs...)
}

// Validate checks the reserved-key rule, trait value types, and that every
// non-trait value is JSON-compatible.
func (p *Properties) Validate() error {
	var errs []error

	if _, ok := p.Extra["traits"]; ok {
		errs = append(errs, ErrReservedTraitsKey)
	}
	for k, v := range p.Traits {
		if !isStringOrNumber(v) {
			errs = append(errs, fmt.Errorf("%w: traits[%s] is %T", ErrUnsupportedTraitValue, k, v))
		}
	}
	for k, v := range p.Extra {
		if err := checkPropertyValue(v); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", k, err))
		}
	}

	return errors.Join(errs...)
}

func isStringOrNumber(v any) bool {
	switch v.(type) {
	case string, int, int32, int64, uint, uint32, uint64, float32, float64, json.Number:
		return true
	}
	return false
}

func checkPropertyValue(v any) error {
	switch val := v.(type) {
	case string, bool, int, int32, int64, uint, uint32, uint64, float32, float64, json.Number:
		return nil
	case map[string]any:
		for _, nested := range val {
			if err := checkPropertyValue(nested); err != nil {
				return err
			}
		}
		return nil
	case []any:
		for _, nested := range val {
			if err := checkPropertyValue(nested); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedPropertyValue, v)
	}
}

// MarshalJSON folds traits back into the open map under the reserved key.
// Keys serialize in lexicographic order, which keeps the canonical form
// deterministic.
func (p *Properties) MarshalJSON() ([]byte, error) {
	merged := make(map[string]any, len(p.Extra)+1)
	for k, v := range p.Extra {
		merged[k] = v
	}
	if p.Traits != nil {
		merged["traits"] = map[string]any(p.Traits)
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(merged); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// UnmarshalJSON splits the reserved "traits" key out of the open map.
func (p *Properties) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if t, ok := raw["traits"]; ok {
		traits, isMap := t.(map[string]any)
		if !isMap {
			return fmt.Errorf("%w: traits is %T", ErrUnsupportedTraitValue, t)
		}
		p.Traits = Traits(traits)
		delete(raw, "traits")
	}
	p.Extra = raw
	return nil
}
