package arc3_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/code-alexander/algobase/arc3"
	"github.com/code-alexander/algobase/refdata"
	"github.com/code-alexander/algobase/types"
)

func validMetadata() *arc3.Metadata {
	return &arc3.Metadata{
		Name:                  strptr("My Songs"),
		Decimals:              uint32ptr(0),
		Description:           strptr("My first and best song!"),
		Image:                 strptr("https://s3.amazonaws.com/your-bucket/song/cover/mysong.png"),
		ImageIntegrity:        strptr("sha256-47DEQpj8HBSa+/TImW+5JCeuQeRkm5NMpJWZG3hSuFU="),
		ImageMimetype:         strptr("image/png"),
		BackgroundColor:       strptr("FFFFFF"),
		ExternalURL:           strptr("https://mysongs.com/song/mysong"),
		ExternalURLIntegrity:  strptr("sha256-7IGatqxLhUYkruDsEva52Ku43up6774yAmf0k98MXnU="),
		ExternalURLMimetype:   strptr("text/html"),
		AnimationURL:          strptr("https://s3.amazonaws.com/your-bucket/song/preview/mysong.ogg"),
		AnimationURLIntegrity: strptr("sha256-LwArA6xMdnFF3bvQjwODpeTG/RVn61weQSuoRyynA1I="),
		AnimationURLMimetype:  strptr("audio/ogg"),
		Properties: &arc3.Properties{
			Traits: arc3.Traits{
				"background": "red",
				"tattoos":    4,
			},
			Extra: map[string]any{
				"simple_property": "example value",
				"rich_property": map[string]any{
					"name":  "Name",
					"value": "123",
				},
				"array_property": []any{"a", "b", 1},
			},
		},
	}
}

func TestMetadataValidate(t *testing.T) {
	p := refdata.Default()

	tests := []struct {
		name    string
		mutate  func(*arc3.Metadata)
		wantErr error
	}{
		{
			name:   "valid document",
			mutate: func(m *arc3.Metadata) {},
		},
		{
			name:   "empty document is valid",
			mutate: func(m *arc3.Metadata) { *m = arc3.Metadata{} },
		},
		{
			name:    "decimals out of range",
			mutate:  func(m *arc3.Metadata) { m.Decimals = uint32ptr(20) },
			wantErr: types.ErrOutOfRange,
		},
		{
			name:    "image on public gateway",
			mutate:  func(m *arc3.Metadata) { m.Image = strptr("https://ipfs.io/ipfs/Qm/mysong.png") },
			wantErr: types.ErrIPFSGatewayHost,
		},
		{
			name:    "image over http",
			mutate:  func(m *arc3.Metadata) { m.Image = strptr("http://example.com/a.png") },
			wantErr: types.ErrDisallowedURLScheme,
		},
		{
			name:    "image integrity not sha256",
			mutate:  func(m *arc3.Metadata) { m.ImageIntegrity = strptr("sha384-invalid") },
			wantErr: types.ErrInvalidSRI,
		},
		{
			name:    "image mimetype not an image",
			mutate:  func(m *arc3.Metadata) { m.ImageMimetype = strptr("video/mp4") },
			wantErr: types.ErrWrongMIMEPrimaryType,
		},
		{
			name:    "background color with hash",
			mutate:  func(m *arc3.Metadata) { m.BackgroundColor = strptr("#FFFFF") },
			wantErr: types.ErrInvalidColor,
		},
		{
			name:    "external url mimetype must be text/html",
			mutate:  func(m *arc3.Metadata) { m.ExternalURLMimetype = strptr("application/json") },
			wantErr: arc3.ErrExternalURLMimetype,
		},
		{
			name:    "extra metadata must be base64",
			mutate:  func(m *arc3.Metadata) { m.ExtraMetadata = strptr("not base64!") },
			wantErr: types.ErrInvalidBase64,
		},
		{
			name: "reserved traits key in open properties",
			mutate: func(m *arc3.Metadata) {
				m.Properties.Extra["traits"] = map[string]any{"x": "y"}
			},
			wantErr: arc3.ErrReservedTraitsKey,
		},
		{
			name: "trait value must be string or number",
			mutate: func(m *arc3.Metadata) {
				m.Properties.Traits["flag"] = true
			},
			wantErr: arc3.ErrUnsupportedTraitValue,
		},
		{
			name: "property value must be JSON compatible",
			mutate: func(m *arc3.Metadata) {
				m.Properties.Extra["bad"] = make(chan int)
			},
			wantErr: arc3.ErrUnsupportedPropertyValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validMetadata()
			tt.mutate(m)
			err := m.Validate(p)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMetadataValidateAggregatesErrors(t *testing.T) {
	m := validMetadata()
	m.Decimals = uint32ptr(99)
	m.BackgroundColor = strptr("zzz")
	m.ExtraMetadata = strptr("???")

	err := m.Validate(refdata.Default())
	assert.ErrorIs(t, err, types.ErrOutOfRange)
	assert.ErrorIs(t, err, types.ErrInvalidColor)
	assert.ErrorIs(t, err, types.ErrInvalidBase64)
}

func TestLocalizationValidate(t *testing.T) {
	p := refdata.Default()

	tests := []struct {
		name    string
		loc     arc3.Localization
		wantErr error
	}{
		{
			name: "valid",
			loc: arc3.Localization{
				URI:     "ipfs://QmWS1VAdMD353A6SDk9wNyvkT14kyCiZrNDYAad4w1tKqT/{locale}.json",
				Default: "en",
				Locales: []string{"en", "es", "fr"},
				Integrity: map[string]string{
					"es": "sha256-T0ZoSPTGMs2WLZZbJHXTPHZfZ1m1k6OYEMZJvsmjWLM=",
				},
			},
		},
		{
			name: "uri missing locale placeholder",
			loc: arc3.Localization{
				URI:     "ipfs://QmWS1VAdMD353A6SDk9wNyvkT14kyCiZrNDYAad4w1tKqT/en.json",
				Default: "en",
				Locales: []string{"en"},
			},
			wantErr: types.ErrMissingSubstring,
		},
		{
			name: "unknown default locale",
			loc: arc3.Localization{
				URI:     "ipfs://Qm/{locale}.json",
				Default: "zz-Zzzz",
				Locales: []string{"en"},
			},
			wantErr: types.ErrInvalidLocale,
		},
		{
			name: "no locales",
			loc: arc3.Localization{
				URI:     "ipfs://Qm/{locale}.json",
				Default: "en",
			},
			wantErr: arc3.ErrLocalesEmpty,
		},
		{
			name: "integrity digest not sha256",
			loc: arc3.Localization{
				URI:     "ipfs://Qm/{locale}.json",
				Default: "en",
				Locales: []string{"en", "es"},
				Integrity: map[string]string{
					"es": "sha512-bogus",
				},
			},
			wantErr: types.ErrInvalidSRI,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.loc.Validate(p)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
