package refdata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/code-alexander/algobase/refdata"
)

func TestDefaultIsIPFSGateway(t *testing.T) {
	p := refdata.Default()

	tests := []struct {
		name string
		host string
		want bool
	}{
		{name: "ipfs.io", host: "ipfs.io", want: true},
		{name: "case insensitive", host: "IPFS.IO", want: true},
		{name: "pinata", host: "gateway.pinata.cloud", want: true},
		{name: "dweb", host: "dweb.link", want: true},
		{name: "unrelated host", host: "example.com", want: false},
		{name: "subdomain of gateway", host: "sub.ipfs.io", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.IsIPFSGateway(tt.host))
		})
	}
}

func TestNewWithCustomGateways(t *testing.T) {
	p := refdata.New([]string{"https://my-gateway.example.com", "https://other.example.org/ipfs"})

	assert.True(t, p.IsIPFSGateway("my-gateway.example.com"))
	assert.True(t, p.IsIPFSGateway("other.example.org"))
	assert.False(t, p.IsIPFSGateway("ipfs.io"))
}

func TestIsRegisteredMIME(t *testing.T) {
	p := refdata.Default()

	assert.True(t, p.IsRegisteredMIME("image/png"))
	assert.True(t, p.IsRegisteredMIME("application/json"))
	assert.True(t, p.IsRegisteredMIME("video/mp4"))
	assert.False(t, p.IsRegisteredMIME("fake/nope"))
	assert.False(t, p.IsRegisteredMIME(""))
}

func TestIPFSGateways(t *testing.T) {
	p := refdata.New([]string{"https://a.example.com", "https://b.example.com"})
	assert.Len(t, p.IPFSGateways(), 2)
}
