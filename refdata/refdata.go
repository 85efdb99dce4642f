// Package refdata provides read-only reference data used by the validation
// layer: the set of known public IPFS gateway hosts and the registered MIME
// type registry. The default provider is populated once and is safe for
// concurrent readers.
package refdata

import (
	"net/url"
	"strings"
	"sync"

	"github.com/gabriel-vasile/mimetype"
)

// Provider answers reference-data queries by exact host/string match.
type Provider interface {
	// IsIPFSGateway reports whether host is a known public IPFS gateway.
	IsIPFSGateway(host string) bool

	// IsRegisteredMIME reports whether value is a registered MIME type.
	IsRegisteredMIME(value string) bool

	// IPFSGateways returns the configured gateway base URLs.
	IPFSGateways() []string
}

// defaultGateways lists public IPFS HTTP gateways. ARC-3 asset URLs must not
// point at any of these hosts; clients are expected to resolve ipfs:// URIs
// through a gateway of their own choosing.
var defaultGateways = []string{
	"https://ipfs.io",
	"https://gateway.ipfs.io",
	"https://dweb.link",
	"https://gateway.pinata.cloud",
	"https://cloudflare-ipfs.com",
	"https://cf-ipfs.com",
	"https://nftstorage.link",
	"https://w3s.link",
	"https://4everland.io",
	"https://ipfs.fleek.co",
	"https://trustless-gateway.link",
	"https://hardbin.com",
	"https://ipfs.runfission.com",
	"https://ipfs.eth.aragon.network",
}

type provider struct {
	gateways []string
	hosts    map[string]struct{}
}

// New creates a Provider from a list of gateway base URLs. Entries that do
// not parse as URLs are matched as bare hostnames.
func New(gateways []string) Provider {
	hosts := make(map[string]struct{}, len(gateways))
	for _, gw := range gateways {
		host := gw
		if u, err := url.Parse(gw); err == nil && u.Host != "" {
			host = u.Host
		}
		hosts[strings.ToLower(host)] = struct{}{}
	}
	return &provider{gateways: gateways, hosts: hosts}
}

var (
	defaultOnce     sync.Once
	defaultProvider Provider
)

// Default returns the process-wide provider backed by the built-in gateway
// list and the MIME registry. Population is idempotent, so concurrent
// callers may share the result without locking.
func Default() Provider {
	defaultOnce.Do(func() {
		defaultProvider = New(defaultGateways)
	})
	return defaultProvider
}

func (p *provider) IsIPFSGateway(host string) bool {
	_, ok := p.hosts[strings.ToLower(host)]
	return ok
}

func (p *provider) IsRegisteredMIME(value string) bool {
	return mimetype.Lookup(value) != nil
}

func (p *provider) IPFSGateways() []string {
	out := make([]string, len(p.gateways))
	copy(out, p.gateways)
	return out
}
