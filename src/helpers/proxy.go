package helpers

import (
	"math/rand/v2"
	"net/url"
	"strings"
	"sync/atomic"

	"market-charts/src/logger"
)

// browserUserAgents are sent to finance endpoints, which reject the default Go client.
var browserUserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 14_6) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/18.1 Safari/605.1.15",
	"Mozilla/5.0 (X11; Linux x86_64; rv:133.0) Gecko/20100101 Firefox/133.0",
}

var proxySchemes = map[string]bool{"http": true, "https": true, "socks5": true}

// -----------------------------------------------------------------------------

// ProxyManager rotates outbound proxies per upstream call. Immutable after
// construction; the rotation cursor is the only shared state.
type ProxyManager struct {
	proxies   []string
	userAgent string
	cursor    atomic.Uint64
}

// -----------------------------------------------------------------------------

// NewProxyManager keeps the usable entries of proxies. A non-empty userAgent
// pins the header instead of picking a browser one per call.
func NewProxyManager(proxies []string, userAgent string) *ProxyManager {
	log := logger.NewLogger(nil, "ProxyManager")

	pm := &ProxyManager{userAgent: strings.TrimSpace(userAgent)}
	for _, raw := range proxies {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		if !ValidateProxy(raw) {
			log.Warning("Ignoring proxy %q: unsupported scheme or missing host", raw)
			continue
		}
		pm.proxies = append(pm.proxies, FormatProxy(raw))
	}
	return pm
}

// -----------------------------------------------------------------------------

// NextProxy returns "" when calls should go out directly.
func (pm *ProxyManager) NextProxy() string {
	if len(pm.proxies) == 0 {
		return ""
	}
	n := pm.cursor.Add(1) - 1
	return pm.proxies[n%uint64(len(pm.proxies))]
}

func (pm *ProxyManager) HasProxies() bool {
	return len(pm.proxies) > 0
}

func (pm *ProxyManager) GetUserAgent() string {
	if pm.userAgent != "" {
		return pm.userAgent
	}
	return browserUserAgents[rand.IntN(len(browserUserAgents))]
}

// -----------------------------------------------------------------------------

// ValidateProxy accepts host:port, or a URL with an http, https or socks5 scheme.
func ValidateProxy(proxyStr string) bool {
	u, err := url.Parse(FormatProxy(proxyStr))
	if err != nil || u.Host == "" {
		return false
	}
	return proxySchemes[u.Scheme]
}

// FormatProxy defaults a bare host:port to http.
func FormatProxy(proxyStr string) string {
	proxyStr = strings.TrimSpace(proxyStr)
	if proxyStr != "" && !strings.Contains(proxyStr, "://") {
		proxyStr = "http://" + proxyStr
	}
	return proxyStr
}
