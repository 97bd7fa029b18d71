package interfaces

// IProxyManager supplies the outbound identity of each upstream call:
// which proxy to dial through ("" for direct) and which User-Agent to send.
type IProxyManager interface {
	NextProxy() string
	HasProxies() bool
	GetUserAgent() string
}
