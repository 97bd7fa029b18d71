package network

import (
	"context"
	"sync"
	"time"

	"market-charts/src/helpers"
	"market-charts/src/interfaces"
	"market-charts/src/logger"
	"market-charts/src/models"

	"github.com/go-resty/resty/v2"
)

type NetworkManager struct {
	Timeout      time.Duration
	ProxyManager interfaces.IProxyManager
	Logger       *logger.Logger

	mu      sync.Mutex
	direct  *resty.Client
	proxied map[string]*resty.Client
}

// -----------------------------------------------------------------------------

func NewNetworkManager(cfg *models.MConfig, log *logger.Logger) *NetworkManager {
	timeout := time.Duration(cfg.Network.RequestTimeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	nm := &NetworkManager{
		Timeout:      timeout,
		ProxyManager: helpers.NewProxyManager(cfg.Network.Proxies, cfg.Network.UserAgent),
		Logger:       log,
		proxied:      make(map[string]*resty.Client),
	}
	nm.direct = nm.createClient("")
	return nm
}

// -----------------------------------------------------------------------------

func (nm *NetworkManager) createClient(proxy string) *resty.Client {
	client := resty.New().
		SetTimeout(nm.Timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")

	if proxy != "" {
		client.SetProxy(proxy)
	}

	client.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		if nm.Logger != nil {
			nm.Logger.Debug("%s %s -> %d in %s", resp.Request.Method, resp.Request.URL, resp.StatusCode(), resp.Time())
		}
		return nil
	})
	return client
}

// -----------------------------------------------------------------------------

// client picks the next proxy in rotation. Clients are built once per proxy so
// connection pools survive across calls.
func (nm *NetworkManager) client() *resty.Client {
	if nm.ProxyManager == nil || !nm.ProxyManager.HasProxies() {
		return nm.direct
	}
	proxy := nm.ProxyManager.NextProxy()
	if proxy == "" {
		return nm.direct
	}

	nm.mu.Lock()
	defer nm.mu.Unlock()
	c, ok := nm.proxied[proxy]
	if !ok {
		c = nm.createClient(proxy)
		nm.proxied[proxy] = c
	}
	return c
}

// -----------------------------------------------------------------------------

func (nm *NetworkManager) request(ctx context.Context, headers map[string]string) (*resty.Request, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(ctx, nm.Timeout)

	req := nm.client().R().SetContext(ctx)
	if nm.ProxyManager != nil {
		req.SetHeader("User-Agent", nm.ProxyManager.GetUserAgent())
	}
	req.SetHeaders(headers)
	return req, cancel
}

// -----------------------------------------------------------------------------

// Get performs a single GET request. Non-2xx statuses are returned, not treated as errors.
func (nm *NetworkManager) Get(ctx context.Context, url string, params, headers map[string]string) (*interfaces.Response, error) {
	req, cancel := nm.request(ctx, headers)
	defer cancel()

	resp, err := req.SetQueryParams(params).Get(url)
	if err != nil {
		return nil, err
	}
	return &interfaces.Response{Status: resp.StatusCode(), Body: resp.Body()}, nil
}

// -----------------------------------------------------------------------------

// PostJSON performs a single POST with a JSON body.
func (nm *NetworkManager) PostJSON(ctx context.Context, url string, body interface{}, headers map[string]string) (*interfaces.Response, error) {
	req, cancel := nm.request(ctx, headers)
	defer cancel()

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(url)
	if err != nil {
		return nil, err
	}
	return &interfaces.Response{Status: resp.StatusCode(), Body: resp.Body()}, nil
}
