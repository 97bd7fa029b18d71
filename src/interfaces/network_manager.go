package interfaces

import "context"

// -----------------------------------------------------------------------------
// INetworkManager defines the contract for outbound HTTP calls. Every call is
// bounded by the configured timeout and is never retried.
// -----------------------------------------------------------------------------

// Response is the raw outcome of an outbound call.
type Response struct {
	Status int
	Body   []byte
}

// OK reports a 2xx status.
func (r *Response) OK() bool {
	return r != nil && r.Status >= 200 && r.Status < 300
}

type INetworkManager interface {

	// -----------------------------------------------------------------------------

	// Get performs a GET request to the specified URL with parameters.
	Get(ctx context.Context, url string, params, headers map[string]string) (*Response, error)

	// -----------------------------------------------------------------------------

	// PostJSON sends body encoded as JSON.
	PostJSON(ctx context.Context, url string, body interface{}, headers map[string]string) (*Response, error)
}
