package ipify

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// Transport is anything able to perform a plain GET and hand back status and body.
type Transport interface {
	Get(ctx context.Context, url string) (status int, body []byte, err error)
}

// NewHTTPClient builds the http client shared by every lookup.
// Proxy settings from the environment are never consulted.
func NewHTTPClient(insecure bool) *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			Proxy: nil,
			DialContext: (&net.Dialer{
				KeepAlive: 30 * time.Second,
			}).DialContext,
			ForceAttemptHTTP2: true,
			MaxIdleConns:      10,
			IdleConnTimeout:   90 * time.Second,
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: insecure,
			},
		},
	}
}

// RestyTransport is the Transport used outside of tests.
type RestyTransport struct {
	client *resty.Client
}

func NewRestyTransport(client *resty.Client) *RestyTransport {
	return &RestyTransport{client: client}
}

func (t *RestyTransport) Get(ctx context.Context, url string) (int, []byte, error) {

	resp, err := t.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return 0, nil, err
	}

	return resp.StatusCode(), resp.Body(), nil
}
