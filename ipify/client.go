package ipify

import (
	"context"
	"net/http"

	"github.com/aiziyuer/ipify-cli/util"
	"go.uber.org/zap"
)

type Option struct {
	Transport Transport
	Endpoints map[IpVersion]string // overrides of IpVersion.Endpoint
	Logger    *zap.SugaredLogger
}
type ModOption func(option *Option)

func WithTransport(t Transport) ModOption {
	return func(option *Option) {
		option.Transport = t
	}
}

func WithEndpoint(version IpVersion, endpoint string) ModOption {
	return func(option *Option) {
		option.Endpoints[version] = endpoint
	}
}

func WithLogger(logger *zap.SugaredLogger) ModOption {
	return func(option *Option) {
		option.Logger = logger
	}
}

// Client looks up the caller's public address. It is safe for concurrent use.
type Client struct {
	option *Option
}

func NewClient(modOptions ...ModOption) *Client {

	option := Option{
		Endpoints: map[IpVersion]string{},
		Logger:    zap.S(),
	}

	for _, fn := range modOptions {
		fn(&option)
	}

	if option.Transport == nil {
		option.Transport = NewRestyTransport(util.NewRestyClient(NewHTTPClient(false), false))
	}

	return &Client{option: &option}
}

func (c *Client) endpoint(version IpVersion) string {
	if endpoint, ok := c.option.Endpoints[version]; ok {
		return endpoint
	}
	return version.Endpoint()
}

// IP returns the address reported by ipify for the given version.
func (c *Client) IP(version IpVersion) (string, error) {
	return c.IPContext(context.Background(), version)
}

// IPContext issues exactly one GET and returns the decoded body verbatim.
// The status code is not inspected; only transport failures are errors.
func (c *Client) IPContext(ctx context.Context, version IpVersion) (string, error) {

	endpoint := c.endpoint(version)
	if endpoint == "" {
		return "", &UnsupportedIpVersionError{Token: version.String()}
	}

	c.option.Logger.Debugf("lookup ipv%s address from %s", version, endpoint)

	status, body, err := c.option.Transport.Get(ctx, endpoint)
	if err != nil {
		c.option.Logger.Debugf("lookup %s failed: %s", endpoint, err)
		return "", &TransportError{Err: err}
	}

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		c.option.Logger.Debugf("%s answered with status %d, using body anyway", endpoint, status)
	}

	return DecodeLossy(body), nil
}
