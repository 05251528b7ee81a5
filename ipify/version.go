package ipify

import "fmt"

// IpVersion selects which address family is looked up.
type IpVersion int

const (
	V4 IpVersion = iota
	V6
)

// ParseIpVersion resolves the token given on the command line.
// Only "4" and "6" are accepted, matched exactly.
func ParseIpVersion(token string) (IpVersion, error) {
	switch token {
	case "4":
		return V4, nil
	case "6":
		return V6, nil
	default:
		return 0, &UnsupportedIpVersionError{Token: token}
	}
}

// Endpoint returns the ipify url serving this address family.
func (v IpVersion) Endpoint() string {
	switch v {
	case V4:
		return "https://api.ipify.org"
	case V6:
		return "https://api6.ipify.org"
	}
	return ""
}

func (v IpVersion) String() string {
	switch v {
	case V4:
		return "4"
	case V6:
		return "6"
	}
	return fmt.Sprintf("IpVersion(%d)", int(v))
}
