package ipify

import "fmt"

// TransportError wraps a failure of the underlying http transport.
// Its text is the transport's own description.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// UnsupportedIpVersionError carries a version token that is neither "4" nor "6".
type UnsupportedIpVersionError struct {
	Token string
}

func (e *UnsupportedIpVersionError) Error() string {
	return fmt.Sprintf("UnsupportedIpVersion(%s)", e.Token)
}
