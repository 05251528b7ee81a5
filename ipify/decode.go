package ipify

import (
	"golang.org/x/text/encoding/unicode"
)

// DecodeLossy turns a response body into text, replacing each maximal invalid
// UTF-8 subsequence with U+FFFD.
func DecodeLossy(body []byte) string {
	// the UTF-8 decoder replaces ill-formed input and never reports an error
	decoded, _ := unicode.UTF8.NewDecoder().Bytes(body)
	return string(decoded)
}
