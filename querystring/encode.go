package querystring

import (
	"net/url"
	"strings"
)

// URLEncode percent-encodes s for use as a query value. Spaces become %20.
func URLEncode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// URLEncodePlus percent-encodes s for use as a query value. Spaces become +,
// as in application/x-www-form-urlencoded bodies.
func URLEncodePlus(s string) string {
	return url.QueryEscape(s)
}
