package action

import (
	"net/url"
	"strings"
)

// encodeURIComponent escapes s like the browser function of the same name: everything
// except A-Z a-z 0-9 - _ . ! ~ * ' ( ) is percent-encoded.
func encodeURIComponent(s string) string {
	escaped := url.QueryEscape(s)

	return strings.NewReplacer(
		"+", "%20",
		"%21", "!",
		"%27", "'",
		"%28", "(",
		"%29", ")",
		"%2A", "*",
	).Replace(escaped)
}

// SuccessURL is the result page of a confirmed flow.
func SuccessURL(flow Flow, name string, txHash string) string {
	return flow.resultPath() + encodeURIComponent(name) + "?hash=" + txHash
}

// ErrorURL is the result page of a failed flow carrying the user facing message.
func ErrorURL(flow Flow, name string, message string) string {
	return flow.resultPath() + encodeURIComponent(name) + "?error=" + encodeURIComponent(message)
}
