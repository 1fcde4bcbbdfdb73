package prettyhttp

import "net/http"

// FilterArgs carries one observed exchange to a Filter: the request that was
// sent, plus the response or the error that ended it. At most one of
// Response and Err is set.
type FilterArgs struct {
	Request  *http.Request
	Response *http.Response
	Err      error
}

// HasResponse reports whether the exchange completed with a response.
func (a FilterArgs) HasResponse() bool { return a.Response != nil }

// HasError reports whether the exchange ended in a transport error.
func (a FilterArgs) HasError() bool { return a.Err != nil }

// Filter decides whether an exchange is logged at all. Returning false
// suppresses the whole transcript for that exchange.
type Filter func(args FilterArgs) bool
