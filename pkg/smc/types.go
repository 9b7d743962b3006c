package smc

import (
	"net/http"
)

// Row represents a single record from a rowset endpoint. Primary key columns
// arrive under keys, the remaining columns under values.
type Row struct {
	Keys   map[string]string `json:"keys"   yaml:"keys"`
	Values map[string]string `json:"values" yaml:"values"`
}

// RowsetLinks holds the continuation links of a rowset page.
type RowsetLinks struct {
	Self string `json:"self,omitempty" yaml:"self,omitempty"`
	Next string `json:"next,omitempty" yaml:"next,omitempty"`
}

// RowsetResponse represents one page of the custom-object rowset endpoint.
type RowsetResponse struct {
	Links           RowsetLinks `json:"links"                     yaml:"links"`
	RequestToken    string      `json:"requestToken,omitempty"    yaml:"requestToken,omitempty"`
	CustomObjectID  string      `json:"customObjectId,omitempty"  yaml:"customObjectId,omitempty"`
	CustomObjectKey string      `json:"customObjectKey,omitempty" yaml:"customObjectKey,omitempty"`
	PageSize        int         `json:"pageSize"                  yaml:"pageSize"`
	Page            int         `json:"page"                      yaml:"page"`
	Count           int         `json:"count"                     yaml:"count"`
	Top             int         `json:"top,omitempty"             yaml:"top,omitempty"`
	Items           []Row       `json:"items"                     yaml:"items"`

	// Next mirrors links.next for API variants that return the continuation
	// link at the top level.
	Next string `json:"next,omitempty" yaml:"next,omitempty"`
}

// NextLink returns the continuation link of the page, preferring links.next
// over a top-level next. An empty string means the page is the last one.
func (r *RowsetResponse) NextLink() string {
	if r.Links.Next != "" {
		return r.Links.Next
	}

	return r.Next
}

// Response is the raw result of an HTTP call. The body is returned unparsed
// and the status code is not interpreted; callers decide how to handle both.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}
