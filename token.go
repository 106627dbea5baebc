package pagenav

import (
	"encoding/base64"
	"fmt"
	"strconv"
)

var _encoder = base64.RawURLEncoding

// PageToken is an opaque page marker for API payloads. It encodes a 1-based
// page number; an empty token means the first page of the dataset.
//
// Tokens are intentionally opaque so that clients treat paging state as a
// value handed back by the server rather than arithmetic of their own.
type PageToken struct {
	page int
}

func NewPageToken(page int) *PageToken {
	return &PageToken{
		page: page,
	}
}

// DecodePageToken attempts to parse a base64-encoded string into *PageToken.
func DecodePageToken(b64String string) (*PageToken, error) {
	if len(b64String) == 0 {
		return nil, nil
	}

	pageBytes, err := _encoder.DecodeString(b64String)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 encoded page token: %w", err)
	}

	page, err := strconv.Atoi(string(pageBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to decode page token value: %w", err)
	}

	if page < 1 {
		return nil, fmt.Errorf("page token value out of range: %d", page)
	}

	return &PageToken{
		page: page,
	}, nil
}

// String - implements fmt.Stringer.
func (t *PageToken) String() string {
	if t == nil || t.page <= 1 {
		return ""
	}

	return _encoder.EncodeToString([]byte(strconv.Itoa(t.page)))
}

// IsEmpty reports whether the token refers to the first page.
func (t *PageToken) IsEmpty() bool {
	return t == nil || t.page <= 1
}

// Page returns the 1-based page number held by the token. An empty token is
// the first page.
func (t *PageToken) Page() int {
	if t == nil || t.page < 1 {
		return 1
	}

	return t.page
}

// WithPage sets the page number and returns the token.
func (t *PageToken) WithPage(page int) *PageToken {
	if t == nil {
		t = new(PageToken)
	}

	t.page = page

	return t
}

var _ fmt.Stringer = (*PageToken)(nil)
