package wikipedia

import (
	"context"
	"net/url"
	"time"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"
)

// RestyGetter is an alternate transport built on resty. It exists for
// callers who already carry a resty client and want the Wikipedia client to
// ride on its middleware, proxy, and retry configuration.
type RestyGetter struct {
	client *resty.Client
}

// NewRestyGetter wraps rc as a Getter. A nil rc gets a fresh client with a
// 30-second timeout and two retries.
func NewRestyGetter(rc *resty.Client) *RestyGetter {
	if rc == nil {
		rc = resty.New().
			SetTimeout(30 * time.Second).
			SetRetryCount(2).
			SetRetryWaitTime(100 * time.Millisecond)
	}
	return &RestyGetter{client: rc}
}

// Get implements Getter
func (g *RestyGetter) Get(ctx context.Context, baseURL string, params url.Values, userAgent string) (string, error) {
	req := g.client.R().
		SetContext(ctx).
		SetQueryParamsFromValues(params).
		SetHeader("Accept", "application/json")
	if userAgent != "" {
		req.SetHeader("User-Agent", userAgent)
	}

	resp, err := req.Get(baseURL)
	if err != nil {
		return "", &NetworkError{URL: baseURL, Err: err}
	}
	if resp.StatusCode() >= 400 {
		return "", &NetworkError{URL: baseURL, Status: resp.StatusCode()}
	}

	body := resp.Body()
	if !utf8.Valid(body) {
		return "", &EncodingError{}
	}
	return string(body), nil
}
