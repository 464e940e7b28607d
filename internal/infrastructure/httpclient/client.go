// Package httpclient implements the cross-service reference lookups. Each
// record service exposes its collection over plain JSON HTTP; this package
// fetches single records from a peer and maps transport failures onto the
// domain error the composers understand.
package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/shoplite/commerce-system/internal/core/domain"
)

const (
	connectTimeout = 5 * time.Second
	requestTimeout = 10 * time.Second
)

// Client is a thin JSON GET client bound to one peer service's base URL.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: requestTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: connectTimeout,
				}).DialContext,
			},
		},
	}
}

// get fetches baseURL+path and decodes the JSON body into out. Network
// failures, non-2xx statuses and decode failures all wrap
// domain.ErrRemoteLookup so a composer can abort the whole read.
func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: build request: %v", domain.ErrRemoteLookup, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrRemoteLookup, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: GET %s: status %d", domain.ErrRemoteLookup, path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s: %v", domain.ErrRemoteLookup, path, err)
	}
	return nil
}
