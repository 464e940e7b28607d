package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shoplite/commerce-system/internal/api/metrics"
	"github.com/shoplite/commerce-system/internal/core/domain"
)

// instrumented wraps a lookup with the remote-lookup metrics.
func instrumented(target string, fn func() error) error {
	start := time.Now()
	err := fn()
	metrics.RemoteLookupDuration.WithLabelValues(target).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RemoteLookupsTotal.WithLabelValues(target, "error").Inc()
		return err
	}
	metrics.RemoteLookupsTotal.WithLabelValues(target, "ok").Inc()
	return nil
}

// UserClient resolves user references against the user service.
type UserClient struct {
	c *Client
}

func NewUserClient(baseURL string) *UserClient {
	return &UserClient{c: New(baseURL)}
}

func (u *UserClient) FetchUser(ctx context.Context, id int) (*domain.UserFragment, error) {
	var frag domain.UserFragment
	err := instrumented("user", func() error {
		return u.c.get(ctx, fmt.Sprintf("/users/%d", id), &frag)
	})
	if err != nil {
		return nil, err
	}
	return &frag, nil
}

// ProductClient resolves product references against the product service.
type ProductClient struct {
	c *Client
}

func NewProductClient(baseURL string) *ProductClient {
	return &ProductClient{c: New(baseURL)}
}

func (p *ProductClient) FetchProduct(ctx context.Context, id int) (*domain.ProductFragment, error) {
	var frag domain.ProductFragment
	err := instrumented("product", func() error {
		return p.c.get(ctx, fmt.Sprintf("/products/%d", id), &frag)
	})
	if err != nil {
		return nil, err
	}
	return &frag, nil
}

// OrderClient resolves order references against the order service.
type OrderClient struct {
	c *Client
}

func NewOrderClient(baseURL string) *OrderClient {
	return &OrderClient{c: New(baseURL)}
}

func (o *OrderClient) FetchOrder(ctx context.Context, id int) (*domain.OrderFragment, error) {
	var frag domain.OrderFragment
	err := instrumented("order", func() error {
		return o.c.get(ctx, fmt.Sprintf("/orders/%d", id), &frag)
	})
	if err != nil {
		return nil, err
	}
	return &frag, nil
}

// CredentialClient lets the gateway authenticate against the user service's
// credential collection without holding its own copy of the store.
type CredentialClient struct {
	c *Client
}

func NewCredentialClient(baseURL string) *CredentialClient {
	return &CredentialClient{c: New(baseURL)}
}

// FindByUsername fetches the credential record for a username. A 404 from
// the peer maps to domain.ErrCredentialNotFound so the authenticator can
// fold it into its invalid-credentials answer.
func (cc *CredentialClient) FindByUsername(ctx context.Context, username string) (*domain.Credential, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		cc.c.baseURL+"/credentials/username/"+username, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", domain.ErrRemoteLookup, err)
	}

	resp, err := cc.c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRemoteLookup, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrCredentialNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: credential lookup: status %d", domain.ErrRemoteLookup, resp.StatusCode)
	}

	var cred domain.Credential
	if err := json.NewDecoder(resp.Body).Decode(&cred); err != nil {
		return nil, fmt.Errorf("%w: decode credential: %v", domain.ErrRemoteLookup, err)
	}
	return &cred, nil
}
