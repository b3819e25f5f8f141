// Package registry is the HTTP client of the ONS registry service, the
// off-chain index of domain ↔ address mappings.
//
// Lookups have a deliberately lossy contract: a confirmed "not found", a
// non-2xx status, a malformed body and a transport failure all present as a
// not-found result. The distinction is kept on LookupResult.Miss so callers
// and tests that care can still tell them apart, but no lookup ever returns
// an error. Store is the opposite: persistence is the step whose failure the
// caller must see, so any non-2xx response is an error.
package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// MissReason says why a lookup came back not-found.
type MissReason int

const (
	// MissNone — the lookup found a mapping.
	MissNone MissReason = iota
	// MissAbsent — the registry confirmed the mapping doesn't exist.
	MissAbsent
	// MissTransport — the registry couldn't be asked (network failure,
	// unexpected status, malformed response). Presented as not-found by
	// contract.
	MissTransport
)

// LookupResult is the outcome of a forward or reverse lookup. When Found is
// false, Miss records whether the registry confirmed the absence or simply
// couldn't be reached.
type LookupResult struct {
	Found   bool
	Domain  string
	Address string
	Miss    MissReason
}

// RegistrationRecord is the off-chain index entry POSTed to the registry
// after a registration transaction is broadcast. RegisteredAt is unix
// milliseconds.
type RegistrationRecord struct {
	Domain       string `json:"domain"`
	Address      string `json:"address"`
	TxHash       string `json:"txHash"`
	RegisteredAt int64  `json:"registeredAt"`
}

type Client struct {
	// BaseURL of the registry API, e.g. https://ons.octra.network
	BaseURL string

	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) lookupDomainURL(domain string) string {
	return fmt.Sprintf("%s/api/domain/lookup/%s", c.BaseURL, url.PathEscape(domain))
}

func (c *Client) lookupAddressURL(address string) string {
	return fmt.Sprintf("%s/api/domain/reverse/%s", c.BaseURL, url.PathEscape(address))
}

func (c *Client) registerURL() string {
	return fmt.Sprintf("%s/api/domain/register", c.BaseURL)
}

type lookupResponse struct {
	Address string `json:"address"`
	Domain  string `json:"domain"`
}

// LookupDomain asks the registry for the address mapped to domain.
func (c *Client) LookupDomain(ctx context.Context, domain string) LookupResult {
	return c.lookup(ctx, c.lookupDomainURL(domain))
}

// LookupAddress asks the registry for the domain mapped to address.
func (c *Client) LookupAddress(ctx context.Context, address string) LookupResult {
	return c.lookup(ctx, c.lookupAddressURL(address))
}

func (c *Client) lookup(ctx context.Context, url string) LookupResult {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return LookupResult{Miss: MissTransport}
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return LookupResult{Miss: MissTransport}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return LookupResult{Miss: MissAbsent}
	}
	if resp.StatusCode != http.StatusOK {
		return LookupResult{Miss: MissTransport}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return LookupResult{Miss: MissTransport}
	}
	mapping := lookupResponse{}
	if err = json.Unmarshal(body, &mapping); err != nil {
		return LookupResult{Miss: MissTransport}
	}
	if mapping.Address == "" {
		return LookupResult{Miss: MissTransport}
	}
	return LookupResult{
		Found:   true,
		Domain:  mapping.Domain,
		Address: mapping.Address,
	}
}

// Store persists rec in the registry's off-chain index. Unlike lookups,
// failures here are surfaced: by the time Store runs the registration
// transaction is already on chain, and the caller must know the index was
// not updated so it can retry.
func (c *Client) Store(ctx context.Context, rec RegistrationRecord) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("couldn't encode registration record: %w", err)
	}
	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.registerURL(), bytes.NewReader(payload),
	)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("couldn't reach the registry: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf(
			"registry refused the record: status %d, body: %s",
			resp.StatusCode, string(body),
		)
	}
	return nil
}
